package query

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// AnnotationQueryInput identifies one (writer, subject) record.
type AnnotationQueryInput struct {
	Writer  types.AccountName
	Subject types.AccountName
}

// AnnotationQuery fetches a single annotation.
type AnnotationQuery struct {
	repo types.AnnotationRepository
}

// NewAnnotationQuery constructs the annotation query helper.
func NewAnnotationQuery(repo types.AnnotationRepository) *AnnotationQuery {
	return &AnnotationQuery{repo: repo}
}

var _ gocommand.Querier[AnnotationQueryInput, *types.Annotation] = (*AnnotationQuery)(nil)

// Query returns the annotation, or nil when the pair has none.
func (q *AnnotationQuery) Query(ctx context.Context, input AnnotationQueryInput) (*types.Annotation, error) {
	if q.repo == nil {
		return nil, types.ErrMissingAnnotationRepository
	}
	if input.Writer == "" || input.Subject == "" {
		return nil, types.ErrAccountRequired
	}
	return q.repo.GetAnnotation(ctx, input.Writer, input.Subject)
}

// AnnotationsByWriterInput scopes a partition listing.
type AnnotationsByWriterInput struct {
	Writer types.AccountName
}

// AnnotationsByWriterQuery lists a writer's partition ordered by subject.
type AnnotationsByWriterQuery struct {
	repo types.AnnotationRepository
}

// NewAnnotationsByWriterQuery constructs the partition listing helper.
func NewAnnotationsByWriterQuery(repo types.AnnotationRepository) *AnnotationsByWriterQuery {
	return &AnnotationsByWriterQuery{repo: repo}
}

var _ gocommand.Querier[AnnotationsByWriterInput, []types.Annotation] = (*AnnotationsByWriterQuery)(nil)

// Query returns all annotations in the writer's partition.
func (q *AnnotationsByWriterQuery) Query(ctx context.Context, input AnnotationsByWriterInput) ([]types.Annotation, error) {
	if q.repo == nil {
		return nil, types.ErrMissingAnnotationRepository
	}
	if input.Writer == "" {
		return nil, types.ErrAccountRequired
	}
	return q.repo.ListAnnotations(ctx, input.Writer)
}
