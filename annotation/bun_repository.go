package annotation

import (
	"context"
	"errors"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/telosnetwork/telos-profiles/pkg/types"
	"github.com/uptrace/bun"
)

// RepositoryConfig wires the Bun-backed annotation store.
type RepositoryConfig struct {
	DB         *bun.DB
	Repository repository.Repository[*Record]
	Clock      types.Clock
	IDGen      types.IDGenerator
}

type annotationStore interface {
	repository.Repository[*Record]
}

// Repository implements types.AnnotationRepository.
type Repository struct {
	annotationStore
	clock types.Clock
	idGen types.IDGenerator
}

// NewRepository constructs the default annotation repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if cfg.Repository == nil && cfg.DB == nil {
		return nil, errors.New("annotation: db or repository required")
	}
	repo := cfg.Repository
	if repo == nil {
		repo = repository.NewRepository(cfg.DB, repository.ModelHandlers[*Record]{
			NewRecord: func() *Record { return &Record{} },
			GetID: func(rec *Record) uuid.UUID {
				if rec == nil {
					return uuid.Nil
				}
				return rec.ID
			},
			SetID: func(rec *Record, id uuid.UUID) {
				if rec != nil {
					rec.ID = id
				}
			},
		})
	}
	clock := cfg.Clock
	if clock == nil {
		clock = types.SystemClock{}
	}
	idGen := cfg.IDGen
	if idGen == nil {
		idGen = types.UUIDGenerator{}
	}

	return &Repository{
		annotationStore: repo,
		clock:           clock,
		idGen:           idGen,
	}, nil
}

var (
	_ repository.Repository[*Record] = (*Repository)(nil)
	_ types.AnnotationRepository     = (*Repository)(nil)
)

// GetAnnotation returns the record for the pair, or nil when absent.
func (r *Repository) GetAnnotation(ctx context.Context, writer, subject types.AccountName) (*types.Annotation, error) {
	rec, err := r.findExisting(ctx, writer, subject)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomain(rec), nil
}

// UpsertAnnotation inserts the pair's record or overwrites its payload.
func (r *Repository) UpsertAnnotation(ctx context.Context, annotation types.Annotation) (*types.Annotation, error) {
	if annotation.Writer == "" || annotation.Subject == "" {
		return nil, types.ErrAccountRequired
	}
	now := r.clock.Now()
	payload := fromDomain(annotation)

	existing, err := r.findExisting(ctx, annotation.Writer, annotation.Subject)
	switch {
	case err == nil && existing != nil:
		payload.ID = existing.ID
		payload.CreatedAt = existing.CreatedAt
		payload.UpdatedAt = now
		updated, err := r.Update(ctx, payload)
		if err != nil {
			return nil, err
		}
		return toDomain(updated), nil
	case repository.IsRecordNotFound(err):
		payload.ID = r.idGen.UUID()
		payload.CreatedAt = now
		payload.UpdatedAt = now
		created, err := r.Create(ctx, payload)
		if err != nil {
			return nil, err
		}
		return toDomain(created), nil
	default:
		return nil, err
	}
}

// DeleteAnnotation removes the pair's record.
func (r *Repository) DeleteAnnotation(ctx context.Context, writer, subject types.AccountName) error {
	existing, err := r.findExisting(ctx, writer, subject)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return types.ErrAnnotationNotFound(writer, subject)
		}
		return err
	}
	return r.Delete(ctx, existing)
}

// ListAnnotations returns all records in the writer partition ordered by
// subject.
func (r *Repository) ListAnnotations(ctx context.Context, writer types.AccountName) ([]types.Annotation, error) {
	criteria := []repository.SelectCriteria{
		func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("writer = ?", writer.String()).OrderExpr("subject ASC")
		},
	}
	rows, _, err := r.List(ctx, criteria...)
	if err != nil {
		return nil, err
	}
	result := make([]types.Annotation, 0, len(rows))
	for _, row := range rows {
		result = append(result, *toDomain(row))
	}
	return result, nil
}

func (r *Repository) findExisting(ctx context.Context, writer, subject types.AccountName) (*Record, error) {
	criteria := []repository.SelectCriteria{
		func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("writer = ?", writer.String()).
				Where("subject = ?", subject.String()).
				Limit(1)
		},
	}
	rows, _, err := r.List(ctx, criteria...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, repository.NewRecordNotFound()
	}
	return rows[0], nil
}

func fromDomain(annotation types.Annotation) *Record {
	return &Record{
		Writer:    annotation.Writer.String(),
		Subject:   annotation.Subject.String(),
		Payload:   annotation.Payload,
		CreatedAt: annotation.CreatedAt,
		UpdatedAt: annotation.UpdatedAt,
	}
}

func toDomain(rec *Record) *types.Annotation {
	if rec == nil {
		return nil
	}
	return &types.Annotation{
		Writer:    types.AccountName(rec.Writer),
		Subject:   types.AccountName(rec.Subject),
		Payload:   rec.Payload,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
