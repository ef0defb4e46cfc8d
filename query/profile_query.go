package query

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// ProfileQueryInput identifies a profile lookup.
type ProfileQueryInput struct {
	Account types.AccountName
}

// ProfileQuery fetches profile records.
type ProfileQuery struct {
	repo types.ProfileRepository
}

// NewProfileQuery constructs the profile query helper.
func NewProfileQuery(repo types.ProfileRepository) *ProfileQuery {
	return &ProfileQuery{repo: repo}
}

var _ gocommand.Querier[ProfileQueryInput, *types.Profile] = (*ProfileQuery)(nil)

// Query returns the profile for the supplied account, or nil when absent.
func (q *ProfileQuery) Query(ctx context.Context, input ProfileQueryInput) (*types.Profile, error) {
	if q.repo == nil {
		return nil, types.ErrMissingProfileRepository
	}
	if input.Account == "" {
		return nil, types.ErrAccountRequired
	}
	return q.repo.GetProfile(ctx, input.Account)
}

// ProfileExistsQuery answers the existence check used by the annotation and
// connection flows.
type ProfileExistsQuery struct {
	repo types.ProfileRepository
}

// NewProfileExistsQuery constructs the existence query helper.
func NewProfileExistsQuery(repo types.ProfileRepository) *ProfileExistsQuery {
	return &ProfileExistsQuery{repo: repo}
}

var _ gocommand.Querier[ProfileQueryInput, bool] = (*ProfileExistsQuery)(nil)

// Query reports whether the account currently has a profile.
func (q *ProfileExistsQuery) Query(ctx context.Context, input ProfileQueryInput) (bool, error) {
	if q.repo == nil {
		return false, types.ErrMissingProfileRepository
	}
	if input.Account == "" {
		return false, types.ErrAccountRequired
	}
	return q.repo.ProfileExists(ctx, input.Account)
}
