package query

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// ConfigQueryInput has no parameters; the configuration is a singleton.
type ConfigQueryInput struct{}

// ConfigQuery returns the current configuration snapshot, or nil before
// initialization. Reads carry no capability requirement.
type ConfigQuery struct {
	repo types.ConfigRepository
}

// NewConfigQuery constructs the configuration query helper.
func NewConfigQuery(repo types.ConfigRepository) *ConfigQuery {
	return &ConfigQuery{repo: repo}
}

var _ gocommand.Querier[ConfigQueryInput, *types.Config] = (*ConfigQuery)(nil)

// Query returns the singleton record.
func (q *ConfigQuery) Query(ctx context.Context, _ ConfigQueryInput) (*types.Config, error) {
	if q.repo == nil {
		return nil, types.ErrMissingConfigRepository
	}
	return q.repo.GetConfig(ctx)
}
