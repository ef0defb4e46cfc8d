package query

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// ConnectionsByAccountInput identifies an endpoint for edge lookups.
type ConnectionsByAccountInput struct {
	Account types.AccountName
}

// ConnectionsBySourceQuery lists an account's outgoing edges.
type ConnectionsBySourceQuery struct {
	repo types.ConnectionRepository
}

// NewConnectionsBySourceQuery constructs the outgoing-edge query helper.
func NewConnectionsBySourceQuery(repo types.ConnectionRepository) *ConnectionsBySourceQuery {
	return &ConnectionsBySourceQuery{repo: repo}
}

var _ gocommand.Querier[ConnectionsByAccountInput, []types.Connection] = (*ConnectionsBySourceQuery)(nil)

// Query returns the outgoing edges in insertion order.
func (q *ConnectionsBySourceQuery) Query(ctx context.Context, input ConnectionsByAccountInput) ([]types.Connection, error) {
	if q.repo == nil {
		return nil, types.ErrMissingConnectionRepository
	}
	if input.Account == "" {
		return nil, types.ErrAccountRequired
	}
	return q.repo.ListBySource(ctx, input.Account)
}

// ConnectionsByDestinationQuery lists an account's incoming edges.
type ConnectionsByDestinationQuery struct {
	repo types.ConnectionRepository
}

// NewConnectionsByDestinationQuery constructs the incoming-edge query helper.
func NewConnectionsByDestinationQuery(repo types.ConnectionRepository) *ConnectionsByDestinationQuery {
	return &ConnectionsByDestinationQuery{repo: repo}
}

var _ gocommand.Querier[ConnectionsByAccountInput, []types.Connection] = (*ConnectionsByDestinationQuery)(nil)

// Query returns the incoming edges in insertion order.
func (q *ConnectionsByDestinationQuery) Query(ctx context.Context, input ConnectionsByAccountInput) ([]types.Connection, error) {
	if q.repo == nil {
		return nil, types.ErrMissingConnectionRepository
	}
	if input.Account == "" {
		return nil, types.ErrAccountRequired
	}
	return q.repo.ListByDestination(ctx, input.Account)
}

// RecentConnectionsInput bounds the time-ordered view.
type RecentConnectionsInput struct {
	Limit int
}

// RecentConnectionsQuery lists edges by creation time, newest first.
type RecentConnectionsQuery struct {
	repo types.ConnectionRepository
}

// NewRecentConnectionsQuery constructs the time-ordered query helper.
func NewRecentConnectionsQuery(repo types.ConnectionRepository) *RecentConnectionsQuery {
	return &RecentConnectionsQuery{repo: repo}
}

var _ gocommand.Querier[RecentConnectionsInput, []types.Connection] = (*RecentConnectionsQuery)(nil)

// Query returns the newest edges up to the limit; a non-positive limit
// returns all edges.
func (q *RecentConnectionsQuery) Query(ctx context.Context, input RecentConnectionsInput) ([]types.Connection, error) {
	if q.repo == nil {
		return nil, types.ErrMissingConnectionRepository
	}
	return q.repo.ListRecent(ctx, input.Limit)
}
