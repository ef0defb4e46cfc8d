package connection

import (
	"context"
	"errors"

	"github.com/telosnetwork/telos-profiles/pkg/types"
	"github.com/uptrace/bun"
)

// RepositoryConfig wires the Bun-backed connection store.
type RepositoryConfig struct {
	DB    *bun.DB
	Clock types.Clock
}

// Repository implements types.ConnectionRepository. All three orderings are
// queries over the one edge table, so inserts and deletes cannot drift
// between views.
type Repository struct {
	db    *bun.DB
	clock types.Clock
}

// NewRepository constructs the default connection repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if cfg.DB == nil {
		return nil, errors.New("connection: db required")
	}
	clock := cfg.Clock
	if clock == nil {
		clock = types.SystemClock{}
	}
	return &Repository{
		db:    cfg.DB,
		clock: clock,
	}, nil
}

var _ types.ConnectionRepository = (*Repository)(nil)

// ListBySource returns the source's outgoing edges in insertion order.
func (r *Repository) ListBySource(ctx context.Context, source types.AccountName) ([]types.Connection, error) {
	var rows []*Record
	err := r.db.NewSelect().
		Model(&rows).
		Where("source = ?", source.String()).
		OrderExpr("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

// ListByDestination returns the destination's incoming edges in insertion
// order.
func (r *Repository) ListByDestination(ctx context.Context, destination types.AccountName) ([]types.Connection, error) {
	var rows []*Record
	err := r.db.NewSelect().
		Model(&rows).
		Where("destination = ?", destination.String()).
		OrderExpr("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

// ListRecent returns edges ordered by creation time, newest first. A
// non-positive limit returns the full set.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]types.Connection, error) {
	var rows []*Record
	q := r.db.NewSelect().
		Model(&rows).
		OrderExpr("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

// CreateConnection inserts an edge and returns it with its assigned ID.
func (r *Repository) CreateConnection(ctx context.Context, connection types.Connection) (*types.Connection, error) {
	if connection.Source == "" || connection.Destination == "" {
		return nil, types.ErrAccountRequired
	}
	rec := &Record{
		Source:      connection.Source.String(),
		Destination: connection.Destination.String(),
		CreatedAt:   connection.CreatedAt,
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.clock.Now()
	}
	if _, err := r.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

// DeleteConnection removes the edge with the supplied ID.
func (r *Repository) DeleteConnection(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().
		Model((*Record)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func toDomain(rec *Record) *types.Connection {
	if rec == nil {
		return nil
	}
	return &types.Connection{
		ID:          rec.ID,
		Source:      types.AccountName(rec.Source),
		Destination: types.AccountName(rec.Destination),
		CreatedAt:   rec.CreatedAt,
	}
}

func toDomainSlice(rows []*Record) []types.Connection {
	result := make([]types.Connection, 0, len(rows))
	for _, row := range rows {
		result = append(result, *toDomain(row))
	}
	return result
}
