package activity

import (
	"context"
	"errors"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/telosnetwork/telos-profiles/pkg/types"
	"github.com/uptrace/bun"
)

// RepositoryConfig wires the Bun-backed activity repository.
type RepositoryConfig struct {
	DB         *bun.DB
	Repository repository.Repository[*LogEntry]
	Clock      types.Clock
	IDGen      types.IDGenerator
}

type activityStore interface {
	repository.Repository[*LogEntry]
}

// Repository persists audit records and exposes history lookups.
type Repository struct {
	activityStore
	clock types.Clock
	idGen types.IDGenerator
}

// NewRepository constructs the default activity repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if cfg.Repository == nil && cfg.DB == nil {
		return nil, errors.New("activity: db or repository required")
	}
	repo := cfg.Repository
	if repo == nil {
		repo = repository.NewRepository(cfg.DB, repository.ModelHandlers[*LogEntry]{
			NewRecord: func() *LogEntry { return &LogEntry{} },
			GetID: func(entry *LogEntry) uuid.UUID {
				if entry == nil {
					return uuid.Nil
				}
				return entry.ID
			},
			SetID: func(entry *LogEntry, id uuid.UUID) {
				if entry != nil {
					entry.ID = id
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
		activityStore: repo,
		clock:         clock,
		idGen:         idGen,
	}, nil
}

var (
	_ repository.Repository[*LogEntry] = (*Repository)(nil)
	_ types.ActivitySink               = (*Repository)(nil)
)

// Log persists one audit record.
func (r *Repository) Log(ctx context.Context, record types.ActivityRecord) error {
	entry := &LogEntry{
		ID:        r.idGen.UUID(),
		Actor:     record.Actor.String(),
		Action:    record.Action,
		Subject:   record.Subject.String(),
		Detail:    record.Detail,
		CreatedAt: record.OccurredAt,
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.clock.Now()
	}
	_, err := r.Create(ctx, entry)
	return err
}

// Recent returns audit records newest first. A non-positive limit returns
// the full history.
func (r *Repository) Recent(ctx context.Context, limit int) ([]types.ActivityRecord, error) {
	criteria := []repository.SelectCriteria{
		func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.OrderExpr("created_at DESC, id DESC")
			if limit > 0 {
				q = q.Limit(limit)
			}
			return q
		},
	}
	rows, _, err := r.List(ctx, criteria...)
	if err != nil {
		return nil, err
	}
	out := make([]types.ActivityRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, types.ActivityRecord{
			Actor:      types.AccountName(row.Actor),
			Action:     row.Action,
			Subject:    types.AccountName(row.Subject),
			Detail:     row.Detail,
			OccurredAt: row.CreatedAt,
		})
	}
	return out, nil
}

// BySubject returns the audit trail touching one account, newest first.
func (r *Repository) BySubject(ctx context.Context, subject types.AccountName, limit int) ([]types.ActivityRecord, error) {
	criteria := []repository.SelectCriteria{
		func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Where("subject = ?", subject.String()).OrderExpr("created_at DESC, id DESC")
			if limit > 0 {
				q = q.Limit(limit)
			}
			return q
		},
	}
	rows, _, err := r.List(ctx, criteria...)
	if err != nil {
		return nil, err
	}
	out := make([]types.ActivityRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, types.ActivityRecord{
			Actor:      types.AccountName(row.Actor),
			Action:     row.Action,
			Subject:    types.AccountName(row.Subject),
			Detail:     row.Detail,
			OccurredAt: row.CreatedAt,
		})
	}
	return out, nil
}
