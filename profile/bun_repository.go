package profile

import (
	"context"
	"errors"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/telosnetwork/telos-profiles/pkg/types"
	"github.com/uptrace/bun"
)

// RepositoryConfig wires the Bun-backed profile repository.
type RepositoryConfig struct {
	DB         *bun.DB
	Repository repository.Repository[*Record]
	Clock      types.Clock
	IDGen      types.IDGenerator
}

type profileStore interface {
	repository.Repository[*Record]
}

// Repository implements types.ProfileRepository using Bun.
type Repository struct {
	profileStore
	clock types.Clock
	idGen types.IDGenerator
}

// NewRepository constructs the default profile repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if cfg.Repository == nil && cfg.DB == nil {
		return nil, errors.New("profile: db or repository required")
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
		profileStore: repo,
		clock:        clock,
		idGen:        idGen,
	}, nil
}

var (
	_ repository.Repository[*Record] = (*Repository)(nil)
	_ types.ProfileRepository        = (*Repository)(nil)
)

// GetProfile returns the profile for the supplied account, or nil when the
// account has none.
func (r *Repository) GetProfile(ctx context.Context, account types.AccountName) (*types.Profile, error) {
	rec, err := r.findByAccount(ctx, account)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomain(rec), nil
}

// ProfileExists reports whether the account currently has a profile.
func (r *Repository) ProfileExists(ctx context.Context, account types.AccountName) (bool, error) {
	prof, err := r.GetProfile(ctx, account)
	if err != nil {
		return false, err
	}
	return prof != nil, nil
}

// CreateProfile inserts a new profile record.
func (r *Repository) CreateProfile(ctx context.Context, profile types.Profile) (*types.Profile, error) {
	if profile.Account == "" {
		return nil, types.ErrAccountRequired
	}
	now := r.clock.Now()
	rec := fromDomain(profile)
	rec.ID = r.idGen.UUID()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	created, err := r.Create(ctx, rec)
	if err != nil {
		if repository.IsDuplicatedKey(err) {
			return nil, types.ErrProfileExists(profile.Account)
		}
		return nil, err
	}
	return toDomain(created), nil
}

// UpdateProfile overwrites the stored fields of an existing profile.
func (r *Repository) UpdateProfile(ctx context.Context, profile types.Profile) (*types.Profile, error) {
	existing, err := r.findByAccount(ctx, profile.Account)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, types.ErrProfileNotFound(profile.Account)
		}
		return nil, err
	}
	rec := fromDomain(profile)
	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = r.clock.Now()
	updated, err := r.Update(ctx, rec)
	if err != nil {
		return nil, err
	}
	return toDomain(updated), nil
}

// DeleteProfile removes the profile record for the account.
func (r *Repository) DeleteProfile(ctx context.Context, account types.AccountName) error {
	existing, err := r.findByAccount(ctx, account)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return types.ErrProfileNotFound(account)
		}
		return err
	}
	return r.Delete(ctx, existing)
}

func (r *Repository) findByAccount(ctx context.Context, account types.AccountName) (*Record, error) {
	criteria := []repository.SelectCriteria{
		func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("account = ?", account.String()).Limit(1)
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

func fromDomain(profile types.Profile) *Record {
	return &Record{
		Account:     profile.Account.String(),
		DisplayName: profile.DisplayName,
		Avatar:      profile.Avatar,
		Bio:         profile.Bio,
		Status:      profile.Status,
		IsVerified:  profile.IsVerified,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}

func toDomain(rec *Record) *types.Profile {
	if rec == nil {
		return nil
	}
	return &types.Profile{
		Account:     types.AccountName(rec.Account),
		DisplayName: rec.DisplayName,
		Avatar:      rec.Avatar,
		Bio:         rec.Bio,
		Status:      rec.Status,
		IsVerified:  rec.IsVerified,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}
