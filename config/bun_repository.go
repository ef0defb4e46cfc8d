package config

import (
	"context"
	"database/sql"
	"errors"

	"github.com/telosnetwork/telos-profiles/pkg/types"
	"github.com/uptrace/bun"
)

const singletonID = 1

// RepositoryConfig wires the Bun-backed configuration repository.
type RepositoryConfig struct {
	DB    *bun.DB
	Clock types.Clock
}

// Repository implements types.ConfigRepository over a single pinned row.
type Repository struct {
	db    *bun.DB
	clock types.Clock
}

// NewRepository constructs the default configuration repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if cfg.DB == nil {
		return nil, errors.New("config: db required")
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

var _ types.ConfigRepository = (*Repository)(nil)

// GetConfig returns the singleton record, or nil before initialization.
func (r *Repository) GetConfig(ctx context.Context) (*types.Config, error) {
	rec := new(Record)
	err := r.db.NewSelect().
		Model(rec).
		Where("id = ?", singletonID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return toDomain(rec), nil
}

// SetConfig creates or overwrites the singleton record.
func (r *Repository) SetConfig(ctx context.Context, config types.Config) (*types.Config, error) {
	now := r.clock.Now()
	rec := fromDomain(config)
	rec.ID = singletonID
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(rec).
		On("CONFLICT (id) DO UPDATE").
		Set("contract_name = EXCLUDED.contract_name").
		Set("contract_version = EXCLUDED.contract_version").
		Set("admin = EXCLUDED.admin").
		Set("default_avatar = EXCLUDED.default_avatar").
		Set("max_display_name_length = EXCLUDED.max_display_name_length").
		Set("max_avatar_length = EXCLUDED.max_avatar_length").
		Set("max_bio_length = EXCLUDED.max_bio_length").
		Set("max_status_length = EXCLUDED.max_status_length").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

func fromDomain(config types.Config) *Record {
	return &Record{
		ContractName:         config.ContractName,
		ContractVersion:      config.ContractVersion,
		Admin:                config.Admin.String(),
		DefaultAvatar:        config.DefaultAvatar,
		MaxDisplayNameLength: config.Limits.MaxDisplayNameLength,
		MaxAvatarLength:      config.Limits.MaxAvatarLength,
		MaxBioLength:         config.Limits.MaxBioLength,
		MaxStatusLength:      config.Limits.MaxStatusLength,
		CreatedAt:            config.CreatedAt,
		UpdatedAt:            config.UpdatedAt,
	}
}

func toDomain(rec *Record) *types.Config {
	if rec == nil {
		return nil
	}
	return &types.Config{
		ContractName:    rec.ContractName,
		ContractVersion: rec.ContractVersion,
		Admin:           types.AccountName(rec.Admin),
		DefaultAvatar:   rec.DefaultAvatar,
		Limits: types.LimitPolicy{
			MaxDisplayNameLength: rec.MaxDisplayNameLength,
			MaxAvatarLength:      rec.MaxAvatarLength,
			MaxBioLength:         rec.MaxBioLength,
			MaxStatusLength:      rec.MaxStatusLength,
		},
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
