package config

import (
	"time"

	"github.com/uptrace/bun"
)

// Record models the profile_config row. Exactly zero or one row exists; the
// fixed primary key pins the singleton.
type Record struct {
	bun.BaseModel `bun:"table:profile_config"`

	ID                   int64     `bun:"id,pk"`
	ContractName         string    `bun:"contract_name"`
	ContractVersion      string    `bun:"contract_version"`
	Admin                string    `bun:"admin"`
	DefaultAvatar        string    `bun:"default_avatar"`
	MaxDisplayNameLength uint32    `bun:"max_display_name_length"`
	MaxAvatarLength      uint32    `bun:"max_avatar_length"`
	MaxBioLength         uint32    `bun:"max_bio_length"`
	MaxStatusLength      uint32    `bun:"max_status_length"`
	CreatedAt            time.Time `bun:"created_at"`
	UpdatedAt            time.Time `bun:"updated_at"`
}
