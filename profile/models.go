package profile

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record models the profiles row. The UUID primary key is storage-internal;
// lookups go through the unique account column.
type Record struct {
	bun.BaseModel `bun:"table:profiles"`

	ID          uuid.UUID `bun:"id,pk,type:uuid"`
	Account     string    `bun:"account"`
	DisplayName string    `bun:"display_name"`
	Avatar      string    `bun:"avatar"`
	Bio         string    `bun:"bio"`
	Status      string    `bun:"status"`
	IsVerified  bool      `bun:"is_verified"`
	CreatedAt   time.Time `bun:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at"`
}
