package connection

import (
	"time"

	"github.com/uptrace/bun"
)

// Record models the profile_connections row. The integer primary key is
// assigned monotonically by the store; edges never change once written.
// Secondary indexes on source, destination, and created_at back the three
// lookup orderings over this single table.
type Record struct {
	bun.BaseModel `bun:"table:profile_connections"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Source      string    `bun:"source"`
	Destination string    `bun:"destination"`
	CreatedAt   time.Time `bun:"created_at"`
}
