package annotation

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record models the profile_annotations row. Rows are partitioned by writer
// and unique per (writer, subject).
type Record struct {
	bun.BaseModel `bun:"table:profile_annotations"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Writer    string    `bun:"writer"`
	Subject   string    `bun:"subject"`
	Payload   string    `bun:"payload"`
	CreatedAt time.Time `bun:"created_at"`
	UpdatedAt time.Time `bun:"updated_at"`
}
