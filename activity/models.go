package activity

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// LogEntry models the persisted row in profile_activity.
type LogEntry struct {
	bun.BaseModel `bun:"table:profile_activity"`

	ID        uuid.UUID      `bun:",pk,type:uuid"`
	Actor     string         `bun:"actor"`
	Action    string         `bun:"action"`
	Subject   string         `bun:"subject"`
	Detail    map[string]any `bun:"detail,type:jsonb"`
	CreatedAt time.Time      `bun:"created_at"`
}
