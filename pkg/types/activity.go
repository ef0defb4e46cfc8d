package types

import (
	"context"
	"time"
)

// ActivityRecord captures one audited operation for host-facing history
// views. Detail carries action-specific fields and is persisted as JSON.
type ActivityRecord struct {
	Actor      AccountName
	Action     string
	Subject    AccountName
	Detail     map[string]any
	OccurredAt time.Time
}

// ActivitySink receives audit records after commands commit. Sink failures
// never roll back the command that produced them.
type ActivitySink interface {
	Log(ctx context.Context, record ActivityRecord) error
}
