package activity

import (
	"context"

	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// SinkHooks builds hooks that translate command events into audit records.
// Sink errors are reported through the logger and otherwise dropped; audit
// failures must not surface into command results.
func SinkHooks(sink types.ActivitySink, logger types.Logger) types.Hooks {
	if sink == nil {
		return types.Hooks{}
	}
	if logger == nil {
		logger = types.NopLogger{}
	}
	log := func(ctx context.Context, record types.ActivityRecord) {
		if err := sink.Log(ctx, record); err != nil {
			logger.Error("telos-profiles: activity log failed", err)
		}
	}

	return types.Hooks{
		AfterConfigChange: func(ctx context.Context, event types.ConfigEvent) {
			log(ctx, types.ActivityRecord{
				Actor:      event.Actor,
				Action:     "config:change",
				OccurredAt: event.OccurredAt,
				Detail: map[string]any{
					"admin":   event.Config.Admin.String(),
					"version": event.Config.ContractVersion,
				},
			})
		},
		AfterProfileChange: func(ctx context.Context, event types.ProfileEvent) {
			log(ctx, types.ActivityRecord{
				Actor:      event.Actor,
				Action:     "profile:" + event.Action,
				Subject:    event.Account,
				OccurredAt: event.OccurredAt,
			})
		},
		AfterAnnotationChange: func(ctx context.Context, event types.AnnotationEvent) {
			log(ctx, types.ActivityRecord{
				Actor:      event.Writer,
				Action:     "annotation:" + event.Action,
				Subject:    event.Subject,
				OccurredAt: event.OccurredAt,
			})
		},
		AfterConnectionChange: func(ctx context.Context, event types.ConnectionEvent) {
			log(ctx, types.ActivityRecord{
				Actor:      event.Source,
				Action:     "connection:" + event.Action,
				Subject:    event.Destination,
				OccurredAt: event.OccurredAt,
			})
		},
	}
}
