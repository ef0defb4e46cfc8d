package command

import (
	"context"
	"time"

	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

func safeClock(clock types.Clock) types.Clock {
	if clock != nil {
		return clock
	}
	return types.SystemClock{}
}

func safeGuard(g capability.Guard) capability.Guard {
	return capability.Ensure(g)
}

func safeResolver(resolver types.AccountResolver) types.AccountResolver {
	if resolver != nil {
		return resolver
	}
	return types.FormatAccountResolver{}
}

func now(clock types.Clock) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock.Now()
}

// loadConfig fetches the singleton or fails with the not-initialized error.
func loadConfig(ctx context.Context, repo types.ConfigRepository) (*types.Config, error) {
	if repo == nil {
		return nil, types.ErrMissingConfigRepository
	}
	conf, err := repo.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if conf == nil {
		return nil, types.ErrNotInitialized()
	}
	return conf, nil
}

// requireAdmin re-reads the admin from the current config so rotation takes
// effect immediately, then enforces the admin capability.
func requireAdmin(ctx context.Context, repo types.ConfigRepository, guard capability.Guard, actor types.ActorRef) (*types.Config, error) {
	conf, err := loadConfig(ctx, repo)
	if err != nil {
		return nil, err
	}
	if err := guard.Require(ctx, actor, types.AccountCapability(conf.Admin)); err != nil {
		return nil, err
	}
	return conf, nil
}

func emitConfigHook(ctx context.Context, hooks types.Hooks, event types.ConfigEvent) {
	if hooks.AfterConfigChange == nil {
		return
	}
	hooks.AfterConfigChange(ctx, event)
}

func emitProfileHook(ctx context.Context, hooks types.Hooks, event types.ProfileEvent) {
	if hooks.AfterProfileChange == nil {
		return
	}
	hooks.AfterProfileChange(ctx, event)
}

func emitAnnotationHook(ctx context.Context, hooks types.Hooks, event types.AnnotationEvent) {
	if hooks.AfterAnnotationChange == nil {
		return
	}
	hooks.AfterAnnotationChange(ctx, event)
}

func emitConnectionHook(ctx context.Context, hooks types.Hooks, event types.ConnectionEvent) {
	if hooks.AfterConnectionChange == nil {
		return
	}
	hooks.AfterConnectionChange(ctx, event)
}
