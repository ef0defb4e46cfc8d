package command

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// ErrLimitKindRequired indicates a limit update omitted the kind selector.
var ErrLimitKindRequired = errors.New("telos-profiles: limit kind required")

// SetLimitInput selects one of the four field-length limits and its new
// value. Callers holding raw strings go through types.ParseLimitKind first.
type SetLimitInput struct {
	Kind   types.LimitKind
	Length uint32
	Actor  types.ActorRef
}

// Type implements gocommand.Message.
func (SetLimitInput) Type() string {
	return "command.config.set_limit"
}

// Validate implements gocommand.Message.
func (input SetLimitInput) Validate() error {
	if input.Kind == "" {
		return ErrLimitKindRequired
	}
	if _, err := types.ParseLimitKind(string(input.Kind)); err != nil {
		return err
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// SetLimitCommand updates a single policy limit. Admin only.
type SetLimitCommand struct {
	repo  types.ConfigRepository
	guard capability.Guard
	hooks types.Hooks
	clock types.Clock
}

// NewSetLimitCommand constructs the limit setter.
func NewSetLimitCommand(cfg ConfigCommandConfig) *SetLimitCommand {
	return &SetLimitCommand{
		repo:  cfg.Repository,
		guard: safeGuard(cfg.Guard),
		hooks: cfg.Hooks,
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[SetLimitInput] = (*SetLimitCommand)(nil)

// Execute replaces the selected limit.
func (c *SetLimitCommand) Execute(ctx context.Context, input SetLimitInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	conf, err := requireAdmin(ctx, c.repo, c.guard, input.Actor)
	if err != nil {
		return err
	}
	conf.Limits = conf.Limits.WithLimit(input.Kind, input.Length)
	updated, err := c.repo.SetConfig(ctx, *conf)
	if err != nil {
		return err
	}
	emitConfigHook(ctx, c.hooks, types.ConfigEvent{
		Actor:      input.Actor.Account,
		OccurredAt: now(c.clock),
		Config:     valueOrZero(updated),
	})
	return nil
}
