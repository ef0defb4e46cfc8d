package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// SetVersionInput carries a contract version bump.
type SetVersionInput struct {
	Version string
	Actor   types.ActorRef
}

// Type implements gocommand.Message.
func (SetVersionInput) Type() string {
	return "command.config.set_version"
}

// Validate implements gocommand.Message.
func (input SetVersionInput) Validate() error {
	if input.Version == "" {
		return ErrVersionRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// SetVersionCommand overwrites the stored contract version. Admin only.
type SetVersionCommand struct {
	repo  types.ConfigRepository
	guard capability.Guard
	hooks types.Hooks
	clock types.Clock
}

// NewSetVersionCommand constructs the version setter.
func NewSetVersionCommand(cfg ConfigCommandConfig) *SetVersionCommand {
	return &SetVersionCommand{
		repo:  cfg.Repository,
		guard: safeGuard(cfg.Guard),
		hooks: cfg.Hooks,
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[SetVersionInput] = (*SetVersionCommand)(nil)

// Execute updates the contract version field.
func (c *SetVersionCommand) Execute(ctx context.Context, input SetVersionInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	conf, err := requireAdmin(ctx, c.repo, c.guard, input.Actor)
	if err != nil {
		return err
	}
	conf.ContractVersion = input.Version
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
