package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// SetAdminInput carries an admin rotation request.
type SetAdminInput struct {
	NewAdmin types.AccountName
	Actor    types.ActorRef
}

// Type implements gocommand.Message.
func (SetAdminInput) Type() string {
	return "command.config.set_admin"
}

// Validate implements gocommand.Message.
func (input SetAdminInput) Validate() error {
	if input.NewAdmin == "" {
		return ErrAccountRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// SetAdminCommand rotates the admin principal. The check runs against the
// admin stored at call time, so a rotation binds immediately for the next
// call.
type SetAdminCommand struct {
	repo  types.ConfigRepository
	guard capability.Guard
	hooks types.Hooks
	clock types.Clock
}

// NewSetAdminCommand constructs the admin setter.
func NewSetAdminCommand(cfg ConfigCommandConfig) *SetAdminCommand {
	return &SetAdminCommand{
		repo:  cfg.Repository,
		guard: safeGuard(cfg.Guard),
		hooks: cfg.Hooks,
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[SetAdminInput] = (*SetAdminCommand)(nil)

// Execute replaces the admin principal.
func (c *SetAdminCommand) Execute(ctx context.Context, input SetAdminInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	conf, err := requireAdmin(ctx, c.repo, c.guard, input.Actor)
	if err != nil {
		return err
	}
	conf.Admin = input.NewAdmin
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
