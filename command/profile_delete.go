package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// ProfileDeleteInput removes an account's profile.
type ProfileDeleteInput struct {
	Account types.AccountName
	Actor   types.ActorRef
}

// Type implements gocommand.Message.
func (ProfileDeleteInput) Type() string {
	return "command.profile.delete"
}

// Validate implements gocommand.Message.
func (input ProfileDeleteInput) Validate() error {
	if input.Account == "" {
		return ErrAccountRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// ProfileDeleteCommand erases the profile record. Annotations written about
// the account and edges touching it are left in place; cleanup of state
// owned by other principals is not this command's to do.
type ProfileDeleteCommand struct {
	repo  types.ProfileRepository
	guard capability.Guard
	hooks types.Hooks
	clock types.Clock
}

// NewProfileDeleteCommand constructs the deletion handler.
func NewProfileDeleteCommand(cfg ProfileCommandConfig) *ProfileDeleteCommand {
	return &ProfileDeleteCommand{
		repo:  cfg.Repository,
		guard: safeGuard(cfg.Guard),
		hooks: cfg.Hooks,
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[ProfileDeleteInput] = (*ProfileDeleteCommand)(nil)

// Execute removes the record.
func (c *ProfileDeleteCommand) Execute(ctx context.Context, input ProfileDeleteInput) error {
	if c.repo == nil {
		return types.ErrMissingProfileRepository
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if err := c.guard.Require(ctx, input.Actor, types.AccountCapability(input.Account)); err != nil {
		return err
	}

	prof, err := c.repo.GetProfile(ctx, input.Account)
	if err != nil {
		return err
	}
	if prof == nil {
		return types.ErrProfileNotFound(input.Account)
	}

	if err := c.repo.DeleteProfile(ctx, input.Account); err != nil {
		return err
	}
	emitProfileHook(ctx, c.hooks, types.ProfileEvent{
		Account:    input.Account,
		Actor:      input.Actor.Account,
		Action:     "delete",
		OccurredAt: now(c.clock),
		Profile:    *prof,
	})
	return nil
}
