package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// ProfileVerifyInput marks a profile as verified.
type ProfileVerifyInput struct {
	Account types.AccountName
	Actor   types.ActorRef
}

// Type implements gocommand.Message.
func (ProfileVerifyInput) Type() string {
	return "command.profile.verify"
}

// Validate implements gocommand.Message.
func (input ProfileVerifyInput) Validate() error {
	if input.Account == "" {
		return ErrAccountRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// ProfileVerifyCommand sets the verified flag. It requires the contract's
// verify permission, which neither the profile owner nor the admin holds by
// default. There is no unverify path.
type ProfileVerifyCommand struct {
	repo     types.ProfileRepository
	guard    capability.Guard
	contract types.AccountName
	hooks    types.Hooks
	clock    types.Clock
}

// NewProfileVerifyCommand constructs the verification handler.
func NewProfileVerifyCommand(cfg ProfileCommandConfig) *ProfileVerifyCommand {
	return &ProfileVerifyCommand{
		repo:     cfg.Repository,
		guard:    safeGuard(cfg.Guard),
		contract: cfg.Contract,
		hooks:    cfg.Hooks,
		clock:    safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[ProfileVerifyInput] = (*ProfileVerifyCommand)(nil)

// Execute flips is_verified to true.
func (c *ProfileVerifyCommand) Execute(ctx context.Context, input ProfileVerifyInput) error {
	if c.repo == nil {
		return types.ErrMissingProfileRepository
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if err := c.guard.Require(ctx, input.Actor, types.VerifyCapability(c.contract)); err != nil {
		return err
	}

	prof, err := c.repo.GetProfile(ctx, input.Account)
	if err != nil {
		return err
	}
	if prof == nil {
		return types.ErrProfileNotFound(input.Account)
	}

	prof.IsVerified = true
	updated, err := c.repo.UpdateProfile(ctx, *prof)
	if err != nil {
		return err
	}
	emitProfileHook(ctx, c.hooks, types.ProfileEvent{
		Account:    input.Account,
		Actor:      input.Actor.Account,
		Action:     "verify",
		OccurredAt: now(c.clock),
		Profile:    profileOrZero(updated),
	})
	return nil
}
