package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// ProfileCommandConfig wires dependencies for profile commands.
type ProfileCommandConfig struct {
	Repository types.ProfileRepository
	Config     types.ConfigRepository
	Guard      capability.Guard
	Contract   types.AccountName
	Hooks      types.Hooks
	Clock      types.Clock
}

// ProfileCreateInput captures a self-service profile creation. Nil optional
// fields take their configured defaults.
type ProfileCreateInput struct {
	Account     types.AccountName
	DisplayName *string
	Avatar      *string
	Bio         *string
	Actor       types.ActorRef
	Result      *types.Profile
}

// Type implements gocommand.Message.
func (ProfileCreateInput) Type() string {
	return "command.profile.create"
}

// Validate implements gocommand.Message.
func (input ProfileCreateInput) Validate() error {
	if input.Account == "" {
		return ErrAccountRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// ProfileCreateCommand creates a profile for the calling account.
type ProfileCreateCommand struct {
	repo   types.ProfileRepository
	config types.ConfigRepository
	guard  capability.Guard
	hooks  types.Hooks
	clock  types.Clock
}

// NewProfileCreateCommand constructs the profile creation handler.
func NewProfileCreateCommand(cfg ProfileCommandConfig) *ProfileCreateCommand {
	return &ProfileCreateCommand{
		repo:   cfg.Repository,
		config: cfg.Config,
		guard:  safeGuard(cfg.Guard),
		hooks:  cfg.Hooks,
		clock:  safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[ProfileCreateInput] = (*ProfileCreateCommand)(nil)

// Execute validates defaults and limits, then inserts the unverified record.
func (c *ProfileCreateCommand) Execute(ctx context.Context, input ProfileCreateInput) error {
	if c.repo == nil {
		return types.ErrMissingProfileRepository
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if err := c.guard.Require(ctx, input.Actor, types.AccountCapability(input.Account)); err != nil {
		return err
	}

	existing, err := c.repo.GetProfile(ctx, input.Account)
	if err != nil {
		return err
	}
	if existing != nil {
		return types.ErrProfileExists(input.Account)
	}

	conf, err := loadConfig(ctx, c.config)
	if err != nil {
		return err
	}

	displayName := input.Account.String()
	if input.DisplayName != nil {
		displayName = *input.DisplayName
	}
	avatar := conf.DefaultAvatar
	if input.Avatar != nil {
		avatar = *input.Avatar
	}
	bio := ""
	if input.Bio != nil {
		bio = *input.Bio
	}

	if err := conf.Limits.Check(types.LimitDisplayName, displayName); err != nil {
		return err
	}
	if err := conf.Limits.Check(types.LimitAvatar, avatar); err != nil {
		return err
	}
	if err := conf.Limits.Check(types.LimitBio, bio); err != nil {
		return err
	}

	created, err := c.repo.CreateProfile(ctx, types.Profile{
		Account:     input.Account,
		DisplayName: displayName,
		Avatar:      avatar,
		Bio:         bio,
	})
	if err != nil {
		return err
	}
	if input.Result != nil && created != nil {
		*input.Result = *created
	}
	emitProfileHook(ctx, c.hooks, types.ProfileEvent{
		Account:    input.Account,
		Actor:      input.Actor.Account,
		Action:     "create",
		OccurredAt: now(c.clock),
		Profile:    profileOrZero(created),
	})
	return nil
}

func profileOrZero(profile *types.Profile) types.Profile {
	if profile == nil {
		return types.Profile{}
	}
	return *profile
}
