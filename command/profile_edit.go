package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// profileEditCore holds the shared flow of the four field editors: owner
// capability, load profile, check the field's current limit, overwrite.
type profileEditCore struct {
	repo   types.ProfileRepository
	config types.ConfigRepository
	guard  capability.Guard
	hooks  types.Hooks
	clock  types.Clock
}

func newProfileEditCore(cfg ProfileCommandConfig) profileEditCore {
	return profileEditCore{
		repo:   cfg.Repository,
		config: cfg.Config,
		guard:  safeGuard(cfg.Guard),
		hooks:  cfg.Hooks,
		clock:  safeClock(cfg.Clock),
	}
}

func (c profileEditCore) edit(ctx context.Context, account types.AccountName, actor types.ActorRef, kind types.LimitKind, value string, assign func(*types.Profile, string)) error {
	if c.repo == nil {
		return types.ErrMissingProfileRepository
	}
	if account == "" {
		return ErrAccountRequired
	}
	if actor.Account == "" {
		return ErrActorRequired
	}
	if err := c.guard.Require(ctx, actor, types.AccountCapability(account)); err != nil {
		return err
	}

	prof, err := c.repo.GetProfile(ctx, account)
	if err != nil {
		return err
	}
	if prof == nil {
		return types.ErrProfileNotFound(account)
	}

	conf, err := loadConfig(ctx, c.config)
	if err != nil {
		return err
	}
	if err := conf.Limits.Check(kind, value); err != nil {
		return err
	}

	assign(prof, value)
	updated, err := c.repo.UpdateProfile(ctx, *prof)
	if err != nil {
		return err
	}
	emitProfileHook(ctx, c.hooks, types.ProfileEvent{
		Account:    account,
		Actor:      actor.Account,
		Action:     "edit:" + string(kind),
		OccurredAt: now(c.clock),
		Profile:    profileOrZero(updated),
	})
	return nil
}

// EditDisplayNameInput overwrites a profile's display name.
type EditDisplayNameInput struct {
	Account     types.AccountName
	DisplayName string
	Actor       types.ActorRef
}

// Type implements gocommand.Message.
func (EditDisplayNameInput) Type() string { return "command.profile.edit_display_name" }

// Validate implements gocommand.Message.
func (input EditDisplayNameInput) Validate() error {
	if input.Account == "" {
		return ErrAccountRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// EditDisplayNameCommand applies display name edits for the owning account.
type EditDisplayNameCommand struct {
	profileEditCore
}

// NewEditDisplayNameCommand constructs the display name editor.
func NewEditDisplayNameCommand(cfg ProfileCommandConfig) *EditDisplayNameCommand {
	return &EditDisplayNameCommand{profileEditCore: newProfileEditCore(cfg)}
}

var _ gocommand.Commander[EditDisplayNameInput] = (*EditDisplayNameCommand)(nil)

// Execute overwrites the display name after validating its limit.
func (c *EditDisplayNameCommand) Execute(ctx context.Context, input EditDisplayNameInput) error {
	return c.edit(ctx, input.Account, input.Actor, types.LimitDisplayName, input.DisplayName,
		func(p *types.Profile, v string) { p.DisplayName = v })
}

// EditAvatarInput overwrites a profile's avatar link.
type EditAvatarInput struct {
	Account types.AccountName
	Avatar  string
	Actor   types.ActorRef
}

// Type implements gocommand.Message.
func (EditAvatarInput) Type() string { return "command.profile.edit_avatar" }

// Validate implements gocommand.Message.
func (input EditAvatarInput) Validate() error {
	if input.Account == "" {
		return ErrAccountRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// EditAvatarCommand applies avatar edits for the owning account.
type EditAvatarCommand struct {
	profileEditCore
}

// NewEditAvatarCommand constructs the avatar editor.
func NewEditAvatarCommand(cfg ProfileCommandConfig) *EditAvatarCommand {
	return &EditAvatarCommand{profileEditCore: newProfileEditCore(cfg)}
}

var _ gocommand.Commander[EditAvatarInput] = (*EditAvatarCommand)(nil)

// Execute overwrites the avatar after validating its limit.
func (c *EditAvatarCommand) Execute(ctx context.Context, input EditAvatarInput) error {
	return c.edit(ctx, input.Account, input.Actor, types.LimitAvatar, input.Avatar,
		func(p *types.Profile, v string) { p.Avatar = v })
}

// EditBioInput overwrites a profile's bio.
type EditBioInput struct {
	Account types.AccountName
	Bio     string
	Actor   types.ActorRef
}

// Type implements gocommand.Message.
func (EditBioInput) Type() string { return "command.profile.edit_bio" }

// Validate implements gocommand.Message.
func (input EditBioInput) Validate() error {
	if input.Account == "" {
		return ErrAccountRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// EditBioCommand applies bio edits for the owning account.
type EditBioCommand struct {
	profileEditCore
}

// NewEditBioCommand constructs the bio editor.
func NewEditBioCommand(cfg ProfileCommandConfig) *EditBioCommand {
	return &EditBioCommand{profileEditCore: newProfileEditCore(cfg)}
}

var _ gocommand.Commander[EditBioInput] = (*EditBioCommand)(nil)

// Execute overwrites the bio after validating its limit.
func (c *EditBioCommand) Execute(ctx context.Context, input EditBioInput) error {
	return c.edit(ctx, input.Account, input.Actor, types.LimitBio, input.Bio,
		func(p *types.Profile, v string) { p.Bio = v })
}

// EditStatusInput overwrites a profile's status line.
type EditStatusInput struct {
	Account types.AccountName
	Status  string
	Actor   types.ActorRef
}

// Type implements gocommand.Message.
func (EditStatusInput) Type() string { return "command.profile.edit_status" }

// Validate implements gocommand.Message.
func (input EditStatusInput) Validate() error {
	if input.Account == "" {
		return ErrAccountRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// EditStatusCommand applies status edits for the owning account.
type EditStatusCommand struct {
	profileEditCore
}

// NewEditStatusCommand constructs the status editor.
func NewEditStatusCommand(cfg ProfileCommandConfig) *EditStatusCommand {
	return &EditStatusCommand{profileEditCore: newProfileEditCore(cfg)}
}

var _ gocommand.Commander[EditStatusInput] = (*EditStatusCommand)(nil)

// Execute overwrites the status after validating its limit.
func (c *EditStatusCommand) Execute(ctx context.Context, input EditStatusInput) error {
	return c.edit(ctx, input.Account, input.Actor, types.LimitStatus, input.Status,
		func(p *types.Profile, v string) { p.Status = v })
}
