package command

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// ErrAvatarRequired indicates a default-avatar update omitted the value.
var ErrAvatarRequired = errors.New("telos-profiles: avatar value required")

// SetDefaultAvatarInput carries a default avatar replacement.
type SetDefaultAvatarInput struct {
	Avatar string
	Actor  types.ActorRef
}

// Type implements gocommand.Message.
func (SetDefaultAvatarInput) Type() string {
	return "command.config.set_default_avatar"
}

// Validate implements gocommand.Message.
func (input SetDefaultAvatarInput) Validate() error {
	if input.Avatar == "" {
		return ErrAvatarRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// SetDefaultAvatarCommand overwrites the avatar used by new profiles that
// omit one. Admin only.
type SetDefaultAvatarCommand struct {
	repo  types.ConfigRepository
	guard capability.Guard
	hooks types.Hooks
	clock types.Clock
}

// NewSetDefaultAvatarCommand constructs the default-avatar setter.
func NewSetDefaultAvatarCommand(cfg ConfigCommandConfig) *SetDefaultAvatarCommand {
	return &SetDefaultAvatarCommand{
		repo:  cfg.Repository,
		guard: safeGuard(cfg.Guard),
		hooks: cfg.Hooks,
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[SetDefaultAvatarInput] = (*SetDefaultAvatarCommand)(nil)

// Execute updates the default avatar field.
func (c *SetDefaultAvatarCommand) Execute(ctx context.Context, input SetDefaultAvatarInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	conf, err := requireAdmin(ctx, c.repo, c.guard, input.Actor)
	if err != nil {
		return err
	}
	conf.DefaultAvatar = input.Avatar
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
