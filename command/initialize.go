package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// DefaultAvatarURL seeds the default avatar when initialization does not
// override it.
const DefaultAvatarURL = "https://i.imgur.com/kZypAmC.png"

// ConfigCommandConfig wires dependencies for configuration commands.
type ConfigCommandConfig struct {
	Repository types.ConfigRepository
	Resolver   types.AccountResolver
	Guard      capability.Guard
	Contract   types.AccountName
	Hooks      types.Hooks
	Clock      types.Clock
}

// InitializeInput captures the one-time contract initialization request.
type InitializeInput struct {
	ContractName    string
	ContractVersion string
	InitialAdmin    types.AccountName
	// DefaultAvatar overrides the seeded default avatar when set.
	DefaultAvatar string
	Actor         types.ActorRef
	Result        *types.Config
}

// Type implements gocommand.Message.
func (InitializeInput) Type() string {
	return "command.config.initialize"
}

// Validate implements gocommand.Message.
func (input InitializeInput) Validate() error {
	if input.ContractName == "" {
		return ErrContractNameRequired
	}
	if input.ContractVersion == "" {
		return ErrVersionRequired
	}
	if input.InitialAdmin == "" {
		return ErrAccountRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// InitializeCommand creates the singleton configuration record. Only the
// contract's own authority may run it, and only once.
type InitializeCommand struct {
	repo     types.ConfigRepository
	resolver types.AccountResolver
	guard    capability.Guard
	contract types.AccountName
	hooks    types.Hooks
	clock    types.Clock
}

// NewInitializeCommand constructs the initialization handler.
func NewInitializeCommand(cfg ConfigCommandConfig) *InitializeCommand {
	return &InitializeCommand{
		repo:     cfg.Repository,
		resolver: safeResolver(cfg.Resolver),
		guard:    safeGuard(cfg.Guard),
		contract: cfg.Contract,
		hooks:    cfg.Hooks,
		clock:    safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[InitializeInput] = (*InitializeCommand)(nil)

// Execute creates the configuration record with default policy limits.
func (c *InitializeCommand) Execute(ctx context.Context, input InitializeInput) error {
	if c.repo == nil {
		return types.ErrMissingConfigRepository
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if err := c.guard.Require(ctx, input.Actor, types.AccountCapability(c.contract)); err != nil {
		return err
	}

	existing, err := c.repo.GetConfig(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return types.ErrAlreadyInitialized()
	}

	ok, err := c.resolver.IsAccount(ctx, input.InitialAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return types.ErrUnknownPrincipal(input.InitialAdmin)
	}

	avatar := input.DefaultAvatar
	if avatar == "" {
		avatar = DefaultAvatarURL
	}
	created, err := c.repo.SetConfig(ctx, types.Config{
		ContractName:    input.ContractName,
		ContractVersion: input.ContractVersion,
		Admin:           input.InitialAdmin,
		DefaultAvatar:   avatar,
		Limits:          types.DefaultLimitPolicy(),
	})
	if err != nil {
		return err
	}
	if input.Result != nil && created != nil {
		*input.Result = *created
	}
	emitConfigHook(ctx, c.hooks, types.ConfigEvent{
		Actor:      input.Actor.Account,
		OccurredAt: now(c.clock),
		Config:     valueOrZero(created),
	})
	return nil
}

func valueOrZero(conf *types.Config) types.Config {
	if conf == nil {
		return types.Config{}
	}
	return *conf
}
