package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// ConnectionCommandConfig wires dependencies for graph commands.
type ConnectionCommandConfig struct {
	Repository types.ConnectionRepository
	Profiles   types.ProfileRepository
	Guard      capability.Guard
	Hooks      types.Hooks
	Clock      types.Clock
}

// ConnectInput creates a directed edge from source to destination.
type ConnectInput struct {
	Source      types.AccountName
	Destination types.AccountName
	Actor       types.ActorRef
	Result      *types.Connection
}

// Type implements gocommand.Message.
func (ConnectInput) Type() string {
	return "command.connection.connect"
}

// Validate implements gocommand.Message.
func (input ConnectInput) Validate() error {
	if input.Source == "" {
		return ErrSourceRequired
	}
	if input.Destination == "" {
		return ErrDestinationRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// ConnectCommand inserts a new edge. Uniqueness of the (source, destination)
// pair is enforced by walking the source's outgoing edges; the store offers
// no compound-key constraint, and the walk is bounded by the source's own
// edge count.
type ConnectCommand struct {
	repo     types.ConnectionRepository
	profiles types.ProfileRepository
	guard    capability.Guard
	hooks    types.Hooks
	clock    types.Clock
}

// NewConnectCommand constructs the connect handler.
func NewConnectCommand(cfg ConnectionCommandConfig) *ConnectCommand {
	return &ConnectCommand{
		repo:     cfg.Repository,
		profiles: cfg.Profiles,
		guard:    safeGuard(cfg.Guard),
		hooks:    cfg.Hooks,
		clock:    safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[ConnectInput] = (*ConnectCommand)(nil)

// Execute validates both endpoints and inserts the edge.
func (c *ConnectCommand) Execute(ctx context.Context, input ConnectInput) error {
	if c.repo == nil {
		return types.ErrMissingConnectionRepository
	}
	if c.profiles == nil {
		return types.ErrMissingProfileRepository
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if err := c.guard.Require(ctx, input.Actor, types.AccountCapability(input.Source)); err != nil {
		return err
	}

	for _, endpoint := range []types.AccountName{input.Source, input.Destination} {
		exists, err := c.profiles.ProfileExists(ctx, endpoint)
		if err != nil {
			return err
		}
		if !exists {
			return types.ErrProfileNotFound(endpoint)
		}
	}

	outgoing, err := c.repo.ListBySource(ctx, input.Source)
	if err != nil {
		return err
	}
	for _, edge := range outgoing {
		if edge.Destination == input.Destination {
			return types.ErrConnectionExists(input.Source, input.Destination)
		}
	}

	created, err := c.repo.CreateConnection(ctx, types.Connection{
		Source:      input.Source,
		Destination: input.Destination,
		CreatedAt:   now(c.clock),
	})
	if err != nil {
		return err
	}
	if input.Result != nil && created != nil {
		*input.Result = *created
	}
	emitConnectionHook(ctx, c.hooks, types.ConnectionEvent{
		Source:      input.Source,
		Destination: input.Destination,
		Action:      "connect",
		OccurredAt:  now(c.clock),
	})
	return nil
}
