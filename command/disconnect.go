package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// DisconnectInput removes the edge from source to destination.
type DisconnectInput struct {
	Source      types.AccountName
	Destination types.AccountName
	Actor       types.ActorRef
}

// Type implements gocommand.Message.
func (DisconnectInput) Type() string {
	return "command.connection.disconnect"
}

// Validate implements gocommand.Message.
func (input DisconnectInput) Validate() error {
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

// DisconnectCommand removes a matching outgoing edge. The failure policy is
// deliberately asymmetric and matches observed ledger behavior: a source
// with zero outgoing edges fails loudly, while a non-empty walk that finds
// no match succeeds as a no-op.
type DisconnectCommand struct {
	repo  types.ConnectionRepository
	guard capability.Guard
	hooks types.Hooks
	clock types.Clock
}

// NewDisconnectCommand constructs the disconnect handler.
func NewDisconnectCommand(cfg ConnectionCommandConfig) *DisconnectCommand {
	return &DisconnectCommand{
		repo:  cfg.Repository,
		guard: safeGuard(cfg.Guard),
		hooks: cfg.Hooks,
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[DisconnectInput] = (*DisconnectCommand)(nil)

// Execute walks the source's outgoing edges and deletes the first match.
func (c *DisconnectCommand) Execute(ctx context.Context, input DisconnectInput) error {
	if c.repo == nil {
		return types.ErrMissingConnectionRepository
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if err := c.guard.Require(ctx, input.Actor, types.AccountCapability(input.Source)); err != nil {
		return err
	}

	outgoing, err := c.repo.ListBySource(ctx, input.Source)
	if err != nil {
		return err
	}
	if len(outgoing) == 0 {
		return types.ErrNoConnections(input.Source)
	}

	for _, edge := range outgoing {
		if edge.Destination != input.Destination {
			continue
		}
		if err := c.repo.DeleteConnection(ctx, edge.ID); err != nil {
			return err
		}
		emitConnectionHook(ctx, c.hooks, types.ConnectionEvent{
			Source:      input.Source,
			Destination: input.Destination,
			Action:      "disconnect",
			OccurredAt:  now(c.clock),
		})
		return nil
	}
	// No match past the initial non-empty check: succeed without touching
	// state.
	return nil
}
