package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// AnnotationDeleteInput removes the writer's annotation on a subject.
type AnnotationDeleteInput struct {
	Writer  types.AccountName
	Subject types.AccountName
	Actor   types.ActorRef
}

// Type implements gocommand.Message.
func (AnnotationDeleteInput) Type() string {
	return "command.annotation.delete"
}

// Validate implements gocommand.Message.
func (input AnnotationDeleteInput) Validate() error {
	if input.Writer == "" {
		return ErrWriterRequired
	}
	if input.Subject == "" {
		return ErrSubjectRequired
	}
	if input.Actor.Account == "" {
		return ErrActorRequired
	}
	return nil
}

// AnnotationDeleteCommand deletes one record from the writer's partition.
type AnnotationDeleteCommand struct {
	repo  types.AnnotationRepository
	guard capability.Guard
	hooks types.Hooks
	clock types.Clock
}

// NewAnnotationDeleteCommand constructs the annotation deleter.
func NewAnnotationDeleteCommand(cfg AnnotationCommandConfig) *AnnotationDeleteCommand {
	return &AnnotationDeleteCommand{
		repo:  cfg.Repository,
		guard: safeGuard(cfg.Guard),
		hooks: cfg.Hooks,
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[AnnotationDeleteInput] = (*AnnotationDeleteCommand)(nil)

// Execute removes the annotation, failing when the pair has none.
func (c *AnnotationDeleteCommand) Execute(ctx context.Context, input AnnotationDeleteInput) error {
	if c.repo == nil {
		return types.ErrMissingAnnotationRepository
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if err := c.guard.Require(ctx, input.Actor, types.AccountCapability(input.Writer)); err != nil {
		return err
	}

	if err := c.repo.DeleteAnnotation(ctx, input.Writer, input.Subject); err != nil {
		return err
	}
	emitAnnotationHook(ctx, c.hooks, types.AnnotationEvent{
		Writer:     input.Writer,
		Subject:    input.Subject,
		Action:     "delete",
		OccurredAt: now(c.clock),
	})
	return nil
}
