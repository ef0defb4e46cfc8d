package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/telosnetwork/telos-profiles/capability"
	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// AnnotationCommandConfig wires dependencies for annotation commands.
type AnnotationCommandConfig struct {
	Repository types.AnnotationRepository
	Profiles   types.ProfileRepository
	Guard      capability.Guard
	Hooks      types.Hooks
	Clock      types.Clock
}

// AnnotationWriteInput upserts the writer's annotation on a subject.
type AnnotationWriteInput struct {
	Writer  types.AccountName
	Subject types.AccountName
	Payload string
	Actor   types.ActorRef
	Result  *types.Annotation
}

// Type implements gocommand.Message.
func (AnnotationWriteInput) Type() string {
	return "command.annotation.write"
}

// Validate implements gocommand.Message.
func (input AnnotationWriteInput) Validate() error {
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

// AnnotationWriteCommand writes or overwrites the (writer, subject) record.
// The subject must hold a profile at write time; the payload is opaque.
type AnnotationWriteCommand struct {
	repo     types.AnnotationRepository
	profiles types.ProfileRepository
	guard    capability.Guard
	hooks    types.Hooks
	clock    types.Clock
}

// NewAnnotationWriteCommand constructs the annotation writer.
func NewAnnotationWriteCommand(cfg AnnotationCommandConfig) *AnnotationWriteCommand {
	return &AnnotationWriteCommand{
		repo:     cfg.Repository,
		profiles: cfg.Profiles,
		guard:    safeGuard(cfg.Guard),
		hooks:    cfg.Hooks,
		clock:    safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[AnnotationWriteInput] = (*AnnotationWriteCommand)(nil)

// Execute upserts the annotation.
func (c *AnnotationWriteCommand) Execute(ctx context.Context, input AnnotationWriteInput) error {
	if c.repo == nil {
		return types.ErrMissingAnnotationRepository
	}
	if c.profiles == nil {
		return types.ErrMissingProfileRepository
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if err := c.guard.Require(ctx, input.Actor, types.AccountCapability(input.Writer)); err != nil {
		return err
	}

	exists, err := c.profiles.ProfileExists(ctx, input.Subject)
	if err != nil {
		return err
	}
	if !exists {
		return types.ErrProfileNotFound(input.Subject)
	}

	written, err := c.repo.UpsertAnnotation(ctx, types.Annotation{
		Writer:  input.Writer,
		Subject: input.Subject,
		Payload: input.Payload,
	})
	if err != nil {
		return err
	}
	if input.Result != nil && written != nil {
		*input.Result = *written
	}
	emitAnnotationHook(ctx, c.hooks, types.AnnotationEvent{
		Writer:     input.Writer,
		Subject:    input.Subject,
		Action:     "write",
		OccurredAt: now(c.clock),
	})
	return nil
}
