package command

import (
	"errors"

	"github.com/telosnetwork/telos-profiles/pkg/types"
)

var (
	// ErrActorRequired indicates an actor reference was not supplied.
	ErrActorRequired = types.ErrActorRequired
	// ErrAccountRequired indicates an account name was omitted.
	ErrAccountRequired = types.ErrAccountRequired
	// ErrContractNameRequired indicates initialization omitted the contract name.
	ErrContractNameRequired = errors.New("telos-profiles: contract name required")
	// ErrVersionRequired indicates a version string was omitted.
	ErrVersionRequired = errors.New("telos-profiles: contract version required")
	// ErrWriterRequired indicates an annotation command omitted the writer.
	ErrWriterRequired = errors.New("telos-profiles: writer account required")
	// ErrSubjectRequired indicates an annotation command omitted the subject.
	ErrSubjectRequired = errors.New("telos-profiles: subject account required")
	// ErrSourceRequired indicates a connection command omitted the source.
	ErrSourceRequired = errors.New("telos-profiles: source account required")
	// ErrDestinationRequired indicates a connection command omitted the destination.
	ErrDestinationRequired = errors.New("telos-profiles: destination account required")
)
