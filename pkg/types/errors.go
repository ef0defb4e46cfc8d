package types

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	// ErrActorRequired indicates an actor reference was not supplied.
	ErrActorRequired = errors.New("telos-profiles: actor reference required")
	// ErrAccountRequired indicates an account name was omitted.
	ErrAccountRequired = errors.New("telos-profiles: account name required")
	// ErrServiceNotReady indicates the service has not been properly configured.
	ErrServiceNotReady = errors.New("telos-profiles: service not ready")
	// ErrMissingConfigRepository occurs when no config repository was supplied.
	ErrMissingConfigRepository = errors.New("telos-profiles: missing config repository")
	// ErrMissingProfileRepository occurs when no profile repository was supplied.
	ErrMissingProfileRepository = errors.New("telos-profiles: missing profile repository")
	// ErrMissingAnnotationRepository occurs when no annotation repository was supplied.
	ErrMissingAnnotationRepository = errors.New("telos-profiles: missing annotation repository")
	// ErrMissingConnectionRepository occurs when no connection repository was supplied.
	ErrMissingConnectionRepository = errors.New("telos-profiles: missing connection repository")
)

// Text codes attached to rich errors so hosts can match failures without
// string comparison on messages.
const (
	TextCodeNotAuthorized      = "NOT_AUTHORIZED"
	TextCodeNotInitialized     = "NOT_INITIALIZED"
	TextCodeAlreadyInitialized = "ALREADY_INITIALIZED"
	TextCodeUnknownPrincipal   = "UNKNOWN_PRINCIPAL"
	TextCodeInvalidAccountName = "INVALID_ACCOUNT_NAME"
	TextCodeInvalidLimitName   = "INVALID_LIMIT_NAME"
	TextCodeFieldTooLong       = "FIELD_TOO_LONG"
	TextCodeProfileExists      = "PROFILE_EXISTS"
	TextCodeProfileNotFound    = "PROFILE_NOT_FOUND"
	TextCodeAnnotationNotFound = "ANNOTATION_NOT_FOUND"
	TextCodeConnectionExists   = "CONNECTION_EXISTS"
	TextCodeNoConnections      = "NO_CONNECTIONS"
)

// ErrNotAuthorized reports a failed capability check.
func ErrNotAuthorized(capability Capability) error {
	return goerrors.New(
		fmt.Sprintf("telos-profiles: missing authority of %s@%s", capability.Principal, capability.Permission),
		goerrors.CategoryAuthz,
	).WithCode(goerrors.CodeForbidden).WithTextCode(TextCodeNotAuthorized)
}

// ErrNotInitialized reports an operation attempted before contract init.
func ErrNotInitialized() error {
	return goerrors.New("telos-profiles: contract not initialized", goerrors.CategoryOperation).
		WithCode(goerrors.CodeBadRequest).
		WithTextCode(TextCodeNotInitialized)
}

// ErrAlreadyInitialized reports a second initialization attempt.
func ErrAlreadyInitialized() error {
	return goerrors.New("telos-profiles: contract already initialized", goerrors.CategoryConflict).
		WithCode(goerrors.CodeConflict).
		WithTextCode(TextCodeAlreadyInitialized)
}

// ErrUnknownPrincipal reports a principal that does not resolve to a live
// ledger account.
func ErrUnknownPrincipal(account AccountName) error {
	return goerrors.New(
		fmt.Sprintf("telos-profiles: account %q does not exist", account),
		goerrors.CategoryValidation,
	).WithCode(goerrors.CodeBadRequest).WithTextCode(TextCodeUnknownPrincipal)
}

// ErrInvalidAccountName reports malformed account name input.
func ErrInvalidAccountName(raw string) error {
	return goerrors.New(
		fmt.Sprintf("telos-profiles: invalid account name %q", raw),
		goerrors.CategoryValidation,
	).WithCode(goerrors.CodeBadRequest).WithTextCode(TextCodeInvalidAccountName)
}

// ErrInvalidLimitName reports an unknown limit selector.
func ErrInvalidLimitName(raw string) error {
	return goerrors.New(
		fmt.Sprintf("telos-profiles: invalid length name %q", raw),
		goerrors.CategoryValidation,
	).WithCode(goerrors.CodeBadRequest).WithTextCode(TextCodeInvalidLimitName)
}

// ErrFieldTooLong reports a profile field exceeding its configured limit.
func ErrFieldTooLong(kind LimitKind, length int, limit uint32) error {
	return goerrors.New(
		fmt.Sprintf("telos-profiles: %s length %d exceeds limit %d", kind, length, limit),
		goerrors.CategoryValidation,
	).WithCode(goerrors.CodeBadRequest).
		WithTextCode(TextCodeFieldTooLong).
		WithMetadata(map[string]any{"field": string(kind), "length": length, "limit": limit})
}

// ErrProfileExists reports a duplicate profile creation attempt.
func ErrProfileExists(account AccountName) error {
	return goerrors.New(
		fmt.Sprintf("telos-profiles: profile already exists for %s", account),
		goerrors.CategoryConflict,
	).WithCode(goerrors.CodeConflict).WithTextCode(TextCodeProfileExists)
}

// ErrProfileNotFound reports a missing profile record.
func ErrProfileNotFound(account AccountName) error {
	return goerrors.New(
		fmt.Sprintf("telos-profiles: profile not found for %s", account),
		goerrors.CategoryNotFound,
	).WithCode(goerrors.CodeNotFound).WithTextCode(TextCodeProfileNotFound)
}

// ErrAnnotationNotFound reports a missing annotation record.
func ErrAnnotationNotFound(writer, subject AccountName) error {
	return goerrors.New(
		fmt.Sprintf("telos-profiles: no annotation by %s on %s", writer, subject),
		goerrors.CategoryNotFound,
	).WithCode(goerrors.CodeNotFound).WithTextCode(TextCodeAnnotationNotFound)
}

// ErrConnectionExists reports a duplicate directed edge.
func ErrConnectionExists(source, destination AccountName) error {
	return goerrors.New(
		fmt.Sprintf("telos-profiles: connection %s -> %s already exists", source, destination),
		goerrors.CategoryConflict,
	).WithCode(goerrors.CodeConflict).WithTextCode(TextCodeConnectionExists)
}

// ErrNoConnections reports a disconnect on a source with zero outgoing edges.
func ErrNoConnections(source AccountName) error {
	return goerrors.New(
		fmt.Sprintf("telos-profiles: %s has no connections to disconnect", source),
		goerrors.CategoryNotFound,
	).WithCode(goerrors.CodeNotFound).WithTextCode(TextCodeNoConnections)
}

// IsAuthorizationFailure reports whether err is a capability failure.
func IsAuthorizationFailure(err error) bool {
	return hasCategory(err, goerrors.CategoryAuthz)
}

// IsNotFound reports whether err is a missing-record failure.
func IsNotFound(err error) bool {
	return hasCategory(err, goerrors.CategoryNotFound)
}

// IsAlreadyExists reports whether err is a uniqueness violation.
func IsAlreadyExists(err error) bool {
	return hasCategory(err, goerrors.CategoryConflict)
}

// IsValidationFailure reports whether err is a validation failure.
func IsValidationFailure(err error) bool {
	return hasCategory(err, goerrors.CategoryValidation)
}

// IsInvalidState reports whether err is a prerequisite-ordering failure,
// such as acting before initialization.
func IsInvalidState(err error) bool {
	return hasCategory(err, goerrors.CategoryOperation)
}

// HasTextCode reports whether err carries the supplied text code.
func HasTextCode(err error, code string) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == code
}

func hasCategory(err error, category goerrors.Category) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.Category == category
}
