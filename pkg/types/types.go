package types

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Config is the singleton contract configuration record.
type Config struct {
	ContractName    string
	ContractVersion string
	Admin           AccountName
	DefaultAvatar   string
	Limits          LimitPolicy
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Profile is a user-identity profile owned by its account.
type Profile struct {
	Account     AccountName
	DisplayName string
	Avatar      string
	Bio         string
	Status      string
	IsVerified  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Annotation is a free-form note a writer keeps about a subject profile.
// Payloads are opaque to the core; at most one annotation exists per
// (writer, subject) pair.
type Annotation struct {
	Writer    AccountName
	Subject   AccountName
	Payload   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Connection is a directed edge in the social graph. Edges are immutable
// once created; the synthetic ID is assigned monotonically by the store.
type Connection struct {
	ID          int64
	Source      AccountName
	Destination AccountName
	CreatedAt   time.Time
}

// ConfigRepository persists the singleton configuration record.
type ConfigRepository interface {
	// GetConfig returns nil when the contract has not been initialized.
	GetConfig(ctx context.Context) (*Config, error)
	// SetConfig creates or overwrites the singleton record.
	SetConfig(ctx context.Context, config Config) (*Config, error)
}

// ProfileRepository persists profile records keyed by account.
type ProfileRepository interface {
	// GetProfile returns nil when no profile exists for the account.
	GetProfile(ctx context.Context, account AccountName) (*Profile, error)
	ProfileExists(ctx context.Context, account AccountName) (bool, error)
	CreateProfile(ctx context.Context, profile Profile) (*Profile, error)
	UpdateProfile(ctx context.Context, profile Profile) (*Profile, error)
	DeleteProfile(ctx context.Context, account AccountName) error
}

// AnnotationRepository persists annotations partitioned by writer.
type AnnotationRepository interface {
	// GetAnnotation returns nil when the (writer, subject) pair has no record.
	GetAnnotation(ctx context.Context, writer, subject AccountName) (*Annotation, error)
	UpsertAnnotation(ctx context.Context, annotation Annotation) (*Annotation, error)
	DeleteAnnotation(ctx context.Context, writer, subject AccountName) error
	ListAnnotations(ctx context.Context, writer AccountName) ([]Annotation, error)
}

// ConnectionRepository persists the edge collection. The three orderings
// are views over one table; inserts and deletes keep them consistent.
type ConnectionRepository interface {
	ListBySource(ctx context.Context, source AccountName) ([]Connection, error)
	ListByDestination(ctx context.Context, destination AccountName) ([]Connection, error)
	// ListRecent returns edges ordered by creation time, newest first.
	ListRecent(ctx context.Context, limit int) ([]Connection, error)
	CreateConnection(ctx context.Context, connection Connection) (*Connection, error)
	DeleteConnection(ctx context.Context, id int64) error
}

// Clock abstracts time retrieval for deterministic testing.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID creation for stored record keys.
type IDGenerator interface {
	UUID() uuid.UUID
}

// Logger captures basic logging hooks used by the service.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Error(msg string, err error, fields ...any)
}

// ConfigEvent signals that the configuration record changed.
type ConfigEvent struct {
	Actor      AccountName
	OccurredAt time.Time
	Config     Config
}

// ProfileEvent signals a profile mutation.
type ProfileEvent struct {
	Account    AccountName
	Actor      AccountName
	Action     string
	OccurredAt time.Time
	Profile    Profile
}

// AnnotationEvent signals an annotation write or delete.
type AnnotationEvent struct {
	Writer     AccountName
	Subject    AccountName
	Action     string
	OccurredAt time.Time
}

// ConnectionEvent signals a graph mutation.
type ConnectionEvent struct {
	Source      AccountName
	Destination AccountName
	Action      string
	OccurredAt  time.Time
}

// Hooks groups optional callbacks invoked after commands commit. Hooks run
// on the caller's goroutine and must not block.
type Hooks struct {
	AfterConfigChange     func(context.Context, ConfigEvent)
	AfterProfileChange    func(context.Context, ProfileEvent)
	AfterAnnotationChange func(context.Context, AnnotationEvent)
	AfterConnectionChange func(context.Context, ConnectionEvent)
}

// SystemClock defers to time.Now for production usage.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// UUIDGenerator produces UUIDv4 identifiers.
type UUIDGenerator struct{}

// UUID returns a randomly generated UUID.
func (UUIDGenerator) UUID() uuid.UUID { return uuid.New() }

// NopLogger discards all log lines.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, ...any) {}

// Info implements Logger.
func (NopLogger) Info(string, ...any) {}

// Error implements Logger.
func (NopLogger) Error(string, error, ...any) {}
