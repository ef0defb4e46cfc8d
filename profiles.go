package profiles

import "github.com/telosnetwork/telos-profiles/service"

// Re-export the service package entry point so consumers can do
// `profiles.New(...)` without importing internal wiring helpers.
type (
	Service  = service.Service
	Config   = service.Config
	Commands = service.Commands
	Queries  = service.Queries
)

// New constructs the telos-profiles runtime using the provided configuration.
func New(cfg Config) *Service {
	return service.New(cfg)
}
