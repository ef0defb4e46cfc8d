package migrations

import (
	profiles "github.com/telosnetwork/telos-profiles"
)

func init() {
	Register(profiles.GetMigrationsFS())
}
