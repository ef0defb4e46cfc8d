package capability

import (
	"context"

	"github.com/telosnetwork/telos-profiles/pkg/types"
)

// Guard enforces capability checks for commands. It is intentionally small
// so hosts can swap custom guards in tests if needed.
type Guard interface {
	Require(ctx context.Context, actor types.ActorRef, capability types.Capability) error
}

type guard struct {
	oracle types.CapabilityOracle
}

// NewGuard builds a Guard from the supplied oracle. A nil oracle falls back
// to direct principal comparison: the actor satisfies a capability when it
// is the capability's principal and proved the required permission level.
func NewGuard(oracle types.CapabilityOracle) Guard {
	return guard{oracle: oracle}
}

// Ensure returns a non-nil guard so command constructors can accept nil
// guards when tests instantiate them directly.
func Ensure(g Guard) Guard {
	if g == nil {
		return guard{}
	}
	return g
}

// NopGuard returns a guard that never blocks.
func NopGuard() Guard {
	return nopGuard{}
}

type nopGuard struct{}

func (nopGuard) Require(context.Context, types.ActorRef, types.Capability) error { return nil }

// Require checks the capability against the oracle, or against the actor's
// proven principal when no oracle is configured.
func (g guard) Require(ctx context.Context, actor types.ActorRef, capability types.Capability) error {
	if g.oracle != nil {
		ok, err := g.oracle.Satisfies(ctx, actor, capability)
		if err != nil {
			return err
		}
		if !ok {
			return types.ErrNotAuthorized(capability)
		}
		return nil
	}
	if actor.Account != capability.Principal || !actor.Holds(capability.Permission) {
		return types.ErrNotAuthorized(capability)
	}
	return nil
}
