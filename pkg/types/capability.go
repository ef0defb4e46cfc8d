package types

import "context"

// Permission names a permission level on an account. The default level
// covers the account's own authority; elevated contract roles (verify) use
// named levels.
type Permission string

const (
	// PermissionActive is the account's own signing authority.
	PermissionActive Permission = "active"
	// PermissionVerify is the distinguished verification role held under the
	// contract account. It is separate from plain admin rights.
	PermissionVerify Permission = "verify"
)

// Capability describes the authority a command requires: control of a
// principal at a given permission level.
type Capability struct {
	Principal  AccountName
	Permission Permission
}

// AccountCapability is the common case: the principal's own authority.
func AccountCapability(account AccountName) Capability {
	return Capability{Principal: account, Permission: PermissionActive}
}

// VerifyCapability is the contract-held verification role.
func VerifyCapability(contract AccountName) Capability {
	return Capability{Principal: contract, Permission: PermissionVerify}
}

// ActorRef identifies the authenticated caller as proven by the host. The
// host resolves signatures (or equivalent) before invoking the core; the
// core only ever compares the proven principal against the capability a
// command requires.
type ActorRef struct {
	Account AccountName
	// Permissions lists the named permission levels the caller proved beyond
	// its own active authority. Empty for ordinary callers.
	Permissions []Permission
}

// Holds reports whether the actor proved the supplied permission level.
func (a ActorRef) Holds(permission Permission) bool {
	if permission == PermissionActive {
		return true
	}
	for _, p := range a.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// CapabilityOracle is the injected pass/fail authority check. Hosts plug in
// their own verification; the core trusts the boolean outcome.
type CapabilityOracle interface {
	Satisfies(ctx context.Context, actor ActorRef, capability Capability) (bool, error)
}

// CapabilityOracleFunc adapts bare functions to CapabilityOracle.
type CapabilityOracleFunc func(ctx context.Context, actor ActorRef, capability Capability) (bool, error)

// Satisfies implements CapabilityOracle.
func (f CapabilityOracleFunc) Satisfies(ctx context.Context, actor ActorRef, capability Capability) (bool, error) {
	return f(ctx, actor, capability)
}
