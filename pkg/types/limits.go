package types

import "strings"

// LimitKind selects one of the configurable field-length limits.
type LimitKind string

const (
	LimitDisplayName LimitKind = "displayname"
	LimitAvatar      LimitKind = "avatar"
	LimitBio         LimitKind = "bio"
	LimitStatus      LimitKind = "status"
)

// ParseLimitKind maps raw input onto a LimitKind.
func ParseLimitKind(raw string) (LimitKind, error) {
	switch LimitKind(strings.ToLower(strings.TrimSpace(raw))) {
	case LimitDisplayName:
		return LimitDisplayName, nil
	case LimitAvatar:
		return LimitAvatar, nil
	case LimitBio:
		return LimitBio, nil
	case LimitStatus:
		return LimitStatus, nil
	default:
		return "", ErrInvalidLimitName(raw)
	}
}

// LimitPolicy holds the per-field maximum lengths enforced on profile
// writes. Limits apply at write time only; shrinking a limit does not
// retroactively invalidate stored data.
type LimitPolicy struct {
	MaxDisplayNameLength uint32
	MaxAvatarLength      uint32
	MaxBioLength         uint32
	MaxStatusLength      uint32
}

// DefaultLimitPolicy returns the limits seeded at initialization.
func DefaultLimitPolicy() LimitPolicy {
	return LimitPolicy{
		MaxDisplayNameLength: 32,
		MaxAvatarLength:      256,
		MaxBioLength:         512,
		MaxStatusLength:      140,
	}
}

// Limit returns the configured maximum for the supplied kind.
func (p LimitPolicy) Limit(kind LimitKind) uint32 {
	switch kind {
	case LimitDisplayName:
		return p.MaxDisplayNameLength
	case LimitAvatar:
		return p.MaxAvatarLength
	case LimitBio:
		return p.MaxBioLength
	case LimitStatus:
		return p.MaxStatusLength
	default:
		return 0
	}
}

// WithLimit returns a copy of the policy with the supplied kind replaced.
func (p LimitPolicy) WithLimit(kind LimitKind, length uint32) LimitPolicy {
	switch kind {
	case LimitDisplayName:
		p.MaxDisplayNameLength = length
	case LimitAvatar:
		p.MaxAvatarLength = length
	case LimitBio:
		p.MaxBioLength = length
	case LimitStatus:
		p.MaxStatusLength = length
	}
	return p
}

// Check validates a candidate value against the limit for the kind.
func (p LimitPolicy) Check(kind LimitKind, value string) error {
	if limit := p.Limit(kind); uint32(len(value)) > limit {
		return ErrFieldTooLong(kind, len(value), limit)
	}
	return nil
}
