package types

import (
	"context"
	"strings"
)

// AccountName is a ledger account identity in name form: 1-12 characters
// drawn from a-z, 1-5, and '.', with no leading or trailing dot. The zero
// value is invalid.
type AccountName string

// String returns the textual form of the account name.
func (n AccountName) String() string { return string(n) }

// Valid reports whether the name satisfies the ledger name rules.
func (n AccountName) Valid() bool {
	s := string(n)
	if len(s) == 0 || len(s) > 12 {
		return false
	}
	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '1' && c <= '5':
		case c == '.':
		default:
			return false
		}
	}
	return true
}

// ParseAccountName validates raw input and returns it as an AccountName.
func ParseAccountName(raw string) (AccountName, error) {
	name := AccountName(strings.TrimSpace(raw))
	if !name.Valid() {
		return "", ErrInvalidAccountName(raw)
	}
	return name, nil
}

// AccountResolver answers whether a name resolves to a live account on the
// host ledger. The core never creates accounts; it only checks that
// principals it is about to reference exist.
type AccountResolver interface {
	IsAccount(ctx context.Context, account AccountName) (bool, error)
}

// AccountResolverFunc adapts bare functions to AccountResolver.
type AccountResolverFunc func(ctx context.Context, account AccountName) (bool, error)

// IsAccount implements AccountResolver.
func (f AccountResolverFunc) IsAccount(ctx context.Context, account AccountName) (bool, error) {
	return f(ctx, account)
}

// FormatAccountResolver accepts any well-formed account name. It is the
// default resolver when the host does not supply one.
type FormatAccountResolver struct{}

// IsAccount implements AccountResolver.
func (FormatAccountResolver) IsAccount(_ context.Context, account AccountName) (bool, error) {
	return account.Valid(), nil
}
