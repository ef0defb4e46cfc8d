package types

import "testing"

func TestParseLimitKind(t *testing.T) {
	for _, raw := range []string{"displayname", "DISPLAYNAME", " avatar ", "bio", "status"} {
		if _, err := ParseLimitKind(raw); err != nil {
			t.Fatalf("expected %q to parse: %v", raw, err)
		}
	}

	if _, err := ParseLimitKind("nickname"); err == nil {
		t.Fatal("expected unknown kind to be rejected")
	} else if !HasTextCode(err, TextCodeInvalidLimitName) {
		t.Fatalf("expected INVALID_LIMIT_NAME, got %v", err)
	}
}

func TestLimitPolicyWithLimit(t *testing.T) {
	policy := DefaultLimitPolicy()
	updated := policy.WithLimit(LimitBio, 1024)

	if updated.MaxBioLength != 1024 {
		t.Fatalf("expected bio limit 1024, got %d", updated.MaxBioLength)
	}
	if policy.MaxBioLength != 512 {
		t.Fatalf("expected original policy untouched, got %d", policy.MaxBioLength)
	}
	if updated.MaxStatusLength != policy.MaxStatusLength {
		t.Fatal("expected other limits unchanged")
	}
}

func TestLimitPolicyCheck(t *testing.T) {
	policy := DefaultLimitPolicy().WithLimit(LimitStatus, 5)

	if err := policy.Check(LimitStatus, "12345"); err != nil {
		t.Fatalf("value at the limit should pass: %v", err)
	}
	err := policy.Check(LimitStatus, "123456")
	if err == nil {
		t.Fatal("expected over-limit value to fail")
	}
	if !HasTextCode(err, TextCodeFieldTooLong) {
		t.Fatalf("expected FIELD_TOO_LONG, got %v", err)
	}
	if !IsValidationFailure(err) {
		t.Fatalf("expected validation category, got %v", err)
	}
}
