package hash

import (
	"errors"
	"strings"
	"testing"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

func TestPassword_RoundTrip(t *testing.T) {
	hashed, err := Password("s3cret!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "s3cret!" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !Verify("s3cret!", hashed) {
		t.Fatalf("expected hash to verify")
	}
	if Verify("wrong", hashed) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestPassword_DistinctSalts(t *testing.T) {
	a, err := Password("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := Password("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password should differ by salt")
	}
	if !Verify("same-password", a) || !Verify("same-password", b) {
		t.Fatalf("both hashes should verify")
	}
}

func TestPassword_TooLong(t *testing.T) {
	long := strings.Repeat("x", 73)
	if _, err := Password(long); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected BadRequest for 73-byte password, got %v", err)
	}

	// Exactly at the limit still succeeds.
	atLimit := strings.Repeat("x", 72)
	hashed, err := Password(atLimit)
	if err != nil {
		t.Fatalf("72-byte password should hash: %v", err)
	}
	if !Verify(atLimit, hashed) {
		t.Fatalf("72-byte password should verify")
	}
}
