// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("hash = %q, want argon2id encoding", hash)
	}

	ok, err := VerifyPassword("s3cret", hash)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Error("correct password must verify")
	}

	ok, err = VerifyPassword("wrong", hash)
	if err != nil {
		t.Fatalf("verify wrong: %v", err)
	}
	if ok {
		t.Error("wrong password must not verify")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	h1, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password must use different salts")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("x", "not-a-hash"); err == nil {
		t.Error("malformed hash must error")
	}
	if _, err := VerifyPassword("x", "$argon2id$v=19$garbage"); err == nil {
		t.Error("truncated hash must error")
	}
}

func TestVerifyPasswordTimingSafeNilHash(t *testing.T) {
	// nil hash burns a verification against the dummy hash and always fails.
	ok, err := VerifyPasswordTimingSafe("anything", nil)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Error("nil hash must never verify")
	}
}

func TestVerifyPasswordTimingSafeRealHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	ok, err := VerifyPasswordTimingSafe("s3cret", &hash)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Error("correct password must verify")
	}
}
