// AngelaMos | 2026
// registry_test.go

package auth

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestRegistryPutAndValidate(t *testing.T) {
	r := NewRegistry()
	expires := time.Now().Add(time.Hour)

	r.Put("a@example.com", "token-1", expires)

	if !r.Validate("a@example.com", "token-1") {
		t.Fatal("expected stored session to validate")
	}

	if r.Validate("b@example.com", "token-1") {
		t.Fatal("unknown email must not validate")
	}
}

func TestRegistryWrongTokenEvictsSession(t *testing.T) {
	r := NewRegistry()
	r.Put("a@example.com", "token-1", time.Now().Add(time.Hour))

	if r.Validate("a@example.com", "wrong") {
		t.Fatal("wrong token must not validate")
	}

	// The failed probe evicted the session, so the correct token no longer
	// works either.
	if r.Validate("a@example.com", "token-1") {
		t.Fatal("session should have been evicted after failed validation")
	}
}

func TestRegistryExpiredSessionEvicted(t *testing.T) {
	r := NewRegistry()

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return current }

	r.Put("a@example.com", "token-1", current.Add(30*time.Minute))

	if !r.Validate("a@example.com", "token-1") {
		t.Fatal("unexpired session should validate")
	}

	current = current.Add(31 * time.Minute)

	if r.Validate("a@example.com", "token-1") {
		t.Fatal("expired session must not validate")
	}

	if _, ok := r.Get("a@example.com"); ok {
		t.Fatal("expired session should have been removed from the registry")
	}
}

func TestRegistryOverwriteInvalidatesOldToken(t *testing.T) {
	r := NewRegistry()
	expires := time.Now().Add(time.Hour)

	r.Put("a@example.com", "old", expires)
	r.Put("a@example.com", "new", expires)

	if r.Validate("a@example.com", "old") {
		t.Fatal("old token must stop validating after a second login")
	}

	// The failed old-token probe evicts the entry entirely, taking the new
	// session with it.
	if r.Validate("a@example.com", "new") {
		t.Fatal("eviction on failed probe also removes the new session")
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	r.Put("a@example.com", "token-1", time.Now().Add(time.Hour))

	r.Remove("a@example.com")
	r.Remove("never-existed@example.com")

	if r.Validate("a@example.com", "token-1") {
		t.Fatal("removed session must not validate")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	expires := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			email := fmt.Sprintf("user%d@example.com", n)
			token := fmt.Sprintf("token-%d", n)
			r.Put(email, token, expires)
			if !r.Validate(email, token) {
				t.Errorf("session for %s did not validate", email)
			}
			r.Remove(email)
		}(i)
	}
	wg.Wait()
}
