// AngelaMos | 2026
// registry.go

package auth

import (
	"sync"
	"time"
)

// Session is one user's active login. At most one exists per email.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Registry tracks active sessions in process memory. Sessions do not survive
// a restart; that is a documented property of this service, not an oversight.
// One mutex guards the whole map: every login, validation, and logout for any
// user serializes here, which is fine at this service's request rates.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]Session
	now      func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Put stores a session for email, silently replacing any previous one.
func (r *Registry) Put(email, token string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[email] = Session{Token: token, ExpiresAt: expiresAt}
}

// Validate reports whether email holds an unexpired session with the given
// token. Any failing branch evicts the stored session, so expiry is applied
// lazily at validation time and a bad probe invalidates the login.
func (r *Registry) Validate(email, token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[email]
	if !ok || session.Token != token || session.ExpiresAt.Before(r.now()) {
		delete(r.sessions, email)
		return false
	}

	return true
}

// Remove drops any session for email, whether or not one exists.
func (r *Registry) Remove(email string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, email)
}

// Get returns the stored session for email, if any.
func (r *Registry) Get(email string) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[email]
	return session, ok
}
