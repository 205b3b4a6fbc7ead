// Package auth holds the in-process token registry.
//
// Tokens are opaque strings issued at login and valid for a sliding TTL
// window: every successful authenticated request resets the expiry to the
// full TTL. There is no persistence and no background sweeper; expired
// entries are purged lazily whenever they are looked up.
package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry maps opaque token strings to their expiry instants. It is shared
// by every in-flight request, so all access goes through a mutex.
type Registry struct {
	mu     sync.Mutex
	ttl    time.Duration
	tokens map[string]time.Time
	now    func() time.Time
}

// NewRegistry creates an empty registry whose tokens live for ttl after
// issuance or renewal.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:    ttl,
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

// TTL returns the configured token lifetime.
func (r *Registry) TTL() time.Duration {
	return r.ttl
}

// CreateToken issues a new token for username and registers it with expiry
// now + TTL. If the same token string is ever produced twice, the last write
// wins.
func (r *Registry) CreateToken(username string) string {
	_ = username // tokens are random; the username does not influence the value

	token := strings.ReplaceAll(uuid.NewString(), "-", "")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = r.now().Add(r.ttl)
	return token
}

// IsValid reports whether token is registered and unexpired. An entry whose
// expiry has passed is removed before false is returned, so the registry
// never answers for a stale entry without also purging it.
func (r *Registry) IsValid(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiry, ok := r.tokens[token]
	if !ok {
		return false
	}
	if r.now().After(expiry) {
		delete(r.tokens, token)
		return false
	}
	return true
}

// Extend resets a live token's expiry to now + TTL (sliding expiration).
// An entry that has already expired is purged rather than revived; an
// unregistered token is a no-op.
func (r *Registry) Extend(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiry, ok := r.tokens[token]
	if !ok {
		return
	}
	if r.now().After(expiry) {
		delete(r.tokens, token)
		return
	}
	r.tokens[token] = r.now().Add(r.ttl)
}

// TimeRemaining returns expiry minus now for a registered token, which may
// be negative or zero, and zero for an unregistered one.
func (r *Registry) TimeRemaining(token string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiry, ok := r.tokens[token]
	if !ok {
		return 0
	}
	return expiry.Sub(r.now())
}
