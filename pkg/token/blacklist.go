package token

import (
	"sync"
)

// Blacklist is the in-process revocation set. A revoked token stays rejected
// for the lifetime of the process; it is not shared across instances and is
// lost on restart.
type Blacklist struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewBlacklist() *Blacklist {
	return &Blacklist{
		tokens: make(map[string]struct{}),
	}
}

// Revoke adds the exact token string to the set
func (b *Blacklist) Revoke(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens[token] = struct{}{}
}

// Contains reports whether the token has been revoked
func (b *Blacklist) Contains(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.tokens[token]
	return ok
}
