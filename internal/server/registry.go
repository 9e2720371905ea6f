package server

import (
	"sync"

	"enroll/internal/signup"
	"enroll/pkg/platform/sentinel"
)

// Registry remembers which identities have signed up during this process's
// lifetime, so repeated submissions demonstrate the structured-rejection
// path. Deliberately in-memory: the demo owns no persistence.
type Registry struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// Register claims the identity. Returns sentinel.ErrConflict when a previous
// sign-up already claimed it.
func (r *Registry) Register(id signup.Identity) error {
	key := string(id.Kind()) + ":" + id.Value()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.seen[key]; dup {
		return sentinel.ErrConflict
	}
	r.seen[key] = struct{}{}
	return nil
}
