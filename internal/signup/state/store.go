package state

import (
	"sync"

	"enroll/internal/signup"
)

// subscriberBuffer bounds how far a subscriber may lag before intermediate
// snapshots are dropped in its favor of newer ones.
const subscriberBuffer = 16

// Store holds the current Form and fans every replacement out to
// subscribers. Writes come from a single orchestrator at a time; reads may
// come from anywhere. Snapshots are values, so readers never observe partial
// mutation.
type Store struct {
	mu   sync.Mutex
	form Form
	subs map[int]chan Form
	next int
}

// NewStore returns a store seeded with the initial form snapshot.
func NewStore() *Store {
	return &Store{
		form: NewForm(),
		subs: make(map[int]chan Form),
	}
}

// Snapshot returns the current form.
func (s *Store) Snapshot() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Subscribe returns a channel receiving every published snapshot and a cancel
// function. A subscriber that stops draining loses intermediate snapshots
// rather than blocking the writer.
func (s *Store) Subscribe() (<-chan Form, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan Form, subscriberBuffer)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Update applies fn to the current snapshot and publishes the replacement.
func (s *Store) Update(fn func(Form) Form) Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = fn(s.form)
	s.publishLocked()
	return s.form
}

// BeginSubmission atomically claims the busy flag and publishes the cleared
// busy snapshot. ok is false when a submission is already in flight, in which
// case nothing is published and the snapshot is untouched.
func (s *Store) BeginSubmission(name, id string, kind signup.IdentityKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form.Busy {
		return false
	}
	s.form = BeginSubmit(s.form, name, id, kind)
	s.publishLocked()
	return true
}

func (s *Store) publishLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- s.form:
		default:
			// Drop the oldest buffered snapshot to make room for the newest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s.form:
			default:
			}
		}
	}
}
