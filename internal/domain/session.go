package domain

import (
	"slices"
	"sync"
)

// DefaultCategory is the category a fresh session starts with.
const DefaultCategory = CategoryMobile

// Session is the per-client search state: the current category, the chained
// id offered by the last result, the last address and the last result itself.
// It is only mutated by a completed search, a completed chained lookup or Reset.
type Session struct {
	ID string

	Category    Category
	ChainedID   string
	LastAddress string
	Result      *Presentation

	mu sync.Mutex
}

// NewSession returns a session in its initial state.
func NewSession(id string) *Session {
	return &Session{ID: id, Category: DefaultCategory}
}

// TryAcquire claims the session for one operation. It returns false when
// another operation is in flight.
func (s *Session) TryAcquire() bool { return s.mu.TryLock() }

// Release ends the operation started by a successful TryAcquire.
func (s *Session) Release() { s.mu.Unlock() }

// ChainAvailable reports whether a chained lookup can be triggered.
func (s *Session) ChainAvailable() bool { return s.ChainedID != "" }

// Reset returns the session to its initial state. The caller must hold it.
func (s *Session) Reset() {
	s.Category = DefaultCategory
	s.ChainedID = ""
	s.LastAddress = ""
	s.Result = nil
}

// Snapshot returns a copy of the last result that later searches cannot modify.
func (s *Session) Snapshot() *Presentation {
	if s.Result == nil {
		return nil
	}
	p := *s.Result
	p.Sections = slices.Clone(s.Result.Sections)
	return &p
}
