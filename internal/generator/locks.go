package generator

import "sync"

// serializes follow-up generations per chat session; without this two
// concurrent follow-ups could read the same latest code and race on the
// version append
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// returns the lock for a chat session, creating it on first use
func (s *sessionLocks) get(chatSessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[chatSessionID]

	if !exists {
		lock = &sync.Mutex{}
		s.locks[chatSessionID] = lock
	}

	return lock
}
