package flow

import "sync"

// Session is one user's conversation: current state plus flow scratch.
// Its mutex serializes message handling, so a session processes messages
// strictly in arrival order even if the transport delivers concurrently.
type Session struct {
	mu      sync.Mutex
	state   State
	scratch scratch
}

// Sessions is the in-process session registry. State is not persisted, so
// after a restart every user starts over from the home state.
type Sessions struct {
	mu     sync.Mutex
	byUser map[int64]*Session
}

func NewSessions() *Sessions {
	return &Sessions{byUser: make(map[int64]*Session)}
}

func (s *Sessions) Get(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byUser[userID]
	if !ok {
		sess = &Session{state: StateMainMenu}
		s.byUser[userID] = sess
	}
	return sess
}
