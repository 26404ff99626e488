package booking

import (
	"sync"
	"time"
)

// sessionStore holds live booking sessions in memory. Sessions are ephemeral
// by design; the TTL sweep discards anything idle longer than the configured
// lifetime, confirmed or not.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (st *sessionStore) get(id string) (*Session, bool) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if st.expired(sess) {
		st.remove(id)
		return nil, false
	}
	return sess, true
}

func (st *sessionStore) put(sess *Session) {
	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
}

func (st *sessionStore) remove(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *sessionStore) expired(sess *Session) bool {
	return st.ttl > 0 && time.Since(sess.updatedAt()) > st.ttl
}

// sweep drops every expired session and reports how many were removed. It
// snapshots the session list first so the store lock is never held while
// waiting on a session lock (a confirm holds that lock through the payment).
func (st *sessionStore) sweep() int {
	if st.ttl <= 0 {
		return 0
	}

	st.mu.RLock()
	candidates := make([]*Session, 0, len(st.sessions))
	for _, sess := range st.sessions {
		candidates = append(candidates, sess)
	}
	st.mu.RUnlock()

	removed := 0
	for _, sess := range candidates {
		if time.Since(sess.updatedAt()) > st.ttl {
			st.remove(sess.ID)
			removed++
		}
	}
	return removed
}

func (st *sessionStore) len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
