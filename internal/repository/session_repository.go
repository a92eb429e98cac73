package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/girishsunnykumar006-arch/bitesaver/internal/cart"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/identity"
)

// Session is the server-side state container for one browser session: one
// cart store and one identity gate, each mutated only through their own
// operation sets.
type Session struct {
	ID        string
	Cart      *cart.Store
	Identity  *identity.Gate
	CreatedAt time.Time
}

// SessionRepository holds all live sessions in memory. Nothing is persisted;
// state resets when the process restarts.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*Session)}
}

func (r *SessionRepository) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *SessionRepository) Create() *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Cart:      cart.NewStore(),
		Identity:  identity.NewGate(),
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return s
}

// Resolve returns the session for id, or a fresh one when id is empty or
// unknown. Callers surface the resulting id back to the client.
func (r *SessionRepository) Resolve(id string) *Session {
	if id != "" {
		if s, ok := r.Get(id); ok {
			return s
		}
	}
	return r.Create()
}

func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
