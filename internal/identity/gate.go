package identity

import (
	"sync"

	"github.com/girishsunnykumar006-arch/bitesaver/internal/domain"
)

// Gate tracks whether a session is signed in and which identity it carries.
// It is the sole access-control mechanism for cart and checkout actions;
// it trusts its caller (credential format checks happen before Login).
type Gate struct {
	mu   sync.RWMutex
	user *domain.User
}

func NewGate() *Gate {
	return &Gate{}
}

// Login marks the session as signed in under the given identity. Calling it
// while already signed in just overwrites the stored identity.
func (g *Gate) Login(user domain.User) {
	g.mu.Lock()
	defer g.mu.Unlock()
	u := user
	g.user = &u
}

// Logout returns the session to the signed-out state.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.user = nil
}

func (g *Gate) IsLoggedIn() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.user != nil
}

// User returns the current identity; ok is false when signed out.
func (g *Gate) User() (domain.User, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.user == nil {
		return domain.User{}, false
	}
	return *g.user, true
}
