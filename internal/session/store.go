package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quickbite/storefront-api/internal/cart"
	"github.com/quickbite/storefront-api/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// Session is one menu-browsing visit: the restaurant being browsed, the
// cart accumulated during the visit, and the menu's category expansion
// state. It exists from visit start until the visit ends or the idle
// sweeper evicts it; nothing survives it.
type Session struct {
	ID         string
	Restaurant *models.RestaurantDetails
	Cart       *cart.Cart
	Expansion  *cart.ExpansionState
	CreatedAt  time.Time

	mu          sync.Mutex
	lastTouched time.Time
}

// Lock serializes access to the session's cart and expansion state.
// Operations within one session execute to completion before the next.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// FindItem looks up a menu item by id across the session's menu categories.
func (s *Session) FindItem(itemID string) (models.MenuItem, bool) {
	for _, category := range s.Restaurant.Menu {
		for _, item := range category.Items {
			if item.ID == itemID {
				return item, true
			}
		}
	}
	return models.MenuItem{}, false
}

// HasCategory reports whether the session's menu contains the named category.
func (s *Session) HasCategory(name string) bool {
	for _, category := range s.Restaurant.Menu {
		if category.Name == name {
			return true
		}
	}
	return false
}

// Store is the in-process registry of browsing sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create starts a browsing session for the given restaurant with an empty
// cart and the menu's initial expansion state.
func (st *Store) Create(details *models.RestaurantDetails) *Session {
	now := st.now()
	s := &Session{
		ID:          uuid.New().String(),
		Restaurant:  details,
		Cart:        cart.New(),
		Expansion:   cart.NewExpansionState(details.Menu),
		CreatedAt:   now,
		lastTouched: now,
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
	return s
}

// Get returns the session and marks it as touched.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	s.lastTouched = st.now()
	s.mu.Unlock()
	return s, nil
}

// Delete ends the session; its cart is discarded.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep evicts sessions idle longer than ttl and returns how many were removed.
func (st *Store) Sweep(ttl time.Duration) int {
	cutoff := st.now().Add(-ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := s.lastTouched.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
