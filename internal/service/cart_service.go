package service

import (
	"context"
	"errors"

	"github.com/quickbite/storefront-api/internal/cart"
	"github.com/quickbite/storefront-api/internal/models"
	"github.com/quickbite/storefront-api/internal/repository"
	"github.com/quickbite/storefront-api/internal/session"
	"github.com/shopspring/decimal"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCategoryNotFound = errors.New("menu category not found")
)

// CartView is the serializable snapshot of a session's cart.
type CartView struct {
	Entries    []cart.Entry    `json:"entries"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// SessionView is the serializable snapshot of one browsing session.
type SessionView struct {
	SessionID  string                    `json:"sessionId"`
	Restaurant *models.RestaurantDetails `json:"restaurant"`
	Cart       CartView                  `json:"cart"`
	Expansion  map[string]bool           `json:"expansion"`
}

// CartService drives menu-browsing sessions: cart mutations and category
// expansion toggles, scoped to one restaurant visit.
type CartService struct {
	catalog  repository.CatalogSource
	sessions *session.Store
	notifier Notifier
}

// NewCartService creates a new cart service
func NewCartService(catalog repository.CatalogSource, sessions *session.Store, notifier Notifier) *CartService {
	return &CartService{
		catalog:  catalog,
		sessions: sessions,
		notifier: notifier,
	}
}

// StartSession begins a menu-browsing visit for the restaurant.
// Returns repository.ErrRestaurantNotFound for an unknown id.
func (s *CartService) StartSession(ctx context.Context, restaurantID string) (*SessionView, error) {
	details, err := s.catalog.FetchMenu(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	sess := s.sessions.Create(details)
	return s.view(sess), nil
}

// GetSession returns the current state of a browsing session.
func (s *CartService) GetSession(sessionID string) (*SessionView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Lock()
	defer sess.Unlock()
	return s.viewLocked(sess), nil
}

// EndSession ends the visit; the cart is discarded, not persisted.
func (s *CartService) EndSession(sessionID string) error {
	return s.sessions.Delete(sessionID)
}

// AddItem adds one unit of the menu item to the session's cart.
func (s *CartService) AddItem(sessionID, itemID string) (*CartView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	item, ok := sess.FindItem(itemID)
	if !ok {
		return nil, ErrMenuItemNotFound
	}

	sess.Lock()
	quantity := sess.Cart.AddItem(item)
	view := cartView(sess.Cart)
	sess.Unlock()

	s.notifier.ItemAdded(sess.ID, item, quantity)
	return &view, nil
}

// RemoveItem removes one unit of the item from the session's cart.
// Removing an item that is not in the cart is a no-op.
func (s *CartService) RemoveItem(sessionID, itemID string) (*CartView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	had := sess.Cart.QuantityOf(itemID) > 0
	remaining := sess.Cart.RemoveItem(itemID)
	view := cartView(sess.Cart)
	sess.Unlock()

	if had {
		s.notifier.ItemRemoved(sess.ID, itemID, remaining)
	}
	return &view, nil
}

// ToggleCategory flips the expansion flag of one menu category and returns
// the full expansion map. Other categories are untouched.
func (s *CartService) ToggleCategory(sessionID, name string) (map[string]bool, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.HasCategory(name) {
		return nil, ErrCategoryNotFound
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Expansion.Toggle(name)
	return sess.Expansion.Snapshot(), nil
}

func (s *CartService) view(sess *session.Session) *SessionView {
	sess.Lock()
	defer sess.Unlock()
	return s.viewLocked(sess)
}

func (s *CartService) viewLocked(sess *session.Session) *SessionView {
	return &SessionView{
		SessionID:  sess.ID,
		Restaurant: sess.Restaurant,
		Cart:       cartView(sess.Cart),
		Expansion:  sess.Expansion.Snapshot(),
	}
}

func cartView(c *cart.Cart) CartView {
	return CartView{
		Entries:    c.Entries(),
		TotalItems: c.TotalItemCount(),
		TotalPrice: c.TotalPrice(),
	}
}
