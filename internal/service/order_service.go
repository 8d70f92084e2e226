package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/quickbite/storefront-api/internal/models"
	"github.com/quickbite/storefront-api/internal/repository"
	"github.com/quickbite/storefront-api/internal/session"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidPromo   = errors.New("promo code is not valid")
	ErrUnknownListing = errors.New("unknown order listing")
)

// PromoValidator interface for promotional code validation
type PromoValidator interface {
	IsValid(ctx context.Context, code string) bool
}

// OrderService handles order history and the checkout acknowledgment.
type OrderService struct {
	orders   repository.OrderSource
	sessions *session.Store
	promo    PromoValidator
}

// NewOrderService creates a new order service
func NewOrderService(orders repository.OrderSource, sessions *session.Store, promo PromoValidator) *OrderService {
	return &OrderService{
		orders:   orders,
		sessions: sessions,
		promo:    promo,
	}
}

// ListOrders returns the active or past orders tab.
func (s *OrderService) ListOrders(ctx context.Context, listing string) ([]models.Order, error) {
	switch listing {
	case "", "active":
		return s.orders.ListActive(ctx)
	case "past":
		return s.orders.ListPast(ctx)
	}
	return nil, ErrUnknownListing
}

// Checkout snapshots the session's cart into an active order and ends the
// session. Payment is not processed; the order is the acknowledgment.
// An optional promo code is validated before the order is created.
func (s *OrderService) Checkout(ctx context.Context, sessionID, promoCode string) (*models.Order, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if promoCode != "" && s.promo != nil {
		if !s.promo.IsValid(ctx, promoCode) {
			return nil, ErrInvalidPromo
		}
	}

	sess.Lock()
	if sess.Cart.Empty() {
		sess.Unlock()
		return nil, ErrEmptyCart
	}

	entries := sess.Cart.Entries()
	lines := make([]models.OrderLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, models.OrderLine{
			ItemID:    e.Item.ID,
			Name:      e.Item.Name,
			Quantity:  e.Quantity,
			UnitPrice: e.Item.Price,
		})
	}

	order := models.Order{
		ID:             uuid.New().String(),
		RestaurantID:   sess.Restaurant.ID,
		RestaurantName: sess.Restaurant.Name,
		PlacedAt:       time.Now().UTC(),
		Status:         models.OrderStatusActive,
		Items:          lines,
		Total:          sess.Cart.TotalPrice(),
	}
	sess.Unlock()

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	// The visit is over once the order is placed; the cart dies with it.
	_ = s.sessions.Delete(sess.ID)

	return &order, nil
}
