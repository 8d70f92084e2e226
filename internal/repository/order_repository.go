package repository

import (
	"context"
	"sync"
	"time"

	"github.com/quickbite/storefront-api/internal/models"
)

// OrderSource defines the interface for order history access.
type OrderSource interface {
	ListActive(ctx context.Context) ([]models.Order, error)
	ListPast(ctx context.Context) ([]models.Order, error)
	Insert(ctx context.Context, order models.Order) error
}

// InMemoryOrderRepository implements OrderSource with in-memory storage.
// Checkout inserts concurrently with order listings, hence the lock.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewInMemoryOrderRepository creates an order repository with seed data.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{orders: seedOrders()}
}

// ListActive returns orders still in progress, newest first.
func (r *InMemoryOrderRepository) ListActive(ctx context.Context) ([]models.Order, error) {
	return r.list(func(o models.Order) bool { return !o.Status.Past() }), nil
}

// ListPast returns delivered and cancelled orders, newest first.
func (r *InMemoryOrderRepository) ListPast(ctx context.Context) ([]models.Order, error) {
	return r.list(func(o models.Order) bool { return o.Status.Past() }), nil
}

// Insert records a new order.
func (r *InMemoryOrderRepository) Insert(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
	return nil
}

func (r *InMemoryOrderRepository) list(keep func(models.Order) bool) []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func seedOrders() []models.Order {
	at := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02 15:04", s)
		return t
	}
	return []models.Order{
		{
			ID: "ORD012P", RestaurantID: "4", RestaurantName: "Veggie Delight",
			PlacedAt: at("2024-07-20 12:00"), Status: models.OrderStatusCancelled,
			Items: []models.OrderLine{
				{ItemID: "v1", Name: "Veggie Wrap", Quantity: 1, UnitPrice: price("9.50")},
			},
			Total: price("9.50"),
		},
		{
			ID: "ORD789P", RestaurantID: "2", RestaurantName: "Napoli Pizzeria",
			PlacedAt: at("2024-07-25 20:00"), Status: models.OrderStatusDelivered,
			Items: []models.OrderLine{
				{ItemID: "p1", Name: "Margherita Pizza", Quantity: 1, UnitPrice: price("18.00")},
				{ItemID: "d1", Name: "Cola", Quantity: 2, UnitPrice: price("2.50")},
			},
			Total: price("23.00"),
		},
		{
			ID: "ORD123A", RestaurantID: "1", RestaurantName: "Gourmet Burger Kitchen",
			PlacedAt: at("2024-07-28 18:30"), Status: models.OrderStatusActive,
			Items: []models.OrderLine{
				{ItemID: "b1", Name: "Classic Cheeseburger", Quantity: 1, UnitPrice: price("12.99")},
			},
			Total: price("12.99"),
		},
		{
			ID: "ORD456A", RestaurantID: "3", RestaurantName: "Sushi World",
			PlacedAt: at("2024-07-28 19:00"), Status: models.OrderStatusActive,
			Items: []models.OrderLine{
				{ItemID: "sushi1", Name: "Salmon Nigiri Set", Quantity: 2, UnitPrice: price("15.00")},
			},
			Total: price("30.00"),
		},
	}
}
