package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes where an order is in its lifecycle.
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Past reports whether the order belongs on the past-orders tab.
func (s OrderStatus) Past() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderLine is one item of a placed order, priced at order time.
type OrderLine struct {
	ItemID    string          `json:"itemId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Order is a confirmed order snapshot.
type Order struct {
	ID             string          `json:"id"`
	RestaurantID   string          `json:"restaurantId"`
	RestaurantName string          `json:"restaurantName"`
	PlacedAt       time.Time       `json:"placedAt"`
	Status         OrderStatus     `json:"status"`
	Items          []OrderLine     `json:"items"`
	Total          decimal.Decimal `json:"total"`
}
