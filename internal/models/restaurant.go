package models

import "github.com/shopspring/decimal"

// Restaurant represents a single storefront in the catalog.
// Entries are immutable once loaded; search and filtering only read them.
type Restaurant struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ImageURL         string           `json:"imageUrl"`
	Rating           float64          `json:"rating"`
	ReviewCount      *int             `json:"reviewCount,omitempty"`
	CuisineTypes     []string         `json:"cuisineTypes"`
	DeliveryEstimate DeliveryEstimate `json:"deliveryEstimate"`
	DeliveryFee      *DeliveryFee     `json:"deliveryFee,omitempty"`
	Offer            string           `json:"offer,omitempty"`
}

// HasOffer reports whether the restaurant carries a promotional offer label.
func (r Restaurant) HasOffer() bool {
	return r.Offer != ""
}

// DeliveryEstimate is a numeric time range with a unit label, e.g. 25-35 min.
type DeliveryEstimate struct {
	Min  int    `json:"min"`
	Max  int    `json:"max"`
	Unit string `json:"unit"`
}

// DeliveryFee is either a monetary amount or a free-delivery marker.
type DeliveryFee struct {
	Amount decimal.Decimal `json:"amount"`
	Free   bool            `json:"free"`
}

// RestaurantDetails is a restaurant together with its categorized menu.
type RestaurantDetails struct {
	Restaurant
	LogoURL string         `json:"logoUrl,omitempty"`
	Menu    []MenuCategory `json:"menu"`
}

// MenuCategory groups menu items under a name unique within one menu.
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// MenuItem is a single orderable dish. Immutable.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}
