package repository

import (
	"context"
	"errors"
	"time"

	"github.com/quickbite/storefront-api/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// CatalogSource defines the interface for restaurant catalog access.
// The core never mutates what it fetches; implementations own the data.
type CatalogSource interface {
	FetchRestaurants(ctx context.Context) ([]models.Restaurant, error)
	FetchMenu(ctx context.Context, restaurantID string) (*models.RestaurantDetails, error)
}

// InMemoryCatalog implements CatalogSource with in-memory storage.
// An optional fixed delay simulates backend latency on every fetch.
type InMemoryCatalog struct {
	restaurants []models.Restaurant
	menus       map[string]menuRecord
	delay       time.Duration
}

type menuRecord struct {
	logoURL string
	menu    []models.MenuCategory
}

// NewInMemoryCatalog creates an in-memory catalog with seed data.
func NewInMemoryCatalog(fetchDelay time.Duration) *InMemoryCatalog {
	return &InMemoryCatalog{
		restaurants: seedRestaurants(),
		menus:       seedMenus(),
		delay:       fetchDelay,
	}
}

// FetchRestaurants returns the full catalog in its canonical order.
func (r *InMemoryCatalog) FetchRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]models.Restaurant, len(r.restaurants))
	copy(out, r.restaurants)
	return out, nil
}

// FetchMenu returns a restaurant together with its categorized menu.
func (r *InMemoryCatalog) FetchMenu(ctx context.Context, restaurantID string) (*models.RestaurantDetails, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	rec, ok := r.menus[restaurantID]
	if !ok {
		return nil, ErrRestaurantNotFound
	}
	for _, restaurant := range r.restaurants {
		if restaurant.ID == restaurantID {
			return &models.RestaurantDetails{
				Restaurant: restaurant,
				LogoURL:    rec.logoURL,
				Menu:       rec.menu,
			}, nil
		}
	}
	return nil, ErrRestaurantNotFound
}

func (r *InMemoryCatalog) wait(ctx context.Context) error {
	if r.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(r.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func intPtr(v int) *int { return &v }

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			ID: "1", Name: "Gourmet Burger Kitchen",
			ImageURL:         "https://source.unsplash.com/random/400x225/?restaurant,burger",
			Rating:           4.5,
			ReviewCount:      intPtr(150),
			CuisineTypes:     []string{"Burgers", "American"},
			DeliveryEstimate: models.DeliveryEstimate{Min: 25, Max: 35, Unit: "min"},
			DeliveryFee:      &models.DeliveryFee{Amount: price("2.99")},
			Offer:            "10% OFF",
		},
		{
			ID: "2", Name: "Napoli Pizzeria",
			ImageURL:         "https://source.unsplash.com/random/400x225/?restaurant,pizza",
			Rating:           4.8,
			ReviewCount:      intPtr(200),
			CuisineTypes:     []string{"Pizza", "Italian"},
			DeliveryEstimate: models.DeliveryEstimate{Min: 30, Max: 40, Unit: "min"},
			DeliveryFee:      &models.DeliveryFee{Free: true},
		},
		{
			ID: "3", Name: "Sushi World",
			ImageURL:         "https://source.unsplash.com/random/400x225/?restaurant,sushi",
			Rating:           4.3,
			ReviewCount:      intPtr(90),
			CuisineTypes:     []string{"Sushi", "Japanese"},
			DeliveryEstimate: models.DeliveryEstimate{Min: 35, Max: 45, Unit: "min"},
			Offer:            "Combo Deal",
		},
		{
			ID: "4", Name: "Veggie Delight",
			ImageURL:         "https://source.unsplash.com/random/400x225/?restaurant,vegetarian",
			Rating:           4.7,
			CuisineTypes:     []string{"Vegetarian", "Healthy"},
			DeliveryEstimate: models.DeliveryEstimate{Min: 20, Max: 30, Unit: "min"},
			DeliveryFee:      &models.DeliveryFee{Amount: price("1.00")},
			Offer:            "Free Drink",
		},
		{
			ID: "5", Name: "Taco Town",
			ImageURL:         "https://source.unsplash.com/random/400x225/?restaurant,tacos",
			Rating:           4.2,
			CuisineTypes:     []string{"Mexican", "Tacos"},
			DeliveryEstimate: models.DeliveryEstimate{Min: 25, Max: 35, Unit: "min"},
		},
		{
			ID: "6", Name: "Pasta Paradise",
			ImageURL:         "https://source.unsplash.com/random/400x225/?restaurant,pasta",
			Rating:           4.6,
			CuisineTypes:     []string{"Italian", "Pasta"},
			DeliveryEstimate: models.DeliveryEstimate{Min: 20, Max: 30, Unit: "min"},
			DeliveryFee:      &models.DeliveryFee{Amount: price("1.50")},
		},
	}
}

func seedMenus() map[string]menuRecord {
	return map[string]menuRecord{
		"1": {
			logoURL: "https://source.unsplash.com/random/100x100/?logo,burger",
			menu: []models.MenuCategory{
				{
					Name: "Signature Burgers",
					Items: []models.MenuItem{
						{ID: "b1", Name: "Classic Cheeseburger", Description: "Beef patty, cheddar, lettuce, tomato, special sauce.", Price: price("12.99"), ImageURL: "https://source.unsplash.com/random/300x169/?cheeseburger"},
						{ID: "b2", Name: "Spicy Jalapeño Burger", Description: "Beef patty, pepper jack, jalapeños, spicy mayo.", Price: price("13.50"), ImageURL: "https://source.unsplash.com/random/300x169/?spicy,burger"},
					},
				},
				{
					Name: "Sides",
					Items: []models.MenuItem{
						{ID: "s1", Name: "French Fries", Description: "Crispy golden fries.", Price: price("4.50"), ImageURL: "https://source.unsplash.com/random/300x169/?fries"},
						{ID: "s2", Name: "Onion Rings", Description: "Battered and fried onion rings.", Price: price("5.00"), ImageURL: "https://source.unsplash.com/random/300x169/?onionrings"},
					},
				},
				{
					Name: "Drinks",
					Items: []models.MenuItem{
						{ID: "d1", Name: "Cola", Price: price("2.50"), ImageURL: "https://source.unsplash.com/random/300x169/?soda,drink"},
						{ID: "d2", Name: "Lemonade", Price: price("3.00"), ImageURL: "https://source.unsplash.com/random/300x169/?lemonade"},
					},
				},
			},
		},
		"2": {
			logoURL: "https://source.unsplash.com/random/100x100/?logo,pizza",
			menu: []models.MenuCategory{
				{
					Name: "Pizzas",
					Items: []models.MenuItem{
						{ID: "p1", Name: "Margherita Pizza", Description: "San Marzano tomato, mozzarella, basil.", Price: price("18.00"), ImageURL: "https://source.unsplash.com/random/300x169/?margherita"},
						{ID: "p2", Name: "Pepperoni Pizza", Description: "Loaded with pepperoni and mozzarella.", Price: price("19.50"), ImageURL: "https://source.unsplash.com/random/300x169/?pepperoni"},
					},
				},
				{
					Name: "Drinks",
					Items: []models.MenuItem{
						{ID: "d1", Name: "Cola", Price: price("2.50")},
						{ID: "d2", Name: "Sparkling Water", Price: price("2.00")},
					},
				},
			},
		},
		"3": {
			logoURL: "https://source.unsplash.com/random/100x100/?logo,sushi",
			menu: []models.MenuCategory{
				{
					Name: "Nigiri Sets",
					Items: []models.MenuItem{
						{ID: "sushi1", Name: "Salmon Nigiri Set", Description: "Eight pieces of fresh salmon nigiri.", Price: price("15.00"), ImageURL: "https://source.unsplash.com/random/300x169/?nigiri"},
						{ID: "sushi2", Name: "Tuna Nigiri Set", Description: "Eight pieces of bluefin tuna nigiri.", Price: price("17.00")},
					},
				},
				{
					Name: "Rolls",
					Items: []models.MenuItem{
						{ID: "r1", Name: "California Roll", Price: price("9.50")},
						{ID: "r2", Name: "Dragon Roll", Price: price("12.50")},
					},
				},
			},
		},
		"4": {
			logoURL: "https://source.unsplash.com/random/100x100/?logo,vegetarian",
			menu: []models.MenuCategory{
				{
					Name: "Wraps & Bowls",
					Items: []models.MenuItem{
						{ID: "v1", Name: "Veggie Wrap", Description: "Grilled vegetables, hummus, whole-wheat wrap.", Price: price("9.50")},
						{ID: "v2", Name: "Buddha Bowl", Description: "Quinoa, roasted chickpeas, avocado, tahini.", Price: price("11.00")},
					},
				},
			},
		},
		"5": {
			logoURL: "https://source.unsplash.com/random/100x100/?logo,tacos",
			menu: []models.MenuCategory{
				{
					Name: "Tacos",
					Items: []models.MenuItem{
						{ID: "t1", Name: "Carne Asada Taco", Price: price("4.25")},
						{ID: "t2", Name: "Baja Fish Taco", Price: price("4.75")},
					},
				},
				{
					Name: "Sides",
					Items: []models.MenuItem{
						{ID: "ts1", Name: "Chips & Guacamole", Price: price("5.50")},
					},
				},
			},
		},
		"6": {
			logoURL: "https://source.unsplash.com/random/100x100/?logo,pasta",
			menu: []models.MenuCategory{
				{
					Name: "Pasta",
					Items: []models.MenuItem{
						{ID: "pa1", Name: "Spaghetti Carbonara", Description: "Guanciale, pecorino, egg yolk.", Price: price("14.00")},
						{ID: "pa2", Name: "Penne Arrabbiata", Description: "Spicy tomato sauce, garlic, chili.", Price: price("12.00")},
					},
				},
			},
		},
	}
}
