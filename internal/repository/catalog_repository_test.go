package repository

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestInMemoryCatalogFetchRestaurants(t *testing.T) {
	repo := NewInMemoryCatalog(0)

	restaurants, err := repo.FetchRestaurants(context.Background())
	if err != nil {
		t.Fatalf("FetchRestaurants() error = %v", err)
	}
	if len(restaurants) == 0 {
		t.Fatal("expected seeded restaurants")
	}

	// Every seeded restaurant has a browsable menu.
	for _, r := range restaurants {
		details, err := repo.FetchMenu(context.Background(), r.ID)
		if err != nil {
			t.Errorf("FetchMenu(%q) error = %v", r.ID, err)
			continue
		}
		if len(details.Menu) == 0 {
			t.Errorf("restaurant %q has no menu categories", r.ID)
		}
		for _, category := range details.Menu {
			for _, item := range category.Items {
				if item.Price.IsNegative() {
					t.Errorf("item %q has negative price %s", item.ID, item.Price)
				}
			}
		}
	}
}

func TestInMemoryCatalogFetchMenuNotFound(t *testing.T) {
	repo := NewInMemoryCatalog(0)

	_, err := repo.FetchMenu(context.Background(), "999")
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Errorf("FetchMenu() error = %v, want ErrRestaurantNotFound", err)
	}
}

func TestInMemoryCatalogFetchDelayHonorsContext(t *testing.T) {
	repo := NewInMemoryCatalog(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := repo.FetchRestaurants(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("FetchRestaurants() error = %v, want context.DeadlineExceeded", err)
	}
}
