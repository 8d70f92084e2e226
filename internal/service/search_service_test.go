package service

import (
	"context"
	"testing"

	"github.com/quickbite/storefront-api/internal/models"
	"github.com/quickbite/storefront-api/internal/repository"
	"github.com/quickbite/storefront-api/internal/search"
)

func TestSearchServiceStatuses(t *testing.T) {
	svc := NewSearchService(repository.NewInMemoryCatalog(0))
	ctx := context.Background()

	tests := []struct {
		name       string
		term       string
		wantStatus SearchStatus
		wantEmpty  bool
	}{
		{"empty term", "", StatusEmptyQuery, true},
		{"whitespace term", "   ", StatusEmptyQuery, true},
		{"matching term", "pizza", StatusOK, false},
		{"unmatched term", "xyzzy", StatusNoMatches, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Search(ctx, tt.term, search.Filters{}, search.SortRelevance)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if result.Status != tt.wantStatus {
				t.Errorf("Search() status = %q, want %q", result.Status, tt.wantStatus)
			}
			if tt.wantEmpty && len(result.Results) != 0 {
				t.Errorf("Search() results = %v, want empty", result.Results)
			}
			if !tt.wantEmpty && len(result.Results) == 0 {
				t.Error("Search() results empty, want matches")
			}
		})
	}
}

func TestSearchServiceScenario(t *testing.T) {
	svc := NewSearchService(repository.NewInMemoryCatalog(0))

	result, err := svc.Search(context.Background(), "pizza", search.Filters{}, search.SortRelevance)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result.Results) != 1 || result.Results[0].Name != "Napoli Pizzeria" {
		t.Errorf("Search(pizza) = %v, want [Napoli Pizzeria]", result.Results)
	}
}

// gatedCatalog blocks FetchRestaurants until released, to force two search
// invocations into flight at once.
type gatedCatalog struct {
	catalog []models.Restaurant
	started chan struct{}
	release chan struct{}
}

func (g *gatedCatalog) FetchRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	g.started <- struct{}{}
	<-g.release
	out := make([]models.Restaurant, len(g.catalog))
	copy(out, g.catalog)
	return out, nil
}

func (g *gatedCatalog) FetchMenu(ctx context.Context, restaurantID string) (*models.RestaurantDetails, error) {
	return nil, repository.ErrRestaurantNotFound
}

func TestSearchServiceSupersededResultNeverCommits(t *testing.T) {
	gate := &gatedCatalog{
		catalog: []models.Restaurant{
			{ID: "1", Name: "Gourmet Burger Kitchen", CuisineTypes: []string{"Burgers"}},
			{ID: "2", Name: "Napoli Pizzeria", CuisineTypes: []string{"Pizza"}},
		},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewSearchService(gate)
	ctx := context.Background()

	results := make(chan *SearchResult, 2)

	// First invocation enters its fetch and stalls there.
	go func() {
		r, err := svc.Search(ctx, "burger", search.Filters{}, search.SortRelevance)
		if err != nil {
			t.Errorf("first Search() error = %v", err)
		}
		results <- r
	}()
	<-gate.started

	// Second invocation starts while the first is still in flight.
	go func() {
		r, err := svc.Search(ctx, "pizza", search.Filters{}, search.SortRelevance)
		if err != nil {
			t.Errorf("second Search() error = %v", err)
		}
		results <- r
	}()
	<-gate.started

	// Let both finish, in whichever order the scheduler picks.
	gate.release <- struct{}{}
	gate.release <- struct{}{}

	first, second := <-results, <-results
	byTerm := map[string]*SearchResult{first.Term: first, second.Term: second}

	if byTerm["burger"].Committed {
		t.Error("superseded invocation committed its result")
	}
	if !byTerm["pizza"].Committed {
		t.Error("latest invocation did not commit its result")
	}

	visible := svc.Visible()
	if visible == nil || visible.Term != "pizza" {
		t.Errorf("Visible() = %+v, want latest invocation's result", visible)
	}
}
