package service

import (
	"context"

	"github.com/quickbite/storefront-api/internal/models"
	"github.com/quickbite/storefront-api/internal/repository"
	"github.com/quickbite/storefront-api/internal/search"
)

// CatalogService handles business logic for browsing the restaurant catalog.
type CatalogService struct {
	source repository.CatalogSource
}

// NewCatalogService creates a new catalog service
func NewCatalogService(source repository.CatalogSource) *CatalogService {
	return &CatalogService{source: source}
}

// ListRestaurants returns the full catalog.
func (s *CatalogService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.source.FetchRestaurants(ctx)
}

// BrowseCategory returns the home-page category view. The sentinel "All"
// or an empty category returns the full catalog; a category nobody serves
// returns an empty list.
func (s *CatalogService) BrowseCategory(ctx context.Context, category string) ([]models.Restaurant, error) {
	catalog, err := s.source.FetchRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	return search.SelectCategory(catalog, category), nil
}

// GetMenu returns a restaurant with its categorized menu.
func (s *CatalogService) GetMenu(ctx context.Context, restaurantID string) (*models.RestaurantDetails, error) {
	return s.source.FetchMenu(ctx, restaurantID)
}

// Cuisines returns the distinct cuisine tags available for filtering.
func (s *CatalogService) Cuisines(ctx context.Context) ([]string, error) {
	catalog, err := s.source.FetchRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	return search.AvailableCuisines(catalog), nil
}
