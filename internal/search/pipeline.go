package search

import (
	"sort"
	"strings"

	"github.com/quickbite/storefront-api/internal/models"
)

// SortKey selects the comparator applied to search results.
type SortKey string

const (
	SortRelevance    SortKey = "relevance"
	SortRating       SortKey = "rating"
	SortDeliveryTime SortKey = "delivery_time"
)

// ParseSortKey maps a request parameter to a SortKey.
// An empty value means relevance; "deliveryTime" is accepted as a legacy alias.
func ParseSortKey(s string) (SortKey, bool) {
	switch s {
	case "", string(SortRelevance):
		return SortRelevance, true
	case string(SortRating):
		return SortRating, true
	case string(SortDeliveryTime), "deliveryTime":
		return SortDeliveryTime, true
	}
	return SortRelevance, false
}

// Filters narrows search results beyond the term match.
// An empty cuisine set means no cuisine restriction.
type Filters struct {
	Cuisines []string
	HasOffer bool
}

// Search runs the catalog search pipeline: term match, cuisine filter,
// offer filter, then sort. It never mutates the catalog, and the same
// inputs always produce the same output.
//
// An empty or all-whitespace term yields an empty result; that is how
// "no query yet" is distinguished from "query with zero matches".
func Search(catalog []models.Restaurant, term string, filters Filters, key SortKey) []models.Restaurant {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Restaurant{}
	}
	needle := strings.ToLower(term)

	results := make([]models.Restaurant, 0, len(catalog))
	for _, r := range catalog {
		if !matchesTerm(r, needle) {
			continue
		}
		if len(filters.Cuisines) > 0 && !matchesAnyCuisine(r, filters.Cuisines) {
			continue
		}
		if filters.HasOffer && !r.HasOffer() {
			continue
		}
		results = append(results, r)
	}

	switch key {
	case SortRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	case SortDeliveryTime:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DeliveryEstimate.Min < results[j].DeliveryEstimate.Min
		})
	}
	return results
}

// matchesTerm reports whether the lowercased needle occurs in the
// restaurant name or any of its cuisine tags.
func matchesTerm(r models.Restaurant, needle string) bool {
	if strings.Contains(strings.ToLower(r.Name), needle) {
		return true
	}
	for _, c := range r.CuisineTypes {
		if strings.Contains(strings.ToLower(c), needle) {
			return true
		}
	}
	return false
}

// matchesAnyCuisine reports whether the restaurant carries at least one of
// the selected cuisine tags (case-insensitive, logical OR).
func matchesAnyCuisine(r models.Restaurant, selected []string) bool {
	for _, want := range selected {
		for _, have := range r.CuisineTypes {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

// AllCategories is the sentinel category returning the unfiltered catalog.
const AllCategories = "All"

// SelectCategory returns the restaurants whose cuisine tags include the
// named category (case-insensitive). The sentinel "All" or an empty name
// returns the full catalog. A category with no matches returns an empty
// result; callers decide whether to fall back to the full list.
func SelectCategory(catalog []models.Restaurant, category string) []models.Restaurant {
	if category == "" || strings.EqualFold(category, AllCategories) {
		out := make([]models.Restaurant, len(catalog))
		copy(out, catalog)
		return out
	}
	out := make([]models.Restaurant, 0, len(catalog))
	for _, r := range catalog {
		for _, c := range r.CuisineTypes {
			if strings.EqualFold(c, category) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// AvailableCuisines returns the distinct cuisine tags across the catalog
// in first-seen order.
func AvailableCuisines(catalog []models.Restaurant) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range catalog {
		for _, c := range r.CuisineTypes {
			key := strings.ToLower(c)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}
