package service

import (
	"context"
	"strings"
	"sync"

	"github.com/quickbite/storefront-api/internal/models"
	"github.com/quickbite/storefront-api/internal/repository"
	"github.com/quickbite/storefront-api/internal/search"
)

// SearchStatus distinguishes the three result states the caller must
// render differently: no query yet, a query with zero matches, and hits.
type SearchStatus string

const (
	StatusEmptyQuery SearchStatus = "empty_query"
	StatusNoMatches  SearchStatus = "no_matches"
	StatusOK         SearchStatus = "ok"
)

// SearchResult is the outcome of one search invocation.
// Committed reports whether it became the visible state, i.e. whether no
// newer invocation had started by the time this one finished.
type SearchResult struct {
	Status    SearchStatus        `json:"status"`
	Term      string              `json:"term"`
	Results   []models.Restaurant `json:"results"`
	Committed bool                `json:"-"`
}

// SearchService runs the catalog search pipeline against the catalog source.
//
// Fetching the catalog may be slow, so a search issued while an earlier one
// is still in flight can finish first. Each invocation takes a sequence
// number when it starts, and only the invocation with the highest sequence
// number commits its result to the visible state; stale results are
// returned to their caller but never committed.
type SearchService struct {
	source repository.CatalogSource

	mu           sync.Mutex
	nextSeq      uint64
	committedSeq uint64
	visible      *SearchResult
}

// NewSearchService creates a new search service
func NewSearchService(source repository.CatalogSource) *SearchService {
	return &SearchService{source: source}
}

// Search runs the pipeline for the given term, filters, and sort key.
func (s *SearchService) Search(ctx context.Context, term string, filters search.Filters, key search.SortKey) (*SearchResult, error) {
	seq := s.begin()

	catalog, err := s.source.FetchRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	results := search.Search(catalog, term, filters, key)

	status := StatusOK
	if strings.TrimSpace(term) == "" {
		status = StatusEmptyQuery
	} else if len(results) == 0 {
		status = StatusNoMatches
	}

	result := &SearchResult{
		Status:  status,
		Term:    term,
		Results: results,
	}
	result.Committed = s.commit(seq, result)
	return result, nil
}

// Visible returns the last committed result, or nil before any search.
func (s *SearchService) Visible() *SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *SearchService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	return s.nextSeq
}

func (s *SearchService) commit(seq uint64, result *SearchResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	// A result commits only if it belongs to the newest invocation started.
	if seq != s.nextSeq || seq <= s.committedSeq {
		return false
	}
	s.committedSeq = seq
	s.visible = result
	return true
}
