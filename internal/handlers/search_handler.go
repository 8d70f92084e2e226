package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/quickbite/storefront-api/internal/search"
	"github.com/quickbite/storefront-api/internal/service"
)

// SearchHandler handles search HTTP requests
type SearchHandler struct {
	service *service.SearchService
	log     *slog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service *service.SearchService, log *slog.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		log:     log,
	}
}

// Search handles GET /api/search?q=&cuisines=&hasOffer=&sort=
// The response carries a status field so the client can tell "no query yet"
// (empty_query) apart from a query with zero matches (no_matches).
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	term := query.Get("q")

	var filters search.Filters
	if raw := query.Get("cuisines"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				filters.Cuisines = append(filters.Cuisines, c)
			}
		}
	}
	filters.HasOffer = query.Get("hasOffer") == "true"

	key, ok := search.ParseSortKey(query.Get("sort"))
	if !ok {
		h.log.Warn("invalid sort key", "sort", query.Get("sort"))
		WriteError(w, http.StatusBadRequest, "Invalid sort key", h.log)
		return
	}

	result, err := h.service.Search(r.Context(), term, filters, key)
	if err != nil {
		h.log.Error("search failed", "term", term, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, result, h.log)
}
