package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quickbite/storefront-api/internal/repository"
	"github.com/quickbite/storefront-api/internal/service"
)

// RestaurantHandler handles catalog browsing HTTP requests
type RestaurantHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(service *service.CatalogService, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		logger:  logger,
	}
}

// ListRestaurants handles GET /api/restaurants
// An optional ?category= parameter narrows the list to restaurants serving
// that cuisine; "All" or no parameter returns the full catalog. A category
// nobody serves returns an empty list, not an error.
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	restaurants, err := h.service.BrowseCategory(ctx, category)
	if err != nil {
		h.logger.Error("failed to list restaurants", "category", category, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, restaurants)
}

// GetMenu handles GET /api/restaurants/{restaurantId}
// Returns the restaurant with its categorized menu:
// - 200: successful operation
// - 400: missing id
// - 404: restaurant not found
func (h *RestaurantHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	restaurantID := chi.URLParam(r, "restaurantId")

	if restaurantID == "" {
		h.logger.Warn("restaurant ID is required")
		h.writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	details, err := h.service.GetMenu(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			h.logger.Info("restaurant not found", "restaurantId", restaurantID)
			h.writeError(w, http.StatusNotFound, "Restaurant not found")
			return
		}

		h.logger.Error("failed to get menu", "restaurantId", restaurantID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, details)
}

// ListCuisines handles GET /api/cuisines
// Returns the distinct cuisine tags available for the search filter sheet.
func (h *RestaurantHandler) ListCuisines(w http.ResponseWriter, r *http.Request) {
	cuisines, err := h.service.Cuisines(r.Context())
	if err != nil {
		h.logger.Error("failed to list cuisines", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, cuisines)
}

// writeJSON writes a JSON response
func (h *RestaurantHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", "error", err)
	}
}

// writeError writes an error response
func (h *RestaurantHandler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode error response", "error", err)
	}
}
