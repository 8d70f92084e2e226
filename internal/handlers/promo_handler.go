package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// promoValidator is the interface for promo code validation
type promoValidator interface {
	IsValid(ctx context.Context, code string) bool
	GetStats() map[string]interface{}
}

// PromoHandler handles HTTP requests for promo code validation
type PromoHandler struct {
	validator promoValidator
}

// NewPromoHandler creates a new PromoHandler
func NewPromoHandler(validator promoValidator) *PromoHandler {
	return &PromoHandler{
		validator: validator,
	}
}

// ValidatePromo handles GET /api/promo/{promoCode}
// Reports whether the code could be redeemed at checkout.
func (h *PromoHandler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	promoCode := chi.URLParam(r, "promoCode")

	isValid := h.validator.IsValid(r.Context(), promoCode)

	if isValid {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"valid": true,
			"promo": promoCode,
		})
	} else {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"valid":   false,
			"promo":   promoCode,
			"message": "Promo code not found or invalid",
		})
	}
}

// GetStats handles GET /api/promo/stats (for debugging/monitoring)
func (h *PromoHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.validator.GetStats()
	writeJSON(w, http.StatusOK, stats)
}
