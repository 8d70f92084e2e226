package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quickbite/storefront-api/internal/service"
	"github.com/quickbite/storefront-api/internal/session"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

type checkoutRequest struct {
	PromoCode string `json:"promoCode,omitempty"`
}

// ListOrders handles GET /api/orders?status=active|past
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	listing := r.URL.Query().Get("status")

	orders, err := h.orderService.ListOrders(r.Context(), listing)
	if err != nil {
		if errors.Is(err, service.ErrUnknownListing) {
			WriteError(w, http.StatusBadRequest, "status must be active or past", h.log)
			return
		}
		h.log.Error("failed to list orders", "status", listing, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orders, h.log)
}

// Checkout handles POST /api/sessions/{sessionId}/checkout
// Snapshots the session's cart into an active order and ends the session.
// Payment is not processed.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	var req checkoutRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.log.Error("failed to decode checkout request", "error", err)
			WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
			return
		}
	}

	order, err := h.orderService.Checkout(r.Context(), sessionID, req.PromoCode)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			WriteError(w, http.StatusNotFound, "Session not found", h.log)
		case errors.Is(err, service.ErrEmptyCart):
			WriteError(w, http.StatusBadRequest, "Cart is empty", h.log)
		case errors.Is(err, service.ErrInvalidPromo):
			WriteError(w, http.StatusBadRequest, "Promo code is not valid", h.log)
		default:
			h.log.Error("checkout failed", "session_id", sessionID, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, order, h.log)
	h.log.Info("order placed", "order_id", order.ID, "items_count", len(order.Items), "total", order.Total.StringFixed(2))
}
