package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quickbite/storefront-api/internal/repository"
	"github.com/quickbite/storefront-api/internal/service"
	"github.com/quickbite/storefront-api/internal/session"
)

// SessionHandler handles browsing-session HTTP requests: starting and
// ending a menu visit, cart mutations, and category expansion toggles.
type SessionHandler struct {
	cartService *service.CartService
	log         *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(cartService *service.CartService, log *slog.Logger) *SessionHandler {
	return &SessionHandler{
		cartService: cartService,
		log:         log,
	}
}

type startSessionRequest struct {
	RestaurantID string `json:"restaurantId"`
}

type addItemRequest struct {
	ItemID string `json:"itemId"`
}

// StartSession handles POST /api/sessions
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode session request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if req.RestaurantID == "" {
		WriteError(w, http.StatusBadRequest, "restaurantId is required", h.log)
		return
	}

	view, err := h.cartService.StartSession(r.Context(), req.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			WriteError(w, http.StatusNotFound, "Restaurant not found", h.log)
			return
		}
		h.log.Error("failed to start session", "restaurant_id", req.RestaurantID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, view, h.log)
	h.log.Info("browsing session started", "session_id", view.SessionID, "restaurant_id", req.RestaurantID)
}

// GetSession handles GET /api/sessions/{sessionId}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.cartService.GetSession(chi.URLParam(r, "sessionId"))
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}

// EndSession handles DELETE /api/sessions/{sessionId}
// The visit's cart is discarded, not persisted.
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	if err := h.cartService.EndSession(sessionID); err != nil {
		h.writeSessionError(w, err)
		return
	}
	h.log.Info("browsing session ended", "session_id", sessionID)
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/sessions/{sessionId}/items
func (h *SessionHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode add-item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.cartService.AddItem(chi.URLParam(r, "sessionId"), req.ItemID)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
			return
		}
		h.writeSessionError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// RemoveItem handles DELETE /api/sessions/{sessionId}/items/{itemId}
// Removing an item that is not in the cart succeeds and leaves it unchanged.
func (h *SessionHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	view, err := h.cartService.RemoveItem(chi.URLParam(r, "sessionId"), chi.URLParam(r, "itemId"))
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}

// ToggleCategory handles POST /api/sessions/{sessionId}/categories/{category}/toggle
func (h *SessionHandler) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	expansion, err := h.cartService.ToggleCategory(chi.URLParam(r, "sessionId"), chi.URLParam(r, "category"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			WriteError(w, http.StatusNotFound, "Menu category not found", h.log)
			return
		}
		h.writeSessionError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, expansion, h.log)
}

func (h *SessionHandler) writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrSessionNotFound) {
		WriteError(w, http.StatusNotFound, "Session not found", h.log)
		return
	}
	h.log.Error("session operation failed", "error", err)
	WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
}
