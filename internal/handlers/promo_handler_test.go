package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/quickbite/storefront-api/internal/promo"
)

func newPromoRouter() *chi.Mux {
	handler := NewPromoHandler(promo.NewValidator(promo.DefaultCodes()))

	r := chi.NewRouter()
	r.Get("/api/promo/stats", handler.GetStats)
	r.Get("/api/promo/{promoCode}", handler.ValidatePromo)
	return r
}

func TestValidatePromo_Valid(t *testing.T) {
	r := newPromoRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/promo/WELCOME10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["valid"] != true {
		t.Errorf("expected valid=true, got %v", body["valid"])
	}
}

func TestValidatePromo_Invalid(t *testing.T) {
	r := newPromoRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/promo/BOGUSCODE", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestPromoStats(t *testing.T) {
	r := newPromoRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/promo/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var stats map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, ok := stats["total_codes"]; !ok {
		t.Error("expected total_codes in stats")
	}
}
