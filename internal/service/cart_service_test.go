package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quickbite/storefront-api/internal/models"
	"github.com/quickbite/storefront-api/internal/repository"
	"github.com/quickbite/storefront-api/internal/session"
	"github.com/shopspring/decimal"
)

type recordingNotifier struct {
	added   []string
	removed []string
}

func (n *recordingNotifier) ItemAdded(sessionID string, item models.MenuItem, quantity int) {
	n.added = append(n.added, item.ID)
}

func (n *recordingNotifier) ItemRemoved(sessionID string, itemID string, remaining int) {
	n.removed = append(n.removed, itemID)
}

func newCartFixture() (*CartService, *session.Store, *recordingNotifier) {
	sessions := session.NewStore()
	notifier := &recordingNotifier{}
	svc := NewCartService(repository.NewInMemoryCatalog(0), sessions, notifier)
	return svc, sessions, notifier
}

func TestCartServiceStartSession(t *testing.T) {
	svc, _, _ := newCartFixture()

	view, err := svc.StartSession(context.Background(), "1")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if view.Restaurant.Name != "Gourmet Burger Kitchen" {
		t.Errorf("restaurant = %q, want Gourmet Burger Kitchen", view.Restaurant.Name)
	}
	if view.Cart.TotalItems != 0 {
		t.Errorf("new session cart has %d items, want 0", view.Cart.TotalItems)
	}
	if !view.Expansion["Signature Burgers"] {
		t.Error("first menu category not expanded on session start")
	}
	if view.Expansion["Sides"] || view.Expansion["Drinks"] {
		t.Error("later menu categories expanded on session start")
	}
}

func TestCartServiceStartSessionUnknownRestaurant(t *testing.T) {
	svc, _, _ := newCartFixture()

	_, err := svc.StartSession(context.Background(), "999")
	if !errors.Is(err, repository.ErrRestaurantNotFound) {
		t.Errorf("StartSession() error = %v, want ErrRestaurantNotFound", err)
	}
}

func TestCartServiceAddRemoveScenario(t *testing.T) {
	svc, _, notifier := newCartFixture()
	view, err := svc.StartSession(context.Background(), "1")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	id := view.SessionID

	// Two adds of the 12.99 burger.
	if _, err := svc.AddItem(id, "b1"); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	cartView, err := svc.AddItem(id, "b1")
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if cartView.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", cartView.TotalItems)
	}
	if want := decimal.RequireFromString("25.98"); !cartView.TotalPrice.Equal(want) {
		t.Errorf("TotalPrice = %s, want %s", cartView.TotalPrice, want)
	}

	// One remove brings it back to a single burger.
	cartView, err = svc.RemoveItem(id, "b1")
	if err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if want := decimal.RequireFromString("12.99"); !cartView.TotalPrice.Equal(want) {
		t.Errorf("TotalPrice = %s, want %s", cartView.TotalPrice, want)
	}

	// The final remove empties the cart.
	cartView, err = svc.RemoveItem(id, "b1")
	if err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if len(cartView.Entries) != 0 {
		t.Errorf("Entries = %v, want none", cartView.Entries)
	}
	if !cartView.TotalPrice.Equal(decimal.Zero) {
		t.Errorf("TotalPrice = %s, want 0", cartView.TotalPrice)
	}

	if len(notifier.added) != 2 || len(notifier.removed) != 2 {
		t.Errorf("notifier saw %d adds and %d removes, want 2 and 2", len(notifier.added), len(notifier.removed))
	}
}

func TestCartServiceRemoveAbsentDoesNotNotify(t *testing.T) {
	svc, _, notifier := newCartFixture()
	view, _ := svc.StartSession(context.Background(), "1")

	if _, err := svc.RemoveItem(view.SessionID, "b1"); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if len(notifier.removed) != 0 {
		t.Error("removing an absent item produced a notification")
	}
}

func TestCartServiceAddUnknownItem(t *testing.T) {
	svc, _, _ := newCartFixture()
	view, _ := svc.StartSession(context.Background(), "1")

	_, err := svc.AddItem(view.SessionID, "no-such-item")
	if !errors.Is(err, ErrMenuItemNotFound) {
		t.Errorf("AddItem() error = %v, want ErrMenuItemNotFound", err)
	}
}

func TestCartServiceUnknownSession(t *testing.T) {
	svc, _, _ := newCartFixture()

	if _, err := svc.AddItem("missing", "b1"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("AddItem() error = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.GetSession("missing"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("GetSession() error = %v, want ErrSessionNotFound", err)
	}
}

func TestCartServiceToggleCategory(t *testing.T) {
	svc, _, _ := newCartFixture()
	view, _ := svc.StartSession(context.Background(), "1")
	id := view.SessionID

	expansion, err := svc.ToggleCategory(id, "Sides")
	if err != nil {
		t.Fatalf("ToggleCategory() error = %v", err)
	}
	if !expansion["Sides"] {
		t.Error("Sides not expanded after toggle")
	}
	if !expansion["Signature Burgers"] {
		t.Error("toggling Sides collapsed Signature Burgers")
	}

	if _, err := svc.ToggleCategory(id, "Desserts"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("ToggleCategory() error = %v, want ErrCategoryNotFound", err)
	}
}

func TestCartServiceEndSessionDiscardsCart(t *testing.T) {
	svc, sessions, _ := newCartFixture()
	view, _ := svc.StartSession(context.Background(), "1")
	id := view.SessionID

	if _, err := svc.AddItem(id, "b1"); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if err := svc.EndSession(id); err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}
	if sessions.Len() != 0 {
		t.Errorf("store has %d sessions after end, want 0", sessions.Len())
	}

	// A fresh visit to the same restaurant starts from an empty cart.
	again, _ := svc.StartSession(context.Background(), "1")
	if again.Cart.TotalItems != 0 {
		t.Errorf("new visit cart has %d items, want 0", again.Cart.TotalItems)
	}
}
