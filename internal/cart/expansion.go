package cart

import "github.com/quickbite/storefront-api/internal/models"

// ExpansionState tracks which menu categories are open. Each category is an
// independent boolean; toggling one never affects another. An absent key
// means collapsed.
type ExpansionState struct {
	open map[string]bool
}

// NewExpansionState initializes expansion flags for a freshly loaded menu:
// the first category is expanded, all others are collapsed.
func NewExpansionState(menu []models.MenuCategory) *ExpansionState {
	open := make(map[string]bool)
	if len(menu) > 0 {
		open[menu[0].Name] = true
	}
	return &ExpansionState{open: open}
}

// Toggle flips the category's flag and returns the new state.
func (s *ExpansionState) Toggle(name string) bool {
	s.open[name] = !s.open[name]
	return s.open[name]
}

// IsExpanded reports whether the category is currently open.
func (s *ExpansionState) IsExpanded(name string) bool {
	return s.open[name]
}

// Snapshot returns a copy of the expansion map for serialization.
func (s *ExpansionState) Snapshot() map[string]bool {
	out := make(map[string]bool, len(s.open))
	for k, v := range s.open {
		out[k] = v
	}
	return out
}
