package service

import (
	"log/slog"

	"github.com/quickbite/storefront-api/internal/models"
)

// Notifier is informed after each successful cart mutation so the caller
// can surface user feedback. It is not required for correctness.
type Notifier interface {
	ItemAdded(sessionID string, item models.MenuItem, quantity int)
	ItemRemoved(sessionID string, itemID string, remaining int)
}

// LogNotifier emits cart events to the structured log.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ItemAdded(sessionID string, item models.MenuItem, quantity int) {
	n.log.Info("item added to cart",
		"session_id", sessionID,
		"item_id", item.ID,
		"item_name", item.Name,
		"quantity", quantity,
	)
}

func (n *LogNotifier) ItemRemoved(sessionID string, itemID string, remaining int) {
	n.log.Info("item removed from cart",
		"session_id", sessionID,
		"item_id", itemID,
		"remaining", remaining,
	)
}
