package service

import (
	"context"
	"log"

	"github.com/fypaccletsgo2025/EatooAdmin/internal/docstore"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/domain"
)

// Notifier appends audit notifications to the notifications collection.
// Failures are logged and swallowed: the sink is invoked only after the
// owning operation's outcome is known and must never change it.
type Notifier struct {
	Store docstore.Store
}

func NewNotifier(store docstore.Store) *Notifier {
	return &Notifier{Store: store}
}

func (n *Notifier) Notify(ctx context.Context, restaurantID, message string) {
	_, err := n.Store.Create(ctx, domain.CollectionNotifications, "", map[string]any{
		"restaurantId": restaurantID,
		"message":      message,
	})
	if err != nil {
		log.Printf("WARNING: failed to record notification for restaurant %s: %v", restaurantID, err)
	}
}

var _ NotificationSink = (*Notifier)(nil)
