package service

import (
	"context"

	"github.com/fypaccletsgo2025/EatooAdmin/internal/docstore"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/domain"
)

type AdminServiceInterface interface {
	ListOwnerRequests(ctx context.Context) ([]docstore.Document, error)
	ListUserSubmissions(ctx context.Context) (pending, contacted []docstore.Document, err error)
	ManageRestaurants(ctx context.Context) (live, contacted []docstore.Document, err error)
	DashboardMetrics(ctx context.Context) (*DashboardMetrics, error)
	ContactSubmission(ctx context.Context, documentID string) error
	RejectSubmission(ctx context.Context, collection, documentID, reason string) error
	Promote(ctx context.Context, sourceCollection, documentID string, overrides map[string]any, notificationTemplate string) (docstore.Document, error)
	RemoveRestaurant(ctx context.Context, documentID, reason string) error
	ListingQRCode(ctx context.Context, documentID string) ([]byte, error)
}

// MetricsCache caches the dashboard fan-out result.
type MetricsCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

// EventPublisher emits admin events for downstream consumers. Publishing is
// always best-effort.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event domain.AdminEvent) error
}

// NotificationSink records an audit notification for a restaurant. It must
// never block or fail the calling operation.
type NotificationSink interface {
	Notify(ctx context.Context, restaurantID, message string)
}

var _ AdminServiceInterface = (*AdminService)(nil)
