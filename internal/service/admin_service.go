package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fypaccletsgo2025/EatooAdmin/internal/docstore"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/domain"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/merge"
)

var ErrUnknownCollection = errors.New("unknown source collection")

const (
	listLimit         = 200
	recentLimit       = 6
	queueLimit        = 5
	dashboardCacheKey = "dashboard:metrics"
)

type DashboardStats struct {
	TotalRestaurants int `json:"totalRestaurants"`
	PendingOwner     int `json:"pendingOwner"`
	PendingUser      int `json:"pendingUser"`
	Contacted        int `json:"contacted"`
}

type DashboardMetrics struct {
	Stats             DashboardStats      `json:"stats"`
	RecentRestaurants []docstore.Document `json:"recentRestaurants"`
	OwnerQueue        []docstore.Document `json:"ownerQueue"`
	UserQueue         []docstore.Document `json:"userQueue"`
}

// AdminService runs the onboarding pipeline: listings, status transitions and
// the promotion of submissions into the restaurants collection.
type AdminService struct {
	store     docstore.Store
	cache     MetricsCache
	publisher EventPublisher
	notifier  NotificationSink
	qr        QRGenerator
}

func NewAdminService(store docstore.Store, cache MetricsCache, publisher EventPublisher, notifier NotificationSink, qr QRGenerator) *AdminService {
	return &AdminService{
		store:     store,
		cache:     cache,
		publisher: publisher,
		notifier:  notifier,
		qr:        qr,
	}
}

// Promote moves a submission into the restaurants collection: read source,
// build the payload, create the canonical record, delete the source, then
// notify. The canonical record reuses the source id, so a concurrent duplicate
// promotion fails with a conflict instead of overwriting, and re-promoting an
// already consumed submission fails not-found at the read step.
func (s *AdminService) Promote(ctx context.Context, sourceCollection, documentID string, overrides map[string]any, notificationTemplate string) (docstore.Document, error) {
	sourceType, err := sourceTypeFor(sourceCollection)
	if err != nil {
		return docstore.Document{}, err
	}

	src, err := s.store.Get(ctx, sourceCollection, documentID)
	if err != nil {
		return docstore.Document{}, err
	}

	payload, err := merge.Build(src, overrides, sourceType)
	if err != nil {
		return docstore.Document{}, err
	}

	created, err := s.store.Create(ctx, domain.CollectionRestaurants, documentID, payload.Fields())
	if err != nil {
		return docstore.Document{}, err
	}

	if err := s.store.Delete(ctx, sourceCollection, documentID); err != nil {
		// The source and the canonical record must never both remain at rest:
		// undo the create before surfacing the delete failure.
		if compErr := s.store.Delete(ctx, domain.CollectionRestaurants, documentID); compErr != nil {
			log.Printf("WARNING: compensation delete failed for restaurant %s: %v", documentID, compErr)
		}
		return docstore.Document{}, fmt.Errorf("failed to retire source document: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, documentID, fmt.Sprintf(notificationTemplate, payload.Name))
	}
	s.publish(ctx, "restaurant_promoted", sourceCollection, documentID, payload.Name)

	return created, nil
}

// ContactSubmission marks a pending user submission as contacted. The current
// status is not re-checked before writing; the store holds the truth.
func (s *AdminService) ContactSubmission(ctx context.Context, documentID string) error {
	err := s.store.Update(ctx, domain.CollectionUserSubmissions, documentID, map[string]any{
		"status": domain.StatusContacted,
	})
	if err != nil {
		return err
	}
	s.publish(ctx, "submission_contacted", domain.CollectionUserSubmissions, documentID, "")
	return nil
}

func (s *AdminService) RejectSubmission(ctx context.Context, collection, documentID, reason string) error {
	if collection != domain.CollectionUserSubmissions && collection != domain.CollectionOwnerRequests {
		return ErrUnknownCollection
	}
	err := s.store.Update(ctx, collection, documentID, map[string]any{
		"status": domain.StatusRejected,
		"note":   reason,
	})
	if err != nil {
		return err
	}
	s.publish(ctx, "submission_rejected", collection, documentID, "")
	return nil
}

func (s *AdminService) RemoveRestaurant(ctx context.Context, documentID, reason string) error {
	err := s.store.Update(ctx, domain.CollectionRestaurants, documentID, map[string]any{
		"status": domain.StatusRemoved,
		"note":   reason,
	})
	if err != nil {
		return err
	}
	s.publish(ctx, "restaurant_removed", domain.CollectionRestaurants, documentID, "")
	return nil
}

func (s *AdminService) ListOwnerRequests(ctx context.Context) ([]docstore.Document, error) {
	return s.store.List(ctx, domain.CollectionOwnerRequests, map[string]any{"status": domain.StatusPending}, listLimit)
}

func (s *AdminService) ListUserSubmissions(ctx context.Context) ([]docstore.Document, []docstore.Document, error) {
	pending, err := s.store.List(ctx, domain.CollectionUserSubmissions, map[string]any{"status": domain.StatusPending}, listLimit)
	if err != nil {
		return nil, nil, err
	}
	contacted, err := s.store.List(ctx, domain.CollectionUserSubmissions, map[string]any{"status": domain.StatusContacted}, listLimit)
	if err != nil {
		return nil, nil, err
	}
	return pending, contacted, nil
}

func (s *AdminService) ManageRestaurants(ctx context.Context) ([]docstore.Document, []docstore.Document, error) {
	live, err := s.store.List(ctx, domain.CollectionRestaurants, map[string]any{"status": domain.StatusLive}, listLimit)
	if err != nil {
		return nil, nil, err
	}
	contacted, err := s.store.List(ctx, domain.CollectionUserSubmissions, map[string]any{"status": domain.StatusContacted}, listLimit)
	if err != nil {
		return nil, nil, err
	}
	return live, contacted, nil
}

func (s *AdminService) DashboardMetrics(ctx context.Context) (*DashboardMetrics, error) {
	if s.cache != nil {
		var cached DashboardMetrics
		if ok, err := s.cache.GetJSON(ctx, dashboardCacheKey, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	metrics := &DashboardMetrics{}
	var err error

	if metrics.Stats.TotalRestaurants, err = s.store.Count(ctx, domain.CollectionRestaurants, nil); err != nil {
		return nil, err
	}
	if metrics.Stats.PendingOwner, err = s.store.Count(ctx, domain.CollectionOwnerRequests, map[string]any{"status": domain.StatusPending}); err != nil {
		return nil, err
	}
	if metrics.Stats.PendingUser, err = s.store.Count(ctx, domain.CollectionUserSubmissions, map[string]any{"status": domain.StatusPending}); err != nil {
		return nil, err
	}
	if metrics.Stats.Contacted, err = s.store.Count(ctx, domain.CollectionUserSubmissions, map[string]any{"status": domain.StatusContacted}); err != nil {
		return nil, err
	}
	if metrics.RecentRestaurants, err = s.store.List(ctx, domain.CollectionRestaurants, nil, recentLimit); err != nil {
		return nil, err
	}
	if metrics.OwnerQueue, err = s.store.List(ctx, domain.CollectionOwnerRequests, map[string]any{"status": domain.StatusPending}, queueLimit); err != nil {
		return nil, err
	}
	if metrics.UserQueue, err = s.store.List(ctx, domain.CollectionUserSubmissions, map[string]any{"status": domain.StatusPending}, queueLimit); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, dashboardCacheKey, metrics); err != nil {
			log.Printf("Warning: failed to cache dashboard metrics: %v", err)
		}
	}
	return metrics, nil
}

// ListingQRCode renders a QR code for a live restaurant's public page.
func (s *AdminService) ListingQRCode(ctx context.Context, documentID string) ([]byte, error) {
	doc, err := s.store.Get(ctx, domain.CollectionRestaurants, documentID)
	if err != nil {
		return nil, err
	}
	if status, _ := doc.Fields["status"].(string); status != domain.StatusLive {
		return nil, docstore.ErrNotFound
	}
	return s.qr.Generate(documentID)
}

func (s *AdminService) publish(ctx context.Context, eventType, collection, documentID, name string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishEvent(ctx, domain.AdminEvent{
		Type:       eventType,
		Collection: collection,
		DocumentID: documentID,
		Name:       name,
		Timestamp:  time.Now(),
	})
	if err != nil {
		log.Printf("Warning: failed to publish %s event for %s: %v", eventType, documentID, err)
	}
}

func sourceTypeFor(collection string) (string, error) {
	switch collection {
	case domain.CollectionUserSubmissions:
		return domain.SourceTypeUser, nil
	case domain.CollectionOwnerRequests:
		return domain.SourceTypeOwner, nil
	}
	return "", ErrUnknownCollection
}
