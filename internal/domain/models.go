package domain

import "time"

// Collection names in the document store.
const (
	CollectionOwnerRequests   = "restaurant_requests"
	CollectionUserSubmissions = "user_submissions"
	CollectionRestaurants     = "restaurants"
	CollectionNotifications   = "notifications"
)

// Submission and restaurant statuses.
const (
	StatusPending   = "pending"
	StatusContacted = "contacted"
	StatusRejected  = "rejected"
	StatusLive      = "live"
	StatusRemoved   = "removed"
)

// Source type tags carried onto promoted restaurants.
const (
	SourceTypeUser  = "user"
	SourceTypeOwner = "owner"
)

// RestaurantPayload is the normalized candidate record produced by the merge
// step and written to the restaurants collection on approval.
type RestaurantPayload struct {
	Name           string     `json:"name"`
	BusinessName   string     `json:"businessName"`
	RegistrationNo string     `json:"registrationNo"`
	Cuisines       []string   `json:"cuisines"`
	Theme          string     `json:"theme"`
	Ambience       []string   `json:"ambience"`
	Location       string     `json:"location"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Postcode       string     `json:"postcode"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email"`
	Contact        string     `json:"contact"`
	Website        string     `json:"website"`
	Map            [2]float64 `json:"map"`
	Note           string     `json:"note"`
	Status         string     `json:"status"`
	Type           string     `json:"type"`
	OwnerID        string     `json:"ownerId"`
}

// Fields flattens the payload into document-store fields. Every key is always
// written so approved records share one shape regardless of how sparse the
// submission was.
func (p RestaurantPayload) Fields() map[string]any {
	return map[string]any{
		"name":           p.Name,
		"businessName":   p.BusinessName,
		"registrationNo": p.RegistrationNo,
		"cuisines":       p.Cuisines,
		"theme":          p.Theme,
		"ambience":       p.Ambience,
		"location":       p.Location,
		"address":        p.Address,
		"city":           p.City,
		"state":          p.State,
		"postcode":       p.Postcode,
		"phone":          p.Phone,
		"email":          p.Email,
		"contact":        p.Contact,
		"website":        p.Website,
		"map":            []float64{p.Map[0], p.Map[1]},
		"note":           p.Note,
		"status":         p.Status,
		"type":           p.Type,
		"ownerId":        p.OwnerID,
	}
}

// AdminEvent is published to Kafka after a moderation action completes.
type AdminEvent struct {
	Type       string    `json:"type"`
	Collection string    `json:"collection"`
	DocumentID string    `json:"document_id"`
	Name       string    `json:"name,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
