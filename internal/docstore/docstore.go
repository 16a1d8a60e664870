package docstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("document not found")
	ErrConflict = errors.New("document already exists")
)

// Document is a schema-light record identified by an opaque string id.
type Document struct {
	ID        string         `json:"id"`
	Fields    map[string]any `json:"fields"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Store is the request/response boundary to the document store. Create fails
// with ErrConflict when the id already exists; it never overwrites. Filters
// match documents whose fields contain every given key/value pair. List
// returns newest documents first.
type Store interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	Create(ctx context.Context, collection, id string, fields map[string]any) (Document, error)
	Update(ctx context.Context, collection, id string, patch map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	List(ctx context.Context, collection string, filters map[string]any, limit int) ([]Document, error)
	Count(ctx context.Context, collection string, filters map[string]any) (int, error)
}

// NewID returns a random opaque document id.
func NewID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return hex.EncodeToString([]byte(time.Now().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(buf)
}
