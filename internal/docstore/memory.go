package docstore

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRecord struct {
	doc Document
	seq int
}

// MemoryStore is an in-memory Store for tests and ephemeral environments.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]map[string]memoryRecord
	nextSeq     int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: map[string]map[string]memoryRecord{}}
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.collections[collection][id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return cloneDocument(record.doc), nil
}

func (s *MemoryStore) Create(ctx context.Context, collection, id string, fields map[string]any) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = NewID()
	}
	if _, exists := s.collections[collection][id]; exists {
		return Document{}, ErrConflict
	}

	if s.collections[collection] == nil {
		s.collections[collection] = map[string]memoryRecord{}
	}
	doc := Document{ID: id, Fields: cloneFields(fields), CreatedAt: time.Now().UTC()}
	s.nextSeq++
	s.collections[collection][id] = memoryRecord{doc: doc, seq: s.nextSeq}
	return cloneDocument(doc), nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, patch map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for key, value := range patch {
		record.doc.Fields[key] = value
	}
	s.collections[collection][id] = record
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return ErrNotFound
	}
	delete(s.collections[collection], id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, collection string, filters map[string]any, limit int) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := []memoryRecord{}
	for _, record := range s.collections[collection] {
		if matchesFilters(record.doc.Fields, filters) {
			records = append(records, record)
		}
	}
	// Newest first; insertion order stands in for creation time.
	sort.Slice(records, func(i, j int) bool { return records[i].seq > records[j].seq })

	documents := []Document{}
	for _, record := range records {
		if limit > 0 && len(documents) >= limit {
			break
		}
		documents = append(documents, cloneDocument(record.doc))
	}
	return documents, nil
}

func (s *MemoryStore) Count(ctx context.Context, collection string, filters map[string]any) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.collections[collection] {
		if matchesFilters(record.doc.Fields, filters) {
			count++
		}
	}
	return count, nil
}

func matchesFilters(fields, filters map[string]any) bool {
	for key, want := range filters {
		if fields[key] != want {
			return false
		}
	}
	return true
}

func cloneFields(fields map[string]any) map[string]any {
	clone := make(map[string]any, len(fields))
	for key, value := range fields {
		clone[key] = value
	}
	return clone
}

func cloneDocument(doc Document) Document {
	doc.Fields = cloneFields(doc.Fields)
	return doc
}

var _ Store = (*MemoryStore)(nil)
