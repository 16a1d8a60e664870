package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgresStore keeps every collection in a single documents table with a
// JSONB payload, keyed by (collection, id) so a duplicate create fails at the
// database instead of overwriting.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			data JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, id)
		)`,
		`CREATE INDEX IF NOT EXISTS documents_data_idx ON documents USING gin (data)`,
	}

	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, id string) (Document, error) {
	doc := Document{ID: id}
	var data []byte
	err := s.DB.QueryRowContext(ctx, `
		SELECT data, created_at FROM documents
		WHERE collection = $1 AND id = $2
	`, collection, id).Scan(&data, &doc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, err
	}
	if err := json.Unmarshal(data, &doc.Fields); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func (s *PostgresStore) Create(ctx context.Context, collection, id string, fields map[string]any) (Document, error) {
	if id == "" {
		id = NewID()
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return Document{}, err
	}

	doc := Document{ID: id, Fields: fields}
	err = s.DB.QueryRowContext(ctx, `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, collection, id, data).Scan(&doc.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return Document{}, ErrConflict
		}
		return Document{}, err
	}
	return doc, nil
}

func (s *PostgresStore) Update(ctx context.Context, collection, id string, patch map[string]any) error {
	data, err := json.Marshal(patch)
	if err != nil {
		return err
	}

	result, err := s.DB.ExecContext(ctx, `
		UPDATE documents SET data = data || $3::jsonb
		WHERE collection = $1 AND id = $2
	`, collection, id, data)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	result, err := s.DB.ExecContext(ctx, `
		DELETE FROM documents WHERE collection = $1 AND id = $2
	`, collection, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, collection string, filters map[string]any, limit int) ([]Document, error) {
	query := `SELECT id, data, created_at FROM documents WHERE collection = $1`
	args := []any{collection}

	if len(filters) > 0 {
		filter, err := json.Marshal(filters)
		if err != nil {
			return nil, err
		}
		query += ` AND data @> $2::jsonb`
		args = append(args, filter)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := []Document{}
	for rows.Next() {
		var doc Document
		var data []byte
		if err := rows.Scan(&doc.ID, &data, &doc.CreatedAt); err != nil {
			continue
		}
		if err := json.Unmarshal(data, &doc.Fields); err != nil {
			continue
		}
		documents = append(documents, doc)
	}
	return documents, rows.Err()
}

func (s *PostgresStore) Count(ctx context.Context, collection string, filters map[string]any) (int, error) {
	query := `SELECT COUNT(*) FROM documents WHERE collection = $1`
	args := []any{collection}

	if len(filters) > 0 {
		filter, err := json.Marshal(filters)
		if err != nil {
			return 0, err
		}
		query += ` AND data @> $2::jsonb`
		args = append(args, filter)
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

var _ Store = (*PostgresStore)(nil)
