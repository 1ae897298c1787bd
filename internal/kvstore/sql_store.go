package kvstore

import (
	"database/sql"
	"fmt"

	"questacademy/internal/database"
)

// SQLStore persists key-value pairs in the kv table.
type SQLStore struct {
	db *database.DB
}

// NewSQLStore creates a store backed by the given database connection.
func NewSQLStore(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(key string) (string, bool, error) {
	var value string
	query := `SELECT v FROM kv WHERE k = ?`
	err := s.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) Set(key, value string) error {
	query := s.db.Dialect.UpsertKV()
	if _, err := s.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Remove(key string) error {
	query := `DELETE FROM kv WHERE k = ?`
	if _, err := s.db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}
