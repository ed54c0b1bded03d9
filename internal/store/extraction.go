package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Extraction represents one archived feature vector.
type Extraction struct {
	ID         string    `json:"id"`
	Handedness string    `json:"handedness,omitempty"`
	Features   []float64 `json:"features"`
	CreatedAt  time.Time `json:"created_at"`
}

// ExtractionRepository provides CRUD operations for archived
// extraction results.
type ExtractionRepository struct {
	db *sql.DB
}

// Extractions returns the extraction repository for this store.
func (s *Store) Extractions() *ExtractionRepository {
	return &ExtractionRepository{db: s.db}
}

// Create inserts a new extraction record. The feature vector is stored
// as a JSON array so column order never leaks into the schema.
func (r *ExtractionRepository) Create(e *Extraction) error {
	features, err := json.Marshal(e.Features)
	if err != nil {
		return fmt.Errorf("failed to encode features: %w", err)
	}

	e.CreatedAt = time.Now()

	_, err = r.db.Exec(
		`INSERT INTO extractions (id, handedness, features, created_at) VALUES (?, ?, ?, ?)`,
		e.ID, e.Handedness, string(features), e.CreatedAt,
	)
	return err
}

// Get retrieves a single extraction by id.
// Returns ErrNotFound if no record exists.
func (r *ExtractionRepository) Get(id string) (*Extraction, error) {
	row := r.db.QueryRow(
		`SELECT id, handedness, features, created_at FROM extractions WHERE id = ?`,
		id,
	)

	e, err := scanExtraction(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List retrieves the most recent extractions, newest first.
// A non-positive limit returns all records.
func (r *ExtractionRepository) List(limit int) ([]Extraction, error) {
	query := `SELECT id, handedness, features, created_at FROM extractions ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []Extraction
	for rows.Next() {
		e, err := scanExtraction(rows.Scan)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return extractions, nil
}

// Delete removes an extraction by id.
// Returns ErrNotFound if no record exists.
func (r *ExtractionRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM extractions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// scanExtraction reads one row using the given scan function and
// decodes the JSON feature column.
func scanExtraction(scan func(...any) error) (*Extraction, error) {
	var e Extraction
	var features string

	if err := scan(&e.ID, &e.Handedness, &features, &e.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(features), &e.Features); err != nil {
		return nil, fmt.Errorf("failed to decode features: %w", err)
	}

	return &e, nil
}
