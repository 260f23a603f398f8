package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sanctum/internal/models"
)

const enquiryColumns = `id, guest_name, email, venue_name, enquiry_type, status, priority, created_at`

func scanEnquiry(sc rowScanner) (models.Enquiry, error) {
	var e models.Enquiry
	err := sc.Scan(&e.ID, &e.Guest, &e.Email, &e.Venue, &e.Type, &e.Status, &e.Priority, &e.Created)
	if err != nil {
		return models.Enquiry{}, err
	}
	return e, nil
}

// ListEnquiries returns every enquiry, newest first.
func (s *Store) ListEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM enquiries
		ORDER BY created_at DESC
	`, enquiryColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select enquiries: %w", err)
	}
	defer rows.Close()

	var enquiries []models.Enquiry
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan enquiry: %w", err)
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, rows.Err()
}

// InsertEnquiry stores a new enquiry, assigning id and timestamp.
func (s *Store) InsertEnquiry(ctx context.Context, e models.Enquiry) (models.Enquiry, error) {
	e.ID = uuid.New().String()
	e.Created = time.Now().UTC()

	query := fmt.Sprintf(`
		INSERT INTO enquiries (%s)
		VALUES (%s)
	`, enquiryColumns, placeholders(8))

	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.Guest, e.Email, e.Venue, e.Type, string(e.Status), e.Priority, e.Created,
	)
	if err != nil {
		return models.Enquiry{}, fmt.Errorf("insert enquiry: %w", err)
	}
	return e, nil
}

// UpdateEnquiryStatus moves an enquiry to the given state and returns the
// updated record.
func (s *Store) UpdateEnquiryStatus(ctx context.Context, id string, status models.EnquiryStatus) (models.Enquiry, error) {
	query := fmt.Sprintf(`
		UPDATE enquiries
		SET status = $1
		WHERE id = $2
		RETURNING %s
	`, enquiryColumns)

	e, err := scanEnquiry(s.db.QueryRowContext(ctx, query, string(status), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Enquiry{}, ErrEnquiryNotFound
	}
	if err != nil {
		return models.Enquiry{}, fmt.Errorf("update enquiry status: %w", err)
	}
	return e, nil
}
