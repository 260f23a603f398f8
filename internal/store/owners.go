package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"sanctum/internal/models"
)

const ownerColumns = `id, name, email, phone, location, venues, status, revenue,
	bio, company, website, venue_names, joined_at`

const ownerColumnCount = 13

func scanOwner(sc rowScanner) (models.VenueOwner, error) {
	var o models.VenueOwner
	err := sc.Scan(
		&o.ID, &o.Name, &o.Email, &o.Phone, &o.Location, &o.Venues, &o.Status, &o.Revenue,
		&o.Bio, &o.Company, &o.Website, pq.Array(&o.VenueNames), &o.Joined,
	)
	if err != nil {
		return models.VenueOwner{}, err
	}
	if o.VenueNames == nil {
		o.VenueNames = []string{}
	}
	return o, nil
}

// ListOwners returns every owner, newest first.
func (s *Store) ListOwners(ctx context.Context) ([]models.VenueOwner, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM venue_owners
		ORDER BY joined_at DESC
	`, ownerColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select owners: %w", err)
	}
	defer rows.Close()

	var owners []models.VenueOwner
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

// InsertOwner stores a new owner. The id and joined timestamp are assigned
// here.
func (s *Store) InsertOwner(ctx context.Context, o models.VenueOwner) (models.VenueOwner, error) {
	o.ID = uuid.New().String()
	o.Joined = time.Now().UTC()
	if o.VenueNames == nil {
		o.VenueNames = []string{}
	}

	query := fmt.Sprintf(`
		INSERT INTO venue_owners (%s)
		VALUES (%s)
	`, ownerColumns, placeholders(ownerColumnCount))

	_, err := s.db.ExecContext(ctx, query,
		o.ID, o.Name, o.Email, o.Phone, o.Location, o.Venues, string(o.Status), o.Revenue,
		o.Bio, o.Company, o.Website, pq.Array(o.VenueNames), o.Joined,
	)
	if err != nil {
		return models.VenueOwner{}, fmt.Errorf("insert owner: %w", err)
	}
	return o, nil
}

// UpdateOwner applies a partial column map and returns the full updated row.
func (s *Store) UpdateOwner(ctx context.Context, id string, cols map[string]any) (models.VenueOwner, error) {
	set, args, err := buildSet(cols)
	if err != nil {
		return models.VenueOwner{}, err
	}

	query := fmt.Sprintf(`
		UPDATE venue_owners
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, set, len(args)+1, ownerColumns)
	args = append(args, id)

	o, err := scanOwner(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VenueOwner{}, ErrOwnerNotFound
	}
	if err != nil {
		return models.VenueOwner{}, fmt.Errorf("update owner: %w", err)
	}
	return o, nil
}

// DeleteOwner removes an owner.
func (s *Store) DeleteOwner(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM venue_owners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete owner: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrOwnerNotFound
	}
	return nil
}
