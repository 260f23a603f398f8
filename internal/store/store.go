// Package store implements the row-oriented persistence boundary on top of
// Postgres: one collection per named table, insert returning the stored row,
// partial-column updates, and explicit sentinel errors for callers to check.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"sanctum/internal/models"
	"sanctum/internal/venue"
)

var (
	// ErrAdminExists signals the email is already registered.
	ErrAdminExists = errors.New("admin already exists")
	// ErrInvalidCredentials indicates a login failure.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrVenueNotFound is returned when a venue row does not exist.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrOwnerNotFound is returned when an owner row does not exist.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrEnquiryNotFound is returned when an enquiry row does not exist.
	ErrEnquiryNotFound = errors.New("enquiry not found")
	// ErrNoColumns is returned when an update carries no assignments.
	ErrNoColumns = errors.New("no columns to update")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// bindValue converts a mapped column value into a driver-ready argument.
// List-valued columns travel as Postgres arrays; nested collections and the
// wellness bed configuration travel as jsonb.
func bindValue(v any) (any, error) {
	switch x := v.(type) {
	case nil, string, bool, int, int64, float64:
		return x, nil
	case venue.Status:
		return string(x), nil
	case venue.Tier:
		return string(x), nil
	case models.OwnerStatus:
		return string(x), nil
	case models.EnquiryStatus:
		return string(x), nil
	case []string:
		return pq.Array(x), nil
	case []venue.Service, []venue.Package, []venue.AddOn,
		[]venue.Room, []venue.Practitioner, []venue.PricingTier, venue.BedConfig:
		b, err := json.Marshal(x)
		if err != nil {
			return nil, fmt.Errorf("marshal column value: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported column value type %T", v)
	}
}

// buildSet renders a deterministic SET clause (columns sorted by name) and
// the matching argument list, starting placeholders at $1.
func buildSet(cols map[string]any) (string, []any, error) {
	if len(cols) == 0 {
		return "", nil, ErrNoColumns
	}

	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)

	assignments := make([]string, len(names))
	args := make([]any, len(names))
	for i, name := range names {
		arg, err := bindValue(cols[name])
		if err != nil {
			return "", nil, fmt.Errorf("column %s: %w", name, err)
		}
		assignments[i] = fmt.Sprintf("%s = $%d", name, i+1)
		args[i] = arg
	}
	return strings.Join(assignments, ", "), args, nil
}

// placeholders renders "$1, $2, ..., $n".
func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// unmarshalList decodes a jsonb column into a typed slice, treating NULL and
// empty input as an empty list.
func unmarshalList[T any](data []byte, out *[]T) error {
	if len(data) == 0 {
		*out = []T{}
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	if *out == nil {
		*out = []T{}
	}
	return nil
}
