package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"sanctum/internal/models"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func ownerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "location", "venues", "status", "revenue",
		"bio", "company", "website", "venue_names", "joined_at",
	})
}

func TestListOwners(t *testing.T) {
	s, mock := newMockStore(t)

	joined := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM venue_owners`).
		WillReturnRows(ownerRows().
			AddRow("o1", "Sarah Chen", "sarah@serenity.com", "+61 400 111 222", "Byron Bay, NSW",
				2, "Active", "$24,500", "Wellness entrepreneur", "Serenity Group", "serenity.com",
				"{Serenity Springs,Soak Wellness}", joined))

	owners, err := s.ListOwners(context.Background())
	if err != nil {
		t.Fatalf("ListOwners: %v", err)
	}
	if len(owners) != 1 {
		t.Fatalf("expected 1 owner, got %d", len(owners))
	}
	o := owners[0]
	if o.Name != "Sarah Chen" || o.Venues != 2 {
		t.Fatalf("unexpected owner: %+v", o)
	}
	if len(o.VenueNames) != 2 || o.VenueNames[0] != "Serenity Springs" {
		t.Fatalf("unexpected venue names: %v", o.VenueNames)
	}
	if o.Status != models.OwnerActive {
		t.Fatalf("unexpected status: %s", o.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListOwnersDefaultsVenueNames(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM venue_owners`).
		WillReturnRows(ownerRows().
			AddRow("o2", "Marcus Webb", "marcus@example.com", "", "", 0, "Pending", "$0",
				"", "", "", "{}", time.Now()))

	owners, err := s.ListOwners(context.Background())
	if err != nil {
		t.Fatalf("ListOwners: %v", err)
	}
	if owners[0].VenueNames == nil {
		t.Fatal("expected non-nil venue names slice")
	}
}

func TestInsertOwnerAssignsIdentity(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO venue_owners`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	o, err := s.InsertOwner(context.Background(), models.VenueOwner{
		Name:   "Sarah Chen",
		Email:  "sarah@serenity.com",
		Status: models.OwnerActive,
	})
	if err != nil {
		t.Fatalf("InsertOwner: %v", err)
	}
	if o.ID == "" {
		t.Fatal("expected assigned id")
	}
	if o.Joined.IsZero() {
		t.Fatal("expected assigned joined timestamp")
	}
	if o.VenueNames == nil {
		t.Fatal("expected venue names defaulted to empty slice")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateOwnerReturnsRow(t *testing.T) {
	s, mock := newMockStore(t)

	joined := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`UPDATE venue_owners`).
		WithArgs("Melbourne, VIC", "Approved", "o1").
		WillReturnRows(ownerRows().
			AddRow("o1", "Sarah Chen", "sarah@serenity.com", "", "Melbourne, VIC",
				1, "Approved", "$0", "", "", "", "{}", joined))

	o, err := s.UpdateOwner(context.Background(), "o1", map[string]any{
		"location": "Melbourne, VIC",
		"status":   models.OwnerStatus("Approved"),
	})
	if err != nil {
		t.Fatalf("UpdateOwner: %v", err)
	}
	if o.Location != "Melbourne, VIC" {
		t.Fatalf("unexpected location: %s", o.Location)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateOwnerNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`UPDATE venue_owners`).
		WillReturnRows(ownerRows())

	_, err := s.UpdateOwner(context.Background(), "missing", map[string]any{"location": "Perth"})
	if !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestDeleteOwnerNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM venue_owners`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteOwner(context.Background(), "missing"); !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}
