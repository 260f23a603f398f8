package reconciler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sanctum/internal/models"
	"sanctum/internal/venue"
)

type stubVenues struct {
	addErr error
	next   int
}

func (s *stubVenues) Add(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	if s.addErr != nil {
		return venue.Venue{}, s.addErr
	}
	s.next++
	v.ID = "v" + string(rune('0'+s.next))
	return v, nil
}

type stubOwners struct {
	owners []models.VenueOwner

	addErr    error
	updateErr error
	updates   int
}

func (s *stubOwners) FindByEmail(email string) (models.VenueOwner, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, o := range s.owners {
		if strings.ToLower(o.Email) == email {
			return o, true
		}
	}
	return models.VenueOwner{}, false
}

func (s *stubOwners) Add(ctx context.Context, o models.VenueOwner) (models.VenueOwner, error) {
	if s.addErr != nil {
		return models.VenueOwner{}, s.addErr
	}
	o.ID = "o1"
	s.owners = append(s.owners, o)
	return o, nil
}

func (s *stubOwners) Update(ctx context.Context, id string, patch models.OwnerPatch) (models.VenueOwner, error) {
	if s.updateErr != nil {
		return models.VenueOwner{}, s.updateErr
	}
	s.updates++
	for i := range s.owners {
		if s.owners[i].ID == id {
			if patch.Venues != nil {
				s.owners[i].Venues = *patch.Venues
			}
			if patch.VenueNames != nil {
				s.owners[i].VenueNames = *patch.VenueNames
			}
			return s.owners[i], nil
		}
	}
	return models.VenueOwner{}, errors.New("owner not found")
}

func TestCreateVenueWithOwnerSequence(t *testing.T) {
	venuesStub := &stubVenues{}
	ownersStub := &stubOwners{}
	svc := New(venuesStub, ownersStub)

	ctx := context.Background()
	if _, err := svc.CreateVenueWithOwner(ctx, venue.Venue{Name: "V1", Owner: "Ana", Email: "a@x.com"}); err != nil {
		t.Fatalf("create V1: %v", err)
	}
	if _, err := svc.CreateVenueWithOwner(ctx, venue.Venue{Name: "V2", Owner: "Ana", Email: "a@x.com"}); err != nil {
		t.Fatalf("create V2: %v", err)
	}

	if len(ownersStub.owners) != 1 {
		t.Fatalf("expected exactly one owner record, got %d", len(ownersStub.owners))
	}
	o := ownersStub.owners[0]
	if o.Venues != 2 {
		t.Fatalf("expected venues = 2, got %d", o.Venues)
	}
	if len(o.VenueNames) != 2 || o.VenueNames[0] != "V1" || o.VenueNames[1] != "V2" {
		t.Fatalf("unexpected venue names: %v", o.VenueNames)
	}
	if o.Status != models.OwnerActive {
		t.Fatalf("expected new owner Active, got %s", o.Status)
	}
}

func TestCreateVenueWithOwnerIsIdempotentPerName(t *testing.T) {
	venuesStub := &stubVenues{}
	ownersStub := &stubOwners{}
	svc := New(venuesStub, ownersStub)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := svc.CreateVenueWithOwner(ctx, venue.Venue{Name: "V1", Owner: "Ana", Email: "a@x.com"}); err != nil {
			t.Fatalf("create attempt %d: %v", i+1, err)
		}
	}

	o := ownersStub.owners[0]
	if len(o.VenueNames) != 1 || o.VenueNames[0] != "V1" {
		t.Fatalf("expected single V1 entry, got %v", o.VenueNames)
	}
	if o.Venues != 1 {
		t.Fatalf("expected venues to stay at 1, got %d", o.Venues)
	}
	if ownersStub.updates != 0 {
		t.Fatalf("expected no owner update for repeated name, got %d", ownersStub.updates)
	}
}

func TestCreateVenueWithOwnerMatchesEmailCaseInsensitively(t *testing.T) {
	ownersStub := &stubOwners{owners: []models.VenueOwner{
		{ID: "o9", Email: "A@X.com", Venues: 1, VenueNames: []string{"V1"}},
	}}
	svc := New(&stubVenues{}, ownersStub)

	if _, err := svc.CreateVenueWithOwner(context.Background(), venue.Venue{Name: "V2", Email: "a@x.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(ownersStub.owners) != 1 {
		t.Fatalf("expected no new owner, got %d", len(ownersStub.owners))
	}
	if ownersStub.owners[0].Venues != 2 {
		t.Fatalf("expected venues = 2, got %d", ownersStub.owners[0].Venues)
	}
}

func TestCreateVenueWithOwnerSurfacesLinkFailure(t *testing.T) {
	ownersStub := &stubOwners{addErr: errors.New("insert failed")}
	svc := New(&stubVenues{}, ownersStub)

	created, err := svc.CreateVenueWithOwner(context.Background(), venue.Venue{Name: "V1", Email: "a@x.com"})
	if !errors.Is(err, ErrOwnerLink) {
		t.Fatalf("expected ErrOwnerLink, got %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected created venue returned alongside the warning")
	}
}

func TestCreateVenueWithOwnerVenueFailureStopsFlow(t *testing.T) {
	venuesStub := &stubVenues{addErr: errors.New("insert failed")}
	ownersStub := &stubOwners{}
	svc := New(venuesStub, ownersStub)

	if _, err := svc.CreateVenueWithOwner(context.Background(), venue.Venue{Name: "V1", Email: "a@x.com"}); err == nil {
		t.Fatal("expected venue creation error")
	}
	if len(ownersStub.owners) != 0 {
		t.Fatal("owner must not be created when the venue insert fails")
	}
}
