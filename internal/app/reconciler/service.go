// Package reconciler keeps the denormalized owner and venue linkage in step
// when a venue is created through the combined registration flow.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"sanctum/internal/models"
	"sanctum/internal/venue"
)

// ErrOwnerLink signals that the venue was created but the owner record could
// not be linked. The venue is not rolled back; the operator can retry the
// link manually.
var ErrOwnerLink = errors.New("venue created but owner link failed")

// Venues is the venue-side dependency of the combined creation flow.
type Venues interface {
	Add(ctx context.Context, v venue.Venue) (venue.Venue, error)
}

// Owners is the owner-side dependency of the combined creation flow.
type Owners interface {
	FindByEmail(email string) (models.VenueOwner, bool)
	Add(ctx context.Context, o models.VenueOwner) (models.VenueOwner, error)
	Update(ctx context.Context, id string, patch models.OwnerPatch) (models.VenueOwner, error)
}

// Service runs the combined venue-plus-owner creation flow.
type Service interface {
	CreateVenueWithOwner(ctx context.Context, v venue.Venue) (venue.Venue, error)
}

type service struct {
	venues Venues
	owners Owners
}

// New constructs a Service over the venue and owner stores.
func New(venues Venues, owners Owners) Service {
	return &service{venues: venues, owners: owners}
}

// CreateVenueWithOwner creates the venue, then finds or creates the matching
// owner record by case-insensitive email and links the venue name to it. A
// linkage failure returns the created venue together with ErrOwnerLink.
func (s *service) CreateVenueWithOwner(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	created, err := s.venues.Add(ctx, v)
	if err != nil {
		return venue.Venue{}, err
	}

	if err := s.linkOwner(ctx, created); err != nil {
		return created, fmt.Errorf("%w: %v", ErrOwnerLink, err)
	}
	return created, nil
}

func (s *service) linkOwner(ctx context.Context, v venue.Venue) error {
	existing, found := s.owners.FindByEmail(v.Email)
	if !found {
		_, err := s.owners.Add(ctx, models.VenueOwner{
			Name:       v.Owner,
			Email:      v.Email,
			Phone:      v.Phone,
			Location:   v.Location,
			Venues:     1,
			Status:     models.OwnerActive,
			Revenue:    "$0",
			VenueNames: []string{v.Name},
		})
		return err
	}

	// Both the name append and the count increment sit behind the same
	// membership check, otherwise repeated creations drift the counter.
	if slices.Contains(existing.VenueNames, v.Name) {
		return nil
	}

	names := append(slices.Clone(existing.VenueNames), v.Name)
	count := existing.Venues + 1
	_, err := s.owners.Update(ctx, existing.ID, models.OwnerPatch{
		Venues:     &count,
		VenueNames: &names,
	})
	return err
}
