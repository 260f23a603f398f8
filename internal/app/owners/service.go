// Package owners holds the venue-owner workflows, cached in memory alongside
// the venue collection.
package owners

import (
	"context"
	"strings"
	"sync"

	"sanctum/internal/models"
	"sanctum/internal/store"
)

// Store captures the persistence needs for owner workflows.
type Store interface {
	ListOwners(ctx context.Context) ([]models.VenueOwner, error)
	InsertOwner(ctx context.Context, o models.VenueOwner) (models.VenueOwner, error)
	UpdateOwner(ctx context.Context, id string, cols map[string]any) (models.VenueOwner, error)
	DeleteOwner(ctx context.Context, id string) error
}

// Service coordinates owner operations.
type Service interface {
	FetchAll(ctx context.Context) ([]models.VenueOwner, error)
	Add(ctx context.Context, o models.VenueOwner) (models.VenueOwner, error)
	Update(ctx context.Context, id string, patch models.OwnerPatch) (models.VenueOwner, error)
	Delete(ctx context.Context, id string) error
	Get(id string) (models.VenueOwner, bool)
	FindByEmail(email string) (models.VenueOwner, bool)
	Cached() []models.VenueOwner
}

type service struct {
	store Store

	mu    sync.RWMutex
	cache []models.VenueOwner
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

// FetchAll reloads the owner collection and replaces the cache. On failure
// the previous cache is kept.
func (s *service) FetchAll(ctx context.Context) ([]models.VenueOwner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	owners, err := s.store.ListOwners(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache = owners
	s.mu.Unlock()
	return owners, nil
}

// Add stores a new owner and prepends it to the cache.
func (s *service) Add(ctx context.Context, o models.VenueOwner) (models.VenueOwner, error) {
	if err := ctx.Err(); err != nil {
		return models.VenueOwner{}, err
	}

	stored, err := s.store.InsertOwner(ctx, o)
	if err != nil {
		return models.VenueOwner{}, err
	}

	s.mu.Lock()
	s.cache = append([]models.VenueOwner{stored}, s.cache...)
	s.mu.Unlock()
	return stored, nil
}

// Update applies a partial patch and replaces the cached entry.
func (s *service) Update(ctx context.Context, id string, patch models.OwnerPatch) (models.VenueOwner, error) {
	if err := ctx.Err(); err != nil {
		return models.VenueOwner{}, err
	}

	updated, err := s.store.UpdateOwner(ctx, id, patch.Columns())
	if err != nil {
		return models.VenueOwner{}, err
	}

	s.mu.Lock()
	for i := range s.cache {
		if s.cache[i].ID == id {
			s.cache[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the owner from persistence, then from the cache.
func (s *service) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, ok := s.Get(id); !ok {
		return store.ErrOwnerNotFound
	}
	if err := s.store.DeleteOwner(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.cache {
		if s.cache[i].ID == id {
			s.cache = append(s.cache[:i], s.cache[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// Get returns the cached owner with the given id.
func (s *service) Get(id string) (models.VenueOwner, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.cache {
		if o.ID == id {
			return o, true
		}
	}
	return models.VenueOwner{}, false
}

// FindByEmail returns the cached owner with the given email, compared
// case-insensitively.
func (s *service) FindByEmail(email string) (models.VenueOwner, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.cache {
		if strings.ToLower(o.Email) == email {
			return o, true
		}
	}
	return models.VenueOwner{}, false
}

// Cached returns a copy of the current cache without touching the database.
func (s *service) Cached() []models.VenueOwner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.VenueOwner, len(s.cache))
	copy(out, s.cache)
	return out
}
