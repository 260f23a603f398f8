// Package venues holds the venue workflows: a write-through cache over the
// two category tables, presenting a single unified collection.
package venues

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"sanctum/internal/store"
	"sanctum/internal/venue"
)

// RowStore captures the persistence needs for venue workflows. Each category
// lives in its own table with its own row shape.
type RowStore interface {
	ListWellnessVenues(ctx context.Context) ([]venue.WellnessRow, error)
	ListRetreatVenues(ctx context.Context) ([]venue.RetreatRow, error)
	InsertWellnessVenue(ctx context.Context, r venue.WellnessRow) (venue.WellnessRow, error)
	InsertRetreatVenue(ctx context.Context, r venue.RetreatRow) (venue.RetreatRow, error)
	UpdateWellnessVenue(ctx context.Context, id string, cols map[string]any) (venue.WellnessRow, error)
	UpdateRetreatVenue(ctx context.Context, id string, cols map[string]any) (venue.RetreatRow, error)
	DeleteWellnessVenue(ctx context.Context, id string) error
	DeleteRetreatVenue(ctx context.Context, id string) error
}

// Service coordinates venue operations against the unified collection.
type Service interface {
	FetchAll(ctx context.Context) ([]venue.Venue, error)
	Add(ctx context.Context, v venue.Venue) (venue.Venue, error)
	Update(ctx context.Context, id string, patch venue.Patch) (venue.Venue, error)
	Delete(ctx context.Context, id string) error
	Get(id string) (venue.Venue, bool)
	Cached() []venue.Venue
	Loaded() bool
}

type service struct {
	store RowStore

	mu     sync.RWMutex
	cache  []venue.Venue
	loaded bool
}

// New constructs a Service backed by the provided RowStore.
func New(store RowStore) Service {
	return &service{store: store}
}

// FetchAll reads both category tables in parallel, maps every row into the
// unified shape, and replaces the cache. Rows are ordered newest first with
// the id as a deterministic tiebreak. On failure the previous cache is kept.
func (s *service) FetchAll(ctx context.Context) ([]venue.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		wellness []venue.WellnessRow
		retreats []venue.RetreatRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		wellness, err = s.store.ListWellnessVenues(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		retreats, err = s.store.ListRetreatVenues(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]venue.Venue, 0, len(wellness)+len(retreats))
	for _, r := range wellness {
		merged = append(merged, venue.FromWellnessRow(r))
	}
	for _, r := range retreats {
		merged = append(merged, venue.FromRetreatRow(r))
	}
	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].Created.Equal(merged[j].Created) {
			return merged[i].Created.After(merged[j].Created)
		}
		return merged[i].ID < merged[j].ID
	})

	s.mu.Lock()
	s.cache = merged
	s.loaded = true
	s.mu.Unlock()
	return merged, nil
}

// Add routes the venue to its category table, assigns ids to nested rooms and
// practitioners, and prepends the stored result to the cache.
func (s *service) Add(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	if err := ctx.Err(); err != nil {
		return venue.Venue{}, err
	}

	for i := range v.Rooms {
		if v.Rooms[i].ID == "" {
			v.Rooms[i].ID = uuid.New().String()
		}
	}
	for i := range v.Practitioners {
		if v.Practitioners[i].ID == "" {
			v.Practitioners[i].ID = uuid.New().String()
		}
	}

	var stored venue.Venue
	switch v.Type {
	case venue.CategoryRetreat:
		r, err := s.store.InsertRetreatVenue(ctx, venue.ToRetreatRow(v))
		if err != nil {
			return venue.Venue{}, err
		}
		stored = venue.FromRetreatRow(r)
	default:
		r, err := s.store.InsertWellnessVenue(ctx, venue.ToWellnessRow(v))
		if err != nil {
			return venue.Venue{}, err
		}
		stored = venue.FromWellnessRow(r)
	}

	s.mu.Lock()
	s.cache = append([]venue.Venue{stored}, s.cache...)
	s.mu.Unlock()
	return stored, nil
}

// Update applies a partial patch. The target's category decides which table
// is written and which patch fields apply; fields belonging to the other
// category are dropped.
func (s *service) Update(ctx context.Context, id string, patch venue.Patch) (venue.Venue, error) {
	if err := ctx.Err(); err != nil {
		return venue.Venue{}, err
	}

	current, ok := s.Get(id)
	if !ok {
		return venue.Venue{}, store.ErrVenueNotFound
	}

	var updated venue.Venue
	switch current.Type {
	case venue.CategoryRetreat:
		r, err := s.store.UpdateRetreatVenue(ctx, id, venue.RetreatPatchColumns(patch))
		if err != nil {
			return venue.Venue{}, err
		}
		updated = venue.FromRetreatRow(r)
	default:
		r, err := s.store.UpdateWellnessVenue(ctx, id, venue.WellnessPatchColumns(patch))
		if err != nil {
			return venue.Venue{}, err
		}
		updated = venue.FromWellnessRow(r)
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

// Delete removes the venue from its category table, then from the cache.
func (s *service) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	current, ok := s.Get(id)
	if !ok {
		return store.ErrVenueNotFound
	}

	var err error
	if current.Type == venue.CategoryRetreat {
		err = s.store.DeleteRetreatVenue(ctx, id)
	} else {
		err = s.store.DeleteWellnessVenue(ctx, id)
	}
	if err != nil {
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

// Get returns the cached venue with the given id.
func (s *service) Get(id string) (venue.Venue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.cache {
		if v.ID == id {
			return v, true
		}
	}
	return venue.Venue{}, false
}

// Loaded reports whether the cache has been filled at least once, which
// distinguishes a cold start from a genuinely empty collection.
func (s *service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Cached returns a copy of the current cache without touching the database.
func (s *service) Cached() []venue.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]venue.Venue, len(s.cache))
	copy(out, s.cache)
	return out
}
