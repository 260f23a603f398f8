package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"sanctum/internal/venue"
)

// wellnessColumns is the full column list of the wellness_venues table, in
// the order every SELECT and RETURNING clause uses.
const wellnessColumns = `id, name, location, short_loc, capacity, status, subscription,
	owner_name, owner_email, owner_phone, description, website,
	wellness_type, offers_therapeutic_services, has_accommodation,
	facilities_list, amenities, opening_time, closing_time, best_for, languages,
	wheelchair_accessible, is_available, hero_image, gallery_photos,
	services, packages, add_ons, pricing_tiers, individual_rooms, practitioners,
	bed_config, created_at`

const wellnessColumnCount = 33

// retreatColumns is the full column list of the retreat_venues table.
const retreatColumns = `id, name, location, short_loc, max_guests, status, subscription,
	owner_name, owner_email, owner_phone, description, website,
	retreat_type, hire_type, property_size_value, property_size_unit,
	min_guests, total_bedrooms, total_bathrooms,
	bed_config_king, bed_config_queen, bed_config_double, bed_config_single,
	bed_config_twin, bed_config_bunk, bed_config_sofa, bed_config_rollaway,
	check_in_time, check_out_time, early_check_in, late_check_out,
	children_allowed, pets_allowed, smoking_allowed,
	sanctum_vetted, featured_listing, instant_booking,
	retreat_styles, amenities, hero_image, gallery_photos,
	services, packages, add_ons, individual_rooms, practitioners, created_at`

const retreatColumnCount = 47

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWellnessRow(sc rowScanner) (venue.WellnessRow, error) {
	var (
		r                                  venue.WellnessRow
		services, packages, addOns         []byte
		pricingTiers, rooms, practitioners []byte
		bedConfig                          []byte
	)
	err := sc.Scan(
		&r.ID, &r.Name, &r.Location, &r.ShortLoc, &r.Capacity, &r.Status, &r.Subscription,
		&r.OwnerName, &r.OwnerEmail, &r.OwnerPhone, &r.Description, &r.Website,
		&r.WellnessType, &r.TherapeuticServices, &r.HasAccommodation,
		pq.Array(&r.FacilitiesList), pq.Array(&r.Amenities), &r.OpeningTime, &r.ClosingTime,
		pq.Array(&r.BestFor), pq.Array(&r.Languages),
		&r.WheelchairAccessible, &r.IsAvailable, &r.HeroImage, pq.Array(&r.GalleryPhotos),
		&services, &packages, &addOns, &pricingTiers, &rooms, &practitioners,
		&bedConfig, &r.CreatedAt,
	)
	if err != nil {
		return venue.WellnessRow{}, err
	}

	if err := unmarshalList(services, &r.Services); err != nil {
		return venue.WellnessRow{}, fmt.Errorf("decode services: %w", err)
	}
	if err := unmarshalList(packages, &r.Packages); err != nil {
		return venue.WellnessRow{}, fmt.Errorf("decode packages: %w", err)
	}
	if err := unmarshalList(addOns, &r.AddOns); err != nil {
		return venue.WellnessRow{}, fmt.Errorf("decode add_ons: %w", err)
	}
	if err := unmarshalList(pricingTiers, &r.PricingTiers); err != nil {
		return venue.WellnessRow{}, fmt.Errorf("decode pricing_tiers: %w", err)
	}
	if err := unmarshalList(rooms, &r.IndividualRooms); err != nil {
		return venue.WellnessRow{}, fmt.Errorf("decode individual_rooms: %w", err)
	}
	if err := unmarshalList(practitioners, &r.Practitioners); err != nil {
		return venue.WellnessRow{}, fmt.Errorf("decode practitioners: %w", err)
	}
	if len(bedConfig) > 0 {
		if err := json.Unmarshal(bedConfig, &r.BedConfig); err != nil {
			return venue.WellnessRow{}, fmt.Errorf("decode bed_config: %w", err)
		}
	}
	return r, nil
}

func scanRetreatRow(sc rowScanner) (venue.RetreatRow, error) {
	var (
		r                          venue.RetreatRow
		services, packages, addOns []byte
		rooms, practitioners       []byte
	)
	err := sc.Scan(
		&r.ID, &r.Name, &r.Location, &r.ShortLoc, &r.MaxGuests, &r.Status, &r.Subscription,
		&r.OwnerName, &r.OwnerEmail, &r.OwnerPhone, &r.Description, &r.Website,
		&r.RetreatType, &r.HireType, &r.PropertySizeValue, &r.PropertySizeUnit,
		&r.MinGuests, &r.TotalBedrooms, &r.TotalBathrooms,
		&r.BedConfigKing, &r.BedConfigQueen, &r.BedConfigDouble, &r.BedConfigSingle,
		&r.BedConfigTwin, &r.BedConfigBunk, &r.BedConfigSofa, &r.BedConfigRollaway,
		&r.CheckInTime, &r.CheckOutTime, &r.EarlyCheckIn, &r.LateCheckOut,
		&r.ChildrenAllowed, &r.PetsAllowed, &r.SmokingAllowed,
		&r.SanctumVetted, &r.FeaturedListing, &r.InstantBooking,
		pq.Array(&r.RetreatStyles), pq.Array(&r.Amenities), &r.HeroImage, pq.Array(&r.GalleryPhotos),
		&services, &packages, &addOns, &rooms, &practitioners, &r.CreatedAt,
	)
	if err != nil {
		return venue.RetreatRow{}, err
	}

	if err := unmarshalList(services, &r.Services); err != nil {
		return venue.RetreatRow{}, fmt.Errorf("decode services: %w", err)
	}
	if err := unmarshalList(packages, &r.Packages); err != nil {
		return venue.RetreatRow{}, fmt.Errorf("decode packages: %w", err)
	}
	if err := unmarshalList(addOns, &r.AddOns); err != nil {
		return venue.RetreatRow{}, fmt.Errorf("decode add_ons: %w", err)
	}
	if err := unmarshalList(rooms, &r.IndividualRooms); err != nil {
		return venue.RetreatRow{}, fmt.Errorf("decode individual_rooms: %w", err)
	}
	if err := unmarshalList(practitioners, &r.Practitioners); err != nil {
		return venue.RetreatRow{}, fmt.Errorf("decode practitioners: %w", err)
	}
	return r, nil
}

func wellnessArgs(r venue.WellnessRow) ([]any, error) {
	services, err := json.Marshal(r.Services)
	if err != nil {
		return nil, fmt.Errorf("marshal services: %w", err)
	}
	packages, err := json.Marshal(r.Packages)
	if err != nil {
		return nil, fmt.Errorf("marshal packages: %w", err)
	}
	addOns, err := json.Marshal(r.AddOns)
	if err != nil {
		return nil, fmt.Errorf("marshal add_ons: %w", err)
	}
	pricingTiers, err := json.Marshal(r.PricingTiers)
	if err != nil {
		return nil, fmt.Errorf("marshal pricing_tiers: %w", err)
	}
	rooms, err := json.Marshal(r.IndividualRooms)
	if err != nil {
		return nil, fmt.Errorf("marshal individual_rooms: %w", err)
	}
	practitioners, err := json.Marshal(r.Practitioners)
	if err != nil {
		return nil, fmt.Errorf("marshal practitioners: %w", err)
	}
	bedConfig, err := json.Marshal(r.BedConfig)
	if err != nil {
		return nil, fmt.Errorf("marshal bed_config: %w", err)
	}

	return []any{
		r.ID, r.Name, r.Location, r.ShortLoc, r.Capacity, r.Status, r.Subscription,
		r.OwnerName, r.OwnerEmail, r.OwnerPhone, r.Description, r.Website,
		r.WellnessType, r.TherapeuticServices, r.HasAccommodation,
		pq.Array(r.FacilitiesList), pq.Array(r.Amenities), r.OpeningTime, r.ClosingTime,
		pq.Array(r.BestFor), pq.Array(r.Languages),
		r.WheelchairAccessible, r.IsAvailable, r.HeroImage, pq.Array(r.GalleryPhotos),
		services, packages, addOns, pricingTiers, rooms, practitioners,
		bedConfig, r.CreatedAt,
	}, nil
}

func retreatArgs(r venue.RetreatRow) ([]any, error) {
	services, err := json.Marshal(r.Services)
	if err != nil {
		return nil, fmt.Errorf("marshal services: %w", err)
	}
	packages, err := json.Marshal(r.Packages)
	if err != nil {
		return nil, fmt.Errorf("marshal packages: %w", err)
	}
	addOns, err := json.Marshal(r.AddOns)
	if err != nil {
		return nil, fmt.Errorf("marshal add_ons: %w", err)
	}
	rooms, err := json.Marshal(r.IndividualRooms)
	if err != nil {
		return nil, fmt.Errorf("marshal individual_rooms: %w", err)
	}
	practitioners, err := json.Marshal(r.Practitioners)
	if err != nil {
		return nil, fmt.Errorf("marshal practitioners: %w", err)
	}

	return []any{
		r.ID, r.Name, r.Location, r.ShortLoc, r.MaxGuests, r.Status, r.Subscription,
		r.OwnerName, r.OwnerEmail, r.OwnerPhone, r.Description, r.Website,
		r.RetreatType, r.HireType, r.PropertySizeValue, r.PropertySizeUnit,
		r.MinGuests, r.TotalBedrooms, r.TotalBathrooms,
		r.BedConfigKing, r.BedConfigQueen, r.BedConfigDouble, r.BedConfigSingle,
		r.BedConfigTwin, r.BedConfigBunk, r.BedConfigSofa, r.BedConfigRollaway,
		r.CheckInTime, r.CheckOutTime, r.EarlyCheckIn, r.LateCheckOut,
		r.ChildrenAllowed, r.PetsAllowed, r.SmokingAllowed,
		r.SanctumVetted, r.FeaturedListing, r.InstantBooking,
		pq.Array(r.RetreatStyles), pq.Array(r.Amenities), r.HeroImage, pq.Array(r.GalleryPhotos),
		services, packages, addOns, rooms, practitioners, r.CreatedAt,
	}, nil
}

// ListWellnessVenues returns every wellness row, newest first.
func (s *Store) ListWellnessVenues(ctx context.Context) ([]venue.WellnessRow, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM wellness_venues
		ORDER BY created_at DESC
	`, wellnessColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select wellness venues: %w", err)
	}
	defer rows.Close()

	var result []venue.WellnessRow
	for rows.Next() {
		r, err := scanWellnessRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wellness venue: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// ListRetreatVenues returns every retreat row, newest first.
func (s *Store) ListRetreatVenues(ctx context.Context) ([]venue.RetreatRow, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM retreat_venues
		ORDER BY created_at DESC
	`, retreatColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select retreat venues: %w", err)
	}
	defer rows.Close()

	var result []venue.RetreatRow
	for rows.Next() {
		r, err := scanRetreatRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan retreat venue: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// InsertWellnessVenue stores a new wellness row. The id and creation
// timestamp are assigned here; whatever the caller set is overwritten.
func (s *Store) InsertWellnessVenue(ctx context.Context, r venue.WellnessRow) (venue.WellnessRow, error) {
	r.ID = uuid.New().String()
	r.CreatedAt = time.Now().UTC()

	args, err := wellnessArgs(r)
	if err != nil {
		return venue.WellnessRow{}, err
	}

	query := fmt.Sprintf(`
		INSERT INTO wellness_venues (%s)
		VALUES (%s)
	`, wellnessColumns, placeholders(wellnessColumnCount))

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return venue.WellnessRow{}, fmt.Errorf("insert wellness venue: %w", err)
	}
	return r, nil
}

// InsertRetreatVenue stores a new retreat row, assigning id and timestamp.
func (s *Store) InsertRetreatVenue(ctx context.Context, r venue.RetreatRow) (venue.RetreatRow, error) {
	r.ID = uuid.New().String()
	r.CreatedAt = time.Now().UTC()

	args, err := retreatArgs(r)
	if err != nil {
		return venue.RetreatRow{}, err
	}

	query := fmt.Sprintf(`
		INSERT INTO retreat_venues (%s)
		VALUES (%s)
	`, retreatColumns, placeholders(retreatColumnCount))

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return venue.RetreatRow{}, fmt.Errorf("insert retreat venue: %w", err)
	}
	return r, nil
}

// UpdateWellnessVenue applies a partial column map and returns the full
// updated row. Columns absent from the map keep their current values.
func (s *Store) UpdateWellnessVenue(ctx context.Context, id string, cols map[string]any) (venue.WellnessRow, error) {
	set, args, err := buildSet(cols)
	if err != nil {
		return venue.WellnessRow{}, err
	}

	query := fmt.Sprintf(`
		UPDATE wellness_venues
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, set, len(args)+1, wellnessColumns)
	args = append(args, id)

	r, err := scanWellnessRow(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return venue.WellnessRow{}, ErrVenueNotFound
	}
	if err != nil {
		return venue.WellnessRow{}, fmt.Errorf("update wellness venue: %w", err)
	}
	return r, nil
}

// UpdateRetreatVenue applies a partial column map and returns the full
// updated row.
func (s *Store) UpdateRetreatVenue(ctx context.Context, id string, cols map[string]any) (venue.RetreatRow, error) {
	set, args, err := buildSet(cols)
	if err != nil {
		return venue.RetreatRow{}, err
	}

	query := fmt.Sprintf(`
		UPDATE retreat_venues
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, set, len(args)+1, retreatColumns)
	args = append(args, id)

	r, err := scanRetreatRow(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return venue.RetreatRow{}, ErrVenueNotFound
	}
	if err != nil {
		return venue.RetreatRow{}, fmt.Errorf("update retreat venue: %w", err)
	}
	return r, nil
}

// DeleteWellnessVenue removes a wellness row.
func (s *Store) DeleteWellnessVenue(ctx context.Context, id string) error {
	return s.deleteVenueRow(ctx, "wellness_venues", id)
}

// DeleteRetreatVenue removes a retreat row.
func (s *Store) DeleteRetreatVenue(ctx context.Context, id string) error {
	return s.deleteVenueRow(ctx, "retreat_venues", id)
}

func (s *Store) deleteVenueRow(ctx context.Context, table, id string) error {
	result, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrVenueNotFound
	}
	return nil
}
