package store

import (
	"context"
	"fmt"
)

// schemaStatements creates the portal tables when they do not exist yet.
// The two venue tables are intentionally disjoint: each category persists
// its own column set and the unified entity only exists in memory.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash BYTEA NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS wellness_venues (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		short_loc TEXT NOT NULL DEFAULT '',
		capacity INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'Draft',
		subscription TEXT NOT NULL DEFAULT 'Essentials',
		owner_name TEXT NOT NULL DEFAULT '',
		owner_email TEXT NOT NULL DEFAULT '',
		owner_phone TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		wellness_type TEXT NOT NULL DEFAULT '',
		offers_therapeutic_services BOOLEAN NOT NULL DEFAULT FALSE,
		has_accommodation BOOLEAN NOT NULL DEFAULT FALSE,
		facilities_list TEXT[] NOT NULL DEFAULT '{}',
		amenities TEXT[] NOT NULL DEFAULT '{}',
		opening_time TEXT NOT NULL DEFAULT '',
		closing_time TEXT NOT NULL DEFAULT '',
		best_for TEXT[] NOT NULL DEFAULT '{}',
		languages TEXT[] NOT NULL DEFAULT '{}',
		wheelchair_accessible BOOLEAN NOT NULL DEFAULT FALSE,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		hero_image TEXT NOT NULL DEFAULT '',
		gallery_photos TEXT[] NOT NULL DEFAULT '{}',
		services JSONB NOT NULL DEFAULT '[]',
		packages JSONB NOT NULL DEFAULT '[]',
		add_ons JSONB NOT NULL DEFAULT '[]',
		pricing_tiers JSONB NOT NULL DEFAULT '[]',
		individual_rooms JSONB NOT NULL DEFAULT '[]',
		practitioners JSONB NOT NULL DEFAULT '[]',
		bed_config JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS retreat_venues (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		short_loc TEXT NOT NULL DEFAULT '',
		max_guests INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'Draft',
		subscription TEXT NOT NULL DEFAULT 'Essentials',
		owner_name TEXT NOT NULL DEFAULT '',
		owner_email TEXT NOT NULL DEFAULT '',
		owner_phone TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		retreat_type TEXT NOT NULL DEFAULT '',
		hire_type TEXT NOT NULL DEFAULT '',
		property_size_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		property_size_unit TEXT NOT NULL DEFAULT '',
		min_guests INTEGER NOT NULL DEFAULT 0,
		total_bedrooms INTEGER NOT NULL DEFAULT 0,
		total_bathrooms INTEGER NOT NULL DEFAULT 0,
		bed_config_king INTEGER NOT NULL DEFAULT 0,
		bed_config_queen INTEGER NOT NULL DEFAULT 0,
		bed_config_double INTEGER NOT NULL DEFAULT 0,
		bed_config_single INTEGER NOT NULL DEFAULT 0,
		bed_config_twin INTEGER NOT NULL DEFAULT 0,
		bed_config_bunk INTEGER NOT NULL DEFAULT 0,
		bed_config_sofa INTEGER NOT NULL DEFAULT 0,
		bed_config_rollaway INTEGER NOT NULL DEFAULT 0,
		check_in_time TEXT NOT NULL DEFAULT '',
		check_out_time TEXT NOT NULL DEFAULT '',
		early_check_in BOOLEAN NOT NULL DEFAULT FALSE,
		late_check_out BOOLEAN NOT NULL DEFAULT FALSE,
		children_allowed BOOLEAN NOT NULL DEFAULT TRUE,
		pets_allowed BOOLEAN NOT NULL DEFAULT FALSE,
		smoking_allowed BOOLEAN NOT NULL DEFAULT FALSE,
		sanctum_vetted BOOLEAN NOT NULL DEFAULT FALSE,
		featured_listing BOOLEAN NOT NULL DEFAULT FALSE,
		instant_booking BOOLEAN NOT NULL DEFAULT FALSE,
		retreat_styles TEXT[] NOT NULL DEFAULT '{}',
		amenities TEXT[] NOT NULL DEFAULT '{}',
		hero_image TEXT NOT NULL DEFAULT '',
		gallery_photos TEXT[] NOT NULL DEFAULT '{}',
		services JSONB NOT NULL DEFAULT '[]',
		packages JSONB NOT NULL DEFAULT '[]',
		add_ons JSONB NOT NULL DEFAULT '[]',
		individual_rooms JSONB NOT NULL DEFAULT '[]',
		practitioners JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS venue_owners (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		venues INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'Pending',
		revenue TEXT NOT NULL DEFAULT '$0',
		bio TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		venue_names TEXT[] NOT NULL DEFAULT '{}',
		joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS enquiries (
		id TEXT PRIMARY KEY,
		guest_name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		venue_name TEXT NOT NULL DEFAULT '',
		enquiry_type TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'New',
		priority TEXT NOT NULL DEFAULT 'Low',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS subscriptions (
		id TEXT PRIMARY KEY,
		venue_name TEXT NOT NULL,
		owner_name TEXT NOT NULL DEFAULT '',
		plan TEXT NOT NULL DEFAULT 'Essentials',
		amount TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Active',
		next_billing TEXT NOT NULL DEFAULT '',
		started_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates any missing tables.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
