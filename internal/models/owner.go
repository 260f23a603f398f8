// Package models holds the shared record shapes for owners, enquiries and
// subscriptions.
package models

import "time"

// OwnerStatus is the onboarding state of a venue owner.
type OwnerStatus string

const (
	OwnerActive   OwnerStatus = "Active"
	OwnerPending  OwnerStatus = "Pending"
	OwnerInactive OwnerStatus = "Inactive"
)

// VenueOwner is a contact who manages zero or more venues. Venues and
// VenueNames are denormalized and stored, not derived; the reconciler keeps
// them in step by convention only, so direct edits can drift.
type VenueOwner struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Location   string      `json:"location"`
	Venues     int         `json:"venues"`
	Status     OwnerStatus `json:"status"`
	Revenue    string      `json:"revenue"`
	Bio        string      `json:"bio"`
	Company    string      `json:"company"`
	Website    string      `json:"website"`
	VenueNames []string    `json:"venueNames"`
	Joined     time.Time   `json:"joined"`
}

// OwnerPatch is a partial owner update; nil fields are omitted from the
// generated column assignments so existing values are preserved.
type OwnerPatch struct {
	Name       *string      `json:"name,omitempty"`
	Email      *string      `json:"email,omitempty"`
	Phone      *string      `json:"phone,omitempty"`
	Location   *string      `json:"location,omitempty"`
	Venues     *int         `json:"venues,omitempty"`
	Status     *OwnerStatus `json:"status,omitempty"`
	Revenue    *string      `json:"revenue,omitempty"`
	Bio        *string      `json:"bio,omitempty"`
	Company    *string      `json:"company,omitempty"`
	Website    *string      `json:"website,omitempty"`
	VenueNames *[]string    `json:"venueNames,omitempty"`
}

// Columns translates the patch into venue_owners column assignments.
func (p OwnerPatch) Columns() map[string]any {
	cols := map[string]any{}
	set := func(name string, v any, present bool) {
		if present {
			cols[name] = v
		}
	}
	set("name", deref(p.Name), p.Name != nil)
	set("email", deref(p.Email), p.Email != nil)
	set("phone", deref(p.Phone), p.Phone != nil)
	set("location", deref(p.Location), p.Location != nil)
	set("venues", deref(p.Venues), p.Venues != nil)
	set("status", deref(p.Status), p.Status != nil)
	set("revenue", deref(p.Revenue), p.Revenue != nil)
	set("bio", deref(p.Bio), p.Bio != nil)
	set("company", deref(p.Company), p.Company != nil)
	set("website", deref(p.Website), p.Website != nil)
	set("venue_names", deref(p.VenueNames), p.VenueNames != nil)
	return cols
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
