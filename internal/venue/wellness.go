package venue

import "time"

// WellnessRow mirrors one row of the wellness_venues table. Field order
// matches the column order used by the store's SELECT lists.
type WellnessRow struct {
	ID                   string
	Name                 string
	Location             string
	ShortLoc             string
	Capacity             int
	Status               string
	Subscription         string
	OwnerName            string
	OwnerEmail           string
	OwnerPhone           string
	Description          string
	Website              string
	WellnessType         string
	TherapeuticServices  bool
	HasAccommodation     bool
	FacilitiesList       []string
	Amenities            []string
	OpeningTime          string
	ClosingTime          string
	BestFor              []string
	Languages            []string
	WheelchairAccessible bool
	IsAvailable          bool
	HeroImage            string
	GalleryPhotos        []string
	Services             []Service
	Packages             []Package
	AddOns               []AddOn
	PricingTiers         []PricingTier
	IndividualRooms      []Room
	Practitioners        []Practitioner
	BedConfig            BedConfig
	CreatedAt            time.Time
}

// FromWellnessRow maps a persisted wellness row onto the unified entity.
// The table of origin is the sole source of the category tag. The function
// is total: nil list columns become empty slices so the entity never carries
// absent collections.
func FromWellnessRow(r WellnessRow) Venue {
	return Venue{
		ID:            r.ID,
		Type:          CategoryWellness,
		Name:          r.Name,
		Location:      r.Location,
		ShortLoc:      r.ShortLoc,
		Description:   r.Description,
		Website:       r.Website,
		Capacity:      r.Capacity,
		Status:        Status(r.Status),
		Subscription:  Tier(r.Subscription),
		Created:       r.CreatedAt,
		Owner:         r.OwnerName,
		Email:         r.OwnerEmail,
		Phone:         r.OwnerPhone,
		HeroImage:     r.HeroImage,
		GalleryPhotos: orEmpty(r.GalleryPhotos),
		Amenities:     orEmpty(r.Amenities),
		Services:      orEmpty(r.Services),
		Packages:      orEmpty(r.Packages),
		AddOns:        orEmpty(r.AddOns),
		Rooms:         orEmpty(r.IndividualRooms),
		Practitioners: orEmpty(r.Practitioners),
		Wellness: &WellnessDetails{
			WellnessType:         r.WellnessType,
			TherapeuticServices:  r.TherapeuticServices,
			HasAccommodation:     r.HasAccommodation,
			Facilities:           orEmpty(r.FacilitiesList),
			OpeningTime:          r.OpeningTime,
			ClosingTime:          r.ClosingTime,
			BestFor:              orEmpty(r.BestFor),
			Languages:            orEmpty(r.Languages),
			WheelchairAccessible: r.WheelchairAccessible,
			Available:            r.IsAvailable,
			PricingTiers:         orEmpty(r.PricingTiers),
			BedConfig:            r.BedConfig,
		},
	}
}

// ToWellnessRow maps the unified entity back to the wellness schema. Fields
// that have no wellness column (the whole retreat bag) are dropped. Every
// column is bound to an explicit value, never left absent, because the
// persistence boundary rejects missing values on insert.
func ToWellnessRow(v Venue) WellnessRow {
	w := v.Wellness
	if w == nil {
		w = &WellnessDetails{}
	}
	return WellnessRow{
		ID:                   v.ID,
		Name:                 v.Name,
		Location:             v.Location,
		ShortLoc:             v.ShortLoc,
		Capacity:             v.Capacity,
		Status:               string(v.Status),
		Subscription:         string(v.Subscription),
		OwnerName:            v.Owner,
		OwnerEmail:           v.Email,
		OwnerPhone:           v.Phone,
		Description:          v.Description,
		Website:              v.Website,
		WellnessType:         w.WellnessType,
		TherapeuticServices:  w.TherapeuticServices,
		HasAccommodation:     w.HasAccommodation,
		FacilitiesList:       orEmpty(w.Facilities),
		Amenities:            orEmpty(v.Amenities),
		OpeningTime:          w.OpeningTime,
		ClosingTime:          w.ClosingTime,
		BestFor:              orEmpty(w.BestFor),
		Languages:            orEmpty(w.Languages),
		WheelchairAccessible: w.WheelchairAccessible,
		IsAvailable:          w.Available,
		HeroImage:            v.HeroImage,
		GalleryPhotos:        orEmpty(v.GalleryPhotos),
		Services:             orEmpty(v.Services),
		Packages:             orEmpty(v.Packages),
		AddOns:               orEmpty(v.AddOns),
		PricingTiers:         orEmpty(w.PricingTiers),
		IndividualRooms:      orEmpty(v.Rooms),
		Practitioners:        orEmpty(v.Practitioners),
		BedConfig:            w.BedConfig,
		CreatedAt:            v.Created,
	}
}

// orEmpty substitutes an empty slice for nil so mapped values are always
// concrete sequences.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
