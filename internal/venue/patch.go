package venue

// Patch is a partial update to a venue. Nil fields are absent: they are
// omitted from the generated column map entirely, so the persisted columns
// keep their current values. This is deliberately different from inserts,
// which bind every column.
type Patch struct {
	Name          *string         `json:"name,omitempty"`
	Location      *string         `json:"location,omitempty"`
	ShortLoc      *string         `json:"shortLoc,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Website       *string         `json:"website,omitempty"`
	Capacity      *int            `json:"capacity,omitempty"`
	Status        *Status         `json:"status,omitempty"`
	Subscription  *Tier           `json:"subscription,omitempty"`
	Owner         *string         `json:"owner,omitempty"`
	Email         *string         `json:"email,omitempty"`
	Phone         *string         `json:"phone,omitempty"`
	HeroImage     *string         `json:"heroImage,omitempty"`
	GalleryPhotos *[]string       `json:"galleryPhotos,omitempty"`
	Amenities     *[]string       `json:"amenities,omitempty"`
	Services      *[]Service      `json:"services,omitempty"`
	Packages      *[]Package      `json:"packages,omitempty"`
	AddOns        *[]AddOn        `json:"addOns,omitempty"`
	Rooms         *[]Room         `json:"individualRooms,omitempty"`
	Practitioners *[]Practitioner `json:"practitioners,omitempty"`

	Wellness *WellnessPatch `json:"wellness,omitempty"`
	Retreat  *RetreatPatch  `json:"retreat,omitempty"`
}

// WellnessPatch carries optional updates to wellness-only fields.
type WellnessPatch struct {
	WellnessType         *string        `json:"wellnessType,omitempty"`
	TherapeuticServices  *bool          `json:"offersTherapeuticServices,omitempty"`
	HasAccommodation     *bool          `json:"hasAccommodation,omitempty"`
	Facilities           *[]string      `json:"facilities,omitempty"`
	OpeningTime          *string        `json:"openingTime,omitempty"`
	ClosingTime          *string        `json:"closingTime,omitempty"`
	BestFor              *[]string      `json:"bestFor,omitempty"`
	Languages            *[]string      `json:"languages,omitempty"`
	WheelchairAccessible *bool          `json:"wheelchairAccessible,omitempty"`
	Available            *bool          `json:"isAvailable,omitempty"`
	PricingTiers         *[]PricingTier `json:"pricingTiers,omitempty"`
	BedConfig            *BedConfig     `json:"bedConfiguration,omitempty"`
}

// RetreatPatch carries optional updates to retreat-only fields.
type RetreatPatch struct {
	RetreatType       *string    `json:"retreatType,omitempty"`
	HireType          *string    `json:"hireType,omitempty"`
	PropertySizeValue *float64   `json:"propertySizeValue,omitempty"`
	PropertySizeUnit  *string    `json:"propertySizeUnit,omitempty"`
	MinGuests         *int       `json:"minGuests,omitempty"`
	TotalBedrooms     *int       `json:"totalBedrooms,omitempty"`
	TotalBathrooms    *int       `json:"totalBathrooms,omitempty"`
	BedConfig         *BedConfig `json:"bedConfiguration,omitempty"`
	CheckInTime       *string    `json:"checkInTime,omitempty"`
	CheckOutTime      *string    `json:"checkOutTime,omitempty"`
	EarlyCheckIn      *bool      `json:"earlyCheckInAvailable,omitempty"`
	LateCheckOut      *bool      `json:"lateCheckOutAvailable,omitempty"`
	ChildrenAllowed   *bool      `json:"childrenAllowed,omitempty"`
	PetsAllowed       *bool      `json:"petsAllowed,omitempty"`
	SmokingAllowed    *bool      `json:"smokingAllowed,omitempty"`
	SanctumVetted     *bool      `json:"sanctumVetted,omitempty"`
	FeaturedListing   *bool      `json:"featuredListing,omitempty"`
	InstantBooking    *bool      `json:"instantBooking,omitempty"`
	RetreatStyles     *[]string  `json:"retreatStyles,omitempty"`
}

func put[T any](cols map[string]any, name string, v *T) {
	if v != nil {
		cols[name] = *v
	}
}

// WellnessPatchColumns translates a patch into wellness_venues column
// assignments. Retreat-only fields never reach the wellness table.
func WellnessPatchColumns(p Patch) map[string]any {
	cols := map[string]any{}
	put(cols, "name", p.Name)
	put(cols, "location", p.Location)
	put(cols, "short_loc", p.ShortLoc)
	put(cols, "description", p.Description)
	put(cols, "website", p.Website)
	put(cols, "capacity", p.Capacity)
	put(cols, "status", p.Status)
	put(cols, "subscription", p.Subscription)
	put(cols, "owner_name", p.Owner)
	put(cols, "owner_email", p.Email)
	put(cols, "owner_phone", p.Phone)
	put(cols, "hero_image", p.HeroImage)
	put(cols, "gallery_photos", p.GalleryPhotos)
	put(cols, "amenities", p.Amenities)
	put(cols, "services", p.Services)
	put(cols, "packages", p.Packages)
	put(cols, "add_ons", p.AddOns)
	put(cols, "individual_rooms", p.Rooms)
	put(cols, "practitioners", p.Practitioners)
	if w := p.Wellness; w != nil {
		put(cols, "wellness_type", w.WellnessType)
		put(cols, "offers_therapeutic_services", w.TherapeuticServices)
		put(cols, "has_accommodation", w.HasAccommodation)
		put(cols, "facilities_list", w.Facilities)
		put(cols, "opening_time", w.OpeningTime)
		put(cols, "closing_time", w.ClosingTime)
		put(cols, "best_for", w.BestFor)
		put(cols, "languages", w.Languages)
		put(cols, "wheelchair_accessible", w.WheelchairAccessible)
		put(cols, "is_available", w.Available)
		put(cols, "pricing_tiers", w.PricingTiers)
		put(cols, "bed_config", w.BedConfig)
	}
	return cols
}

// RetreatPatchColumns translates a patch into retreat_venues column
// assignments. The unified capacity lands in max_guests and a BedConfig
// fans out to the flat bed_config_* columns.
func RetreatPatchColumns(p Patch) map[string]any {
	cols := map[string]any{}
	put(cols, "name", p.Name)
	put(cols, "location", p.Location)
	put(cols, "short_loc", p.ShortLoc)
	put(cols, "description", p.Description)
	put(cols, "website", p.Website)
	put(cols, "max_guests", p.Capacity)
	put(cols, "status", p.Status)
	put(cols, "subscription", p.Subscription)
	put(cols, "owner_name", p.Owner)
	put(cols, "owner_email", p.Email)
	put(cols, "owner_phone", p.Phone)
	put(cols, "hero_image", p.HeroImage)
	put(cols, "gallery_photos", p.GalleryPhotos)
	put(cols, "amenities", p.Amenities)
	put(cols, "services", p.Services)
	put(cols, "packages", p.Packages)
	put(cols, "add_ons", p.AddOns)
	put(cols, "individual_rooms", p.Rooms)
	put(cols, "practitioners", p.Practitioners)
	if r := p.Retreat; r != nil {
		put(cols, "retreat_type", r.RetreatType)
		put(cols, "hire_type", r.HireType)
		put(cols, "property_size_value", r.PropertySizeValue)
		put(cols, "property_size_unit", r.PropertySizeUnit)
		put(cols, "min_guests", r.MinGuests)
		put(cols, "total_bedrooms", r.TotalBedrooms)
		put(cols, "total_bathrooms", r.TotalBathrooms)
		put(cols, "check_in_time", r.CheckInTime)
		put(cols, "check_out_time", r.CheckOutTime)
		put(cols, "early_check_in", r.EarlyCheckIn)
		put(cols, "late_check_out", r.LateCheckOut)
		put(cols, "children_allowed", r.ChildrenAllowed)
		put(cols, "pets_allowed", r.PetsAllowed)
		put(cols, "smoking_allowed", r.SmokingAllowed)
		put(cols, "sanctum_vetted", r.SanctumVetted)
		put(cols, "featured_listing", r.FeaturedListing)
		put(cols, "instant_booking", r.InstantBooking)
		put(cols, "retreat_styles", r.RetreatStyles)
		if bc := r.BedConfig; bc != nil {
			cols["bed_config_king"] = bc.King
			cols["bed_config_queen"] = bc.Queen
			cols["bed_config_double"] = bc.Double
			cols["bed_config_single"] = bc.Single
			cols["bed_config_twin"] = bc.Twin
			cols["bed_config_bunk"] = bc.Bunk
			cols["bed_config_sofa"] = bc.Sofa
			cols["bed_config_rollaway"] = bc.Rollaway
		}
	}
	return cols
}
