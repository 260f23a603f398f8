package venue

import "time"

// RetreatRow mirrors one row of the retreat_venues table. The schema is
// disjoint from the wellness one: capacity is stored as max_guests, bed
// counts are flat columns rather than a jsonb object, and retreat vetting
// flags have no wellness counterpart.
type RetreatRow struct {
	ID                string
	Name              string
	Location          string
	ShortLoc          string
	MaxGuests         int
	Status            string
	Subscription      string
	OwnerName         string
	OwnerEmail        string
	OwnerPhone        string
	Description       string
	Website           string
	RetreatType       string
	HireType          string
	PropertySizeValue float64
	PropertySizeUnit  string
	MinGuests         int
	TotalBedrooms     int
	TotalBathrooms    int
	BedConfigKing     int
	BedConfigQueen    int
	BedConfigDouble   int
	BedConfigSingle   int
	BedConfigTwin     int
	BedConfigBunk     int
	BedConfigSofa     int
	BedConfigRollaway int
	CheckInTime       string
	CheckOutTime      string
	EarlyCheckIn      bool
	LateCheckOut      bool
	ChildrenAllowed   bool
	PetsAllowed       bool
	SmokingAllowed    bool
	SanctumVetted     bool
	FeaturedListing   bool
	InstantBooking    bool
	RetreatStyles     []string
	Amenities         []string
	HeroImage         string
	GalleryPhotos     []string
	Services          []Service
	Packages          []Package
	AddOns            []AddOn
	IndividualRooms   []Room
	Practitioners     []Practitioner
	CreatedAt         time.Time
}

// FromRetreatRow maps a persisted retreat row onto the unified entity. The
// table of origin decides the category tag; max_guests becomes the unified
// capacity and the flat bed columns fold into a BedConfig.
func FromRetreatRow(r RetreatRow) Venue {
	return Venue{
		ID:            r.ID,
		Type:          CategoryRetreat,
		Name:          r.Name,
		Location:      r.Location,
		ShortLoc:      r.ShortLoc,
		Description:   r.Description,
		Website:       r.Website,
		Capacity:      r.MaxGuests,
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
		Retreat: &RetreatDetails{
			RetreatType:       r.RetreatType,
			HireType:          r.HireType,
			PropertySizeValue: r.PropertySizeValue,
			PropertySizeUnit:  r.PropertySizeUnit,
			MinGuests:         r.MinGuests,
			TotalBedrooms:     r.TotalBedrooms,
			TotalBathrooms:    r.TotalBathrooms,
			BedConfig: BedConfig{
				King:     r.BedConfigKing,
				Queen:    r.BedConfigQueen,
				Double:   r.BedConfigDouble,
				Single:   r.BedConfigSingle,
				Twin:     r.BedConfigTwin,
				Bunk:     r.BedConfigBunk,
				Sofa:     r.BedConfigSofa,
				Rollaway: r.BedConfigRollaway,
			},
			CheckInTime:     r.CheckInTime,
			CheckOutTime:    r.CheckOutTime,
			EarlyCheckIn:    r.EarlyCheckIn,
			LateCheckOut:    r.LateCheckOut,
			ChildrenAllowed: r.ChildrenAllowed,
			PetsAllowed:     r.PetsAllowed,
			SmokingAllowed:  r.SmokingAllowed,
			SanctumVetted:   r.SanctumVetted,
			FeaturedListing: r.FeaturedListing,
			InstantBooking:  r.InstantBooking,
			RetreatStyles:   orEmpty(r.RetreatStyles),
		},
	}
}

// ToRetreatRow maps the unified entity back to the retreat schema. The
// wellness bag and any field without a retreat column are dropped.
func ToRetreatRow(v Venue) RetreatRow {
	d := v.Retreat
	if d == nil {
		d = &RetreatDetails{}
	}
	return RetreatRow{
		ID:                v.ID,
		Name:              v.Name,
		Location:          v.Location,
		ShortLoc:          v.ShortLoc,
		MaxGuests:         v.Capacity,
		Status:            string(v.Status),
		Subscription:      string(v.Subscription),
		OwnerName:         v.Owner,
		OwnerEmail:        v.Email,
		OwnerPhone:        v.Phone,
		Description:       v.Description,
		Website:           v.Website,
		RetreatType:       d.RetreatType,
		HireType:          d.HireType,
		PropertySizeValue: d.PropertySizeValue,
		PropertySizeUnit:  d.PropertySizeUnit,
		MinGuests:         d.MinGuests,
		TotalBedrooms:     d.TotalBedrooms,
		TotalBathrooms:    d.TotalBathrooms,
		BedConfigKing:     d.BedConfig.King,
		BedConfigQueen:    d.BedConfig.Queen,
		BedConfigDouble:   d.BedConfig.Double,
		BedConfigSingle:   d.BedConfig.Single,
		BedConfigTwin:     d.BedConfig.Twin,
		BedConfigBunk:     d.BedConfig.Bunk,
		BedConfigSofa:     d.BedConfig.Sofa,
		BedConfigRollaway: d.BedConfig.Rollaway,
		CheckInTime:       d.CheckInTime,
		CheckOutTime:      d.CheckOutTime,
		EarlyCheckIn:      d.EarlyCheckIn,
		LateCheckOut:      d.LateCheckOut,
		ChildrenAllowed:   d.ChildrenAllowed,
		PetsAllowed:       d.PetsAllowed,
		SmokingAllowed:    d.SmokingAllowed,
		SanctumVetted:     d.SanctumVetted,
		FeaturedListing:   d.FeaturedListing,
		InstantBooking:    d.InstantBooking,
		RetreatStyles:     orEmpty(d.RetreatStyles),
		Amenities:         orEmpty(v.Amenities),
		HeroImage:         v.HeroImage,
		GalleryPhotos:     orEmpty(v.GalleryPhotos),
		Services:          orEmpty(v.Services),
		Packages:          orEmpty(v.Packages),
		AddOns:            orEmpty(v.AddOns),
		IndividualRooms:   orEmpty(v.Rooms),
		Practitioners:     orEmpty(v.Practitioners),
		CreatedAt:         v.Created,
	}
}
