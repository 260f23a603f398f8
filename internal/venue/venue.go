// Package venue defines the unified venue entity and the mapping between it
// and the two persisted row schemas (wellness and retreat category tables).
package venue

import "time"

// Category identifies which backing table a venue lives in. It is fixed at
// creation; moving a venue between categories means delete and recreate.
type Category string

const (
	CategoryWellness Category = "Wellness"
	CategoryRetreat  Category = "Retreat"
)

// Status is the listing lifecycle state.
type Status string

const (
	StatusActive   Status = "Active"
	StatusDraft    Status = "Draft"
	StatusInactive Status = "Inactive"
)

// Tier is the subscription plan attached to a listing.
type Tier string

const (
	TierEssentials Tier = "Essentials"
	TierStandard   Tier = "Standard"
	TierFeatured   Tier = "Featured"
	TierPremium    Tier = "Premium"
)

// Service is a bookable treatment or session offered by a venue. Services
// carry no identity of their own and are addressed by position.
type Service struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Price    string `json:"price"`
}

// Package is a multi-day offering.
type Package struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Days        int    `json:"days"`
	Price       string `json:"price"`
}

// AddOn is an optional extra purchasable alongside a booking.
type AddOn struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Room is an individually bookable room. Rooms carry a generated id.
type Room struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Beds    int    `json:"beds"`
	Ensuite bool   `json:"ensuite"`
	Price   string `json:"price"`
}

// Practitioner is a named staff member shown on a venue page. Practitioners
// carry a generated id.
type Practitioner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Photo string `json:"photo"`
	Bio   string `json:"bio"`
}

// PricingTier is a day-pass price point for wellness venues.
type PricingTier struct {
	Label string `json:"label"`
	Days  int    `json:"days"`
	Price string `json:"price"`
}

// BedConfig counts beds by type. Counts are never negative; producers clamp
// decrements at zero.
type BedConfig struct {
	King     int `json:"king"`
	Queen    int `json:"queen"`
	Double   int `json:"double"`
	Single   int `json:"single"`
	Twin     int `json:"twin"`
	Bunk     int `json:"bunk"`
	Sofa     int `json:"sofa"`
	Rollaway int `json:"rollaway"`
}

// WellnessDetails holds the fields that only exist in the wellness schema.
type WellnessDetails struct {
	WellnessType         string        `json:"wellnessType"`
	TherapeuticServices  bool          `json:"offersTherapeuticServices"`
	HasAccommodation     bool          `json:"hasAccommodation"`
	Facilities           []string      `json:"facilities"`
	OpeningTime          string        `json:"openingTime"`
	ClosingTime          string        `json:"closingTime"`
	BestFor              []string      `json:"bestFor"`
	Languages            []string      `json:"languages"`
	WheelchairAccessible bool          `json:"wheelchairAccessible"`
	Available            bool          `json:"isAvailable"`
	PricingTiers         []PricingTier `json:"pricingTiers"`
	BedConfig            BedConfig     `json:"bedConfiguration"`
}

// RetreatDetails holds the fields that only exist in the retreat schema.
type RetreatDetails struct {
	RetreatType       string    `json:"retreatType"`
	HireType          string    `json:"hireType"`
	PropertySizeValue float64   `json:"propertySizeValue"`
	PropertySizeUnit  string    `json:"propertySizeUnit"`
	MinGuests         int       `json:"minGuests"`
	TotalBedrooms     int       `json:"totalBedrooms"`
	TotalBathrooms    int       `json:"totalBathrooms"`
	BedConfig         BedConfig `json:"bedConfiguration"`
	CheckInTime       string    `json:"checkInTime"`
	CheckOutTime      string    `json:"checkOutTime"`
	EarlyCheckIn      bool      `json:"earlyCheckInAvailable"`
	LateCheckOut      bool      `json:"lateCheckOutAvailable"`
	ChildrenAllowed   bool      `json:"childrenAllowed"`
	PetsAllowed       bool      `json:"petsAllowed"`
	SmokingAllowed    bool      `json:"smokingAllowed"`
	SanctumVetted     bool      `json:"sanctumVetted"`
	FeaturedListing   bool      `json:"featuredListing"`
	InstantBooking    bool      `json:"instantBooking"`
	RetreatStyles     []string  `json:"retreatStyles"`
}

// Venue is the single in-memory shape the admin UI operates on, independent
// of which backing table a given venue is stored in. Exactly one of Wellness
// or Retreat is non-nil, matching Type.
type Venue struct {
	ID            string         `json:"id"`
	Type          Category       `json:"type"`
	Name          string         `json:"name"`
	Location      string         `json:"location"`
	ShortLoc      string         `json:"shortLoc"`
	Description   string         `json:"description"`
	Website       string         `json:"website"`
	Capacity      int            `json:"capacity"`
	Status        Status         `json:"status"`
	Subscription  Tier           `json:"subscription"`
	Created       time.Time      `json:"date"`
	Owner         string         `json:"owner"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	HeroImage     string         `json:"heroImage"`
	GalleryPhotos []string       `json:"galleryPhotos"`
	Amenities     []string       `json:"amenities"`
	Services      []Service      `json:"services"`
	Packages      []Package      `json:"packages"`
	AddOns        []AddOn        `json:"addOns"`
	Rooms         []Room         `json:"individualRooms"`
	Practitioners []Practitioner `json:"practitioners"`

	Wellness *WellnessDetails `json:"wellness,omitempty"`
	Retreat  *RetreatDetails  `json:"retreat,omitempty"`
}

// MaxGalleryPhotos caps the media gallery. Enforced by producers, not by the
// entity itself.
const MaxGalleryPhotos = 8
