package venue

import (
	"reflect"
	"testing"
	"time"
)

func sampleWellnessRow() WellnessRow {
	return WellnessRow{
		ID:                   "v3",
		Name:                 "Soak Wellness",
		Location:             "West End, QLD, Australia",
		ShortLoc:             "West End, QLD",
		Capacity:             40,
		Status:               "Active",
		Subscription:         "Premium",
		OwnerName:            "Mei Lin Chen",
		OwnerEmail:           "mei@soakwellness.com.au",
		OwnerPhone:           "+61 432 111 222",
		Description:          "Urban wellness centre with thermal bathing circuits.",
		Website:              "https://soakwellness.com.au",
		WellnessType:         "Bathhouse",
		TherapeuticServices:  true,
		HasAccommodation:     false,
		FacilitiesList:       []string{"Thermal Pools", "Sauna", "Cold Plunge"},
		Amenities:            []string{},
		OpeningTime:          "07:00",
		ClosingTime:          "22:00",
		BestFor:              []string{"Couples", "Solo"},
		Languages:            []string{"English"},
		WheelchairAccessible: true,
		IsAvailable:          true,
		HeroImage:            "https://cdn.example.com/hero.jpg",
		GalleryPhotos:        []string{"https://cdn.example.com/g1.jpg"},
		Services:             []Service{{Name: "Bathing Circuit", Duration: "2h", Price: "$89"}},
		Packages:             []Package{{Name: "3-Day Pass", Days: 3, Price: "$229"}},
		AddOns:               []AddOn{{Name: "Robe Hire", Price: "$12"}},
		PricingTiers:         []PricingTier{{Label: "Single Session", Days: 1, Price: "$89"}},
		IndividualRooms:      []Room{},
		Practitioners:        []Practitioner{{ID: "p1", Name: "Ana", Title: "Therapist"}},
		BedConfig:            BedConfig{},
		CreatedAt:            time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC),
	}
}

func sampleRetreatRow() RetreatRow {
	return RetreatRow{
		ID:                "v1",
		Name:              "Moraea Farm",
		Location:          "Berry, NSW, Australia",
		ShortLoc:          "Berry, NSW",
		MaxGuests:         12,
		Status:            "Active",
		Subscription:      "Featured",
		OwnerName:         "Sarah Mitchell",
		OwnerEmail:        "sarah@moraeafarm.com",
		OwnerPhone:        "+61 412 345 678",
		Description:       "A tranquil retreat among rolling hills.",
		Website:           "https://moraeafarm.com",
		RetreatType:       "Group Hosting",
		HireType:          "Exclusive Use",
		PropertySizeValue: 40,
		PropertySizeUnit:  "Acres",
		MinGuests:         4,
		TotalBedrooms:     6,
		TotalBathrooms:    4,
		BedConfigKing:     2,
		BedConfigQueen:    3,
		BedConfigSingle:   4,
		CheckInTime:       "14:00",
		CheckOutTime:      "10:00",
		EarlyCheckIn:      true,
		ChildrenAllowed:   true,
		SanctumVetted:     true,
		FeaturedListing:   true,
		RetreatStyles:     []string{"Yoga", "Meditation"},
		Amenities:         []string{"Pool", "Yoga Studio"},
		HeroImage:         "https://cdn.example.com/moraea.jpg",
		GalleryPhotos:     []string{},
		Services:          []Service{},
		Packages:          []Package{},
		AddOns:            []AddOn{},
		IndividualRooms:   []Room{{ID: "r1", Name: "Garden Room", Beds: 2, Ensuite: true, Price: "$240"}},
		Practitioners:     []Practitioner{},
		CreatedAt:         time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC),
	}
}

func TestWellnessRowRoundTrip(t *testing.T) {
	row := sampleWellnessRow()
	got := ToWellnessRow(FromWellnessRow(row))
	if !reflect.DeepEqual(got, row) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, row)
	}
}

func TestRetreatRowRoundTrip(t *testing.T) {
	row := sampleRetreatRow()
	got := ToRetreatRow(FromRetreatRow(row))
	if !reflect.DeepEqual(got, row) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, row)
	}
}

func TestFromWellnessRowDefaultsNilLists(t *testing.T) {
	v := FromWellnessRow(WellnessRow{ID: "w1", Name: "Bare"})

	if v.Type != CategoryWellness {
		t.Fatalf("expected wellness category, got %q", v.Type)
	}
	if v.GalleryPhotos == nil || v.Amenities == nil || v.Services == nil {
		t.Fatalf("nil list columns must map to empty slices")
	}
	if v.Wellness == nil {
		t.Fatal("wellness details missing")
	}
	if v.Wellness.Facilities == nil || v.Wellness.PricingTiers == nil {
		t.Fatalf("nil wellness list columns must map to empty slices")
	}
	if v.Retreat != nil {
		t.Fatal("wellness row must not produce retreat details")
	}
}

func TestFromRetreatRowDefaultsNilLists(t *testing.T) {
	v := FromRetreatRow(RetreatRow{ID: "r1", Name: "Bare"})

	if v.Type != CategoryRetreat {
		t.Fatalf("expected retreat category, got %q", v.Type)
	}
	if v.Retreat == nil {
		t.Fatal("retreat details missing")
	}
	if v.Retreat.RetreatStyles == nil || v.Rooms == nil {
		t.Fatalf("nil list columns must map to empty slices")
	}
	if v.Wellness != nil {
		t.Fatal("retreat row must not produce wellness details")
	}
}

func TestToRowsTolerateMissingDetails(t *testing.T) {
	// A venue tagged with one category but missing its detail bag still maps
	// without panicking and yields zero values for the bag's columns.
	w := ToWellnessRow(Venue{ID: "x", Type: CategoryWellness, Name: "No Bag"})
	if w.WellnessType != "" || w.FacilitiesList == nil {
		t.Fatalf("unexpected wellness defaults: %+v", w)
	}

	r := ToRetreatRow(Venue{ID: "y", Type: CategoryRetreat, Name: "No Bag", Capacity: 9})
	if r.MaxGuests != 9 || r.RetreatType != "" {
		t.Fatalf("unexpected retreat defaults: %+v", r)
	}
}

func TestCategoryFieldsDropAcrossSchemas(t *testing.T) {
	// Retreat-only fields never reach the wellness table and vice versa.
	v := FromRetreatRow(sampleRetreatRow())
	w := ToWellnessRow(v)
	if w.WellnessType != "" || len(w.PricingTiers) != 0 {
		t.Fatalf("retreat venue leaked wellness fields: %+v", w)
	}

	v2 := FromWellnessRow(sampleWellnessRow())
	r := ToRetreatRow(v2)
	if r.RetreatType != "" || r.SanctumVetted {
		t.Fatalf("wellness venue leaked retreat fields: %+v", r)
	}
	if r.MaxGuests != v2.Capacity {
		t.Fatalf("capacity should carry into max_guests, got %d", r.MaxGuests)
	}
}

func TestWellnessPatchColumnsOmitAbsent(t *testing.T) {
	name := "Renamed"
	capacity := 55
	p := Patch{Name: &name, Capacity: &capacity}

	cols := WellnessPatchColumns(p)
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d: %v", len(cols), cols)
	}
	if cols["name"] != "Renamed" || cols["capacity"] != 55 {
		t.Fatalf("unexpected columns: %v", cols)
	}
}

func TestRetreatPatchColumnsMapCapacityAndBeds(t *testing.T) {
	capacity := 18
	vetted := true
	p := Patch{
		Capacity: &capacity,
		Retreat: &RetreatPatch{
			SanctumVetted: &vetted,
			BedConfig:     &BedConfig{King: 1, Single: 2},
		},
	}

	cols := RetreatPatchColumns(p)
	if cols["max_guests"] != 18 {
		t.Fatalf("capacity must map to max_guests, got %v", cols["max_guests"])
	}
	if cols["sanctum_vetted"] != true {
		t.Fatalf("expected sanctum_vetted=true, got %v", cols["sanctum_vetted"])
	}
	if cols["bed_config_king"] != 1 || cols["bed_config_single"] != 2 || cols["bed_config_sofa"] != 0 {
		t.Fatalf("bed config should fan out to flat columns: %v", cols)
	}
	if _, ok := cols["name"]; ok {
		t.Fatal("absent fields must be omitted")
	}
}

func TestPatchColumnsDropForeignFields(t *testing.T) {
	wType := "Bathhouse"
	p := Patch{Wellness: &WellnessPatch{WellnessType: &wType}}

	if cols := RetreatPatchColumns(p); len(cols) != 0 {
		t.Fatalf("wellness patch fields must not reach the retreat schema: %v", cols)
	}
}
