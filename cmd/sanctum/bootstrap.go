package main

import (
	"context"
	"errors"
	"fmt"

	"sanctum/internal/models"
	"sanctum/internal/store"
	"sanctum/internal/venue"
)

// bootstrapDemoData seeds an empty database with a demo admin and a small
// set of venues, owners, enquiries and subscriptions so the portal has
// something to show on first run.
func bootstrapDemoData(ctx context.Context, dataStore *store.Store) error {
	if err := ensureDemoAdmin(ctx, dataStore); err != nil {
		return err
	}
	if err := ensureDemoVenues(ctx, dataStore); err != nil {
		return err
	}
	if err := ensureDemoOwners(ctx, dataStore); err != nil {
		return err
	}
	if err := ensureDemoEnquiries(ctx, dataStore); err != nil {
		return err
	}
	return ensureDemoSubscriptions(ctx, dataStore)
}

func ensureDemoAdmin(ctx context.Context, dataStore *store.Store) error {
	err := dataStore.CreateAdmin(ctx, "admin@sanctum.com", "admin123", "Portal Admin")
	if err != nil && !errors.Is(err, store.ErrAdminExists) {
		return fmt.Errorf("bootstrap demo admin: %w", err)
	}
	return nil
}

func ensureDemoVenues(ctx context.Context, dataStore *store.Store) error {
	wellness, err := dataStore.ListWellnessVenues(ctx)
	if err != nil {
		return fmt.Errorf("check wellness venues: %w", err)
	}
	retreats, err := dataStore.ListRetreatVenues(ctx)
	if err != nil {
		return fmt.Errorf("check retreat venues: %w", err)
	}
	if len(wellness) > 0 || len(retreats) > 0 {
		return nil
	}

	seeds := []venue.Venue{
		{
			Type:         venue.CategoryRetreat,
			Name:         "Serenity Springs Retreat",
			Location:     "Byron Bay, NSW",
			ShortLoc:     "Byron Bay",
			Description:  "Clifftop eco retreat with ocean views and private spring-fed pools.",
			Website:      "serenitysprings.com.au",
			Capacity:     24,
			Status:       venue.StatusActive,
			Subscription: venue.TierPremium,
			Owner:        "Sarah Chen",
			Email:        "sarah@serenity.com",
			Phone:        "+61 400 111 222",
			Amenities:    []string{"Pool", "WiFi", "Parking", "Yoga Deck"},
			Services: []venue.Service{
				{Name: "Guided Meditation", Duration: "60 min", Price: "$45"},
			},
			Packages: []venue.Package{
				{Name: "Weekend Reset", Description: "Two nights with all meals", Days: 2, Price: "$890"},
			},
			Rooms: []venue.Room{
				{Name: "Ocean Suite", Beds: 2, Ensuite: true, Price: "$420"},
				{Name: "Garden Cabin", Beds: 1, Ensuite: false, Price: "$260"},
			},
			Retreat: &venue.RetreatDetails{
				RetreatType:      "Eco Retreat",
				HireType:         "Exclusive",
				MinGuests:        8,
				TotalBedrooms:    12,
				TotalBathrooms:   10,
				BedConfig:        venue.BedConfig{King: 4, Queen: 6, Single: 4},
				CheckInTime:      "14:00",
				CheckOutTime:     "10:00",
				ChildrenAllowed:  true,
				SanctumVetted:    true,
				FeaturedListing:  true,
				RetreatStyles:    []string{"Wellness", "Yoga"},
				PropertySizeUnit: "acres",
			},
		},
		{
			Type:         venue.CategoryRetreat,
			Name:         "Moraea Farm",
			Location:     "Daylesford, VIC",
			ShortLoc:     "Daylesford",
			Description:  "Working lavender farm with a converted barn for small group retreats.",
			Capacity:     16,
			Status:       venue.StatusDraft,
			Subscription: venue.TierStandard,
			Owner:        "Marcus Webb",
			Email:        "marcus@zenescapes.com",
			Phone:        "+61 400 333 444",
			Amenities:    []string{"Fireplace", "Kitchen", "Parking"},
			Retreat: &venue.RetreatDetails{
				RetreatType:    "Farm Stay",
				HireType:       "Exclusive",
				MinGuests:      6,
				TotalBedrooms:  8,
				TotalBathrooms: 5,
				BedConfig:      venue.BedConfig{Queen: 5, Twin: 3},
				CheckInTime:    "15:00",
				CheckOutTime:   "11:00",
				PetsAllowed:    true,
				RetreatStyles:  []string{"Creative", "Silent"},
			},
		},
		{
			Type:         venue.CategoryWellness,
			Name:         "Soak Wellness",
			Location:     "Fremantle, WA",
			ShortLoc:     "Fremantle",
			Description:  "Urban bathhouse with magnesium pools, saunas and treatment rooms.",
			Website:      "soakwellness.com",
			Capacity:     40,
			Status:       venue.StatusActive,
			Subscription: venue.TierFeatured,
			Owner:        "Amara Singh",
			Email:        "amara@soak.com",
			Phone:        "+61 400 555 111",
			Amenities:    []string{"Sauna", "Plunge Pool", "WiFi"},
			Services: []venue.Service{
				{Name: "Remedial Massage", Duration: "60 min", Price: "$120"},
				{Name: "Infrared Sauna", Duration: "45 min", Price: "$55"},
			},
			Practitioners: []venue.Practitioner{
				{Name: "Elena Vasquez", Title: "Senior Therapist"},
			},
			Wellness: &venue.WellnessDetails{
				WellnessType:         "Day Spa",
				TherapeuticServices:  true,
				Facilities:           []string{"Magnesium Pool", "Steam Room"},
				OpeningTime:          "09:00",
				ClosingTime:          "21:00",
				BestFor:              []string{"Relaxation", "Recovery"},
				Languages:            []string{"English", "Spanish"},
				WheelchairAccessible: true,
				Available:            true,
				PricingTiers: []venue.PricingTier{
					{Label: "Day Pass", Days: 1, Price: "$85"},
				},
			},
		},
	}

	for _, v := range seeds {
		var err error
		if v.Type == venue.CategoryRetreat {
			_, err = dataStore.InsertRetreatVenue(ctx, venue.ToRetreatRow(v))
		} else {
			_, err = dataStore.InsertWellnessVenue(ctx, venue.ToWellnessRow(v))
		}
		if err != nil {
			return fmt.Errorf("seed venue %s: %w", v.Name, err)
		}
	}
	return nil
}

func ensureDemoOwners(ctx context.Context, dataStore *store.Store) error {
	existing, err := dataStore.ListOwners(ctx)
	if err != nil {
		return fmt.Errorf("check owners: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seeds := []models.VenueOwner{
		{
			Name:       "Sarah Chen",
			Email:      "sarah@serenity.com",
			Phone:      "+61 400 111 222",
			Location:   "Byron Bay, NSW",
			Venues:     1,
			Status:     models.OwnerActive,
			Revenue:    "$24,500",
			Company:    "Serenity Group",
			VenueNames: []string{"Serenity Springs Retreat"},
		},
		{
			Name:       "Marcus Webb",
			Email:      "marcus@zenescapes.com",
			Phone:      "+61 400 333 444",
			Location:   "Daylesford, VIC",
			Venues:     1,
			Status:     models.OwnerPending,
			Revenue:    "$0",
			VenueNames: []string{"Moraea Farm"},
		},
		{
			Name:       "Amara Singh",
			Email:      "amara@soak.com",
			Phone:      "+61 400 555 111",
			Location:   "Fremantle, WA",
			Venues:     1,
			Status:     models.OwnerActive,
			Revenue:    "$18,200",
			Company:    "Soak Collective",
			VenueNames: []string{"Soak Wellness"},
		},
	}

	for _, o := range seeds {
		if _, err := dataStore.InsertOwner(ctx, o); err != nil {
			return fmt.Errorf("seed owner %s: %w", o.Name, err)
		}
	}
	return nil
}

func ensureDemoEnquiries(ctx context.Context, dataStore *store.Store) error {
	existing, err := dataStore.ListEnquiries(ctx)
	if err != nil {
		return fmt.Errorf("check enquiries: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seeds := []models.Enquiry{
		{
			Guest:    "Jade Miller",
			Email:    "jade@example.com",
			Venue:    "Serenity Springs Retreat",
			Type:     "Group Booking",
			Status:   models.EnquiryNew,
			Priority: "High",
		},
		{
			Guest:    "Tom Okafor",
			Email:    "tom@example.com",
			Venue:    "Soak Wellness",
			Type:     "Gift Voucher",
			Status:   models.EnquiryInProgress,
			Priority: "Low",
		},
	}

	for _, e := range seeds {
		if _, err := dataStore.InsertEnquiry(ctx, e); err != nil {
			return fmt.Errorf("seed enquiry from %s: %w", e.Guest, err)
		}
	}
	return nil
}

func ensureDemoSubscriptions(ctx context.Context, dataStore *store.Store) error {
	existing, err := dataStore.ListSubscriptions(ctx)
	if err != nil {
		return fmt.Errorf("check subscriptions: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seeds := []models.Subscription{
		{
			Venue:       "Serenity Springs Retreat",
			Owner:       "Sarah Chen",
			Plan:        "Premium",
			Amount:      "$299/mo",
			Status:      models.SubscriptionActive,
			NextBilling: "2026-09-15",
		},
		{
			Venue:       "Soak Wellness",
			Owner:       "Amara Singh",
			Plan:        "Featured",
			Amount:      "$149/mo",
			Status:      models.SubscriptionTrial,
			NextBilling: "2026-09-03",
		},
	}

	for _, sub := range seeds {
		if _, err := dataStore.InsertSubscription(ctx, sub); err != nil {
			return fmt.Errorf("seed subscription for %s: %w", sub.Venue, err)
		}
	}
	return nil
}
