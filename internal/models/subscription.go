package models

import "time"

// SubscriptionStatus is the billing state of a venue's plan.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "Active"
	SubscriptionTrial     SubscriptionStatus = "Trial"
	SubscriptionPastDue   SubscriptionStatus = "Past Due"
	SubscriptionCancelled SubscriptionStatus = "Cancelled"
)

// Subscription is a billing record sourced from the payments system,
// rendered read-only in the portal.
type Subscription struct {
	ID          string             `json:"id"`
	Venue       string             `json:"venue"`
	Owner       string             `json:"owner"`
	Plan        string             `json:"plan"`
	Amount      string             `json:"amount"`
	Status      SubscriptionStatus `json:"status"`
	NextBilling string             `json:"nextBilling"`
	Started     time.Time          `json:"started"`
}
