package models

import "time"

// EnquiryStatus moves forward through New → In Progress → Resolved or
// Closed. Reverse transitions are not modeled, though nothing technically
// prevents an operator from reopening.
type EnquiryStatus string

const (
	EnquiryNew        EnquiryStatus = "New"
	EnquiryInProgress EnquiryStatus = "In Progress"
	EnquiryResolved   EnquiryStatus = "Resolved"
	EnquiryClosed     EnquiryStatus = "Closed"
)

// ValidEnquiryStatus reports whether s is one of the known states.
func ValidEnquiryStatus(s EnquiryStatus) bool {
	switch s {
	case EnquiryNew, EnquiryInProgress, EnquiryResolved, EnquiryClosed:
		return true
	}
	return false
}

// Enquiry is a guest contact request sourced from the public site. Rendered
// read-only in the portal except for status transitions.
type Enquiry struct {
	ID       string        `json:"id"`
	Guest    string        `json:"guest"`
	Email    string        `json:"email"`
	Venue    string        `json:"venue"`
	Type     string        `json:"type"`
	Status   EnquiryStatus `json:"status"`
	Priority string        `json:"priority"`
	Created  time.Time     `json:"date"`
}
