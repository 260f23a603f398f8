package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"sanctum/internal/listing"
	"sanctum/internal/models"
	"sanctum/internal/store"
)

const enquiryPageSize = 8

func enquiryTabs() []listing.Tab[models.Enquiry] {
	return []listing.Tab[models.Enquiry]{
		{Label: "All"},
		{Label: "New", Match: func(e models.Enquiry) bool { return e.Status == models.EnquiryNew }},
		{Label: "In Progress", Match: func(e models.Enquiry) bool { return e.Status == models.EnquiryInProgress }},
		{Label: "Resolved", Match: func(e models.Enquiry) bool { return e.Status == models.EnquiryResolved }},
		{Label: "Closed", Match: func(e models.Enquiry) bool { return e.Status == models.EnquiryClosed }},
	}
}

func enquirySearchFields(e models.Enquiry) []string {
	return []string{e.Guest, e.Email, e.Venue}
}

func (s *Server) handleListEnquiries(w http.ResponseWriter, r *http.Request) {
	all, err := s.enquiries.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, listify(all, enquiryTabs(), enquirySearchFields, parseListQuery(r), enquiryPageSize))
}

func (s *Server) handleCreateEnquiry(w http.ResponseWriter, r *http.Request) {
	var e models.Enquiry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if e.Guest == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "guest name is required"})
		return
	}

	created, err := s.enquiries.Create(r.Context(), e)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleEnquiryStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status models.EnquiryStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	updated, err := s.enquiries.SetStatus(r.Context(), r.PathValue("id"), body.Status)
	if err != nil {
		if errors.Is(err, store.ErrEnquiryNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "enquiry not found"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
