package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"sanctum/internal/app/reconciler"
	"sanctum/internal/listing"
	"sanctum/internal/store"
	"sanctum/internal/venue"
)

const venuePageSize = 8

func venueTabs() []listing.Tab[venue.Venue] {
	return []listing.Tab[venue.Venue]{
		{Label: "All"},
		{Label: "Retreats", Match: func(v venue.Venue) bool { return v.Type == venue.CategoryRetreat }},
		{Label: "Wellness", Match: func(v venue.Venue) bool { return v.Type == venue.CategoryWellness }},
		{Label: "Active", Match: func(v venue.Venue) bool { return v.Status == venue.StatusActive }},
		{Label: "Draft", Match: func(v venue.Venue) bool { return v.Status == venue.StatusDraft }},
		{Label: "Inactive", Match: func(v venue.Venue) bool { return v.Status == venue.StatusInactive }},
	}
}

func venueSearchFields(v venue.Venue) []string {
	return []string{v.Name, v.Location, v.Owner}
}

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	all, err := s.venues.FetchAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, listify(all, venueTabs(), venueSearchFields, parseListQuery(r), venuePageSize))
}

type createVenueRequest struct {
	venue.Venue
	RegisterOwner bool `json:"registerOwner"`
}

type createVenueResponse struct {
	Venue   venue.Venue `json:"venue"`
	Warning string      `json:"warning,omitempty"`
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	var req createVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "venue name is required"})
		return
	}
	if len(req.GalleryPhotos) > venue.MaxGalleryPhotos {
		req.GalleryPhotos = req.GalleryPhotos[:venue.MaxGalleryPhotos]
	}

	if req.RegisterOwner {
		created, err := s.registrar.CreateVenueWithOwner(r.Context(), req.Venue)
		if err != nil {
			if errors.Is(err, reconciler.ErrOwnerLink) {
				// The venue exists; surface the dangling link instead of
				// failing the whole request.
				writeJSON(w, http.StatusCreated, createVenueResponse{Venue: created, Warning: err.Error()})
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusCreated, createVenueResponse{Venue: created})
		return
	}

	created, err := s.venues.Add(r.Context(), req.Venue)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, createVenueResponse{Venue: created})
}

func (s *Server) handleGetVenue(w http.ResponseWriter, r *http.Request) {
	v, ok := s.venues.Get(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "venue not found"})
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	var patch venue.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if patch.GalleryPhotos != nil && len(*patch.GalleryPhotos) > venue.MaxGalleryPhotos {
		trimmed := (*patch.GalleryPhotos)[:venue.MaxGalleryPhotos]
		patch.GalleryPhotos = &trimmed
	}

	updated, err := s.venues.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, store.ErrVenueNotFound):
			status = http.StatusNotFound
		case errors.Is(err, store.ErrNoColumns):
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	if err := s.venues.Delete(r.Context(), r.PathValue("id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrVenueNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
