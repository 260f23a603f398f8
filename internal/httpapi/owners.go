package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"sanctum/internal/listing"
	"sanctum/internal/models"
	"sanctum/internal/store"
)

const ownerPageSize = 8

func ownerTabs() []listing.Tab[models.VenueOwner] {
	return []listing.Tab[models.VenueOwner]{
		{Label: "All"},
		{Label: "Active", Match: func(o models.VenueOwner) bool { return o.Status == models.OwnerActive }},
		{Label: "Pending", Match: func(o models.VenueOwner) bool { return o.Status == models.OwnerPending }},
		{Label: "Inactive", Match: func(o models.VenueOwner) bool { return o.Status == models.OwnerInactive }},
	}
}

func ownerSearchFields(o models.VenueOwner) []string {
	return []string{o.Name, o.Email, o.Location, o.Company}
}

func (s *Server) handleListOwners(w http.ResponseWriter, r *http.Request) {
	all, err := s.owners.FetchAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, listify(all, ownerTabs(), ownerSearchFields, parseListQuery(r), ownerPageSize))
}

func (s *Server) handleCreateOwner(w http.ResponseWriter, r *http.Request) {
	var o models.VenueOwner
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if o.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "owner name is required"})
		return
	}

	created, err := s.owners.Add(r.Context(), o)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetOwner(w http.ResponseWriter, r *http.Request) {
	o, ok := s.owners.Get(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "owner not found"})
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleUpdateOwner(w http.ResponseWriter, r *http.Request) {
	var patch models.OwnerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	updated, err := s.owners.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, store.ErrOwnerNotFound):
			status = http.StatusNotFound
		case errors.Is(err, store.ErrNoColumns):
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteOwner(w http.ResponseWriter, r *http.Request) {
	if err := s.owners.Delete(r.Context(), r.PathValue("id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrOwnerNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
