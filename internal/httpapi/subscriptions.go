package httpapi

import (
	"encoding/json"
	"net/http"

	"sanctum/internal/listing"
	"sanctum/internal/models"
)

const subscriptionPageSize = 8

func subscriptionTabs() []listing.Tab[models.Subscription] {
	return []listing.Tab[models.Subscription]{
		{Label: "All"},
		{Label: "Active", Match: func(s models.Subscription) bool { return s.Status == models.SubscriptionActive }},
		{Label: "Trial", Match: func(s models.Subscription) bool { return s.Status == models.SubscriptionTrial }},
		{Label: "Past Due", Match: func(s models.Subscription) bool { return s.Status == models.SubscriptionPastDue }},
		{Label: "Cancelled", Match: func(s models.Subscription) bool { return s.Status == models.SubscriptionCancelled }},
	}
}

func subscriptionSearchFields(sub models.Subscription) []string {
	return []string{sub.Venue, sub.Owner, sub.Plan}
}

func (s *Server) handleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	all, err := s.subscriptions.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, listify(all, subscriptionTabs(), subscriptionSearchFields, parseListQuery(r), subscriptionPageSize))
}

func (s *Server) handleCreateSubscription(w http.ResponseWriter, r *http.Request) {
	var sub models.Subscription
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if sub.Venue == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "venue name is required"})
		return
	}

	created, err := s.subscriptions.Create(r.Context(), sub)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
