// Package httpapi wires the admin portal's HTTP surface to the underlying
// services.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"sanctum/internal/auth"
	"sanctum/internal/listing"
	"sanctum/internal/logging"
	"sanctum/internal/models"
	"sanctum/internal/store"
	"sanctum/internal/venue"
)

// VenueService captures the venue workflows needed by the HTTP handlers.
type VenueService interface {
	FetchAll(ctx context.Context) ([]venue.Venue, error)
	Add(ctx context.Context, v venue.Venue) (venue.Venue, error)
	Update(ctx context.Context, id string, patch venue.Patch) (venue.Venue, error)
	Delete(ctx context.Context, id string) error
	Get(id string) (venue.Venue, bool)
}

// OwnerService captures the owner workflows needed by the HTTP handlers.
type OwnerService interface {
	FetchAll(ctx context.Context) ([]models.VenueOwner, error)
	Add(ctx context.Context, o models.VenueOwner) (models.VenueOwner, error)
	Update(ctx context.Context, id string, patch models.OwnerPatch) (models.VenueOwner, error)
	Delete(ctx context.Context, id string) error
	Get(id string) (models.VenueOwner, bool)
}

// RegistrarService runs the combined venue-plus-owner creation flow.
type RegistrarService interface {
	CreateVenueWithOwner(ctx context.Context, v venue.Venue) (venue.Venue, error)
}

// EnquiryService coordinates guest enquiries.
type EnquiryService interface {
	List(ctx context.Context) ([]models.Enquiry, error)
	Create(ctx context.Context, e models.Enquiry) (models.Enquiry, error)
	SetStatus(ctx context.Context, id string, status models.EnquiryStatus) (models.Enquiry, error)
}

// SubscriptionService coordinates billing plans.
type SubscriptionService interface {
	List(ctx context.Context) ([]models.Subscription, error)
	Create(ctx context.Context, sub models.Subscription) (models.Subscription, error)
}

// AdminService manages portal operator accounts.
type AdminService interface {
	CreateAdmin(ctx context.Context, email, password, name string) error
	Authenticate(ctx context.Context, email, password string) (store.Admin, error)
}

// MediaStore uploads and removes venue media.
type MediaStore interface {
	Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues        VenueService
	owners        OwnerService
	registrar     RegistrarService
	enquiries     EnquiryService
	subscriptions SubscriptionService
	admins        AdminService
	media         MediaStore
	tokens        *auth.Tokens
	log           *logging.Logger
}

// New configures a Server with the given service implementations.
func New(
	venues VenueService,
	owners OwnerService,
	registrar RegistrarService,
	enquiries EnquiryService,
	subscriptions SubscriptionService,
	admins AdminService,
	media MediaStore,
	tokens *auth.Tokens,
	log *logging.Logger,
) *Server {
	if log == nil {
		log = logging.New(logging.Config{Level: "info"})
	}
	return &Server{
		venues:        venues,
		owners:        owners,
		registrar:     registrar,
		enquiries:     enquiries,
		subscriptions: subscriptions,
		admins:        admins,
		media:         media,
		tokens:        tokens,
		log:           log,
	}
}

// Routes exposes the HTTP handlers for the admin portal.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/v1/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)

	mux.Handle("GET /api/v1/venues", s.requireAuth(s.handleListVenues))
	mux.Handle("POST /api/v1/venues", s.requireAuth(s.handleCreateVenue))
	mux.Handle("GET /api/v1/venues/{id}", s.requireAuth(s.handleGetVenue))
	mux.Handle("PATCH /api/v1/venues/{id}", s.requireAuth(s.handleUpdateVenue))
	mux.Handle("DELETE /api/v1/venues/{id}", s.requireAuth(s.handleDeleteVenue))

	mux.Handle("GET /api/v1/owners", s.requireAuth(s.handleListOwners))
	mux.Handle("POST /api/v1/owners", s.requireAuth(s.handleCreateOwner))
	mux.Handle("GET /api/v1/owners/{id}", s.requireAuth(s.handleGetOwner))
	mux.Handle("PATCH /api/v1/owners/{id}", s.requireAuth(s.handleUpdateOwner))
	mux.Handle("DELETE /api/v1/owners/{id}", s.requireAuth(s.handleDeleteOwner))

	mux.Handle("GET /api/v1/enquiries", s.requireAuth(s.handleListEnquiries))
	mux.Handle("POST /api/v1/enquiries", s.requireAuth(s.handleCreateEnquiry))
	mux.Handle("PUT /api/v1/enquiries/{id}/status", s.requireAuth(s.handleEnquiryStatus))

	mux.Handle("GET /api/v1/subscriptions", s.requireAuth(s.handleListSubscriptions))
	mux.Handle("POST /api/v1/subscriptions", s.requireAuth(s.handleCreateSubscription))

	mux.Handle("POST /api/v1/media", s.requireAuth(s.handleUploadMedia))
	mux.Handle("DELETE /api/v1/media", s.requireAuth(s.handleDeleteMedia))

	return s.withRequestLog(mux)
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	if err := s.admins.CreateAdmin(r.Context(), req.Email, req.Password, req.Name); err != nil {
		switch {
		case errors.Is(err, store.ErrAdminExists):
			writeJSON(w, http.StatusConflict, errorResponse{Error: "email already registered"})
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	admin, err := s.admins.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, store.ErrInvalidCredentials) {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	token, err := s.tokens.Issue(admin.ID, admin.Email, admin.Name)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not issue token"})
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token, Email: admin.Email, Name: admin.Name})
}

func (s *Server) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := parseBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), logging.AdminEmailKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// listQuery is the tab/search/page selection parsed off a list request.
type listQuery struct {
	Tab   string
	Query string
	Page  int
}

func parseListQuery(r *http.Request) listQuery {
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return listQuery{
		Tab:   q.Get("tab"),
		Query: q.Get("q"),
		Page:  page,
	}
}

// listPayload is a page of results plus the pager and tab metadata the list
// screens render.
type listPayload[T any] struct {
	listing.Page[T]
	Pages  []int    `json:"pages"`
	Tabs   []string `json:"tabs"`
	Counts []int    `json:"counts"`
}

// listify derives the full list-screen payload from a flat collection. An
// unknown tab name falls back to the first tab.
func listify[T any](items []T, tabs []listing.Tab[T], fields func(T) []string, lq listQuery, pageSize int) listPayload[T] {
	active := tabs[0]
	for _, t := range tabs {
		if strings.EqualFold(t.Label, lq.Tab) {
			active = t
			break
		}
	}

	filtered := listing.Filter(items, active, lq.Query, fields)
	page := listing.Paginate(filtered, lq.Page, pageSize)

	labels := make([]string, len(tabs))
	for i, t := range tabs {
		labels[i] = t.Label
	}

	return listPayload[T]{
		Page:   page,
		Pages:  listing.Window(page.Number, page.TotalPages),
		Tabs:   labels,
		Counts: listing.Counts(items, tabs),
	}
}

func parseBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
