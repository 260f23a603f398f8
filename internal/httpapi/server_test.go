package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sanctum/internal/app/reconciler"
	"sanctum/internal/auth"
	"sanctum/internal/models"
	"sanctum/internal/store"
	"sanctum/internal/venue"
)

type stubVenueService struct {
	venues []venue.Venue

	fetchErr  error
	added     *venue.Venue
	patched   *venue.Patch
	patchedID string
	deletedID string
	deleteErr error
	updateErr error
}

func (s *stubVenueService) FetchAll(ctx context.Context) ([]venue.Venue, error) {
	return s.venues, s.fetchErr
}

func (s *stubVenueService) Add(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	v.ID = "v-new"
	s.added = &v
	return v, nil
}

func (s *stubVenueService) Update(ctx context.Context, id string, patch venue.Patch) (venue.Venue, error) {
	if s.updateErr != nil {
		return venue.Venue{}, s.updateErr
	}
	s.patchedID = id
	s.patched = &patch
	return venue.Venue{ID: id}, nil
}

func (s *stubVenueService) Delete(ctx context.Context, id string) error {
	s.deletedID = id
	return s.deleteErr
}

func (s *stubVenueService) Get(id string) (venue.Venue, bool) {
	for _, v := range s.venues {
		if v.ID == id {
			return v, true
		}
	}
	return venue.Venue{}, false
}

type stubOwnerService struct {
	owners []models.VenueOwner
}

func (s *stubOwnerService) FetchAll(ctx context.Context) ([]models.VenueOwner, error) {
	return s.owners, nil
}

func (s *stubOwnerService) Add(ctx context.Context, o models.VenueOwner) (models.VenueOwner, error) {
	o.ID = "o-new"
	return o, nil
}

func (s *stubOwnerService) Update(ctx context.Context, id string, patch models.OwnerPatch) (models.VenueOwner, error) {
	return models.VenueOwner{ID: id}, nil
}

func (s *stubOwnerService) Delete(ctx context.Context, id string) error { return nil }

func (s *stubOwnerService) Get(id string) (models.VenueOwner, bool) {
	for _, o := range s.owners {
		if o.ID == id {
			return o, true
		}
	}
	return models.VenueOwner{}, false
}

type stubRegistrar struct {
	created venue.Venue
	err     error
}

func (s *stubRegistrar) CreateVenueWithOwner(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	v.ID = "v-linked"
	s.created = v
	return v, s.err
}

type stubEnquiryService struct {
	enquiries []models.Enquiry
}

func (s *stubEnquiryService) List(ctx context.Context) ([]models.Enquiry, error) {
	return s.enquiries, nil
}

func (s *stubEnquiryService) Create(ctx context.Context, e models.Enquiry) (models.Enquiry, error) {
	e.ID = "e-new"
	return e, nil
}

func (s *stubEnquiryService) SetStatus(ctx context.Context, id string, status models.EnquiryStatus) (models.Enquiry, error) {
	if id == "missing" {
		return models.Enquiry{}, store.ErrEnquiryNotFound
	}
	return models.Enquiry{ID: id, Status: status}, nil
}

type stubSubscriptionService struct {
	subs []models.Subscription
}

func (s *stubSubscriptionService) List(ctx context.Context) ([]models.Subscription, error) {
	return s.subs, nil
}

func (s *stubSubscriptionService) Create(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	sub.ID = "s-new"
	return sub, nil
}

type stubAdminService struct {
	admin     store.Admin
	createErr error
	authErr   error
}

func (s *stubAdminService) CreateAdmin(ctx context.Context, email, password, name string) error {
	return s.createErr
}

func (s *stubAdminService) Authenticate(ctx context.Context, email, password string) (store.Admin, error) {
	return s.admin, s.authErr
}

type stubMediaStore struct {
	uploaded string
	deleted  string
}

func (s *stubMediaStore) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	s.uploaded = path
	return "https://cdn.example.com/" + path, nil
}

func (s *stubMediaStore) Delete(ctx context.Context, path string) error {
	s.deleted = path
	return nil
}

type serverFixture struct {
	server  *Server
	venues  *stubVenueService
	owners  *stubOwnerService
	reg     *stubRegistrar
	media   *stubMediaStore
	handler http.Handler
	token   string
}

func newFixture(t *testing.T) *serverFixture {
	t.Helper()

	tokens := auth.NewTokens("test-secret", time.Hour)
	signed, err := tokens.Issue("a1", "ops@sanctum.com", "Ops")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	f := &serverFixture{
		venues: &stubVenueService{},
		owners: &stubOwnerService{},
		reg:    &stubRegistrar{},
		media:  &stubMediaStore{},
		token:  signed,
	}
	f.server = New(
		f.venues,
		f.owners,
		f.reg,
		&stubEnquiryService{},
		&stubSubscriptionService{},
		&stubAdminService{admin: store.Admin{ID: "a1", Email: "ops@sanctum.com", Name: "Ops"}},
		f.media,
		tokens,
		nil,
	)
	f.handler = f.server.Routes()
	return f
}

func (f *serverFixture) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+f.token)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestListVenuesRequiresToken(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/venues", nil)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		bytes.NewReader([]byte(`{"email":"ops@sanctum.com","password":"secret"}`)))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" || resp.Email != "ops@sanctum.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestListVenuesPaginates(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 17; i++ {
		f.venues.venues = append(f.venues.venues, venue.Venue{
			ID:     fmt.Sprintf("v%02d", i),
			Name:   fmt.Sprintf("Venue %02d", i),
			Type:   venue.CategoryWellness,
			Status: venue.StatusActive,
		})
	}

	rec := f.do(t, http.MethodGet, "/api/v1/venues?page=3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Items      []venue.Venue `json:"items"`
		Page       int           `json:"page"`
		TotalPages int           `json:"totalPages"`
		TotalItems int           `json:"totalItems"`
		Pages      []int         `json:"pages"`
		Tabs       []string      `json:"tabs"`
		Counts     []int         `json:"counts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalPages != 3 || resp.Page != 3 {
		t.Fatalf("unexpected paging: %+v", resp)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item on the last page, got %d", len(resp.Items))
	}
	if resp.Counts[0] != 17 {
		t.Fatalf("expected all-tab count 17, got %v", resp.Counts)
	}
}

func TestListVenuesFiltersByTabAndQuery(t *testing.T) {
	f := newFixture(t)
	f.venues.venues = []venue.Venue{
		{ID: "v1", Name: "Soak Wellness", Type: venue.CategoryWellness, Status: venue.StatusActive},
		{ID: "v2", Name: "Moraea Farm", Type: venue.CategoryRetreat, Status: venue.StatusActive},
		{ID: "v3", Name: "Clifftop Lodge", Type: venue.CategoryRetreat, Status: venue.StatusDraft},
	}

	rec := f.do(t, http.MethodGet, "/api/v1/venues?tab=Retreats&q=moraea", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Items []venue.Venue `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "v2" {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
}

func TestCreateVenue(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/venues", map[string]any{
		"name": "Soak Wellness",
		"type": "Wellness",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if f.venues.added == nil || f.venues.added.Name != "Soak Wellness" {
		t.Fatalf("venue service not called: %+v", f.venues.added)
	}
	if f.reg.created.Name != "" {
		t.Fatal("registrar must not run without registerOwner")
	}
}

func TestCreateVenueWithOwnerRegistration(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/venues", map[string]any{
		"name":          "Moraea Farm",
		"type":          "Retreat",
		"owner":         "Ana",
		"email":         "a@x.com",
		"registerOwner": true,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if f.reg.created.Name != "Moraea Farm" {
		t.Fatalf("registrar not called: %+v", f.reg.created)
	}
}

func TestCreateVenueSurfacesOwnerLinkWarning(t *testing.T) {
	f := newFixture(t)
	f.reg.err = fmt.Errorf("%w: insert failed", reconciler.ErrOwnerLink)

	rec := f.do(t, http.MethodPost, "/api/v1/venues", map[string]any{
		"name":          "Moraea Farm",
		"registerOwner": true,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 despite link failure, got %d: %s", rec.Code, rec.Body)
	}

	var resp createVenueResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Warning == "" {
		t.Fatal("expected warning in response")
	}
	if resp.Venue.ID == "" {
		t.Fatal("expected created venue in response")
	}
}

func TestCreateVenueCapsGallery(t *testing.T) {
	f := newFixture(t)

	photos := make([]string, venue.MaxGalleryPhotos+3)
	for i := range photos {
		photos[i] = fmt.Sprintf("p%d.jpg", i)
	}
	rec := f.do(t, http.MethodPost, "/api/v1/venues", map[string]any{
		"name":          "Soak Wellness",
		"galleryPhotos": photos,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got := len(f.venues.added.GalleryPhotos); got != venue.MaxGalleryPhotos {
		t.Fatalf("expected gallery capped at %d, got %d", venue.MaxGalleryPhotos, got)
	}
}

func TestUpdateVenuePassesPatch(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPatch, "/api/v1/venues/v1", map[string]any{
		"status":   "Inactive",
		"capacity": 25,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if f.venues.patchedID != "v1" {
		t.Fatalf("unexpected id: %s", f.venues.patchedID)
	}
	if f.venues.patched.Status == nil || *f.venues.patched.Status != venue.StatusInactive {
		t.Fatalf("status not decoded: %+v", f.venues.patched)
	}
	if f.venues.patched.Capacity == nil || *f.venues.patched.Capacity != 25 {
		t.Fatalf("capacity not decoded: %+v", f.venues.patched)
	}
	if f.venues.patched.Name != nil {
		t.Fatal("absent fields must stay nil")
	}
}

func TestUpdateVenueNotFound(t *testing.T) {
	f := newFixture(t)
	f.venues.updateErr = store.ErrVenueNotFound

	rec := f.do(t, http.MethodPatch, "/api/v1/venues/missing", map[string]any{"status": "Active"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteVenue(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodDelete, "/api/v1/venues/v9", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if f.venues.deletedID != "v9" {
		t.Fatalf("unexpected delete id: %s", f.venues.deletedID)
	}
}

func TestEnquiryStatusUpdate(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPut, "/api/v1/enquiries/e1/status", map[string]any{"status": "Resolved"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	rec = f.do(t, http.MethodPut, "/api/v1/enquiries/missing/status", map[string]any{"status": "Resolved"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteMedia(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodDelete, "/api/v1/media?path=venues/x.jpg", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if f.media.deleted != "venues/x.jpg" {
		t.Fatalf("unexpected deleted path: %s", f.media.deleted)
	}
}
