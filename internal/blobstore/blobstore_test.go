package blobstore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUpload(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, "venue-media", "service-key")
	url, err := c.Upload(context.Background(), "venues/v1/hero.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if gotPath != "/storage/v1/object/venue-media/venues/v1/hero.jpg" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer service-key" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if gotType != "image/jpeg" {
		t.Fatalf("unexpected content type: %s", gotType)
	}
	if string(gotBody) != "jpeg-bytes" {
		t.Fatalf("unexpected body: %s", gotBody)
	}
	want := srv.URL + "/storage/v1/object/public/venue-media/venues/v1/hero.jpg"
	if url != want {
		t.Fatalf("public url = %s, want %s", url, want)
	}
}

func TestUploadFailureIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"message":"bucket not found"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "venue-media", "service-key")
	_, err := c.Upload(context.Background(), "x.jpg", "image/jpeg", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "bucket not found") {
		t.Fatalf("error should carry response body, got %v", err)
	}
}

func TestDeleteToleratesMissingObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("unexpected method %s", r.Method)
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "venue-media", "service-key")
	if err := c.Delete(context.Background(), "venues/v1/gone.jpg"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
