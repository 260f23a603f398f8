package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"sanctum/internal/app/enquiries"
	"sanctum/internal/app/owners"
	"sanctum/internal/app/reconciler"
	"sanctum/internal/app/subscriptions"
	"sanctum/internal/app/venues"
	"sanctum/internal/auth"
	"sanctum/internal/blobstore"
	"sanctum/internal/httpapi"
	"sanctum/internal/logging"
	"sanctum/internal/store"
)

type services struct {
	venues venues.Service
	owners owners.Service
}

func newHTTPHandler(cfg Config, dataStore *store.Store, logger *logging.Logger) (http.Handler, services) {
	venueSvc := venues.New(dataStore)
	ownerSvc := owners.New(dataStore)
	registrarSvc := reconciler.New(venueSvc, ownerSvc)
	enquirySvc := enquiries.New(dataStore)
	subscriptionSvc := subscriptions.New(dataStore)

	media := blobstore.New(cfg.StorageURL, cfg.StorageBucket, cfg.StorageKey)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	server := httpapi.New(
		venueSvc,
		ownerSvc,
		registrarSvc,
		enquirySvc,
		subscriptionSvc,
		dataStore,
		media,
		tokens,
		logger,
	)

	handler := withCORS(cfg.AllowedOrigins, server.Routes())
	return handler, services{venues: venueSvc, owners: ownerSvc}
}

// warmCaches fills the venue and owner caches before the first request so
// id lookups work immediately after startup.
func warmCaches(logger *logging.Logger, svcs services) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := svcs.venues.FetchAll(ctx); err != nil {
		logger.Error(err, "warm venue cache")
	}
	if _, err := svcs.owners.FetchAll(ctx); err != nil {
		logger.Error(err, "warm owner cache")
	}
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
