package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"sanctum/internal/logging"
)

// statusRecorder captures the response code for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// withRequestLog tags every request with an id, recovers panics and logs the
// outcome.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		ctx := context.WithValue(r.Context(), logging.RequestIDKey, requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		w.Header().Set("X-Request-ID", requestID)

		defer func() {
			if err := recover(); err != nil {
				rec.status = http.StatusInternalServerError
				writeJSON(rec, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
				s.log.WithContext(ctx).Error().
					Interface("panic", err).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("handler panic")
			}
			s.log.HTTPRequest(ctx, r.Method, r.URL.Path, rec.status, time.Since(start), nil)
		}()

		next.ServeHTTP(rec, r.WithContext(ctx))
	})
}
