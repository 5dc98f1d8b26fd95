package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestStateKey contextKey = "requestState"

// requestState is filled in as a request moves through the middleware and router
type requestState struct {
	RequestID string
	Route     string
}

func stateFrom(ctx context.Context) *requestState {
	state, _ := ctx.Value(requestStateKey).(*requestState)
	return state
}

// RequestID returns the id assigned to the request, if any
func RequestID(ctx context.Context) string {
	if state := stateFrom(ctx); state != nil {
		return state.RequestID
	}
	return ""
}

func setRouteName(ctx context.Context, name string) {
	if state := stateFrom(ctx); state != nil {
		state.Route = name
	}
}

// Middleware wraps an http.Handler
type Middleware func(http.Handler) http.Handler

// Chain applies middleware so the first one listed is outermost
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// WithRequestID reuses an incoming X-Request-ID or generates a new one
func WithRequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			state := stateFrom(r.Context())
			if state == nil {
				state = &requestState{}
				r = r.WithContext(context.WithValue(r.Context(), requestStateKey, state))
			}
			state.RequestID = id

			next.ServeHTTP(w, r)
		})
	}
}

// statusRecorder remembers the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// WithLogging logs one line per request and records it in metrics
func WithLogging(logger *slog.Logger, metrics *Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			route := ""
			requestID := ""
			if state := stateFrom(r.Context()); state != nil {
				route = state.Route
				requestID = state.RequestID
			}
			if metrics != nil {
				metrics.Record(route, rec.status)
			}

			level := slog.LevelInfo
			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(r.Context(), level, "http request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"route", route,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}

// WithRecovery turns a handler panic into a bare 500 response and logs the
// panic value at error level
func WithRecovery(logger *slog.Logger) Middleware {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError)),
		handlers.PrintRecoveryStack(false),
	)
}
