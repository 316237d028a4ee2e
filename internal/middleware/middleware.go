package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"luxestate/internal/auth"
	handlers "luxestate/internal/handler"
	"luxestate/internal/models"
)

type Middleware func(http.Handler) http.Handler

type UserResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// RequireAuth resolves the bearer token and stores the caller in the request
// context. Requests without a valid token are rejected with 401.
func RequireAuth(resolver UserResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := auth.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				handlers.WriteError(w, auth.ErrMissingToken.Error(), http.StatusUnauthorized)
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, models.ErrUnauthenticated) {
					handlers.WriteError(w, err.Error(), http.StatusUnauthorized)
					return
				}
				slog.Error("resolve caller", "path", r.URL.Path, "error", err)
				handlers.WriteError(w, "internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}

// CORSMiddleware allows the configured origins. A single "*" allows any
// origin.
func CORSMiddleware(origins []string) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: !allowsAny(origins),
		MaxAge:           300,
	})
	return c.Handler
}

func allowsAny(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", time.Since(start),
		)
	})
}

// Chain wraps h so the first middleware listed runs innermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
