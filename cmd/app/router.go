package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"luxestate/internal/config"
	handlers "luxestate/internal/handler"
	"luxestate/internal/middleware"
)

func NewRouter(h *handlers.Handlers, resolver middleware.UserResolver, cfg *config.Config) http.Handler {
	r := mux.NewRouter()
	protected := middleware.RequireAuth(resolver)
	private := func(fn http.HandlerFunc) http.Handler {
		return protected(fn)
	}

	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.Handle("/auth/me", private(h.Me)).Methods(http.MethodGet)

	api.HandleFunc("/properties", h.ListProperties).Methods(http.MethodGet)
	api.Handle("/properties", private(h.CreateProperty)).Methods(http.MethodPost)
	api.Handle("/properties/seller", private(h.ListSellerProperties)).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id}", h.GetProperty).Methods(http.MethodGet)
	api.Handle("/properties/{id}", private(h.UpdatePropertyStatus)).Methods(http.MethodPatch)
	api.Handle("/properties/{id}/images", private(h.UploadPropertyImage)).Methods(http.MethodPost)

	api.HandleFunc("/leads", h.CreateLead).Methods(http.MethodPost)
	api.Handle("/leads", private(h.ListLeads)).Methods(http.MethodGet)

	api.Handle("/users", private(h.ListUsers)).Methods(http.MethodGet)
	api.Handle("/analytics", private(h.Analytics)).Methods(http.MethodGet)
	api.Handle("/analytics/property-types", private(h.AnalyticsByType)).Methods(http.MethodGet)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "route not found", http.StatusNotFound)
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	// Subrouters do not inherit these.
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = methodNotAllowed
	api.NotFoundHandler = notFound
	api.MethodNotAllowedHandler = methodNotAllowed

	return middleware.Chain(
		r,
		middleware.CORSMiddleware(cfg.CORSOrigins),
		middleware.LoggingMiddleware,
	)
}
