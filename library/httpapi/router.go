package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/httpapi/auth"
	"github.com/Chalhotra/LibMgmt/library/shell"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies is what NewRouter needs to serve requests.
type Dependencies struct {
	Handlers Handlers
	Issuer   *auth.Issuer
	Registry *prometheus.Registry
	Pinger   Pinger
}

// Option configures the router.
type Option func(*server)

// WithLogger sets the logger for request failures.
func WithLogger(logger shell.ContextualLogger) Option {
	return func(s *server) {
		s.logger = logger
	}
}

// WithClock replaces time.Now as the source of OccurredAt for commands.
func WithClock(now func() time.Time) Option {
	return func(s *server) {
		s.now = now
	}
}

// WithIDGenerator replaces uuid.New for new users, books and checkouts.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *server) {
		s.newID = newID
	}
}

type server struct {
	commands Commands
	queries  Queries
	issuer   *auth.Issuer
	pinger   Pinger
	logger   shell.ContextualLogger
	now      func() time.Time
	newID    func() uuid.UUID
}

// NewRouter registers all routes. Everything except registration, login, health and metrics
// requires a bearer token.
func NewRouter(deps Dependencies, opts ...Option) *mux.Router {
	s := &server{
		commands: deps.Handlers.Commands,
		queries:  deps.Handlers.Queries,
		issuer:   deps.Issuer,
		pinger:   deps.Pinger,
		now:      time.Now,
		newID:    uuid.New,
	}

	for _, opt := range opts {
		opt(s)
	}

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(s.routeNotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(s.methodNotAllowed)
	router.Use(s.correlate, newHTTPMetrics(deps.Registry).middleware)

	router.HandleFunc("/healthz", s.liveness).Methods(http.MethodGet)
	router.HandleFunc("/readyz", s.readiness).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	router.HandleFunc("/auth/register", s.registerUser).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)

	api := router.NewRoute().Subrouter()
	api.Use(s.authenticate)

	api.HandleFunc("/books", s.listBooks).Methods(http.MethodGet)
	api.HandleFunc("/books/search", s.searchBooks).Methods(http.MethodGet)
	api.HandleFunc("/books", s.addOrRestockBook).Methods(http.MethodPost)
	api.HandleFunc("/books/{id}", s.updateBook).Methods(http.MethodPut)
	api.HandleFunc("/books/{id}", s.removeBook).Methods(http.MethodDelete)
	api.HandleFunc("/books/{id}/checkouts", s.requestCheckout).Methods(http.MethodPost)

	api.HandleFunc("/checkouts/{id}/checkin", s.checkinBook).Methods(http.MethodPost)

	api.HandleFunc("/me", s.currentUser).Methods(http.MethodGet)
	api.HandleFunc("/me/history", s.borrowingHistory).Methods(http.MethodGet)
	api.HandleFunc("/me/admin-request", s.requestAdmin).Methods(http.MethodPost)

	api.HandleFunc("/admin/checkout-requests", s.pendingCheckoutRequests).Methods(http.MethodGet)
	api.HandleFunc("/admin/checkout-requests/{id}/approve", s.approveCheckout).Methods(http.MethodPost)
	api.HandleFunc("/admin/checkout-requests/{id}/deny", s.denyCheckout).Methods(http.MethodPost)
	api.HandleFunc("/admin/admin-requests", s.pendingAdminRequests).Methods(http.MethodGet)
	api.HandleFunc("/admin/admin-requests/{userId}/approve", s.approveAdmin).Methods(http.MethodPost)
	api.HandleFunc("/admin/admin-requests/{userId}/deny", s.denyAdmin).Methods(http.MethodPost)

	return router
}

func (s *server) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) readiness(w http.ResponseWriter, r *http.Request) {
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			s.logError(r, err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})

			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) routeNotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Kind: string(core.KindNotFound), Message: reasonRouteNotFound})
}

func (s *server) methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Kind: "MethodNotAllowed", Message: reasonMethodNotAllowed})
}

// principal is set by authenticate, every handler behind it can rely on it.
func principal(r *http.Request) auth.Principal {
	p, _ := auth.PrincipalFrom(r.Context())
	return p
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, core.Reject(core.ErrInvalid, reasonMalformedID)
	}

	return id, nil
}
