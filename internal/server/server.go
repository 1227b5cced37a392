package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/catalog"
	"github.com/osse101/GranblueTeam_Go/internal/handler"
	"github.com/osse101/GranblueTeam_Go/internal/metrics"
	"github.com/osse101/GranblueTeam_Go/internal/party"
	"github.com/osse101/GranblueTeam_Go/internal/session"
	"github.com/osse101/GranblueTeam_Go/internal/validation"
)

// Options are the listener and middleware settings
type Options struct {
	Port           int
	TrustedProxies []string
	MaxBodyBytes   int64
	Detector       DetectorConfig
}

// Dependencies are the services the routes are built on
type Dependencies struct {
	Backend  *backend.Client
	Parties  party.Service
	Catalog  catalog.Service
	Sessions *session.Manager
	Bodies   validation.BodyValidator
	Checkers []handler.HealthChecker
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the gateway's route tree
func NewRouter(opts Options, deps Dependencies) http.Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.Detector)

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.NotFound(handler.HandleNotFound)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Checkers...))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	parties := handler.NewPartyHandler(deps.Parties, deps.Bodies)
	cat := handler.NewCatalogHandler(deps.Catalog)
	search := handler.NewSearchHandler(deps.Backend)
	auth := handler.NewAuthHandler(deps.Backend, deps.Sessions)
	editor := handler.NewEditorHandler(deps.Catalog, deps.Backend)
	requireAccount := session.RequireAccount(handler.HandleUnauthorized)

	r.Route("/api", func(r chi.Router) {
		r.Use(deps.Sessions.Middleware)

		r.Get("/version", handler.HandleBackendVersion(deps.Backend))

		// Session routes
		r.With(LoginGuardMiddleware(opts.TrustedProxies, detector)).Post("/login", auth.HandleLogin)
		r.Post("/logout", auth.HandleLogout)
		r.Get("/session", auth.HandleSession)
		r.Put("/session/settings", auth.HandleSettings)

		// Party routes
		r.Route("/parties", func(r chi.Router) {
			r.Get("/", parties.HandleListParties)
			r.Post("/", parties.HandleCreateParty)
			r.Route("/{party}", func(r chi.Router) {
				r.Get("/", parties.HandleGetParty)
				r.Put("/", parties.HandleUpdateParty)
				r.Delete("/", parties.HandleDeleteParty)
				r.Post("/remix", parties.HandleRemixParty)

				r.With(requireAccount).Post("/favorite", parties.HandleFavorite)
				r.With(requireAccount).Delete("/favorite", parties.HandleUnfavorite)

				r.Route("/grid/{category}", func(r chi.Router) {
					r.Post("/", parties.HandleCreateGridItem)
					r.Put("/{gridID}", parties.HandleUpdateGridItem)
					r.Delete("/{gridID}", parties.HandleDeleteGridItem)
					r.Put("/{gridID}/uncap", parties.HandleUpdateUncap)
				})
			})
		})

		// Catalog routes
		for _, resource := range []string{
			backend.ResourceCharacters, backend.ResourceWeapons, backend.ResourceSummons,
			backend.ResourceJobs, backend.ResourceRaids, backend.ResourceGuidebooks,
		} {
			r.Get("/"+resource+"/{id}", cat.HandleGetObject(resource))
		}
		for _, resource := range []string{
			backend.ResourceJobs, backend.ResourceRaids, backend.ResourceRaidGroups,
			backend.ResourceGuidebooks, backend.ResourceWeaponKeys,
		} {
			r.Get("/"+resource, cat.HandleList(resource))
		}
		r.Get("/jobs/{id}/skills", cat.HandleJobSkills)
		r.Get("/jobs/{id}/accessories", cat.HandleJobAccessories)
		r.Get("/catalog/stats", cat.HandleCacheStats)

		// Catalog editing
		r.Get("/weapons/{id}/edit", editor.HandleGetWeaponForm)
		r.With(requireAccount).Put("/weapons/{id}", editor.HandleUpdateWeapon)

		// Search routes
		r.Get("/search/{object}", search.HandleSearchQuery)
		r.Post("/search/{object}", search.HandleSearch)

		// User routes
		r.Get("/users/{username}", handler.HandleGetUser(deps.Backend))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
