// Package app contains the application setup for the storefront service.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Allison-thonio/TTTSL/internal/checkout"
	"github.com/Allison-thonio/TTTSL/internal/config"
	"github.com/Allison-thonio/TTTSL/internal/platform/web"
	"github.com/Allison-thonio/TTTSL/internal/service"
	"github.com/Allison-thonio/TTTSL/internal/store"
	"github.com/Allison-thonio/TTTSL/internal/transport/rest"
	"github.com/Allison-thonio/TTTSL/internal/views"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
)

type Dependencies struct {
	StoreService service.StoreService
	Checkout     *checkout.Client
	Views        *views.Tracker
	AdminToken   string
	Logger       *slog.Logger
}

func SetupDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	fileStore, err := store.NewFileStore(cfg.Store.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", cfg.Store.Path, err)
	}
	tracker := views.NewTracker()

	return &Dependencies{
		StoreService: service.NewService(fileStore, tracker),
		Checkout:     checkout.NewClient(cfg.Checkout),
		Views:        tracker,
		AdminToken:   cfg.Admin.Token,
		Logger:       logger,
	}, nil
}

// SetupHttpHandler initializes the HTTP routes and middleware chain.
// Used by E2E tests to exercise the service without a listening socket.
func SetupHttpHandler(deps *Dependencies, corsCfg config.CORSConfig) http.Handler {
	mux := newChiRouter(deps.Logger)
	handler := rest.NewHandler(deps.StoreService, deps.Checkout, deps.Views, deps.AdminToken, deps.Logger)
	handler.RegisterRoutes(mux)

	// Browsers talk to this API straight from the storefront pages, so the
	// CORS layer wraps the whole router.
	origins := corsCfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(mux)
}

// newChiRouter creates a new Chi router with a set of
// middleware for request ID injection, structured logging, and recovery.
func newChiRouter(logger *slog.Logger) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(web.RequestIDInjector)
	mux.Use(web.StructuredLogger(logger))
	mux.Use(web.Recoverer(logger))
	return mux
}

// SetupHttpServer creates and configures the HTTP server for the storefront.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPServer.Port),
		Handler:           SetupHttpHandler(deps, cfg.CORS),
		ReadTimeout:       cfg.HTTPServer.Timeout.Read,
		WriteTimeout:      cfg.HTTPServer.Timeout.Write,
		IdleTimeout:       cfg.HTTPServer.Timeout.Idle,
		ReadHeaderTimeout: cfg.HTTPServer.Timeout.ReadHeader,
		MaxHeaderBytes:    cfg.HTTPServer.MaxHeaderBytes,
	}
}
