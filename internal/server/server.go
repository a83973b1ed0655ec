package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/GildedRose_Go/internal/handler"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/metrics"
	"github.com/osse101/GildedRose_Go/internal/sse"
)

type Server struct {
	httpServer *http.Server
}

// RouterConfig carries the router's collaborators. Hub and DayTrigger are optional:
// a nil Hub disables the event stream and a nil DayTrigger sends single-day
// advances straight to the service.
type RouterConfig struct {
	APIKey         string
	TrustedProxies []string
	Service        inventory.Service
	Hub            *sse.Hub
	DayTrigger     handler.DayTrigger
	Checkers       []handler.HealthChecker
}

// NewServer creates a new Server instance
func NewServer(port int, cfg RouterConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(cfg),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the HTTP routing tree. The inventory service always takes part
// in readiness; extra checkers are appended.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(append([]handler.HealthChecker{cfg.Service}, cfg.Checkers...)...))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI (public, for API documentation)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	inventoryHandler := handler.NewInventoryHandler(cfg.Service)
	agingHandler := handler.NewAgingHandler(cfg.Service, cfg.DayTrigger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))

		r.Route("/items", func(r chi.Router) {
			r.Get("/", inventoryHandler.HandleListItems)
			r.Post("/", inventoryHandler.HandleAddItem)
			r.Get("/{id}", inventoryHandler.HandleGetItem)
			r.Delete("/{id}", inventoryHandler.HandleRemoveItem)
		})

		r.Route("/aging", func(r chi.Router) {
			r.Post("/advance", agingHandler.HandleAdvance)
			r.Get("/day", agingHandler.HandleCurrentDay)
			r.Get("/reports", agingHandler.HandleListReports)
			r.Get("/reports/{day}", agingHandler.HandleGetReport)
		})

		if cfg.Hub != nil {
			r.Get("/events", sse.Handler(cfg.Hub))
		}
	})

	return r
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
