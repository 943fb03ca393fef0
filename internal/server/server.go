package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/SpinForge_Go/internal/handler"
	"github.com/osse101/SpinForge_Go/internal/metrics"
	"github.com/osse101/SpinForge_Go/internal/shards"
	"github.com/osse101/SpinForge_Go/internal/slots"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	CORSOrigins    []string
	TrustedProxies []string
	// HealthChecks are probed by /readyz, keyed by dependency name.
	HealthChecks map[string]handler.HealthChecker
}

// Server owns the HTTP listener
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, spinService slots.Service, shardService shards.Service, quoter handler.PriceQuoter) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, spinService, shardService, quoter),
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the route tree. Middleware runs outermost first.
func NewRouter(opts Options, spinService slots.Service, shardService shards.Service, quoter handler.PriceQuoter) http.Handler {
	r := chi.NewRouter()

	r.Use(
		SecurityHeadersMiddleware(),
		cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", HeaderRequestID},
			ExposedHeaders: []string{HeaderRequestID},
			MaxAge:         CORSMaxAgeSeconds,
		}),
		ClientGuardMiddleware(NewTrustedProxies(opts.TrustedProxies), NewClientMonitor()),
		RequestSizeLimitMiddleware(MaxRequestBytes),
		metrics.Middleware,
		AccessLogMiddleware,
	)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.HealthChecks))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	spins := handler.NewSpinHandler(spinService)
	balances := handler.NewShardHandler(shardService)

	r.Route("/api/v1", func(api chi.Router) {
		api.Post("/spin", spins.HandleSpin)
		api.Get("/price", handler.HandleGetPrice(quoter))
		api.Get("/rtp", spins.HandleGetRTPState)
		api.Get("/results/{gameID}", spins.HandleGetResult)

		api.Route("/users/{userID}", func(u chi.Router) {
			u.Get("/results", spins.HandleGetResults)
			u.Get("/free-spins", spins.HandleGetFreeSpins)
			u.Get("/shards", balances.HandleGetBalance)
			u.Post("/shards/redeem", balances.HandleRedeem)
		})
	})

	return r
}

// Start listens until Stop is called. A graceful stop is not an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests until ctx expires
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
