package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/infofinder-backend/internal/adapter/memory/session"
	"github.com/heartmarshall/infofinder-backend/internal/adapter/provider/lookup"
	"github.com/heartmarshall/infofinder-backend/internal/config"
	"github.com/heartmarshall/infofinder-backend/internal/metrics"
	lookupsvc "github.com/heartmarshall/infofinder-backend/internal/service/lookup"
	"github.com/heartmarshall/infofinder-backend/internal/transport/middleware"
	"github.com/heartmarshall/infofinder-backend/internal/transport/rest"
)

// Lookup bundles the lookup pipeline shared by the server and the CLI.
type Lookup struct {
	Provider *lookup.Provider
	Service  *lookupsvc.Service
}

// NewLookup wires the upstream provider and the lookup service. m may be nil.
func NewLookup(cfg config.LookupConfig, m *metrics.Metrics, logger *slog.Logger) Lookup {
	provider := lookup.NewProvider(lookup.Options{
		UserAgent: cfg.UserAgent,
		BaseURLs:  cfg.BaseURLs(),
	}, m, logger)

	return Lookup{
		Provider: provider,
		Service:  lookupsvc.NewService(logger, provider, m),
	}
}

// Run is the server entry point. It loads configuration, wires the lookup
// pipeline and serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	sessions, err := session.NewStore(cfg.Session.Capacity, logger)
	if err != nil {
		return err
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, cfg.RateLimit.IdleTTL)
		defer limiter.Stop()
	}

	handler := NewRouter(cfg, NewLookup(cfg.Lookup, m, logger), sessions, reg, limiter, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}

// NewRouter assembles the HTTP handler: probes, metrics and the /api/v1 routes
// behind the middleware chain. limiter and reg may be nil.
func NewRouter(
	cfg *config.Config,
	lk Lookup,
	sessions *session.Store,
	reg *prometheus.Registry,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
) http.Handler {
	health := rest.NewHealthHandler(lk.Provider, sessions, BuildVersion())
	lookups := rest.NewLookupHandler(lk.Service, sessions, logger)

	r := chi.NewRouter()
	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)

	if cfg.Metrics.Enabled && reg != nil {
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(api chi.Router) {
		if limiter != nil {
			api.Use(limiter.Limit(cfg.RateLimit.RequestsPerMinute))
		}
		lookups.Register(api)
	})

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.SessionID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(r)
}
