package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ethub/internal/audit"
	"ethub/internal/features"
	hubhandler "ethub/internal/hub/handler"
	hubmetrics "ethub/internal/hub/metrics"
	hubservice "ethub/internal/hub/service"
	"ethub/internal/i18n"
	jwttoken "ethub/internal/jwt_token"
	"ethub/internal/platform/config"
	"ethub/internal/platform/httpserver"
	"ethub/internal/platform/logger"
	"ethub/internal/platform/metrics"
	"ethub/pkg/platform/httputil"
)

const auditBuffer = 256

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stores.Close()

	publisher, inbox := audit.NewPublisher(auditBuffer, log)
	worker := audit.NewWorker(stores.auditSink(), inbox, log)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		// Background context so buffered events drain after the signal.
		_ = worker.Run(context.Background())
	}()

	flags := features.StaticFlags{Welsh: cfg.Features.WelshEnabled}
	hub := hubservice.New(stores.cases,
		hubservice.WithAuditor(publisher),
		hubservice.WithMetrics(hubmetrics.New(prometheus.DefaultRegisterer)),
		hubservice.WithFlags(flags),
		hubservice.WithLogger(log),
	)

	translations, err := i18n.Load(log)
	if err != nil {
		return err
	}

	jwtService := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)
	if cfg.SeedDemoCase {
		if err := seedDemoCase(ctx, stores.cases, jwtService, log); err != nil {
			return err
		}
	}

	router := chi.NewRouter()
	router.Get("/health", stores.healthHandler())
	router.Handle("/metrics", promhttp.Handler())
	hubhandler.New(hub, translations, flags, log,
		metrics.New(prometheus.DefaultRegisterer),
		jwttoken.NewJWTServiceAdapter(jwtService),
	).Register(router)

	srv := httpserver.New(cfg.Server.Addr, router)
	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting respondent hub", "addr", cfg.Server.Addr, "case_store", cfg.CaseStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	publisher.Close()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("audit worker did not drain before shutdown timeout")
	}
	return nil
}

func (s *storeSet) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Health(r.Context()); err != nil {
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
