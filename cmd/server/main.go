package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/salonbook/internal/backup"
	"github.com/mmynk/salonbook/internal/config"
	"github.com/mmynk/salonbook/internal/messaging"
	"github.com/mmynk/salonbook/internal/middleware"
	"github.com/mmynk/salonbook/internal/service"
	"github.com/mmynk/salonbook/internal/storage/sqlite"
	"github.com/mmynk/salonbook/pkg/api/apiconnect"
	"github.com/mmynk/salonbook/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logging is not configured yet
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		slog.Error("Failed to create data directory", "error", err)
		os.Exit(1)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	// Metrics go to a dedicated registry so /metrics only shows this process
	var reg *prometheus.Registry
	if cfg.MetricsEnabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	interceptors := []connect.Interceptor{
		middleware.RequestIDInterceptor(),
		middleware.LoggingInterceptor(),
	}
	var metricsReg prometheus.Registerer
	if reg != nil {
		metricsReg = reg
		interceptors = append(interceptors, middleware.NewMetrics(reg).Interceptor())
	}
	opts := connect.WithInterceptors(interceptors...)

	var sender messaging.Sender
	if cfg.ReminderWebhookURL != "" {
		sender = messaging.NewWebhookSender(cfg.ReminderWebhookURL, cfg.ReminderWebhookToken)
		slog.Info("Reminder webhook enabled", "url", cfg.ReminderWebhookURL)
	}

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(apiconnect.NewCatalogServiceHandler(service.NewCatalogService(store), opts))
	mux.Handle(apiconnect.NewAppointmentServiceHandler(service.NewAppointmentService(store, cfg.WorkingHours), opts))
	mux.Handle(apiconnect.NewCalendarServiceHandler(service.NewCalendarService(store, time.Now), opts))
	mux.Handle(apiconnect.NewReminderServiceHandler(
		service.NewReminderService(store, messaging.NewComposer(cfg.ReminderTemplate), sender, metricsReg),
		opts,
	))

	mux.Handle("/backup", backup.Handler(store, time.Now))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if reg != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving static files", "path", staticDir)
	mux.Handle("/", staticHandler(staticDir))

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(loggedHandler, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}
