package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/harborlight-health/clinic-platform/internal/api/router"
	"github.com/harborlight-health/clinic-platform/internal/clinic"
	appconfig "github.com/harborlight-health/clinic-platform/internal/config"
	"github.com/harborlight-health/clinic-platform/internal/dashboard"
	obsmetrics "github.com/harborlight-health/clinic-platform/internal/observability/metrics"
	"github.com/harborlight-health/clinic-platform/internal/scheduling"
	"github.com/harborlight-health/clinic-platform/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting clinic-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	redisClient := connectRedis(cfg, logger)
	settingsStore := clinic.NewStore(redisClient)
	schedulingStore := scheduling.NewInMemoryStore()

	metricsHandler, engineMetrics := setupObservability()

	cache := dashboard.NewSnapshotCache(redisClient, cfg.SnapshotCacheTTL, engineMetrics, logger)
	dashboardHandler := dashboard.NewHandler(schedulingStore, schedulingStore, settingsStore, cache, logger)

	if cfg.SeedDemoData {
		seedDemoData(context.Background(), cfg, settingsStore, schedulingStore, logger)
	}

	r := router.New(&router.Config{
		Logger:               logger,
		Dashboard:            dashboardHandler,
		MetricsHandler:       metricsHandler,
		CORSAllowedOrigins:   cfg.CORSAllowedOrigins,
		APIRequestsPerSecond: 20,
		APIBurst:             40,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func connectRedis(cfg *appconfig.Config, logger *logging.Logger) *redis.Client {
	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// Settings fall back to defaults and the snapshot cache degrades to
		// direct computation, so startup continues.
		logger.Warn("redis unreachable at startup", "addr", cfg.RedisAddr, "error", err)
	}
	return client
}

// setupObservability wires the engine collectors onto a dedicated registry and
// returns the /metrics handler alongside them.
func setupObservability() (http.Handler, *obsmetrics.DashboardMetrics) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	engineMetrics := obsmetrics.NewDashboardMetrics(registry)
	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return handler, engineMetrics
}

// seedDemoData loads a small, deterministic schedule for local development.
func seedDemoData(ctx context.Context, cfg *appconfig.Config, settingsStore *clinic.Store, store *scheduling.InMemoryStore, logger *logging.Logger) {
	settings := clinic.DefaultSettings(cfg.DefaultOrgID)
	settings.Name = "Harborlight Demo Clinic"
	settings.WorkingHours = clinic.WorkingHours{
		StartHour:           cfg.ClinicStartHour,
		EndHour:             cfg.ClinicEndHour,
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		WorkDays:            cfg.WorkDays,
	}
	settings.AverageTicketCents = cfg.AverageTicketCents
	settings.OccupancyTargetPct = cfg.OccupancyTargetPct
	if err := settingsStore.Set(ctx, settings); err != nil {
		logger.Warn("failed to store demo clinic settings", "org_id", cfg.DefaultOrgID, "error", err)
	}

	now := time.Now().In(settings.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	seed := []struct {
		dayOffset int
		hour      int
		minutes   int
		status    scheduling.AppointmentStatus
	}{
		{0, 8, 30, scheduling.StatusFinished},
		{0, 9, 30, scheduling.StatusArrived},
		{0, 10, 60, scheduling.StatusConfirmed},
		{0, 14, 30, scheduling.StatusPending},
		{-1, 9, 30, scheduling.StatusFinished},
		{-1, 11, 45, scheduling.StatusNoShow},
		{-7, 10, 30, scheduling.StatusFinished},
		{-30, 9, 30, scheduling.StatusFinished},
		{-32, 15, 60, scheduling.StatusFinished},
		{-35, 13, 30, scheduling.StatusCanceled},
	}

	for _, s := range seed {
		store.PutAppointment(scheduling.Appointment{
			ID:              uuid.New(),
			OrgID:           cfg.DefaultOrgID,
			PatientID:       uuid.New(),
			StartsAt:        today.AddDate(0, 0, s.dayOffset).Add(time.Duration(s.hour) * time.Hour),
			DurationMinutes: s.minutes,
			Status:          s.status,
		})
	}
	for i := 0; i < 12; i++ {
		store.PutPatient(scheduling.Patient{ID: uuid.New(), OrgID: cfg.DefaultOrgID})
	}

	logger.Info("seeded demo data", "org_id", cfg.DefaultOrgID, "appointments", len(seed))
}
