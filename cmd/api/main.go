package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"funnel-report-service/internal/config"
	"funnel-report-service/internal/counter"
	"funnel-report-service/internal/db"
	eventsHttp "funnel-report-service/internal/events/adapters/http/fiber"
	eventsRepoPg "funnel-report-service/internal/events/adapters/postgres"
	eventsUsecase "funnel-report-service/internal/events/core/usecase"
	"funnel-report-service/internal/logger"
	"funnel-report-service/internal/notifier"
	reportUsecase "funnel-report-service/internal/report/core/usecase"
	"funnel-report-service/internal/scheduler"
	signupsRepoPg "funnel-report-service/internal/signups/adapters/postgres"
	signupsUsecase "funnel-report-service/internal/signups/core/usecase"
	snapshotsRepoPg "funnel-report-service/internal/snapshots/adapters/postgres"

	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "funnel-report-service/docs"
)

// @title Funnel Report Service API
// @version 1.0
// @description Webhook intake and funnel reporting for QR scan, click, payment and signup events
func main() {
	log := logger.New()

	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// DB connection + schema
	pool, err := db.Open(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open postgres")
	}
	defer pool.Close()

	if err := db.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(eventsRepoPg.NewSQLDB(pool))
	snapshotRepository := snapshotsRepoPg.NewSnapshotRepository(snapshotsRepoPg.NewSQLDB(pool))
	signupRepository := signupsRepoPg.NewSignupRepository(signupsRepoPg.NewSQLDB(pool))

	// Outbound collaborators
	counterClient := counter.NewClient(cfg.CounterAPIBaseURL, cfg.CounterAPIKey)
	telegram := notifier.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatIDs, cfg.TelegramAPIBaseURL, log)

	// Usecases
	logEventUC := eventsUsecase.NewLogEventUseCase(eventRepository)
	captureSignupUC := signupsUsecase.NewCaptureSignupUseCase(signupRepository, logEventUC, telegram, cfg.Location, log)
	reportCycleUC := reportUsecase.NewReportCycleUseCase(eventRepository, snapshotRepository, counterClient, telegram, cfg.Location, log)

	// HTTP (Fiber) app + routes
	app := fiber.New()

	handler := eventsHttp.NewIntakeHandler(
		logEventUC,
		captureSignupUC,
		reportCycleUC,
		eventRepository,
		telegram,
		cfg.Location,
		cfg.CheckoutTrackingEnabled,
		log,
	)

	app.Post("/events", handler.LogEvent)
	app.Post("/webhook/qr", handler.QRScan)
	app.Post("/track/click", handler.TrackClick)
	app.Post("/webhook/payment", handler.Payment)
	if cfg.SignupCaptureEnabled {
		app.Post("/webhook/signup", handler.Signup)
	}

	app.Get("/health", handler.Health)
	app.Get("/debug/stats", handler.DebugStats)
	app.Post("/debug/send-report", handler.DebugSendReport)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Scheduled reporting
	schedCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()

	if cfg.SchedulerEnabled {
		sched := scheduler.New(reportCycleUC, cfg.ReportInterval, log)
		go sched.Run(schedCtx)
	} else {
		log.Info().Msg("report scheduler disabled")
	}

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Addr); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down...")
	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}
