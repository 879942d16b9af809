package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"docuflota/docs"
	"docuflota/internal/config"
	"docuflota/internal/database"
	"docuflota/internal/database/migration"
	handlers "docuflota/internal/http/handler"
	"docuflota/internal/http/middleware"
	"docuflota/internal/notifier"
	"docuflota/internal/otel"
	"docuflota/internal/repository/postgres"
	"docuflota/internal/scheduler"
	"docuflota/internal/service"
	"docuflota/internal/storage"
)

// @title DocuFlota API
// @version 1.0
// @BasePath /
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate schema")
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	// Repositories
	docRepo := postgres.NewDocumentPostgres(db)
	typeRepo := postgres.NewDocumentTypePostgres(db)
	clientRepo := postgres.NewClientPostgres(db)
	vehicleRepo := postgres.NewVehiclePostgres(db)
	personnelRepo := postgres.NewPersonnelPostgres(db)
	reportRepo := postgres.NewReportPostgres(db)
	dashboardRepo := postgres.NewDashboardPostgres(db)

	// Services
	syncer := service.NewSynchronizer(docRepo, logger)
	docSvc := service.NewDocumentService(objStore, docRepo, typeRepo, syncer, cfg.UploadMaxBytes, logger)
	clientSvc := service.NewClientService(clientRepo)
	vehicleSvc := service.NewVehicleService(vehicleRepo, docRepo)
	personnelSvc := service.NewPersonnelService(personnelRepo, docRepo)
	reportSvc := service.NewReportService(reportRepo, logger)

	mailer, err := notifier.NewEmailNotifier(cfg.SMTP, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize email notifier")
	}

	sched, err := scheduler.New(syncer, reportSvc, mailer, cfg.Report.AdminEmail, cfg.Report.CronSpec, cfg.Report.Timezone, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build report scheduler")
	}
	if err := sched.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start report scheduler")
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register prometheus metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, handlers.RouteDeps{
		DB:        db,
		Documents: docSvc,
		Clients:   clientSvc,
		Vehicles:  vehicleSvc,
		Personnel: personnelSvc,
		Reports:   reportSvc,
		Sync:      syncer,
		Dashboard: dashboardRepo,
		Scheduler: sched,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// Serve until interrupted, then drain in-flight requests and stop the
	// background job before exiting.
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Fatal().Err(err).Msg("server stopped unexpectedly")
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}

	<-sched.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("tracing shutdown failed")
	}
}
