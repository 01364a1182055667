package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/swiftship/admin-api/internal/application/auth"
	"github.com/swiftship/admin-api/internal/application/report"
	"github.com/swiftship/admin-api/internal/application/usecase"
	"github.com/swiftship/admin-api/internal/infrastructure/feed"
	infrapdf "github.com/swiftship/admin-api/internal/infrastructure/pdf"
	"github.com/swiftship/admin-api/internal/infrastructure/postgres"
	httpRouter "github.com/swiftship/admin-api/internal/interfaces/http"
	"github.com/swiftship/admin-api/pkg/config"
	"github.com/swiftship/admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	adminRepo := postgres.NewAdminRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	trackingRepo := postgres.NewTrackingRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	agentRepo := postgres.NewAgentRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(adminRepo, auditRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	adminUC := usecase.NewAdminUseCase(adminRepo)
	shipmentUC := usecase.NewShipmentUseCase(shipmentRepo, txRunner)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, txRunner)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	agentUC := usecase.NewAgentUseCase(agentRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	messageUC := usecase.NewMessageUseCase(messageRepo)
	trackingUC := usecase.NewTrackingUseCase(trackingRepo)
	auditUC := usecase.NewAuditUseCase(auditRepo)

	// PDF de la página Reports y feed XML de tracking
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewShipmentReportUseCase(shipmentRepo, pdfGenerator, cfg.App.Name)
	feedBuilder := feed.NewTrackingFeedBuilder(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SwiftShip Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		AdminUC:     adminUC,
		ShipmentUC:  shipmentUC,
		PaymentUC:   paymentUC,
		BranchUC:    branchUC,
		AgentUC:     agentUC,
		CustomerUC:  customerUC,
		MessageUC:   messageUC,
		TrackingUC:  trackingUC,
		AuditUC:     auditUC,
		ReportUC:    reportUC,
		FeedBuilder: feedBuilder,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
