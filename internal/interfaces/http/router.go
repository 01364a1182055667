package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiftship/admin-api/internal/application/auth"
	"github.com/swiftship/admin-api/internal/application/report"
	"github.com/swiftship/admin-api/internal/application/usecase"
	"github.com/swiftship/admin-api/internal/domain/access"
	"github.com/swiftship/admin-api/internal/infrastructure/feed"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	AdminUC     *usecase.AdminUseCase
	ShipmentUC  *usecase.ShipmentUseCase
	PaymentUC   *usecase.PaymentUseCase
	BranchUC    *usecase.BranchUseCase
	AgentUC     *usecase.AgentUseCase
	CustomerUC  *usecase.CustomerUseCase
	MessageUC   *usecase.MessageUseCase
	TrackingUC  *usecase.TrackingUseCase
	AuditUC     *usecase.AuditUseCase
	ReportUC    *report.ShipmentReportUseCase
	FeedBuilder *feed.TrackingFeedBuilder
	JWTSecret   string
}

// Router registra las rutas de la API. Cada grupo protegido toma sus roles de
// la tabla access.Routes, la misma que usa el guard de navegación de la
// consola: servidor y cliente no pueden divergir en la política.
func Router(app *fiber.App, deps RouterDeps) {
	guard := func(path string) fiber.Handler {
		return RequireRole(access.RolesFor(path)...)
	}

	// Bootstrap (público): la consola decide Setup u Operating con esto.
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTSecret)
	app.Get("/bootstrap/superadmin-exists", authHandler.SuperAdminExists)

	// Auth (público; register decide internamente si exige SuperAdmin)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Put("/reset-password/:token", authHandler.ResetPassword)

	// Tracking público: consulta por número y feed XML para integraciones.
	trackingHandler := NewTrackingHandler(deps.TrackingUC, deps.FeedBuilder)
	app.Get("/tracking/:number", trackingHandler.History)
	app.Get("/tracking/:number/feed.xml", trackingHandler.Feed)

	// Mensajes de contacto: el alta es pública (formulario del sitio).
	messageHandler := NewMessageHandler(deps.MessageUC)
	app.Post("/messages", messageHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Envíos
	shipments := api.Group("/shipments", guard(access.PathShipments))
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments.Post("/", shipmentHandler.Create)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/:id", shipmentHandler.GetByID)
	shipments.Put("/:id/status", shipmentHandler.UpdateStatus)
	shipments.Delete("/:id", shipmentHandler.Delete)

	// Cuentas administrativas (página Users)
	admins := api.Group("/users", guard(access.PathUsers))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admins.Get("/", adminHandler.List)
	admins.Put("/:id", adminHandler.Update)
	admins.Delete("/:id", adminHandler.Delete)

	// Pagos
	payments := api.Group("/payments", guard(access.PathPayments))
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)

	// Sucursales
	branches := api.Group("/branches", guard(access.PathBranches))
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", branchHandler.Delete)

	// Agentes
	agents := api.Group("/agents", guard(access.PathAgents))
	agentHandler := NewAgentHandler(deps.AgentUC)
	agents.Post("/", agentHandler.Create)
	agents.Get("/", agentHandler.List)
	agents.Get("/:id", agentHandler.GetByID)
	agents.Put("/:id", agentHandler.Update)
	agents.Delete("/:id", agentHandler.Delete)

	// Clientes
	customers := api.Group("/customers", guard(access.PathCustomers))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Mensajes (gestión)
	messages := api.Group("/messages", guard(access.PathMessages))
	messages.Get("/", messageHandler.List)
	messages.Put("/:id/read", messageHandler.MarkRead)
	messages.Delete("/:id", messageHandler.Delete)

	// Tracking logs (vista global)
	trackingLogs := api.Group("/tracking-logs", guard(access.PathTrackingLogs))
	trackingLogs.Get("/", trackingHandler.List)

	// Auditoría
	audit := api.Group("/audit-logs", guard(access.PathAuditLogs))
	auditHandler := NewAuditHandler(deps.AuditUC)
	audit.Get("/", auditHandler.List)

	// Reportes
	reports := api.Group("/reports", guard(access.PathReports))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/shipments.pdf", reportHandler.ShipmentsPDF)
}
