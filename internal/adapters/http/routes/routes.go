package routes

import (
	"navims-backend/internal/adapters/http/handlers"
	"navims-backend/internal/adapters/http/middleware"
	"navims-backend/internal/adapters/persistence/repositories"
	"navims-backend/internal/config"
	"navims-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	unitRepo := repositories.NewUnitRepository(db)
	setupRepo := repositories.NewSetupRepository(db)
	setupDetailRepo := repositories.NewSetupDetailRepository(db)
	equipmentRepo := repositories.NewEquipmentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	unitService := services.NewUnitService(unitRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userRepo)
	unitHandler := handlers.NewUnitHandler(unitService)
	setupHandler := handlers.NewSetupHandler(setupRepo, setupDetailRepo)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("/health", healthHandler.HealthCheck)

	// Auth routes
	authRoutes := api.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// User management routes
	userRoutes := api.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	setupUserRoutes(userRoutes, userHandler)

	// Unit tree routes
	unitRoutes := api.Group("/units")
	unitRoutes.Use(middleware.AuthMiddleware(cfg))
	setupUnitRoutes(unitRoutes, unitHandler)

	// Reference taxonomy routes
	setupRoutes := api.Group("/setups")
	setupRoutes.Use(middleware.AuthMiddleware(cfg))
	setupSetupRoutes(setupRoutes, setupHandler)

	detailRoutes := api.Group("/setup-details")
	detailRoutes.Use(middleware.AuthMiddleware(cfg))
	setupSetupDetailRoutes(detailRoutes, setupHandler)

	// Equipment routes
	equipmentRoutes := api.Group("/equipments")
	equipmentRoutes.Use(middleware.AuthMiddleware(cfg))
	setupEquipmentRoutes(equipmentRoutes, equipmentHandler)

	// Dashboard routes
	dashboardRoutes := api.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Use(middleware.NoCacheHeaders())
	setupDashboardRoutes(dashboardRoutes, dashboardHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Login is rate limited per IP against brute force
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)

	// Protected route
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupUserRoutes configures user management routes; mutations are
// admin only
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.ListUsers)
	router.Get("/command/:commandSetupDetailId", handler.GetUsersByCommand)
	router.Get("/:id", handler.GetUser)

	adminRoutes := router.Group("")
	adminRoutes.Use(middleware.AdminOnly())
	adminRoutes.Post("/", handler.CreateUser)
	adminRoutes.Put("/:id", handler.UpdateUser)
	adminRoutes.Delete("/:id", handler.DeleteUser)
}

// setupUnitRoutes configures organizational unit routes
func setupUnitRoutes(router fiber.Router, handler *handlers.UnitHandler) {
	router.Get("/", handler.ListUnits)
	router.Get("/commands", handler.GetCommands)
	router.Get("/command/:commandId", handler.GetUnitsByCommand)
	router.Get("/parent/:parentId", handler.GetUnitsByParent)
	router.Get("/company/:companyId", handler.GetUnitsByCompany)
	router.Get("/:id", handler.GetUnit)
	router.Post("/", handler.CreateUnit)
	router.Put("/:id", handler.UpdateUnit)
	router.Delete("/:id", handler.DeleteUnit)
}

// setupSetupRoutes configures setup taxonomy routes; reads are cached
// as reference data
func setupSetupRoutes(router fiber.Router, handler *handlers.SetupHandler) {
	router.Get("/", middleware.ReferenceDataCache(300), handler.ListSetups)
	router.Get("/:id", middleware.ReferenceDataCache(300), handler.GetSetup)
	router.Post("/", handler.CreateSetup)
	router.Put("/:id", handler.UpdateSetup)
	router.Delete("/:id", handler.DeleteSetup)
}

// setupSetupDetailRoutes configures setup detail routes
func setupSetupDetailRoutes(router fiber.Router, handler *handlers.SetupHandler) {
	router.Get("/", middleware.ReferenceDataCache(300), handler.ListSetupDetails)
	router.Get("/sms/:smsId", middleware.ReferenceDataCache(300), handler.GetSetupDetailsBySetup)
	router.Get("/:id", middleware.ReferenceDataCache(300), handler.GetSetupDetail)
	router.Post("/", handler.CreateSetupDetail)
	router.Put("/:id", handler.UpdateSetupDetail)
	router.Delete("/:id", handler.DeleteSetupDetail)
}

// setupEquipmentRoutes configures equipment inventory routes
func setupEquipmentRoutes(router fiber.Router, handler *handlers.EquipmentHandler) {
	router.Get("/", handler.ListEquipments)
	router.Get("/search", handler.SearchEquipments)
	router.Get("/type/:typeId", handler.GetEquipmentsByType)
	router.Get("/serial/:serialNo", handler.GetEquipmentBySerial)
	router.Get("/:id", handler.GetEquipment)
	router.Post("/", handler.CreateEquipment)
	router.Put("/:id", handler.UpdateEquipment)
	router.Delete("/:id", handler.DeleteEquipment)
}

// setupDashboardRoutes configures dashboard aggregation routes
func setupDashboardRoutes(router fiber.Router, handler *handlers.DashboardHandler) {
	router.Get("/stats", handler.GetStats)
	router.Get("/equipment-by-type", handler.GetEquipmentByType)
	router.Get("/equipment-by-status", handler.GetEquipmentByStatus)
	router.Get("/equipment-by-command", handler.GetEquipmentByCommand)
	router.Get("/equipment-by-command/:commandId/units", handler.GetEquipmentByUnitsInCommand)
}
