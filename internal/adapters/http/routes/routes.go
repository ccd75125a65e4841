package routes

import (
	"time"

	"careerhub/internal/adapters/http/handlers"
	"careerhub/internal/adapters/http/middleware"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/adapters/storage"
	"careerhub/internal/config"
	"careerhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// noticeCacheAge is how long shared caches may keep the public notice list
const noticeCacheAge = time.Minute

// Stores are the object stores for uploaded documents and issued certificates
type Stores struct {
	Documents    storage.ObjectStore
	Certificates storage.ObjectStore
}

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, stores Stores) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	careerRepo := repositories.NewCareerRepository(db)
	certRepo := repositories.NewCertificateRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	noticeRepo := repositories.NewNoticeRepository(db)
	activityRepo := repositories.NewActivityRepository(db)

	// Initialize services
	activityService := services.NewActivityService(activityRepo)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo, refreshTokenRepo)
	careerService := services.NewCareerService(careerRepo, certRepo, activityService)
	reviewService := services.NewReviewService(careerRepo, activityService)
	certService := services.NewCertificateService(certRepo, careerRepo, stores.Certificates, activityService)
	docService := services.NewDocumentService(docRepo, careerRepo, stores.Documents, activityService, cfg.Upload.MaxBytes)
	noticeService := services.NewNoticeService(noticeRepo)
	dashboardService := services.NewDashboardService(db, careerService, activityService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.AppMode, pingDatabase(db))
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	careerHandler := handlers.NewCareerHandler(careerService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	certHandler := handlers.NewCertificateHandler(certService, cfg.Upload.MaxBytes)
	docHandler := handlers.NewDocumentHandler(docService)
	noticeHandler := handlers.NewNoticeHandler(noticeService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	setupAuthRoutes(apiV1.Group("/auth"), authHandler, cfg)

	// Everything below needs a signed-in user and is never cached
	protected := func(prefix string) fiber.Router {
		return apiV1.Group(prefix, middleware.AuthMiddleware(cfg), middleware.NoCacheHeaders())
	}

	setupProfileRoutes(protected("/profile"), userHandler)
	setupCareerRoutes(protected("/careers"), careerHandler)
	setupCertificateRoutes(protected("/certificates"), certHandler)
	setupDocumentRoutes(protected("/documents"), docHandler)
	setupDashboardRoutes(protected("/dashboard"), dashboardHandler)
	setupNoticeRoutes(apiV1.Group("/notices"), noticeHandler)
	setupAdminRoutes(protected("/admin"), reviewHandler, certHandler, noticeHandler, userHandler)
}

// pingDatabase reports whether db still answers
func pingDatabase(db *gorm.DB) func() error {
	return func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	router.Use(middleware.NoCacheHeaders())

	// Public routes
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupProfileRoutes configures profile routes (Authenticated)
func setupProfileRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.GetProfile)
	router.Put("/", handler.UpdateProfile)
	router.Put("/password", middleware.StrictRateLimiter(), handler.ChangePassword)
}

// setupCareerRoutes configures the caller's career records
func setupCareerRoutes(router fiber.Router, handler *handlers.CareerHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Get("/statistics", handler.Statistics)
	router.Get("/experience", handler.Experience)
	router.Get("/:id", handler.Get)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
	router.Post("/:id/submit", handler.Submit)
}

// setupCertificateRoutes configures certificate requests for the caller
func setupCertificateRoutes(router fiber.Router, handler *handlers.CertificateHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Request)
	router.Get("/eligible", handler.ListEligible)
	router.Get("/:id/download", handler.Download)
}

// setupDocumentRoutes configures supporting document uploads
func setupDocumentRoutes(router fiber.Router, handler *handlers.DocumentHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Upload)
	router.Get("/:id/download", handler.Download)
	router.Delete("/:id", handler.Delete)
}

// setupDashboardRoutes configures dashboard routes
func setupDashboardRoutes(router fiber.Router, handler *handlers.DashboardHandler) {
	router.Get("/", handler.GetMyDashboard)
	router.Get("/user", handler.GetUserDashboard)
	router.Get("/admin", middleware.AdminOnly(), handler.GetAdminDashboard)
}

// setupNoticeRoutes configures the public notice board
func setupNoticeRoutes(router fiber.Router, handler *handlers.NoticeHandler) {
	router.Get("/", middleware.PublicCache(noticeCacheAge), handler.List)
	router.Get("/:id", handler.Get)
}

// setupAdminRoutes configures back-office routes.
// Reviewers work the review queue; everything else is Admin only.
func setupAdminRoutes(
	router fiber.Router,
	reviewHandler *handlers.ReviewHandler,
	certHandler *handlers.CertificateHandler,
	noticeHandler *handlers.NoticeHandler,
	userHandler *handlers.UserHandler,
) {
	reviews := router.Group("/reviews", middleware.ReviewerOrAdmin())
	reviews.Get("/", reviewHandler.Queue)
	reviews.Put("/:id", reviewHandler.Review)

	certs := router.Group("/certificates", middleware.AdminOnly())
	certs.Get("/", certHandler.ListPending)
	certs.Post("/:id/issue", certHandler.Issue)
	certs.Post("/:id/upload", certHandler.IssueUpload)

	router.Post("/notices", middleware.AdminOnly(), noticeHandler.Create)

	users := router.Group("/users", middleware.AdminOnly())
	users.Get("/", userHandler.ListUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id", userHandler.UpdateUser)
}
