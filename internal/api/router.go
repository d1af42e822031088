package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/atelieranj/client-portal/internal/api/docs"
	"github.com/atelieranj/client-portal/internal/api/handler"
	"github.com/atelieranj/client-portal/internal/api/middleware"
	"github.com/atelieranj/client-portal/internal/core/domain"
	"github.com/atelieranj/client-portal/internal/core/ports"
)

// Deps carries the already-wired services and infrastructure the router needs.
// Mongo and Redis may be nil when the in-memory backend is selected; the
// readiness probe skips nil dependencies.
type Deps struct {
	AuthService         ports.AuthService
	ProjectService      ports.ProjectService
	AvailabilityService ports.AvailabilityService
	Mongo               *mongo.Database
	Redis               *redis.Client
	JWTSecret           string
	Log                 zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	projectHandler := handler.NewProjectHandler(deps.ProjectService)
	workflowHandler := handler.NewWorkflowHandler(deps.ProjectService)
	availabilityHandler := handler.NewAvailabilityHandler(deps.AvailabilityService)
	staffHandler := handler.NewStaffHandler(deps.AuthService)

	authMiddleware := middleware.Auth(deps.JWTSecret)
	superadminOnly := middleware.RBAC(domain.RoleSuperadmin)
	staffOnly := middleware.StaffOnly()

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/reset-password", authHandler.ResetPassword)

	// --- Health probes and operational surfaces (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated API ---
	// Coarse role gates live here; ownership and superadmin-only rules are
	// enforced again by the access policy inside the services.
	v1 := e.Group("/v1", authMiddleware)

	v1.POST("/projects", projectHandler.Create)
	v1.GET("/projects", projectHandler.List)
	v1.GET("/projects/:id", projectHandler.Get)

	v1.POST("/projects/:id/appointment", workflowHandler.BookAppointment)
	v1.POST("/projects/:id/appointment/confirm", workflowHandler.ConfirmAppointment, superadminOnly)

	v1.POST("/projects/:id/proposal", workflowHandler.SendProposal, staffOnly)
	v1.POST("/projects/:id/proposal/approve", workflowHandler.ApproveProposal, superadminOnly)
	v1.POST("/projects/:id/proposal/accept", workflowHandler.AcceptProposal)
	v1.POST("/projects/:id/proposal/revision", workflowHandler.RequestRevision)

	v1.POST("/projects/:id/payment", workflowHandler.RecordPayment)
	v1.POST("/projects/:id/payment/verify", workflowHandler.VerifyPayment, superadminOnly)

	v1.POST("/projects/:id/concept", workflowHandler.ShareConcept, staffOnly)
	v1.POST("/projects/:id/concept/approve", workflowHandler.ApproveConcept, superadminOnly)
	v1.POST("/projects/:id/concept/client-approval", workflowHandler.ApproveClientConcept)

	v1.POST("/projects/:id/updates", workflowHandler.PostSiteUpdate, staffOnly)
	v1.POST("/projects/:id/updates/:update_id/approve", workflowHandler.ApproveSiteUpdate, superadminOnly)

	v1.POST("/projects/:id/handover", workflowHandler.FinalizeHandover, superadminOnly)

	v1.GET("/approvals", projectHandler.Approvals, staffOnly)

	v1.GET("/availability", availabilityHandler.List)
	v1.GET("/availability/:date", availabilityHandler.Check)
	v1.PUT("/availability", availabilityHandler.Set, superadminOnly)

	v1.GET("/staff", staffHandler.List, staffOnly)
	v1.POST("/staff", staffHandler.Create, superadminOnly)

	return e
}
