package routes

import (
	"airline-crew-backend/internal/api/handlers"
	"airline-crew-backend/internal/api/middleware"
	"airline-crew-backend/internal/auth"
	"airline-crew-backend/internal/config"
	"airline-crew-backend/internal/database/models"
	"airline-crew-backend/internal/repository"
	"airline-crew-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	validate := validator.New()

	// Repositories
	flightRepo := repository.NewFlightRepository(db)
	crewRepo := repository.NewCrewRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	flightService := service.NewFlightService(flightRepo, assignmentRepo, validate)
	crewService := service.NewCrewService(crewRepo, assignmentRepo, validate)
	assignmentService := service.NewAssignmentService(assignmentRepo, flightRepo, crewRepo, validate)

	// Auth
	authService, err := auth.NewAuthService(cfg, userRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize auth service")
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	flightHandler := handlers.NewFlightHandler(flightService)
	crewHandler := handlers.NewCrewHandler(crewService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes, all require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	// Assignment writes additionally require a dispatcher or admin role
	canManage := authMiddleware.RequireRole(models.RoleAdmin, models.RoleDispatcher)

	{
		// Flight routes
		flights := v1.Group("/flights")
		{
			flights.GET("", flightHandler.ListFlights)
			flights.POST("", canManage, flightHandler.CreateFlight)
			flights.GET("/needing-crew", flightHandler.GetFlightsNeedingCrew)
			flights.GET("/schedule/daily", flightHandler.GetDailySchedule)
			flights.GET("/by-number/:number", flightHandler.GetFlightByNumber)
			flights.GET("/:id", flightHandler.GetFlight)
			flights.PUT("/:id", canManage, flightHandler.UpdateFlight)
			flights.PATCH("/:id/status", canManage, flightHandler.UpdateFlightStatus)
			flights.DELETE("/:id", canManage, flightHandler.DeleteFlight)
			flights.GET("/:id/crew-summary", flightHandler.GetFlightCrewSummary)
			flights.GET("/:id/assignments", assignmentHandler.GetFlightAssignments)
			flights.GET("/:id/available-crew", assignmentHandler.GetAvailableCrew)
			flights.POST("/:id/auto-assign", canManage, assignmentHandler.AutoAssignCrew)
		}

		// Crew member routes
		crew := v1.Group("/crew")
		{
			crew.GET("", crewHandler.ListCrewMembers)
			crew.POST("", canManage, crewHandler.CreateCrewMember)
			crew.GET("/:id", crewHandler.GetCrewMember)
			crew.PUT("/:id", canManage, crewHandler.UpdateCrewMember)
			crew.PATCH("/:id/availability", canManage, crewHandler.SetCrewAvailability)
			crew.DELETE("/:id", canManage, crewHandler.DeleteCrewMember)
			crew.GET("/:id/workload", crewHandler.GetCrewWorkload)
			crew.GET("/:id/assignments", assignmentHandler.GetCrewMemberAssignments)
		}

		// Assignment routes
		assignments := v1.Group("/assignments")
		{
			assignments.GET("", assignmentHandler.ListAssignments)
			assignments.POST("", canManage, assignmentHandler.CreateAssignment)
			assignments.GET("/statistics", assignmentHandler.GetAssignmentStatistics)
			assignments.GET("/by-date-range", assignmentHandler.GetAssignmentsByDateRange)
			assignments.GET("/:id", assignmentHandler.GetAssignment)
			assignments.PUT("/:id", canManage, assignmentHandler.UpdateAssignment)
			assignments.POST("/:id/confirm", canManage, assignmentHandler.ConfirmAssignment)
			assignments.POST("/:id/cancel", canManage, assignmentHandler.CancelAssignment)
			assignments.DELETE("/:id", canManage, assignmentHandler.DeleteAssignment)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
