package routes

import (
	"effi-track-backend/internal/api/handlers"
	"effi-track-backend/internal/api/middleware"
	"effi-track-backend/internal/config"
	"effi-track-backend/internal/mailer"
	"effi-track-backend/internal/repository"
	"effi-track-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	rewardPointRepo := repository.NewRewardPointRepository(db)

	// Initialize mail transport: console fallback only in development
	mail := mailer.FromConfig(cfg)

	// Initialize services
	employeeService := service.NewEmployeeService(employeeRepo, validator)
	projectService := service.NewProjectService(projectRepo, assignmentRepo, employeeRepo, validator)
	taskService := service.NewTaskService(taskRepo, employeeRepo, projectRepo, validator)
	rewardService := service.NewRewardService(rewardPointRepo, employeeRepo, taskRepo, validator)
	statsService := service.NewStatsService(employeeRepo, projectRepo, taskRepo, rewardPointRepo)
	notifierService := service.NewNotifierService(projectRepo, taskRepo, employeeRepo, assignmentRepo, mail, cfg.MailSendTimeout())
	chatService := service.NewChatService(cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	statsHandler := handlers.NewStatsHandler(statsService)
	notifierHandler := handlers.NewNotifierHandler(notifierService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Employee routes
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.GET("/:id/rewards", rewardHandler.ListEmployeeRewards)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.PUT("/:id/assignees", projectHandler.SetAssignees)
		}

		// Task routes
		tasks := v1.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
		}

		// Reward routes
		rewards := v1.Group("/rewards")
		{
			rewards.POST("", rewardHandler.AwardPoints)
			rewards.GET("/leaderboard", rewardHandler.GetLeaderboard)
		}

		// Dashboard statistics
		v1.GET("/stats", statsHandler.GetDashboardStats)

		// Deadline notifier trigger
		v1.POST("/notifier/run", notifierHandler.Run)

		// AI assistant chat
		v1.POST("/chat", chatHandler.Complete)
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
