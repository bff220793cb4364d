package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mertkaya/platformhub/internal/handlers"
	"github.com/mertkaya/platformhub/internal/middleware"
	"github.com/mertkaya/platformhub/internal/repositories"
	"github.com/mertkaya/platformhub/internal/services"
	"github.com/mertkaya/platformhub/internal/workers"
	"github.com/mertkaya/platformhub/pkg/config"
	"github.com/mertkaya/platformhub/pkg/database"
	"github.com/mertkaya/platformhub/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize logger
	logger.Init()

	// Initialize database; an unreachable store switches to demo mode
	// instead of refusing to start
	demoMode := config.AppConfig.Demo.Enabled
	if !demoMode {
		if err := database.Init(); err != nil {
			logger.WithError(err).Warn("Database unavailable, serving sample data in demo mode")
			demoMode = true
		} else {
			defer database.Close()
		}
	}

	// Initialize dependencies
	userRepo := repositories.NewUserRepository(database.DB)
	projectRepo := repositories.NewProjectRepository(database.DB)
	itemRepo := repositories.NewProjectItemRepository(database.DB)

	authService := services.NewAuthService(userRepo, demoMode)
	projectService := services.NewProjectService(projectRepo, demoMode)
	itemService := services.NewProjectItemService(itemRepo, demoMode)
	profileService := services.NewGitHubProfileService(config.AppConfig.GitHub.Token)
	exportService := services.NewExportService()

	// Initialize router
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.SessionMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup static files
	router.Static("/static", "./web/static")

	// Setup routes
	setupRoutes(router, authService, projectService, itemService, profileService, exportService)
	loadTemplates(router)

	// Start background workers (nothing to warm in demo mode)
	if !demoMode {
		workerManager := workers.NewWorkerManager(itemRepo, profileService)
		if err := workerManager.StartAll(); err != nil {
			log.Fatalf("Failed to start workers: %v", err)
		}
		defer workerManager.StopAll()
	}

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, authService *services.AuthService, projectService *services.ProjectService,
	itemService *services.ProjectItemService, profileService *services.GitHubProfileService,
	exportService *services.ExportService) {
	// Initialize handlers
	homeHandler := handlers.NewHomeHandler()
	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(authService, projectService, itemService)
	projectHandler := handlers.NewProjectHandler(projectService, itemService, exportService)
	itemHandler := handlers.NewItemHandler(projectService, itemService, profileService)
	apiHandler := handlers.NewAPIHandler(authService, projectService, itemService)
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	// Home page
	router.GET("/", homeHandler.Index)

	// Auth routes
	router.GET("/login", authHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.GET("/signup", authHandler.SignupPage)
	router.POST("/signup", authHandler.Signup)
	router.GET("/logout", authHandler.Logout)

	// Protected routes
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.AuthRequired())
	{
		dashboard.GET("/", dashboardHandler.Dashboard)
		dashboard.GET("", dashboardHandler.Dashboard)
	}

	projects := router.Group("/projects")
	projects.Use(middleware.AuthRequired())
	{
		projects.GET("/create", projectHandler.CreateProjectForm)
		projects.POST("/create", projectHandler.CreateProject)
		projects.GET("/:id", projectHandler.ViewProject)
		projects.GET("/:id/settings", projectHandler.ProjectSettings)
		projects.POST("/:id/settings", projectHandler.UpdateProject)
		projects.POST("/:id/settings/delete", projectHandler.DeleteProject)
		projects.GET("/:id/export", projectHandler.ExportProject)
	}

	// JSON API
	api := router.Group("/api")
	api.Use(middleware.APIAuthRequired())
	{
		api.GET("/user/profile", apiHandler.UserProfile)
		api.GET("/projects", apiHandler.Projects)
		api.POST("/projects", apiHandler.CreateProject)
		api.PUT("/projects/:id", apiHandler.UpdateProject)
		api.DELETE("/projects/:id", apiHandler.DeleteProject)
		api.GET("/projects/:id/items", itemHandler.ListItems)
		api.POST("/projects/:id/items", itemHandler.CreateItem)
		api.PUT("/projects/:id/items/:item_id", itemHandler.UpdateItem)
		api.DELETE("/projects/:id/items/:item_id", itemHandler.DeleteItem)
		api.GET("/projects/:id/items/:item_id/preview", itemHandler.ItemPreview)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	// 404 page
	router.NoRoute(notFoundHandler.NotFound)
}

func loadTemplates(router *gin.Engine) {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal("Couldn't get working directory:", err)
	}

	router.LoadHTMLFiles(
		filepath.Join(cwd, "web/templates/layouts/header.html"),
		filepath.Join(cwd, "web/templates/layouts/footer.html"),
		filepath.Join(cwd, "web/templates/index.html"),
		filepath.Join(cwd, "web/templates/login.html"),
		filepath.Join(cwd, "web/templates/signup.html"),
		filepath.Join(cwd, "web/templates/dashboard.html"),
		filepath.Join(cwd, "web/templates/404.html"),
		filepath.Join(cwd, "web/templates/projects/create.html"),
		filepath.Join(cwd, "web/templates/projects/view.html"),
		filepath.Join(cwd, "web/templates/projects/settings.html"),
	)
}
