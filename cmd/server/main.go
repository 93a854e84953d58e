package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/application/services"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/infrastructure/storage"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/interfaces/middleware"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/interfaces/rest"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	// Open local storage
	store, err := storage.Open(dataDir)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()
	log.Printf("✅ Local storage opened at %s", dataDir)

	// Initialize service manager - loads the configuration document
	// (stored state merged over defaults) and subscribes to storage changes
	svcMgr := services.NewServiceManager(store)
	log.Println("🔧 Service manager initialized")

	// Optional scheduled configuration snapshots
	if schedule := os.Getenv("BACKUP_SCHEDULE"); schedule != "" {
		retention := 10
		if v := os.Getenv("BACKUP_RETENTION"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				retention = n
			}
		}
		if err := svcMgr.EnableBackups(schedule, retention); err != nil {
			log.Fatalf("Failed to configure backups: %v", err)
		}
		log.Printf("💾 Configuration backups enabled (schedule %q, retention %d)", schedule, retention)
	}

	// Create Gin router
	router := gin.Default()
	router.Use(middleware.Cors())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"server": "golang",
		})
	})

	// Initialize handlers
	configHandler := rest.NewConfigHandler(svcMgr)
	entityHandler := rest.NewEntityHandler(svcMgr)
	recordHandler := rest.NewRecordHandler(svcMgr)

	// API routes
	api := router.Group("/api")
	{
		config := api.Group("/config")
		{
			config.GET("", configHandler.GetConfig)

			config.GET("/fields/:entityType", configHandler.GetCustomFields)
			config.POST("/fields/:entityType", configHandler.AddCustomField)
			config.PATCH("/fields/:entityType/:id", configHandler.UpdateCustomField)
			config.DELETE("/fields/:entityType/:id", configHandler.DeleteCustomField)

			config.GET("/views", configHandler.GetViews)
			config.POST("/views", configHandler.AddView)
			config.PATCH("/views/:id", configHandler.UpdateView)
			config.DELETE("/views/:id", configHandler.DeleteView)

			config.GET("/workflows", configHandler.GetWorkflows)
			config.POST("/workflows", configHandler.AddWorkflow)
			config.PATCH("/workflows/:id", configHandler.UpdateWorkflow)
			config.DELETE("/workflows/:id", configHandler.DeleteWorkflow)

			config.GET("/navigation", configHandler.GetNavigation)
			config.POST("/navigation", configHandler.AddNavigationItem)
			config.POST("/navigation/reorder", configHandler.ReorderNavigation)
			config.PATCH("/navigation/:id", configHandler.UpdateNavigationItem)
			config.DELETE("/navigation/:id", configHandler.DeleteNavigationItem)

			config.GET("/widgets", configHandler.GetDashboardWidgets)
			config.POST("/widgets", configHandler.AddDashboardWidget)
			config.PATCH("/widgets/:id", configHandler.UpdateDashboardWidget)
			config.DELETE("/widgets/:id", configHandler.DeleteDashboardWidget)

			config.GET("/entities", entityHandler.GetEntities)
			config.POST("/entities", entityHandler.CreateEntity)
			config.PATCH("/entities/:id", entityHandler.UpdateEntity)
			config.DELETE("/entities/:id", entityHandler.DeleteEntity)

			config.PATCH("/branding", configHandler.UpdateBranding)
			config.PATCH("/layout", configHandler.UpdateLayout)
			config.PATCH("/security", configHandler.UpdateSecurity)
			config.PATCH("/features", configHandler.UpdateFeatures)
			config.PATCH("/permissions", configHandler.UpdatePermissions)
		}

		data := api.Group("/data")
		{
			data.GET("/:entityName", recordHandler.ListRecords)
			data.GET("/:entityName/view/:viewId", recordHandler.QueryByView)
			data.POST("/:entityName", recordHandler.CreateRecord)
			data.POST("/:entityName/bulk", recordHandler.BulkCreateRecords)
			data.PATCH("/:entityName/:id", recordHandler.UpdateRecord)
			data.DELETE("/:entityName/:id", recordHandler.DeleteRecord)
		}
	}

	// Start background workers
	svcMgr.StartBackupWorker()

	log.Println("\n═══════════════════════════════════════════════════════════════════════════")
	log.Println("🚀 ValstineCRM Configuration Backend Started Successfully")
	log.Println("═══════════════════════════════════════════════════════════════════════════")
	log.Printf("\n📍 Server:         http://localhost:%s", port)
	log.Printf("📊 Config API:     http://localhost:%s/api/config", port)
	log.Printf("💾 Data API:       http://localhost:%s/api/data", port)
	log.Printf("💚 Health check:   http://localhost:%s/health\n", port)

	// Create HTTP Server
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Stop background workers
	svcMgr.StopBackupWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
