package main

import (
	"fmt"
	"os"

	"cell-analyzer/internal/api/handlers"
	"cell-analyzer/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
		FullTimestamp:   true,
	})
	if os.Getenv("API_ENV") != "production" {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func main() {
	setupLogger()

	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logrus.StandardLogger()))
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler()
	chemistryHandler := handlers.NewChemistryHandler()
	packHandler := handlers.NewPackHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/analyze", analyzeHandler.Analyze)
		api.POST("/analyze/export", analyzeHandler.ExportCSV)

		api.GET("/chemistries", chemistryHandler.ListChemistries)
		api.GET("/packs", packHandler.ListPacks)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		logrus.Infof("serving static files from %s", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	logrus.Infof("starting API server on %s (packs from %s)", addr, packHandler.PackDir())
	if err := router.Run(addr); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
