package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/iamnokia/AdminHC-sub000/config"
	"github.com/iamnokia/AdminHC-sub000/controllers"
	"github.com/iamnokia/AdminHC-sub000/middleware"
	"github.com/iamnokia/AdminHC-sub000/models"
	"github.com/iamnokia/AdminHC-sub000/services"
	"github.com/iamnokia/AdminHC-sub000/utils"
)

func main() {
	// Basic logging
	log.Println("Starting HomeCare admin API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to the session store
	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("Failed to connect to session store: %v", err)
	}
	if err := config.GetDB().AutoMigrate(&models.Session{}); err != nil {
		log.Fatalf("Failed to migrate session store: %v", err)
	}
	log.Println("Session store migration completed successfully")

	// Upstream HomeCare API client
	services.InitHomeCareService(cfg)

	// Image storage: S3 when a bucket is configured, local disk otherwise
	if cfg.AWSS3Bucket != "" {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		services.InitImageService(s3Service)
		log.Printf("Image storage: S3 bucket %s", cfg.AWSS3Bucket)
	} else {
		services.InitLocalImageService()
		log.Println("Image storage: local uploads directory")
	}

	// In-memory service-status board
	services.InitStatusTracker()

	router := setupRouter()

	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with all routes and middleware
func setupRouter() *gin.Engine {
	cfg := config.GetConfig()

	registerValidators()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
	}))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)

		v1.POST("/auth/login", controllers.Login)

		// Locally stored images are public, like the S3 presigned URLs
		v1.GET("/uploads/:filename", controllers.GetUploadedImage)

		authed := v1.Group("")
		authed.Use(middleware.RequireSession(cfg))
		{
			authed.GET("/auth/me", controllers.GetMe)
			authed.POST("/auth/logout", controllers.Logout)

			authed.GET("/employees", controllers.ListEmployees)
			authed.POST("/employees", controllers.RegisterEmployee)
			authed.PUT("/employees/:id", controllers.UpdateEmployee)
			authed.PUT("/employees/:id/status", controllers.UpdateEmployeeStatus)
			authed.DELETE("/employees/:id", controllers.DeleteEmployee)
			authed.GET("/employees/:id/car-eligibility", controllers.CheckCarEligibility)

			authed.POST("/cars", controllers.RegisterCar)
			authed.GET("/categories", controllers.ListCategories)

			authed.GET("/status/requests", controllers.ListServiceRequests)
			authed.GET("/status/staff", controllers.ListStaff)
			authed.PUT("/status/requests/:id", controllers.UpdateServiceRequest)

			authed.GET("/reports/:tab", controllers.GetReport)
			authed.GET("/reports/:tab/export", controllers.ExportReport)
		}
	}

	return router
}

// registerValidators installs custom form rules on gin's validator engine
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := utils.RegisterCustomValidations(v); err != nil {
			log.Fatalf("Failed to register custom validators: %v", err)
		}
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "HomeCare admin API is running",
	})
}
