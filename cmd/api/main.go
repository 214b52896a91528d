package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LucieneFagundes/daily-diet-api/internal/database"
	"github.com/LucieneFagundes/daily-diet-api/internal/handlers"
	"github.com/LucieneFagundes/daily-diet-api/internal/middleware"
	"github.com/LucieneFagundes/daily-diet-api/internal/monitoring"
	"github.com/LucieneFagundes/daily-diet-api/internal/store"
	"github.com/LucieneFagundes/daily-diet-api/internal/utils"
)

func main() {
	if err := utils.EnsureJWTReady(); err != nil {
		log.Fatal("JWT configuration error: ", err)
	}

	db, err := database.Open()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.CreateTables(db); err != nil {
		log.Fatal("Failed to create tables: ", err)
	}

	authHandler := handlers.NewAuthHandler(store.NewUserStore(db))
	mealHandler := handlers.NewMealHandler(store.NewMealStore(db))
	monitorHandler := handlers.NewMonitoringHandler(monitoring.NewService(db, time.Now()))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(monitoring.RequestMetricsMiddleware())

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	api.GET("/status", handlers.Status)

	users := api.Group("/users")
	users.POST("", authHandler.Register)
	users.POST("/login", authHandler.Login)

	meals := api.Group("/meals", middleware.AuthMiddleware())
	meals.POST("", mealHandler.CreateMeal)
	meals.GET("", mealHandler.ListMeals)
	meals.GET("/summary", mealHandler.Summary)
	meals.GET("/:id", mealHandler.GetMeal)
	meals.PATCH("/:id", mealHandler.UpdateMeal)
	meals.DELETE("/:id", mealHandler.DeleteMeal)

	monitor := api.Group("/monitor")
	monitor.GET("/status", monitorHandler.MonitorStatus)
	monitor.GET("/connections", monitorHandler.MonitorConnections)
	monitor.GET("/runtime", monitorHandler.MonitorRuntime)
	monitor.GET("/users", monitorHandler.MonitorUsers)
	monitor.GET("/all", monitorHandler.MonitorAll)
	monitor.GET("/snapshot", monitorHandler.MonitorSnapshot)
	monitor.GET("/help", monitorHandler.MonitorHelp)

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	log.Println("Daily Diet API starting on :" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
