package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-store/config"
	_ "shoe-store/docs"
	"shoe-store/middleware"
	"shoe-store/models"
	"shoe-store/routes"
	"shoe-store/store"
)

// @title Shoe Store Gateway API
// @version 1.0
// @description Storefront and admin gateway for the shoe store backend.
// @BasePath /
func main() {
	config.LoadConfig()

	logger, err := config.NewLogger(config.AppConfig.AppEnv)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis(logger)
	defer models.CloseRedis()

	sessions := store.NewSessions()
	defer sessions.Close()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SessionMiddleware())
	routes.SetupRoutes(router, sessions, logger)

	port := ":" + config.AppConfig.Port
	logger.Info("Server starting",
		zap.String("port", config.AppConfig.Port),
		zap.String("environment", config.AppConfig.AppEnv),
		zap.String("upstream", config.AppConfig.APIURL),
	)

	if err := router.Run(port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
