package main

import (
	"log"

	"food-store/config"
	_ "food-store/docs"
	"food-store/middleware"
	"food-store/models"
	"food-store/repositories"
	"food-store/routes"

	"github.com/gin-gonic/gin"
)

func buildSlotStore() repositories.SlotStore {
	switch config.AppConfig.CartBackend {
	case "redis":
		models.InitRedis()
		if models.RedisClient != nil {
			return repositories.NewRedisStore(models.RedisClient)
		}
		log.Println("Redis unavailable, falling back to file cart storage")
	case "postgres":
		config.ConnectDB()
		store, err := repositories.NewPostgresStore(config.DB)
		if err != nil {
			log.Fatalf("Failed to prepare postgres cart storage: %v", err)
		}
		return store
	}
	return repositories.NewFileStore(config.AppConfig.CartFile)
}

func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	store := buildSlotStore()
	defer config.CloseDB()
	defer models.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, store)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
