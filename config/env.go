package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	APIBaseURL    string
	JWTSecret     string
	CartBackend   string
	CartFile      string
	RedisAddr     string
	RedisPassword string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080/api"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		CartBackend:   getEnv("CART_BACKEND", "file"),
		CartFile:      getEnv("CART_FILE", "./data/carts.json"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5454"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "food_store"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Upstream API: %s", AppConfig.APIBaseURL)
	log.Printf("Cart backend: %s", AppConfig.CartBackend)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
