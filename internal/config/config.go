package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI            string
	DBName              string
	Port                string
	StripeSecretKey     string
	StripeWebhookSecret string
	StoreURL            string
	AdminURL            string
	JWTSecret           string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:            getEnvOrDefault("MONGO_URI", ""),
		DBName:              getEnvOrDefault("DB_NAME", "luxury_admin"),
		Port:                getEnvOrDefault("PORT", "8080"),
		StripeSecretKey:     getEnvOrDefault("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnvOrDefault("STRIPE_WEBHOOK_SECRET", ""),
		StoreURL:            getEnvOrDefault("ECOMMERCE_STORE_URL", "http://localhost:3001"),
		AdminURL:            getEnvOrDefault("ECOMMERCE_ADMIN_URL", "http://localhost:3000"),
		JWTSecret:           getEnvOrDefault("JWT_SECRET", ""),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
