package config

import (
	"log"
	"os"
)

// Config holds application configuration
type Config struct {
	Port     string
	MongoURI string
	DBName   string

	AdminUsername string
	AdminPassword string
	JWTSecret     string

	GCSBucket      string
	WhatsAppNumber string

	EmailFrom  string
	EmailPass  string
	AdminEmail string

	AllowedOrigin string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	AppConfig = &Config{
		Port:     getEnv("PORT", "8080"),
		MongoURI: getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "coursehub_db"),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		JWTSecret:     getEnv("JWT_SECRET", "defaultSecret"),

		GCSBucket:      getEnv("GCS_BUCKET", ""),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", ""),

		EmailFrom:  getEnv("EMAIL_FROM", ""),
		EmailPass:  getEnv("EMAIL_PASS", ""),
		AdminEmail: getEnv("ADMIN_EMAIL", ""),

		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	// The fallback credentials exist only so a fresh checkout boots.
	// They must never reach a real deployment.
	if AppConfig.AdminUsername == "admin" && AppConfig.AdminPassword == "admin123" {
		log.Println("Warning: Using default ADMIN_USERNAME/ADMIN_PASSWORD. Set real credentials before deploying.")
	}
	if AppConfig.JWTSecret == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
