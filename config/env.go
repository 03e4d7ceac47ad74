package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv pulls a local .env into the process environment. Deployments
// without one just use the system environment.
func LoadEnv() {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		log.Println(".env file not found, using system environment variables")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}
	log.Println("Environment variables loaded")
}

func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
