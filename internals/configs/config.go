package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI string
	DBName   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	MongoURI = GetEnv("MONGO_URI")
	DBName = GetEnv("DB_NAME", "ministry")

	if MongoURI == "" {
		log.Println("❌ MONGO_URI is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
