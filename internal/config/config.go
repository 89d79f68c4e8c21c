package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the shared signing secret used when JWT_SECRET is not set.
const DefaultJWTSecret = "secret-key"

type Config struct {
	DatabaseURL      string
	JWTSecret        string        // Secret key for JWT token signing
	JWTTTL           int           // JWT token expiration time in hours
	DBConnectTimeout time.Duration // Per-request connect + schema check budget
	Port             string
	ServiceName      string // Reported by the health endpoint
	GinMode          string
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		JWTSecret:        getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTTTL:           getEnvInt("JWT_TTL_HOURS", 24),
		DBConnectTimeout: time.Duration(getEnvInt("DB_CONNECT_TIMEOUT_SECONDS", 5)) * time.Second,
		Port:             getEnv("PORT", "8080"),
		ServiceName:      getEnv("SERVICE_NAME", "users-api"),
		GinMode:          getEnv("GIN_MODE", ""),
	}
}

// TokenTTL returns the token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTTTL) * time.Hour
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}
