package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	MongoURL           string
	DatabaseName       string
	JWTSecret          string
	JWTAlgorithm       string
	JWTExpirationHours int
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	FrontendURL        string
}

var validAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getenv("PORT", "8000"),
		MongoURL:           getenv("MONGODB_URL", "mongodb://localhost:27017"),
		DatabaseName:       getenv("DATABASE_NAME", "owais_optics"),
		JWTSecret:          getenv("JWT_SECRET", "dev-secret-change-me"),
		JWTAlgorithm:       getenv("JWT_ALGORITHM", "HS256"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  getenv("GOOGLE_REDIRECT_URI", "http://localhost:8000/api/auth/google/callback"),
		FrontendURL:        getenv("FRONTEND_URL", "http://localhost:5173"),
	}

	hours := getenv("JWT_EXPIRATION_HOURS", "168")
	n, err := strconv.Atoi(hours)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %q", hours)
	}
	cfg.JWTExpirationHours = n

	if !validAlgorithms[cfg.JWTAlgorithm] {
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM: %q", cfg.JWTAlgorithm)
	}

	return cfg, nil
}

// GoogleEnabled reports whether Google sign-in credentials are configured.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
