package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	// JWKSURL points at the identity provider's key set. If unset it is
	// derived from AuthIssuerURL the way GoTrue-compatible providers
	// (Supabase among them) publish it.
	AuthIssuerURL string
	JWKSURL       string
	// AuthServiceKey is the provider's service role key. When set, deleting
	// an account also removes it on the provider side.
	AuthServiceKey string
	CORSOrigins    string
	// LogDir, when set, sends logs to timestamped files there instead of stdout
	LogDir string
	// Debug enables verbose logging regardless of environment
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	issuerURL := getEnv("AUTH_ISSUER_URL", "")

	jwksURL := getEnv("AUTH_JWKS_URL", "")
	if jwksURL == "" && issuerURL != "" {
		jwksURL = issuerURL + "/auth/v1/.well-known/jwks.json"
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    env,
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		AuthIssuerURL:  issuerURL,
		JWKSURL:        jwksURL,
		AuthServiceKey: getEnv("AUTH_SERVICE_KEY", ""),
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:3000"),
		LogDir:         getEnv("LOG_DIR", ""),
		Debug:          getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
