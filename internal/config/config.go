package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	Port       string
	DBDSN      string
	LogFile    string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	CookieDomain   string
	CookieHTTPOnly bool
	CookieSecure   bool

	AdminEmail    string
	AdminPassword string

	CORSOrigins string
}

// Load reads the process environment, after merging an optional .env file.
func Load() (Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:           str("PORT", "3000"),
		DBDSN:          str("DB_DSN", "todoapi.db"),
		LogFile:        os.Getenv("LOG_FILE"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       duration("TOKEN_TTL", 5*time.Minute),
		BcryptCost:     integer("BCRYPT_COST", 10),
		CookieDomain:   str("COOKIE_DOMAIN", "localhost"),
		CookieHTTPOnly: boolean("COOKIE_HTTP_ONLY", false),
		CookieSecure:   boolean("COOKIE_SECURE", false),
		AdminEmail:     strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		CORSOrigins:    str("CORS_ORIGINS", "http://localhost:3000"),
	}
	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingSecret
	}

	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s TOKEN_TTL=%s BCRYPT_COST=%d COOKIE_DOMAIN=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.TokenTTL, cfg.BcryptCost, cfg.CookieDomain)
	return cfg, nil
}

func str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func integer(key string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil {
		return n
	}
	return def
}

func duration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key))); err == nil && d > 0 {
		return d
	}
	return def
}

func boolean(key string, def bool) bool {
	if b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key))); err == nil {
		return b
	}
	return def
}
