// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MigrateOnStart applies the embedded goose migrations, schema and seed
	// catalog, before serving.
	MigrateOnStart bool

	// CatalogPreload snapshots the catalog into memory at start-up so plan
	// requests never touch Postgres.
	CatalogPreload bool

	// MaxBodyBytes caps request bodies. Defaults to 64 KiB.
	MaxBodyBytes int64

	AI           AIConfig
	Planner      PlannerConfig
	ExtractCache CacheConfig
}

// AIConfig configures the OpenAI-backed collaborators. An empty APIKey
// disables them and every caller uses its deterministic fallback.
type AIConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
}

// Enabled reports whether an API key is configured.
func (c AIConfig) Enabled() bool { return c.APIKey != "" }

// PlannerConfig overrides the ranking cut-offs. Zero means built-in default.
type PlannerConfig struct {
	StrongThreshold int
	FallbackAccept  int
	FinalFloor      int
}

// CacheConfig sizes the interest extraction cache.
type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first variable that does not parse.
func Load() (Config, error) {
	p := &parser{}
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		MigrateOnStart: p.bool("MIGRATE_ON_START", false),
		CatalogPreload: p.bool("CATALOG_PRELOAD", false),
		MaxBodyBytes:   int64(p.int("MAX_BODY_BYTES", 64<<10)),
		AI: AIConfig{
			APIKey:    os.Getenv("OPENAI_API_KEY"),
			Model:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL:   os.Getenv("OPENAI_BASE_URL"),
			Timeout:   p.duration("AI_TIMEOUT", 8*time.Second),
			RateLimit: p.float("AI_RATE_LIMIT", 3),
		},
		Planner: PlannerConfig{
			StrongThreshold: p.int("PLAN_STRONG_THRESHOLD", 25),
			FallbackAccept:  p.int("PLAN_FALLBACK_ACCEPT", 35),
			FinalFloor:      p.int("PLAN_FINAL_FLOOR", 15),
		},
		ExtractCache: CacheConfig{
			TTL:        p.duration("EXTRACT_CACHE_TTL", 10*time.Minute),
			MaxEntries: p.int("EXTRACT_CACHE_MAX", 1000),
		},
	}
	if p.err != nil {
		return Config{}, p.err
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parser reads typed variables and keeps the first parse error.
type parser struct {
	err error
}

func (p *parser) fail(key, v string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid value %q for %s: %w", v, key, err)
	}
}

func (p *parser) int(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return fallback
	}
	return n
}

func (p *parser) float(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, v, err)
		return fallback
	}
	return f
}

func (p *parser) bool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return fallback
	}
	return b
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return fallback
	}
	return d
}
