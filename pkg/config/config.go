package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// Backend API
	BackendURL  string
	APIBasePath string
	HTTPTimeout time.Duration

	// Local state
	StoragePath      string
	PrefersDark      bool
	ToastTimeout     time.Duration
	FrontendBaseURL  string
	LoginRateLimit   string
	Port             string
	IsProduction     bool
	MigrationsSource string

	// Offline queue; disabled when DatabaseURL is empty.
	DatabaseURL   string
	SyncInterval  time.Duration
	ProbeInterval time.Duration
}

// OfflineQueueEnabled reports whether a queue database is configured.
func (c *Config) OfflineQueueEnabled() bool {
	return c.DatabaseURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("BACKEND_URL", "http://localhost:8000")
	v.SetDefault("API_BASE_PATH", "/api")
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("STORAGE_PATH", defaultStoragePath())
	v.SetDefault("KHATA_PREFERS_DARK", false)
	v.SetDefault("TOAST_TIMEOUT", "5s")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("MIGRATIONS_SOURCE", "file://migrations")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SYNC_INTERVAL", "30s")
	v.SetDefault("PROBE_INTERVAL", "10s")

	// Environment variables override .env values, which override the defaults above.
	v.AutomaticEnv()

	cfg := &Config{
		BackendURL:       strings.TrimRight(v.GetString("BACKEND_URL"), "/"),
		APIBasePath:      v.GetString("API_BASE_PATH"),
		HTTPTimeout:      durationOrDefault(v, "HTTP_TIMEOUT", 30*time.Second),
		StoragePath:      v.GetString("STORAGE_PATH"),
		PrefersDark:      v.GetBool("KHATA_PREFERS_DARK"),
		ToastTimeout:     durationOrDefault(v, "TOAST_TIMEOUT", 5*time.Second),
		FrontendBaseURL:  v.GetString("FRONTEND_BASE_URL"),
		LoginRateLimit:   v.GetString("LOGIN_RATE_LIMIT"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		MigrationsSource: v.GetString("MIGRATIONS_SOURCE"),
		DatabaseURL:      v.GetString("PGSQL_URL"),
		SyncInterval:     durationOrDefault(v, "SYNC_INTERVAL", 30*time.Second),
		ProbeInterval:    durationOrDefault(v, "PROBE_INTERVAL", 10*time.Second),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Offline invoice queue is disabled.")
	}
	if cfg.LoginRateLimit == "" {
		cfg.LoginRateLimit = "5-M"
	}

	return cfg, nil
}

// durationOrDefault parses key as a duration, falling back on missing or invalid values.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}
