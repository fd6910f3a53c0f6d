package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"

	CacheMemory = "memory"
	CacheRedis  = "redis"

	// The in-process cache caps each value at 1/1024 of its size; below
	// MinCacheSizeMB the stats overview no longer fits.
	DefaultCacheSizeMB = 128
	MinCacheSizeMB     = 64
)

type Config struct {
	Port     string
	AppEnv   string
	Timezone *time.Location

	StoreDriver string
	DB          DBConfig
	MongoURI    string
	MongoDB     string
	// Catalog collection; older deployments used "excercises".
	MongoExercisesCollection string

	CacheDriver string
	CacheSizeMB int
	Redis       RedisConfig

	RateLimitPerMinute int

	JWTSecret         string
	JWTIssuer         string
	TokenTTL          time.Duration
	OwnerPasswordHash string

	LogLevel      string
	LogFormatJSON bool
	LogFile       string

	EnableDocs      bool
	CatalogBackfill bool
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AuthEnabled reports whether write routes are protected.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != "" && c.OwnerPasswordHash != ""
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	loc, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("config: invalid TIMEZONE: %w", err)
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		AppEnv:   normalizeEnv(getEnv("APP_ENV", "development")),
		Timezone: loc,

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreMemory)),
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", "pgx"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "progress_user"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "progress_db"),
		},
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "progress"),

		MongoExercisesCollection: getEnv("MONGO_EXERCISES_COLLECTION", "exercises"),

		CacheDriver: strings.ToLower(getEnv("CACHE_DRIVER", CacheMemory)),
		CacheSizeMB: getEnvInt("CACHE_SIZE_MB", DefaultCacheSizeMB),
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTIssuer:         getEnv("JWT_ISSUER", "progress-tracker"),
		TokenTTL:          getEnvDuration("TOKEN_TTL", 24*time.Hour),
		OwnerPasswordHash: getEnv("OWNER_PASSWORD_HASH", ""),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormatJSON: getEnvBool("LOG_FORMAT_JSON", false),
		LogFile:       getEnv("LOG_FILE", ""),

		EnableDocs:      getEnvBool("ENABLE_API_DOCS", false),
		CatalogBackfill: getEnvBool("CATALOG_BACKFILL", false),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMemory, StorePostgres, StoreMongo:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.CacheDriver {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("config: unknown CACHE_DRIVER %q", c.CacheDriver)
	}

	if c.CacheDriver == CacheMemory && c.CacheSizeMB < MinCacheSizeMB {
		return fmt.Errorf("config: CACHE_SIZE_MB must be at least %d, got %d", MinCacheSizeMB, c.CacheSizeMB)
	}

	switch c.DB.Driver {
	case "pgx", "postgres":
	default:
		return fmt.Errorf("config: unknown DB_DRIVER %q", c.DB.Driver)
	}

	if c.TokenTTL <= 0 {
		return errors.New("config: TOKEN_TTL must be positive")
	}

	if c.OwnerPasswordHash != "" && c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required when OWNER_PASSWORD_HASH is set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		logrus.Warnf("config: invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		logrus.Warnf("config: invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "test", "testing":
		return "test"
	case "prod", "production":
		return "production"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
