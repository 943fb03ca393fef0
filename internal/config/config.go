package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	// StorageBackend selects where game results and shard balances live.
	StorageBackend string
	// RTPStore selects the RTP state backend (memory, postgres or redis).
	RTPStore string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	EngineConfigPath string
	EngineSchemaPath string

	// CORSOrigins lists the origins allowed to call the API.
	CORSOrigins []string
	// TrustedProxies may set X-Forwarded-For.
	TrustedProxies []string

	// Event publishing retry policy; zero values fall back to defaults.
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// RNGSeed seeds a reproducible generator when non-zero. Zero uses crypto/rand.
	RNGSeed         int64
	ShutdownTimeout time.Duration

	// Warnings collected by Validate during Load
	Warnings []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		ServiceName:         getEnv("SERVICE_NAME", "spin-forge"),
		Version:             getEnv("VERSION", "dev"),
		Environment:         getEnv("ENVIRONMENT", "dev"),
		StorageBackend:      strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory)),
		RTPStore:            strings.ToLower(getEnv("RTP_STORE", BackendMemory)),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBName:              getEnv("DB_NAME", "spinforge"),
		DBMaxConns:          getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		RedisAddr:           getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		EngineConfigPath:    getEnv("ENGINE_CONFIG_PATH", ConfigPathEngine),
		EngineSchemaPath:    getEnv("ENGINE_SCHEMA_PATH", ConfigPathEngineSchema),
		CORSOrigins:         splitList(getEnv("CORS_ORIGINS", DefaultCORSOrigins)),
		TrustedProxies:      splitList(getEnv("TRUSTED_PROXIES", "")),
		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", 0),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", "0s"),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", ""),
		RNGSeed:             getEnvAsInt64("RNG_SEED", 0),
		ShutdownTimeout:     getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	warnings, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	cfg.Warnings = warnings

	return cfg, nil
}

// NeedsDatabase reports whether any component is backed by PostgreSQL.
func (c *Config) NeedsDatabase() bool {
	return c.StorageBackend == BackendPostgres || c.RTPStore == BackendPostgres
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	v, err := strconv.ParseInt(getEnv(key, ""), 10, 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	d, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		d, _ = time.ParseDuration(defaultValue)
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
