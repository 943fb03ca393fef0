package config

const (
	// Configuration file paths
	ConfigPathEngine       = "configs/engine.yaml"
	ConfigPathEngineSchema = "configs/schemas/engine_bundle.schema.json"
)

// Storage backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultShutdownTimeout = "10s"
	DefaultRedisAddr       = "localhost:6379"
	DefaultDBMaxConns      = 10
	DefaultCORSOrigins     = "*"
)

// EnvironmentProduction is the ENVIRONMENT value of production deployments
const EnvironmentProduction = "prod"

const maxPort = 65535
