package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/SpinForge_Go/internal/logger"
)

// exampleDBPassword is the password shipped in the sample .env
const exampleDBPassword = "change_this_secure_password"

// Validate checks a loaded configuration. Hard problems are joined into the
// returned error; settings that work but are unsafe in production come back
// as warnings.
func (c *Config) Validate() (warnings []string, err error) {
	var errs []error

	if c.Port < 0 || c.Port > maxPort {
		errs = append(errs, fmt.Errorf("invalid PORT value %d: must be between 0 and %d", c.Port, maxPort))
	}
	if err := validateBackend("STORAGE_BACKEND", c.StorageBackend, BackendMemory, BackendPostgres); err != nil {
		errs = append(errs, err)
	}
	if err := validateBackend("RTP_STORE", c.RTPStore, BackendMemory, BackendPostgres, BackendRedis); err != nil {
		errs = append(errs, err)
	}

	if c.NeedsDatabase() {
		var missing []string
		for name, value := range map[string]string{"DB_USER": c.DBUser, "DB_HOST": c.DBHost, "DB_PORT": c.DBPort, "DB_NAME": c.DBName} {
			if value == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			errs = append(errs, fmt.Errorf("missing database settings for postgres backend: %s", strings.Join(missing, ", ")))
		}
		if c.DBMaxConns < 1 {
			errs = append(errs, fmt.Errorf("invalid DB_MAX_CONNS value %d: must be at least 1", c.DBMaxConns))
		}
	}
	if c.RTPStore == BackendRedis && c.RedisAddr == "" {
		errs = append(errs, errors.New("REDIS_ADDR is required when RTP_STORE is redis"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid SHUTDOWN_TIMEOUT value %s: must be positive", c.ShutdownTimeout))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			warnings = append(warnings, fmt.Sprintf("LOG_LEVEL %q is not recognised - logging at info", c.LogLevel))
		}
	}
	if c.NeedsDatabase() && c.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.Environment == EnvironmentProduction {
		if c.RNGSeed != 0 {
			warnings = append(warnings, "RNG_SEED is set in prod - spin outcomes are reproducible")
		}
		for _, origin := range c.CORSOrigins {
			if origin == "*" {
				warnings = append(warnings, "CORS_ORIGINS allows any origin in prod")
				break
			}
		}
	}
	return warnings, nil
}

func validateBackend(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s value %q: must be one of %s", name, value, strings.Join(allowed, ", "))
}
