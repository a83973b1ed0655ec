package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is bumped whenever .env.example gains or renames a variable.
const ExpectedEnvSchemaVersion = "1.0"

// ExampleAPIKey is the placeholder shipped in .env.example.
const ExampleAPIKey = "generate_with_openssl_rand_hex_32"

// MinAgingInterval is the shortest AGING_INTERVAL that does not trigger a warning.
const MinAgingInterval = time.Minute

var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

var (
	ErrSchemaVersionMissing  = errors.New("ENV_SCHEMA_VERSION is not set")
	ErrSchemaVersionMismatch = errors.New("ENV_SCHEMA_VERSION mismatch")
	ErrMissingEnvVars        = errors.New("missing required environment variables")
)

// ValidateEnv fails when the .env schema version is absent or stale, or a required variable is empty.
func ValidateEnv() error {
	switch version := os.Getenv("ENV_SCHEMA_VERSION"); version {
	case "":
		return fmt.Errorf("%w: add it to your .env file (expected %s)", ErrSchemaVersionMissing, ExpectedEnvSchemaVersion)
	case ExpectedEnvSchemaVersion:
	default:
		return fmt.Errorf("%w: expected %s, got %s; compare your .env with .env.example",
			ErrSchemaVersionMismatch, ExpectedEnvSchemaVersion, version)
	}

	var missing []string
	for _, name := range RequiredEnvVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEnvVars, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports settings in cfg that
// work but are probably a mistake.
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if cfg.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY is the example value; generate one with: openssl rand -hex 32")
	}
	if _, err := os.Stat(cfg.StockFile); err != nil {
		warnings = append(warnings, fmt.Sprintf("STOCK_FILE %q not readable; the shop will open with the default stock", cfg.StockFile))
	}
	if cfg.AgingInterval > 0 && cfg.AgingInterval < MinAgingInterval {
		warnings = append(warnings, fmt.Sprintf("AGING_INTERVAL %s ages stock faster than once a minute", cfg.AgingInterval))
	}
	if cfg.IsProduction() && len(cfg.TrustedProxies) == 0 {
		warnings = append(warnings, "TRUSTED_PROXIES is empty; rate limiting will key on the proxy address if one is in front")
	}
	return warnings, nil
}
