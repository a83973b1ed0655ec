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
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is believed
	TrustedProxies []string

	StockFile         string
	DeadLetterPath    string
	ReportHistorySize int

	// Nightly aging runs at AgingResetHour in a fixed UTC+AgingUTCOffsetHours zone.
	// A positive AgingInterval additionally ages stock on that interval.
	AgingResetHour       int
	AgingUTCOffsetHours  int
	AgingInterval        time.Duration
	LegendaryBattleCries bool

	WorkerCount     int
	WorkerQueueSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		StockFile:         getEnv("STOCK_FILE", DefaultStockFile),
		DeadLetterPath:    getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		ReportHistorySize: getEnvAsInt("REPORT_HISTORY_SIZE", DefaultReportHistorySize),

		AgingResetHour:       getEnvAsInt("AGING_RESET_HOUR", DefaultAgingResetHour),
		AgingUTCOffsetHours:  getEnvAsInt("AGING_UTC_OFFSET_HOURS", DefaultAgingUTCOffsetHours),
		AgingInterval:        getEnvAsDuration("AGING_INTERVAL", 0),
		LegendaryBattleCries: getEnvAsBool("LEGENDARY_BATTLE_CRIES", false),

		WorkerCount:     getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.AgingResetHour < 0 || cfg.AgingResetHour > 23 {
		return nil, fmt.Errorf("invalid AGING_RESET_HOUR value: %d is outside 0-23", cfg.AgingResetHour)
	}
	if cfg.AgingUTCOffsetHours < -12 || cfg.AgingUTCOffsetHours > 14 {
		return nil, fmt.Errorf("invalid AGING_UTC_OFFSET_HOURS value: %d is outside -12..14", cfg.AgingUTCOffsetHours)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

// AgingLocation returns the fixed zone nightly aging is scheduled in
func (c *Config) AgingLocation() *time.Location {
	name := fmt.Sprintf("UTC%+d", c.AgingUTCOffsetHours)
	if c.AgingUTCOffsetHours == 0 {
		name = "UTC"
	}
	return time.FixedZone(name, c.AgingUTCOffsetHours*60*60)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool parses a boolean variable, falling back to the default when unset or invalid
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated environment variable, dropping blanks
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
