package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	SnapshotCacheTTL time.Duration

	// Defaults applied when an org has no stored clinic settings.
	DefaultOrgID        string
	ClinicStartHour     int
	ClinicEndHour       int
	SlotDurationMinutes int
	WorkDays            []time.Weekday
	AverageTicketCents  int64
	OccupancyTargetPct  int

	SeedDemoData bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", nil),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		SnapshotCacheTTL: getEnvAsDuration("SNAPSHOT_CACHE_TTL", 5*time.Minute),

		DefaultOrgID:        getEnv("DEFAULT_ORG_ID", "demo-clinic"),
		ClinicStartHour:     getEnvAsInt("CLINIC_START_HOUR", 8),
		ClinicEndHour:       getEnvAsInt("CLINIC_END_HOUR", 18),
		SlotDurationMinutes: getEnvAsInt("CLINIC_SLOT_DURATION_MINS", 30),
		WorkDays:            getEnvAsWeekdays("CLINIC_WORK_DAYS", defaultWorkDays()),
		AverageTicketCents:  int64(getEnvAsInt("AVERAGE_TICKET_CENTS", 35000)),
		OccupancyTargetPct:  getEnvAsInt("OCCUPANCY_TARGET_PCT", 75),

		SeedDemoData: getEnvAsBool("SEED_DEMO_DATA", false),
	}
}

func defaultWorkDays() []time.Weekday {
	return []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable, dropping empty
// entries.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// getEnvAsWeekdays parses a comma-separated list of weekday numbers
// (0=Sunday .. 6=Saturday). Malformed entries invalidate the whole value and
// the default is used instead.
func getEnvAsWeekdays(key string, defaultValue []time.Weekday) []time.Weekday {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []time.Weekday
	for _, part := range strings.Split(valueStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			return defaultValue
		}
		out = append(out, time.Weekday(n))
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
