package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// MemoryDSN selects the in-memory store instead of Postgres.
const MemoryDSN = "memory"

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	DatabaseURL       string
	SessionSecret     string
	SessionIssuer     string
	SessionTTLSeconds int64
	MigrationsDir     string
	Timezone          string
	CorsOrigins       []string
	Port              string
	LogDir            string
	LogRetentionDays  int
	MetricsDiskPath   string
	Targets           Targets
}

// Targets are the fixed daily and weekly goals the dashboards measure against.
type Targets struct {
	Calories        float64
	Protein         float64
	Carbs           float64
	Fats            float64
	WeightMin       float64
	WeightMax       float64
	WeeklyWorkouts  int
	WeightUnit      string
	ScheduleSnippet int
}

func DefaultTargets() Targets {
	return Targets{
		Calories:        2450,
		Protein:         172,
		Carbs:           275,
		Fats:            82,
		WeightMin:       185,
		WeightMax:       190,
		WeeklyWorkouts:  4,
		WeightUnit:      "lbs",
		ScheduleSnippet: 6,
	}
}

// WeightGoal is the midpoint of the target weight range.
func (t Targets) WeightGoal() float64 {
	return (t.WeightMin + t.WeightMax) / 2
}

func Load() Config {
	defaults := DefaultTargets()
	return Config{
		DatabaseURL:       mustEnv("DATABASE_URL"),
		SessionSecret:     mustEnv("SESSION_SECRET"),
		SessionIssuer:     envOr("SESSION_ISSUER", "fittrack"),
		SessionTTLSeconds: int64(envOrInt("SESSION_TTL_SECONDS", 60*60*24*365)),
		MigrationsDir:     envOr("MIGRATIONS_DIR", "migrations"),
		Timezone:          envOr("APP_TIMEZONE", "Local"),
		CorsOrigins:       parseCSV(envOr("CORS_ORIGINS", "")),
		Port:              envOr("PORT", "8080"),
		LogDir:            envOr("LOG_DIR", "storage/logs"),
		LogRetentionDays:  clamp(envOrInt("LOG_RETENTION_DAYS", 7), 1, 7),
		MetricsDiskPath:   envOr("METRICS_DISK_PATH", "/"),
		Targets: Targets{
			Calories:        envOrFloat("CALORIE_TARGET", defaults.Calories),
			Protein:         envOrFloat("PROTEIN_TARGET", defaults.Protein),
			Carbs:           envOrFloat("CARBS_TARGET", defaults.Carbs),
			Fats:            envOrFloat("FATS_TARGET", defaults.Fats),
			WeightMin:       envOrFloat("WEIGHT_TARGET_MIN", defaults.WeightMin),
			WeightMax:       envOrFloat("WEIGHT_TARGET_MAX", defaults.WeightMax),
			WeeklyWorkouts:  envOrInt("WEEKLY_WORKOUT_TARGET", defaults.WeeklyWorkouts),
			WeightUnit:      envOr("WEIGHT_UNIT", defaults.WeightUnit),
			ScheduleSnippet: defaults.ScheduleSnippet,
		},
	}
}

// Location resolves Timezone, falling back to the server's local zone.
func (c Config) Location() *time.Location {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

func (c Config) UsesMemoryStore() bool {
	return strings.EqualFold(c.DatabaseURL, MemoryDSN)
}

// RequiredEnv lists the variables Load panics without.
var RequiredEnv = []string{"DATABASE_URL", "SESSION_SECRET"}

// CheckEnv reports the first missing required variable, for callers that
// prefer an error to Load's panic.
func CheckEnv() error {
	for _, key := range RequiredEnv {
		if strings.TrimSpace(os.Getenv(key)) == "" {
			return fmt.Errorf("missing env var: %s", key)
		}
	}
	return nil
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(key string, fallback float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
