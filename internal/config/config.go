package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HandheldsSource string
	OEMSource       string
	CatalogPath     string
	OutputDir       string
	DBPath          string

	BuildWorkers       int
	SourceTimeoutMs    int
	SourceRateLimitRPS int
	SourceMaxAttempts  int
	SyncPrune          bool

	SearchMinScore float64
	PersonalPicks  []string

	HTTPAddr    string
	CORSOrigins []string
	LogLevel    string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		HandheldsSource: getEnv("HANDHELDS_SOURCE", filepath.Join(cwd, "data", "handhelds.html")),
		OEMSource:       getEnv("OEM_SOURCE", ""),
		CatalogPath:     getEnv("CATALOG_PATH", filepath.Join(cwd, "out", "devices.json")),
		OutputDir:       getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		DBPath:          getEnv("DB_PATH", filepath.Join(cwd, "data", "catalog.db")),

		BuildWorkers:       getEnvInt("BUILD_WORKERS", 8),
		SourceTimeoutMs:    getEnvInt("SOURCE_TIMEOUT_MS", 30000),
		SourceRateLimitRPS: getEnvInt("SOURCE_RATE_LIMIT_RPS", 2),
		SourceMaxAttempts:  getEnvInt("SOURCE_MAX_ATTEMPTS", 5),
		SyncPrune:          getEnvBool("SYNC_PRUNE", true),

		SearchMinScore: getEnvFloat("SEARCH_MIN_SCORE", 0.35),
		PersonalPicks:  getEnvList("PERSONAL_PICKS"),

		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		CORSOrigins: getEnvList("CORS_ORIGINS"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}

func getEnvList(key string) []string {
	value := getEnv(key, "")
	if strings.TrimSpace(value) == "" {
		return nil
	}
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
