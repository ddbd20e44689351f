package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BindAddr          string
	StaticDir         string
	TemplateDir       string
	LogLevel          string
	AllowedOrigins    []string
	MetricsEnabled    bool
	ShutdownTimeout   time.Duration
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2Endpoint        string
	R2BucketName      string
	R2KeyPrefix       string
	AssetURLTTL       time.Duration
}

// UseBucket reports whether static assets come from the R2 bucket instead
// of StaticDir.
func (c *Config) UseBucket() bool {
	return c.R2BucketName != ""
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	metrics, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("METRICS_ENABLED: %w", err)
	}
	shutdownSec, err := positiveInt("SHUTDOWN_TIMEOUT_SECONDS", "10")
	if err != nil {
		return nil, err
	}
	ttlMin, err := positiveInt("ASSET_URL_TTL_MINUTES", "15")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BindAddr:          getEnv("BIND_ADDR", ":8000"),
		StaticDir:         getEnv("STATIC_DIR", "dist"),
		TemplateDir:       getEnv("TEMPLATE_DIR", "templates"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		MetricsEnabled:    metrics,
		ShutdownTimeout:   time.Duration(shutdownSec) * time.Second,
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2Endpoint:        os.Getenv("R2_ENDPOINT"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2KeyPrefix:       getEnv("R2_KEY_PREFIX", "static/"),
		AssetURLTTL:       time.Duration(ttlMin) * time.Minute,
	}

	if cfg.UseBucket() {
		if cfg.R2AccessKeyID == "" || cfg.R2SecretAccessKey == "" || cfg.R2Endpoint == "" {
			return nil, fmt.Errorf("R2_BUCKET_NAME is set but R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY and R2_ENDPOINT are required")
		}
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func positiveInt(k, def string) (int, error) {
	n, err := strconv.Atoi(getEnv(k, def))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be greater than zero, got %d", k, n)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
