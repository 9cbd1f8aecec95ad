package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Dataset sources
const (
	SourceCSV        = "csv"
	SourceSQLite     = "sqlite"
	SourcePostgres   = "postgres"
	SourceMySQL      = "mysql"
	SourceClickHouse = "clickhouse"
)

type Config struct {
	// Server
	Port           int
	Env            string
	RequestTimeout time.Duration

	// Logging
	LogLevel string
	LogFile  string

	// CORS
	AllowedOrigins []string

	// Dataset
	DatasetSource   string
	DatasetPath     string
	DatasetEncoding string
	DatasetTable    string
	PostgresURL     string
	MySQLDSN        string
	ClickHouseURL   string
	FeatureStart    int
	FeatureEnd      int

	// Model
	ModelPath  string
	ModelCache bool

	// View cache
	RedisURL  string
	CacheTTL  time.Duration
	CacheSize int

	HistogramBins int

	// Warm-up
	WarmCache   bool
	WarmWorkers int
}

// Load loads configuration from environment variables. When CONFIG_FILE
// names a YAML file its keys (the variable names in lower case) are read
// first and the environment overrides them.
// It returns an error if the selected dataset source is missing its connection URL.
func Load() (*Config, error) {
	k := koanf.New(".")
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %q: %w", path, err)
		}
	}
	// empty variables do not shadow file values
	envProvider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	v := values{k: k}

	cfg := &Config{
		Port:           v.getEnvInt("PORT", 8080),
		Env:            v.getEnv("ENV", "development"),
		RequestTimeout: v.getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),

		LogLevel: strings.ToLower(v.getEnv("LOG_LEVEL", "info")),
		LogFile:  v.getEnv("LOG_FILE", ""),

		DatasetSource:   strings.ToLower(v.getEnv("DATASET_SOURCE", SourceCSV)),
		DatasetPath:     v.getEnv("DATASET_PATH", "clustered_players.csv"),
		DatasetEncoding: v.getEnv("DATASET_ENCODING", ""),
		DatasetTable:    v.getEnv("DATASET_TABLE", "clustered_players"),
		FeatureStart:    v.getEnvInt("FEATURE_START", 8),
		FeatureEnd:      v.getEnvInt("FEATURE_END", 24),

		ModelPath:  v.getEnv("MODEL_PATH", "player_performance_model.json"),
		ModelCache: v.getEnvBool("MODEL_CACHE", false),

		RedisURL:  v.getEnv("REDIS_URL", ""),
		CacheTTL:  v.getEnvDuration("CACHE_TTL", 10*time.Minute),
		CacheSize: v.getEnvInt("CACHE_SIZE", 256),

		HistogramBins: v.getEnvInt("HISTOGRAM_BINS", 15),

		WarmCache:   v.getEnvBool("WARM_CACHE", true),
		WarmWorkers: v.getEnvInt("WARM_WORKERS", 4),
	}

	// CORS
	origins := v.getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Connection URLs are only required by the source that uses them
	var err error
	switch cfg.DatasetSource {
	case SourceCSV, SourceSQLite:
	case SourcePostgres:
		if cfg.PostgresURL, err = v.getEnvRequired("POSTGRES_URL"); err != nil {
			return nil, err
		}
	case SourceMySQL:
		if cfg.MySQLDSN, err = v.getEnvRequired("MYSQL_DSN"); err != nil {
			return nil, err
		}
	case SourceClickHouse:
		if cfg.ClickHouseURL, err = v.getEnvRequired("CLICKHOUSE_URL"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported DATASET_SOURCE %q (want csv, sqlite, postgres, mysql or clickhouse)", cfg.DatasetSource)
	}

	if cfg.FeatureStart < 0 || (cfg.FeatureEnd > 0 && cfg.FeatureEnd <= cfg.FeatureStart) {
		return nil, fmt.Errorf("invalid feature window [%d, %d)", cfg.FeatureStart, cfg.FeatureEnd)
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// values reads settings by their environment variable name
type values struct {
	k *koanf.Koanf
}

func (v values) lookup(key string) string {
	return strings.TrimSpace(v.k.String(strings.ToLower(key)))
}

func (v values) getEnv(key, fallback string) string {
	if value := v.lookup(key); value != "" {
		return value
	}
	return fallback
}

func (v values) getEnvRequired(key string) (string, error) {
	if value := v.lookup(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func (v values) getEnvInt(key string, fallback int) int {
	if value := v.lookup(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func (v values) getEnvBool(key string, fallback bool) bool {
	if value := v.lookup(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func (v values) getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := v.lookup(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
