package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Data sources understood by the server.
const (
	SourceFixtures = "fixtures"
	SourceMySQL    = "mysql"
)

// Config holds application level configuration. Values come from an optional
// YAML file named by CONFIG_FILE, then environment variables override them.
type Config struct {
	ServerPort   string `yaml:"server_port"`
	DataSource   string `yaml:"data_source"`
	CardsFile    string `yaml:"cards_file"`
	EventsFile   string `yaml:"events_file"`
	MySQLDSN     string `yaml:"mysql_dsn"`
	RedisAddr    string `yaml:"redis_addr"`
	RedisDB      int    `yaml:"redis_db"`
	RedisPass    string `yaml:"redis_password"`
	CacheTTL     int    `yaml:"cache_ttl_seconds"`
	AzureMapsKey string `yaml:"azure_maps_key"`
	SwaggerHost  string `yaml:"swagger_host"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
}

// Load builds Config from defaults, the optional file, and the environment.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.DataSource = getEnv("DATA_SOURCE", cfg.DataSource)
	cfg.CardsFile = getEnv("CARDS_FILE", cfg.CardsFile)
	cfg.EventsFile = getEnv("EVENTS_FILE", cfg.EventsFile)
	cfg.MySQLDSN = getEnv("MYSQL_DSN", cfg.MySQLDSN)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.RedisPass = getEnv("REDIS_PASSWORD", cfg.RedisPass)
	cfg.CacheTTL = getEnvInt("CACHE_TTL_SECONDS", cfg.CacheTTL)
	cfg.AzureMapsKey = getEnv("AZURE_MAPS_KEY", cfg.AzureMapsKey)
	cfg.SwaggerHost = getEnv("SWAGGER_HOST", cfg.SwaggerHost)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	return cfg, nil
}

// CacheTTLDuration converts CacheTTL to a duration. Zero seconds disables
// view memoization and is reported as a negative duration.
func (c *Config) CacheTTLDuration() time.Duration {
	if c.CacheTTL <= 0 {
		return -1
	}
	return time.Duration(c.CacheTTL) * time.Second
}

func defaults() *Config {
	return &Config{
		ServerPort: "8080",
		DataSource: SourceFixtures,
		CardsFile:  "data/GiftCards.json",
		EventsFile: "data/GiftCardEvents.json",
		MySQLDSN:   "user:password@tcp(localhost:3306)/giftdash?charset=utf8mb4&parseTime=True&loc=Local",
		RedisAddr:  "localhost:6379",
		CacheTTL:   300,
		LogLevel:   "info",
		LogFormat:  "json",
	}
}

// mergeFile overlays the keys present in the YAML file at path.
// A missing file leaves the defaults in place.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
