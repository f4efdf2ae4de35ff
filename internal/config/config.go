package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	CromEndpoint string `mapstructure:"crom_endpoint"`
	SourcesFile  string `mapstructure:"sources_file"`
	SourceID     string `mapstructure:"source_id"`
	PageSize     int    `mapstructure:"page_size"`

	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	OutputDir string `mapstructure:"output_dir"`
}

// maxPageSize is the largest page the Crom API serves per request.
const maxPageSize = 100

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "newsfetch")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("crom_endpoint", "https://api.crom.avn.sh/")
	v.SetDefault("sources_file", "./configs/sources.yaml")
	v.SetDefault("source_id", "scp-wiki")
	v.SetDefault("page_size", maxPageSize)
	v.SetDefault("http_timeout_seconds", 30)
	v.SetDefault("output_dir", "./output")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CromEndpoint == "" {
		return nil, fmt.Errorf("crom_endpoint must not be empty")
	}
	if cfg.PageSize <= 0 || cfg.PageSize > maxPageSize {
		return nil, fmt.Errorf("invalid page_size %d (must be 1..%d)", cfg.PageSize, maxPageSize)
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("output_dir must not be empty")
	}

	return &cfg, nil
}
