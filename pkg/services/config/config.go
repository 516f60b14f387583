package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const EnvPrefix = "DASH"

type Config struct {
	Dataset   DatasetConfig   `mapstructure:"dataset"`
	Store     StoreConfig     `mapstructure:"store"`
	Server    ServerConfig    `mapstructure:"server"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Log       LogConfig       `mapstructure:"log"`
}

type DatasetConfig struct {
	Path   string `mapstructure:"path" validate:"required_if=Source file"`
	Sheet  string `mapstructure:"sheet"`
	Source string `mapstructure:"source" validate:"oneof=file duckdb"`
}

type StoreConfig struct {
	DbPath string `mapstructure:"db_path" validate:"required"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host" validate:"required"`
	Port            string        `mapstructure:"port" validate:"required,numeric"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type DashboardConfig struct {
	Variant string `mapstructure:"variant" validate:"oneof=basic enhanced full"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset.path", "marketing_campaign_cleaned.xlsx")
	v.SetDefault("dataset.sheet", "")
	v.SetDefault("dataset.source", "file")
	v.SetDefault("store.db_path", "campaign-dash.db")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("dashboard.variant", "full")
	v.SetDefault("log.level", "info")
}

// LoadConfig reads an optional YAML file, then applies DASH_* environment
// overrides, e.g. DASH_SERVER_PORT or DASH_DATASET_PATH.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse dashboard config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid dashboard config: %w", err)
	}
	return &cfg, nil
}

func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}
