// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DebugLogging bool   `mapstructure:"debug_logging"`
	LogFile      string `mapstructure:"log_file"`
	ExportDir    string `mapstructure:"export_dir"`
	ExportFormat string `mapstructure:"export_format"`
	Workers      int    `mapstructure:"workers"`
	PostgresURL  string `mapstructure:"postgres_url"`
}

const (
	DefaultExportDir    = "exports"
	DefaultExportFormat = "csv"
	DefaultWorkers      = 4
)

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := map[string]interface{}{
		"log_file":      "offerscope.log",
		"export_dir":    DefaultExportDir,
		"export_format": DefaultExportFormat,
		"workers":       DefaultWorkers,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := loadEnvironmentVariables(v, &cfg); err != nil {
		return nil, err
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if cfg.Workers <= 0 {
		return errors.New("invalid workers count")
	}
	if cfg.ExportDir == "" {
		return errors.New("export_dir is empty")
	}
	switch cfg.ExportFormat {
	case "csv", "json":
	default:
		return errors.New("export_format must be csv or json")
	}
	return nil
}

func loadEnvironmentVariables(v *viper.Viper, cfg *Config) error {
	v.AutomaticEnv()
	v.SetEnvPrefix("OFFERSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envPostgres := v.GetString("POSTGRES_URL")
	if envPostgres != "" {
		cfg.PostgresURL = envPostgres
	}

	envLogFile := v.GetString("LOG_FILE")
	if envLogFile != "" {
		cfg.LogFile = envLogFile
	}
	return nil
}
