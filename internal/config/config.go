// Package config loads the application configuration and wires the global
// logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bizzlechizzle/atlas-cli/internal/matcher"
)

// Config holds the full application configuration.
type Config struct {
	Catalog CatalogConfig  `yaml:"catalog" mapstructure:"catalog"`
	Regions RegionsConfig  `yaml:"regions" mapstructure:"regions"`
	Match   matcher.Config `yaml:"match" mapstructure:"match"`
	Batch   BatchConfig    `yaml:"batch" mapstructure:"batch"`
	Server  ServerConfig   `yaml:"server" mapstructure:"server"`
	Log     LogConfig      `yaml:"log" mapstructure:"log"`
}

// CatalogConfig configures where catalog snapshots come from.
type CatalogConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// RegionsConfig configures the cultural-region dataset and the adjacency
// search bounds.
type RegionsConfig struct {
	DatasetPath      string  `yaml:"dataset_path" mapstructure:"dataset_path"`
	MaxDistanceMiles float64 `yaml:"max_distance_miles" mapstructure:"max_distance_miles"`
	MaxAdjacent      int     `yaml:"max_adjacent" mapstructure:"max_adjacent"`
}

// BatchConfig configures batch matching.
type BatchConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment. Every distance and
// similarity threshold lives here; the 150 m / 500 m / 0.85 / 25 mi
// defaults are documented behavior and must not drift.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("catalog.driver", "sqlite")
	v.SetDefault("regions.dataset_path", "regions.yaml")
	v.SetDefault("regions.max_distance_miles", 25)
	v.SetDefault("regions.max_adjacent", 3)
	v.SetDefault("match.exact_radius_meters", 150)
	v.SetDefault("match.probable_radius_meters", 500)
	v.SetDefault("match.name_similarity_threshold", 0.85)
	v.SetDefault("match.enrichment_name_similarity_threshold", 0.85)
	v.SetDefault("batch.workers", 4)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
