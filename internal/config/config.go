package config

import (
	"errors"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"showdown-server/internal/util"
)

// Config provides configuration for the showdown server
type Config struct {
	loaded bool

	Addr string `yaml:"addr" envconfig:"addr"`
	Log  struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	// MaxHands is the most hands a single showdown request may compare
	MaxHands int `yaml:"maxHands" envconfig:"max_hands"`

	Cache struct {
		TTLSeconds     int `yaml:"ttlSeconds" envconfig:"ttl_seconds"`
		CleanupSeconds int `yaml:"cleanupSeconds" envconfig:"cleanup_seconds"`
	} `yaml:"cache"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides it
func DefaultConfig() Config {
	cfg := Config{
		Addr:     ":5000",
		MaxHands: 100,
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Cache.TTLSeconds = 300
	cfg.Cache.CleanupSeconds = 600
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from the defaults, then the YAML file (if present), then the environment.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("SHOWDOWN_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	} else {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("showdown", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
