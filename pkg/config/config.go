package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration settings
type Config struct {
	Server    ServerConfig   `mapstructure:"server"`
	Security  SecurityConfig `mapstructure:"security"`
	Logging   LoggingConfig  `mapstructure:"logging"`
	Inventory string         `mapstructure:"inventory"`
	Scripts   ScriptsConfig  `mapstructure:"scripts"`
	History   HistoryConfig  `mapstructure:"history"`
	Gateway   GatewayConfig  `mapstructure:"gateway"`
	Wait      WaitConfig     `mapstructure:"wait"`
	Breaker   BreakerConfig  `mapstructure:"breaker"`
}

// ServerConfig describes how to reach the kobe service
type ServerConfig struct {
	Endpoint       string        `mapstructure:"endpoint"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	// CallTimeout of zero leaves calls bounded only by the caller's context.
	CallTimeout time.Duration `mapstructure:"call_timeout"`
	// ConnectMaxElapsed bounds connect retries; zero retries until the
	// command is cancelled.
	ConnectMaxElapsed   time.Duration `mapstructure:"connect_max_elapsed"`
	DialInitialInterval time.Duration `mapstructure:"dial_initial_interval"`
	DialMaxInterval     time.Duration `mapstructure:"dial_max_interval"`
}

// SecurityConfig holds transport security settings
type SecurityConfig struct {
	EnableTLS  bool   `mapstructure:"enable_tls"`
	CAFile     string `mapstructure:"ca_file"`
	ServerName string `mapstructure:"server_name"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	Timestamps bool   `mapstructure:"timestamps"`
}

// ScriptsConfig tells the CLI where relative script and playbook paths live
type ScriptsConfig struct {
	Dir string `mapstructure:"dir"`
}

type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type GatewayConfig struct {
	Port string `mapstructure:"port"`
}

// WaitConfig is the backoff used when polling for a task result
type WaitConfig struct {
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	MaxElapsed      time.Duration `mapstructure:"max_elapsed"`
}

type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

// Load loads configuration from files and environment variables
func Load(configPaths ...string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	for _, path := range configPaths {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("KOBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.endpoint", "localhost:8080")
	v.SetDefault("server.connect_timeout", "10s")
	v.SetDefault("server.call_timeout", "0s")
	v.SetDefault("server.connect_max_elapsed", "30s")
	v.SetDefault("server.dial_initial_interval", "500ms")
	v.SetDefault("server.dial_max_interval", "5s")

	v.SetDefault("security.enable_tls", false)
	v.SetDefault("security.ca_file", "")
	v.SetDefault("security.server_name", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "plain")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.timestamps", true)

	v.SetDefault("inventory", "")
	v.SetDefault("scripts.dir", "")

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "kobectl.db")

	v.SetDefault("gateway.port", "8081")

	v.SetDefault("wait.initial_interval", "1s")
	v.SetDefault("wait.max_interval", "10s")
	v.SetDefault("wait.max_elapsed", "5m")

	v.SetDefault("breaker.max_failures", 5)
	v.SetDefault("breaker.open_timeout", "30s")
}
