package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Endpoint:            "localhost:8080",
			ConnectTimeout:      10 * time.Second,
			CallTimeout:         0,
			ConnectMaxElapsed:   30 * time.Second,
			DialInitialInterval: 500 * time.Millisecond,
			DialMaxInterval:     5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "plain",
			Timestamps: true,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "kobectl.db",
		},
		Gateway: GatewayConfig{Port: "8081"},
		Wait: WaitConfig{
			InitialInterval: time.Second,
			MaxInterval:     10 * time.Second,
			MaxElapsed:      5 * time.Minute,
		},
		Breaker: BreakerConfig{
			MaxFailures: 5,
			OpenTimeout: 30 * time.Second,
		},
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "kobectl.yaml")
	configContent := `
server:
  endpoint: "192.168.33.17:8080"
  connect_timeout: 3s
  call_timeout: 1m
  connect_max_elapsed: 2m
  dial_initial_interval: 100ms

security:
  enable_tls: true
  ca_file: "ca.pem"
  server_name: "kobe.local"

logging:
  level: "debug"
  format: "json"
  file: "test.log"
  timestamps: false

inventory: "inventory.yaml"

scripts:
  dir: "scripts"

history:
  enabled: false
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	fromFile := defaultConfig()
	fromFile.Server = ServerConfig{
		Endpoint:            "192.168.33.17:8080",
		ConnectTimeout:      3 * time.Second,
		CallTimeout:         time.Minute,
		ConnectMaxElapsed:   2 * time.Minute,
		DialInitialInterval: 100 * time.Millisecond,
		DialMaxInterval:     5 * time.Second,
	}
	fromFile.Security = SecurityConfig{EnableTLS: true, CAFile: "ca.pem", ServerName: "kobe.local"}
	fromFile.Logging = LoggingConfig{Level: "debug", Format: "json", File: "test.log", Timestamps: false}
	fromFile.Inventory = "inventory.yaml"
	fromFile.Scripts.Dir = "scripts"
	fromFile.History.Enabled = false

	fromEnv := defaultConfig()
	fromEnv.Server.Endpoint = "10.0.0.5:9000"
	fromEnv.Logging.Level = "warn"
	fromEnv.Security.EnableTLS = true
	fromEnv.Wait.MaxElapsed = 30 * time.Second
	fromEnv.Server.ConnectMaxElapsed = 0

	tests := []struct {
		name        string
		configPaths []string
		envVars     map[string]string
		want        *Config
		wantErr     bool
	}{
		{
			name:        "default config",
			configPaths: []string{},
			want:        defaultConfig(),
		},
		{
			name:        "config from file",
			configPaths: []string{configPath},
			want:        fromFile,
		},
		{
			name:        "config from env vars",
			configPaths: []string{},
			envVars: map[string]string{
				"KOBE_SERVER_ENDPOINT":            "10.0.0.5:9000",
				"KOBE_LOGGING_LEVEL":              "warn",
				"KOBE_SECURITY_ENABLE_TLS":        "true",
				"KOBE_WAIT_MAX_ELAPSED":           "30s",
				"KOBE_SERVER_CONNECT_MAX_ELAPSED": "0s",
			},
			want: fromEnv,
		},
		{
			name:        "invalid config file",
			configPaths: []string{"nonexistent.yaml"},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			got, err := Load(tt.configPaths...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
