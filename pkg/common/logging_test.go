package common

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/AlexanderGrooff/kobe-client/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogFormat(t *testing.T) {
	assert.NoError(t, SetLogFormat(config.LoggingConfig{Format: "json"}))
	assert.NoError(t, SetLogFormat(config.LoggingConfig{Format: "yaml", Timestamps: true}))
	assert.EqualError(t, SetLogFormat(config.LoggingConfig{Format: "xml"}),
		`invalid log format "xml", expected one of [json plain yaml]`)
}

func TestConfigureWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure(config.LoggingConfig{Level: "debug", Format: "json"}))
	SetLogOutput(&buf)
	t.Cleanup(func() {
		_ = Configure(config.LoggingConfig{Level: "info", Format: "plain", Timestamps: true})
		SetLogOutput(os.Stderr)
	})

	LogDebug("fetched result", map[string]interface{}{"task_id": "abc"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fetched result", entry["msg"])
	assert.Equal(t, "abc", entry["task_id"])
	assert.Equal(t, "debug", entry["level"])
}

func TestSetEndpointReplacesField(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure(config.LoggingConfig{Level: "info", Format: "json"}))
	SetLogOutput(&buf)
	t.Cleanup(func() {
		SetEndpoint("")
		_ = Configure(config.LoggingConfig{Level: "info", Format: "plain", Timestamps: true})
		SetLogOutput(os.Stderr)
	})

	SetEndpoint("kobe-a:8080")
	SetEndpoint("kobe-b:8080")
	LogInfo("connected", nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kobe-b:8080", entry["endpoint"])
	_, hasTime := entry["time"]
	assert.False(t, hasTime)
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure(config.LoggingConfig{Level: "loud", Format: "json"}))
	SetLogOutput(&buf)
	t.Cleanup(func() {
		_ = Configure(config.LoggingConfig{Level: "info", Format: "plain", Timestamps: true})
		SetLogOutput(os.Stderr)
	})

	LogDebug("hidden", nil)
	LogInfo("shown", nil)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
