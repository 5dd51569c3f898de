package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(`
[server]
http_port = 9000

[workflow]
feedback_window_seconds = 3
check_out_time = "14:30:00"

[services.reservation]
url = "http://reservations.internal/api"
timeout = 2
`)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, 3*time.Second, cfg.Workflow.FeedbackWindow())
	assert.Equal(t, "14:30:00", cfg.Workflow.CheckOutTime)
	assert.Equal(t, "http://reservations.internal/api", cfg.Services.Reservation.URL)
	assert.Equal(t, 2*time.Second, cfg.Services.Reservation.TimeoutDuration())
	// не переопределенные значения остаются по умолчанию
	assert.Equal(t, "https://localhost:8083/api", cfg.Services.Accommodation.URL)
	assert.Equal(t, 30*time.Minute, cfg.Workflow.SessionTTL())
}

func TestDefault_MatchesPolicy(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5*time.Second, cfg.Workflow.FeedbackWindow())
	assert.Equal(t, "15:00:00", cfg.Workflow.CheckOutTime)
}

func TestServicesConfig_Endpoints(t *testing.T) {
	endpoints := Default().Services.Endpoints()

	assert.Len(t, endpoints, 6)
	assert.Equal(t, "https://localhost:8082/api", endpoints["reservation"])
	assert.Equal(t, "https://localhost:8083/api", endpoints["accommodation"])
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "bad service url",
			data: "[services.reservation]\nurl = \"not a url\"\ntimeout = 1\n",
		},
		{
			name: "bad check-out time",
			data: "[workflow]\ncheck_out_time = \"3pm\"\n",
		},
		{
			name: "zero feedback window",
			data: "[workflow]\nfeedback_window_seconds = 0\n",
		},
		{
			name: "unknown log level",
			data: "[logs]\nlevel = \"verbose\"\n",
		},
		{
			name: "broken toml",
			data: "[server\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestLoad_FromEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nhttp_port = 9100\n"), 0o600))

	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.HTTPPort)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Server.HTTPPort, cfg.Server.HTTPPort)
}
