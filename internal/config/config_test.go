package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"premium_api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(config.Config{
		App: config.App{Name: "insurance-premium-api"},
		Log: config.Log{Level: slog.LevelInfo, Format: "text", FieldMaxLen: 4096},
		HTTP: config.HTTP{
			ListenAddress:     ":8000",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Probe:   config.Probe{ListenAddress: ":8081"},
		Metrics: config.Metrics{ListenAddress: ":9090"},
		Model:   config.Model{Path: "model/model.json", Version: "1.0.0"},
	}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	rq := require.New(t)

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("HTTP_LISTEN_ADDRESS", ":18000")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "1m")
	t.Setenv("MODEL_PATH", "/srv/model.json")
	t.Setenv("MODEL_VERSION", "2.0.0")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(slog.LevelDebug, cfg.Log.Level)
	rq.Equal("json", cfg.Log.Format)
	rq.Equal(":18000", cfg.HTTP.ListenAddress)
	rq.Equal(time.Minute, cfg.HTTP.ShutdownTimeout)
	rq.Equal(config.Model{Path: "/srv/model.json", Version: "2.0.0"}, cfg.Model)
}

func TestLoadInvalid(t *testing.T) {
	rq := require.New(t)

	t.Setenv("HTTP_READ_HEADER_TIMEOUT", "soon")

	_, err := config.Load()
	rq.ErrorContains(err, "env.Parse")
}

func TestLoadClient(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.LoadClient()
	rq.NoError(err)
	rq.Equal("http://127.0.0.1:8000", cfg.APIURL)

	t.Setenv("PREMIUM_API_URL", "http://premium:8000")

	cfg, err = config.LoadClient()
	rq.NoError(err)
	rq.Equal("http://premium:8000", cfg.APIURL)
}
