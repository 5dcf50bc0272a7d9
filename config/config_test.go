package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"CAMERA_DEVICE", "POSE_BACKEND", "POSE_MODEL", "POSE_CONFIDENCE", "ONNXRUNTIME_LIB",
	"HEAD_TOP_OFFSET", "WINDOW_TITLE", "HEADLESS", "HTTP_ADDR", "TELEGRAM_TOKEN",
	"ALERT_AFTER", "ALERT_COOLDOWN",
}

func clearEnv(t *testing.T) {
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0", cfg.CameraDevice)
	require.Equal(t, BackendGoCV, cfg.PoseBackend)
	require.Equal(t, float32(0.5), cfg.PoseConfidence)
	require.Equal(t, 0.1, cfg.HeadTopOffset)
	require.Equal(t, "Posture Detection", cfg.WindowTitle)
	require.False(t, cfg.Headless)
	require.Equal(t, 30*time.Second, cfg.AlertAfter)
	require.Equal(t, 5*time.Minute, cfg.AlertCooldown)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CAMERA_DEVICE", "clips/desk.mp4")
	t.Setenv("POSE_BACKEND", "ONNX")
	t.Setenv("HEAD_TOP_OFFSET", "0.15")
	t.Setenv("HEADLESS", "true")
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("ALERT_AFTER", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "clips/desk.mp4", cfg.CameraDevice)
	require.Equal(t, BackendONNX, cfg.PoseBackend)
	require.Equal(t, 0.15, cfg.HeadTopOffset)
	require.True(t, cfg.Headless)
	require.Equal(t, time.Minute, cfg.AlertAfter)
	require.NoError(t, cfg.Validate())
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALERT_AFTER", "soon")
	_, err := Load()
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("HEAD_TOP_OFFSET", "tenth")
	_, err = Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	bad := *cfg
	bad.PoseBackend = "tensorrt"
	require.Error(t, bad.Validate())

	bad = *cfg
	bad.HeadTopOffset = 0
	require.Error(t, bad.Validate())

	bad = *cfg
	bad.Headless = true
	require.Error(t, bad.Validate())
}
