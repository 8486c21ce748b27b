package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDatasetURL = "http://localhost:9999/global-temperature.json"

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultDatasetURL, cfg.DatasetURL)
	assert.Equal(t, 10*time.Second, cfg.DatasetTimeout)
	assert.Equal(t, int64(8388608), cfg.DatasetMaxBytes)
	assert.Equal(t, "heatmap.html", cfg.OutputPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 800, cfg.CanvasWidth)
	assert.Equal(t, 400, cfg.CanvasHeight)
	assert.Equal(t, Margins{Top: 20, Right: 20, Bottom: 20, Left: 60}, cfg.Margins)
	assert.Equal(t, 720, cfg.InnerWidth())
	assert.Equal(t, 360, cfg.InnerHeight())
	assert.Empty(t, cfg.MetricsTextfile)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATASET_URL", testDatasetURL)
	t.Setenv("DATASET_TIMEOUT", "30s")
	t.Setenv("DATASET_MAX_BYTES", "1024")
	t.Setenv("OUTPUT_PATH", "/tmp/out.html")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("CANVAS_WIDTH", "1200")
	t.Setenv("CANVAS_HEIGHT", "600")
	t.Setenv("CANVAS_MARGINS", "10, 15, 30, 80")
	t.Setenv("METRICS_TEXTFILE", "/var/lib/node_exporter/heatmap.prom")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testDatasetURL, cfg.DatasetURL)
	assert.Equal(t, 30*time.Second, cfg.DatasetTimeout)
	assert.Equal(t, int64(1024), cfg.DatasetMaxBytes)
	assert.Equal(t, "/tmp/out.html", cfg.OutputPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 1200, cfg.CanvasWidth)
	assert.Equal(t, 600, cfg.CanvasHeight)
	assert.Equal(t, Margins{Top: 10, Right: 15, Bottom: 30, Left: 80}, cfg.Margins)
	assert.Equal(t, "/var/lib/node_exporter/heatmap.prom", cfg.MetricsTextfile)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATASET_URL="+testDatasetURL+"\nLOG_LEVEL=warn\n"), 0o600))
	t.Setenv("LOG_LEVEL", "error")
	t.Cleanup(func() { os.Unsetenv("DATASET_URL") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, testDatasetURL, cfg.DatasetURL)
	assert.Equal(t, "error", cfg.LogLevel, "environment wins over .env")
}

func TestLoad_InvalidDatasetTimeout(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATASET_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATASET_TIMEOUT")
}

func TestLoad_NegativeDatasetTimeout(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATASET_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATASET_TIMEOUT")
}

func TestLoad_InvalidMaxBytes(t *testing.T) {
	t.Chdir(t.TempDir())

	for _, v := range []string{"0", "-5", "1073741825", "9223372036854775807", "lots"} {
		t.Setenv("DATASET_MAX_BYTES", v)
		_, err := Load()
		require.Error(t, err, v)
		assert.Contains(t, err.Error(), "DATASET_MAX_BYTES")
	}
}

func TestLoad_MaxBytesAtCap(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATASET_MAX_BYTES", "1073741824")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(MaxDatasetBytes), cfg.DatasetMaxBytes)
}

func TestLoad_InvalidCanvasWidth(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CANVAS_WIDTH", "wide")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CANVAS_WIDTH")
}

func TestLoad_InvalidMargins(t *testing.T) {
	t.Chdir(t.TempDir())

	for _, v := range []string{"20,20,20", "a,b,c,d", "20,20,-1,60"} {
		t.Setenv("CANVAS_MARGINS", v)
		_, err := Load()
		require.Error(t, err, v)
		assert.Contains(t, err.Error(), "CANVAS_MARGINS")
	}
}

func TestLoad_MarginsExceedCanvas(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CANVAS_WIDTH", "100")
	t.Setenv("CANVAS_MARGINS", "20,50,20,50")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CANVAS_WIDTH")
}

func TestValidate_EmptyOutputPath(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)

	cfg.OutputPath = ""
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OUTPUT_PATH")
}
