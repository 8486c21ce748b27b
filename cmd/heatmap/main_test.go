package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `{
  "baseTemperature": 8.66,
  "monthlyVariance": [
    {"year": 1753, "month": 1, "variance": -1.366},
    {"year": 1753, "month": 2, "variance": -2.223},
    {"year": 1754, "month": 1, "variance": 0.5}
  ]
}`

func datasetServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, metrics *observability.Metrics, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cmd := newRootCmd(metrics)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRootCmd_WritesDocumentAndMetrics(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("METRICS_TEXTFILE", filepath.Join(dir, "heatmap.prom"))

	srv := datasetServer(t, http.StatusOK, payload)
	metrics := observability.NewMetricsForTesting()

	_, err := execute(t, metrics, "--url", srv.URL, "--out", filepath.Join(dir, "out.html"))
	require.NoError(t, err)

	doc, err := os.ReadFile(filepath.Join(dir, "out.html"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), `class="cell"`)
	assert.Contains(t, string(doc), `data-temp="7.2940000000000005"`)

	prom, err := os.ReadFile(filepath.Join(dir, "heatmap.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), "heatmap_cells_rendered_total 3")
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.CellsRendered))
}

func TestRootCmd_StdoutOutput(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "error")

	srv := datasetServer(t, http.StatusOK, payload)

	out, err := execute(t, observability.NewMetricsForTesting(), "--url", srv.URL, "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `id="tooltip"`)
}

func TestRootCmd_TransferFailure(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("METRICS_TEXTFILE", filepath.Join(dir, "heatmap.prom"))

	srv := datasetServer(t, http.StatusServiceUnavailable, "down")
	metrics := observability.NewMetricsForTesting()

	_, err := execute(t, metrics, "--url", srv.URL, "--out", filepath.Join(dir, "out.html"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransfer)

	assert.NoFileExists(t, filepath.Join(dir, "out.html"))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RunFailures.WithLabelValues("load", "transfer")))

	prom, err := os.ReadFile(filepath.Join(dir, "heatmap.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), `heatmap_run_failures_total{kind="transfer",stage="load"} 1`)
}

func TestRootCmd_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "error")

	srv := datasetServer(t, http.StatusOK, payload)
	metrics := observability.NewMetricsForTesting()

	_, err := execute(t, metrics, "--url", srv.URL, "--out", filepath.Join(dir, "missing", "out.html"))
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RunFailures.WithLabelValues("write", "other")))
}

func TestRootCmd_RejectsArgsAndBadConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "error")

	_, err := execute(t, observability.NewMetricsForTesting(), "extra")
	require.Error(t, err)

	t.Setenv("CANVAS_MARGINS", "20,400,20,400")
	_, err = execute(t, observability.NewMetricsForTesting(), "--url", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CANVAS_MARGINS")
}
