package server

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/logging"
)

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	s, err := newServer(cfg, logging.NewNop(), reg, reg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func do(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRoutes(t *testing.T) {
	cfg := config.Default()
	cfg.Compression.Gzip = false
	s := newTestServer(t, cfg)

	t.Run("Root", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "online", decode(t, w)["status"])
		assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Health", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, float64(6), body["topics"])
		stats := body["service_registry"].(map[string]interface{})
		assert.Equal(t, float64(2), stats["total_services"])
	})

	t.Run("Classify", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/numbers/classify?input=0.5", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, []interface{}{"rational", "real"}, body["sets"])
	})

	t.Run("TrigEvaluate", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/trig/evaluate?angle=30", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = do(t, s, http.MethodGet, "/trig/evaluate?angle=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("TopicNotFound", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/topics/topology", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ExecuteContentTool", func(t *testing.T) {
		w := do(t, s, http.MethodPost, "/services/execute", map[string]interface{}{
			"tool_id": "content.topics.get",
			"params":  map[string]interface{}{"id": "trigonometry"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decode(t, w)["success"])
	})

	t.Run("ExecuteSimulationRespectsLimits", func(t *testing.T) {
		w := do(t, s, http.MethodPost, "/services/execute", map[string]interface{}{
			"tool_id": "math.stats.simulate",
			"params": map[string]interface{}{
				"true_mean": 0, "std_dev": 1, "sample_size": 10, "null_mean": 0,
				"trials": cfg.Limits.MaxSimTrials + 1,
			},
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
	})

	t.Run("Metrics", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mathdev_http_requests_total")
		assert.Contains(t, w.Body.String(), "mathdev_classifications_total")
	})
}

func TestGzip(t *testing.T) {
	s := newTestServer(t, config.Default())

	req := httptest.NewRequest(http.MethodGet, "/topics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "trigonometry"))
}

func TestContentOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[topics]]
id = "only"
title = "Only Topic"
summary = "One"
order = 1
`), 0o644))

	cfg := config.Default()
	cfg.Content.Path = path
	s := newTestServer(t, cfg)

	w := do(t, s, http.MethodGet, "/topics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])
}

func TestBadContentPath(t *testing.T) {
	cfg := config.Default()
	cfg.Content.Path = filepath.Join(t.TempDir(), "missing.yaml")
	reg := prometheus.NewRegistry()
	_, err := newServer(cfg, logging.NewNop(), reg, reg)
	assert.Error(t, err)
}
