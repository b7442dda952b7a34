package http

import (
	"bytes"
	"encoding/json"
	gomath "math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/content"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/monitoring"
	contentProvider "github.com/GriffinCanCode/MathForDevs/backend/internal/providers/content"
	mathProvider "github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/service"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	router  *gin.Engine
	metrics *monitoring.Metrics
}

func setup(t *testing.T) fixture {
	t.Helper()

	catalog, err := content.Default()
	require.NoError(t, err)

	metrics := monitoring.NewMetricsWith(prometheus.NewRegistry())
	t.Cleanup(metrics.Close)

	registry := service.NewRegistry(service.WithMetrics(metrics))
	require.NoError(t, registry.Register(mathProvider.NewProvider(mathProvider.DefaultLimits())))
	require.NoError(t, registry.Register(contentProvider.NewProvider(catalog)))

	h := NewHandlers(registry, catalog, metrics, logging.NewNop())
	router := gin.New()
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/numbers/parse", h.ParseNumber)
	router.GET("/numbers/classify", h.ClassifyNumber)
	router.GET("/trig/evaluate", h.EvaluateTrig)
	router.GET("/trig/special", h.SpecialAngles)
	router.GET("/trig/identities", h.VerifyIdentities)
	router.GET("/topics", h.ListTopics)
	router.GET("/topics/:id", h.GetTopic)
	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)

	return fixture{router: router, metrics: metrics}
}

func (f fixture) get(t *testing.T, path string) (int, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w.Code, decodeBody(t, w)
}

func (f fixture) post(t *testing.T, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w.Code, decodeBody(t, w)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRootAndHealth(t *testing.T) {
	f := setup(t)

	code, body := f.get(t, "/")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, Version, body["version"])

	code, body = f.get(t, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "metrics")
}

func TestNumbers(t *testing.T) {
	f := setup(t)

	t.Run("Parse", func(t *testing.T) {
		code, body := f.get(t, "/numbers/parse?input=3-2i")
		require.Equal(t, http.StatusOK, code)
		result := body["result"].(map[string]interface{})
		assert.Equal(t, true, result["is_valid"])
		assert.Equal(t, float64(3), result["parsed_real"])
		assert.Equal(t, float64(-2), result["parsed_imaginary"])
	})

	t.Run("ClassifyInvalidIsOK", func(t *testing.T) {
		code, body := f.get(t, "/numbers/classify?input=abc")
		require.Equal(t, http.StatusOK, code)
		result := body["result"].(map[string]interface{})
		assert.Equal(t, false, result["is_valid"])
		assert.Equal(t, "unparseable_format", result["error_kind"])
	})

	t.Run("ClassifyInteger", func(t *testing.T) {
		code, body := f.get(t, "/numbers/classify?input=7")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, []interface{}{"natural", "integer", "rational", "real"}, body["sets"])
	})

	t.Run("ClassifyInfinity", func(t *testing.T) {
		code, body := f.get(t, "/numbers/classify?input=%E2%88%9E")
		require.Equal(t, http.StatusOK, code)
		result := body["result"].(map[string]interface{})
		assert.Equal(t, "Infinity", result["input"].(map[string]interface{})["parsed_real"])
	})

	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.Classifications.WithLabelValues("int", "true")))
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.Classifications.WithLabelValues("unknown", "false")))
}

func TestTrig(t *testing.T) {
	f := setup(t)

	t.Run("Evaluate", func(t *testing.T) {
		code, body := f.get(t, "/trig/evaluate?angle=135")
		require.Equal(t, http.StatusOK, code)
		result := body["result"].(map[string]interface{})
		assert.Equal(t, float64(2), result["quadrant"])
		assert.Equal(t, "√2/2", result["exact_sine"])
		assert.Equal(t, true, body["tangent_defined"])
	})

	t.Run("Asymptote", func(t *testing.T) {
		code, body := f.get(t, "/trig/evaluate?angle=-90")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, false, body["tangent_defined"])
	})

	for _, bad := range []string{"", "?angle=", "?angle=abc", "?angle=NaN", "?angle=Inf"} {
		t.Run("BadAngle"+bad, func(t *testing.T) {
			code, body := f.get(t, "/trig/evaluate"+bad)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Contains(t, body["error"], "angle")
		})
	}

	t.Run("Special", func(t *testing.T) {
		code, body := f.get(t, "/trig/special")
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, body["angles"], 16)
	})

	t.Run("Identities", func(t *testing.T) {
		code, body := f.get(t, "/trig/identities?angle=30")
		require.Equal(t, http.StatusOK, code)
		checks := body["checks"].([]interface{})
		assert.Len(t, checks, 6)
		for _, c := range checks {
			assert.Equal(t, true, c.(map[string]interface{})["holds"])
		}
	})

	t.Run("SingleIdentity", func(t *testing.T) {
		code, body := f.get(t, "/trig/identities?angle=30&identity=cofunction")
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, body["checks"], 1)

		code, _ = f.get(t, "/trig/identities?angle=30&identity=nope")
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestTopics(t *testing.T) {
	f := setup(t)

	code, body := f.get(t, "/topics")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(6), body["count"])

	code, body = f.get(t, "/topics/linear-algebra")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "linear-algebra", body["id"])

	code, _ = f.get(t, "/topics/topology")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = f.get(t, "/topics/Bad_ID")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestServices(t *testing.T) {
	f := setup(t)

	t.Run("List", func(t *testing.T) {
		code, body := f.get(t, "/services")
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, body["services"], 2)

		code, body = f.get(t, "/services?category=content")
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, body["services"], 1)

		code, _ = f.get(t, "/services?category=storage")
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("Discover", func(t *testing.T) {
		code, body := f.post(t, "/services/discover", `{"intent":"show me the topic catalog"}`)
		require.Equal(t, http.StatusOK, code)
		services := body["services"].([]interface{})
		require.NotEmpty(t, services)
		assert.Equal(t, "content", services[0].(map[string]interface{})["id"])

		code, _ = f.post(t, "/services/discover", `{"intent":"   "}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("Execute", func(t *testing.T) {
		code, body := f.post(t, "/services/execute", `{"tool_id":"math.sum","params":{"start":1,"end":100,"term":"i"}}`)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, body["success"])

		code, body = f.post(t, "/services/execute", `{"tool_id":"math.vector.cross","params":{"a":[1,2],"b":[3,4]}}`)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, false, body["success"])
	})

	t.Run("ExecuteErrors", func(t *testing.T) {
		code, _ := f.post(t, "/services/execute", `{}`)
		assert.Equal(t, http.StatusBadRequest, code)

		code, _ = f.post(t, "/services/execute", `{"tool_id":"no dots here"}`)
		assert.Equal(t, http.StatusBadRequest, code)

		code, _ = f.post(t, "/services/execute", `{"tool_id":"storage.get"}`)
		assert.Equal(t, http.StatusNotFound, code)
	})

	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.ServiceCalls.WithLabelValues("math", "math.sum", "success")))
}

func TestExtremeMagnitudes(t *testing.T) {
	f := setup(t)

	t.Run("HugeAngle", func(t *testing.T) {
		code, body := f.get(t, "/trig/evaluate?angle=1e308")
		require.Equal(t, http.StatusOK, code)
		result := body["result"].(map[string]interface{})
		sin, cos := result["sine"].(float64), result["cosine"].(float64)
		assert.InDelta(t, 1, sin*sin+cos*cos, 1e-9)
	})

	t.Run("HugeAngleIdentities", func(t *testing.T) {
		code, body := f.get(t, "/trig/identities?angle=1e308")
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, body["checks"], 6)
	})

	t.Run("ClassifyOverflow", func(t *testing.T) {
		code, body := f.get(t, "/numbers/classify?input=1e400")
		require.Equal(t, http.StatusOK, code)
		result := body["result"].(map[string]interface{})
		assert.Equal(t, "Infinity", result["input"].(map[string]interface{})["parsed_real"])
	})

	for _, tt := range []struct{ name, body, want string }{
		{"SumOverflow", `{"tool_id":"math.sum","params":{"start":1,"end":2000,"term":"2^i"}}`, "overflows"},
		{"ProductOverflow", `{"tool_id":"math.product","params":{"start":1,"end":500,"term":"i"}}`, "overflows"},
		{"HugeIndexSpan", `{"tool_id":"math.sum","params":{"start":-9223372036854775808,"end":4611686018427387904,"term":"i"}}`, "too many terms"},
		{"RadiansToDegreesOverflow", `{"tool_id":"math.degrees","params":{"radians":1e308}}`, "overflows"},
		{"InfinityString", `{"tool_id":"math.stats.ttest","params":{"mean":"Infinity","std_dev":1,"n":10,"mu0":0}}`, "required"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			code, body := f.post(t, "/services/execute", tt.body)
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, false, body["success"])
			assert.Contains(t, body["error"], tt.want)
		})
	}
}

func TestWriteResultUnencodable(t *testing.T) {
	h := NewHandlers(service.NewRegistry(), nil, nil, logging.NewNop())
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.writeResult(c, "math.test", &types.Result{Success: true, Data: map[string]interface{}{"value": gomath.Inf(1)}})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "result could not be encoded", decodeBody(t, w)["error"])
}
