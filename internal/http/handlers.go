package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/api/middleware"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/content"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/numbers"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/trig"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/service"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Version is reported by the root endpoint
const Version = "0.1.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	catalog  *content.Catalog
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	started  time.Time
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(
	registry *service.Registry,
	catalog *content.Catalog,
	metrics *monitoring.Metrics,
	logger *logging.Logger,
) *Handlers {
	return &Handlers{
		registry: registry,
		catalog:  catalog,
		metrics:  metrics,
		logger:   logger.Named("http"),
		started:  time.Now(),
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "MathForDevs API (Go)",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	resp := gin.H{
		"status":           "healthy",
		"uptime_seconds":   int64(time.Since(h.started).Seconds()),
		"service_registry": h.registry.Stats(),
		"topics":           h.catalog.Len(),
	}
	if h.metrics != nil {
		resp["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, resp)
}

// ParseNumber parses the input query parameter
func (h *Handlers) ParseNumber(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": numbers.Parse(c.Query("input"))})
}

// ClassifyNumber classifies the input query parameter. Invalid input is
// reported in the body with is_valid=false, not as a 400.
func (h *Handlers) ClassifyNumber(c *gin.Context) {
	result := numbers.Classify(c.Query("input"))
	if h.metrics != nil {
		h.metrics.RecordClassification(string(result.Representation), result.Valid)
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result,
		"sets":   result.Sets(),
	})
}

// EvaluateTrig evaluates the unit circle at the angle query parameter
func (h *Handlers) EvaluateTrig(c *gin.Context) {
	angle, err := parseAngle(c.Query("angle"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := trig.Evaluate(angle)
	if h.metrics != nil {
		h.metrics.RecordTrigEvaluation(result.IsSpecial())
	}

	c.JSON(http.StatusOK, gin.H{
		"result":          result,
		"tangent_defined": result.TangentDefined(),
	})
}

// SpecialAngles returns the exact-value table
func (h *Handlers) SpecialAngles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"angles": trig.SpecialAngles()})
}

// VerifyIdentities checks every identity at angle, or only ?identity= when given
func (h *Handlers) VerifyIdentities(c *gin.Context) {
	angle, err := parseAngle(c.Query("angle"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if name := c.Query("identity"); name != "" {
		check, err := trig.VerifyIdentity(trig.Identity(name), angle)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"angle": angle, "checks": []trig.IdentityCheck{check}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"angle": angle, "checks": trig.VerifyAll(angle)})
}

// ListTopics lists the topic catalog in display order
func (h *Handlers) ListTopics(c *gin.Context) {
	topics := h.catalog.List()
	c.JSON(http.StatusOK, gin.H{
		"topics": topics,
		"count":  len(topics),
	})
}

// GetTopic returns a single topic
func (h *Handlers) GetTopic(c *gin.Context) {
	topicID := c.Param("id")

	if err := validateID(topicID, "topic_id"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.catalog.Get(topicID)
	if errors.Is(err, content.ErrTopicNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, topic)
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		if err := validateCategory(categoryStr); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices discovers relevant services for an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateIntent(req.Intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Intent,
		"services": h.registry.Discover(req.Intent, req.Limit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateToolID(req.ToolID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appCtx := &types.Context{Widget: req.Widget}
	if traceID := tracing.GetTraceID(c.Request.Context()); traceID != "" {
		s := traceID.String()
		appCtx.TraceID = &s
	}
	if requestID := c.GetString(middleware.RequestIDKey); requestID != "" {
		appCtx.RequestID = &requestID
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		h.logger.Warn("Service execution failed", zap.String("tool", req.ToolID), zap.Error(err))
		status := http.StatusInternalServerError
		if _, found := h.registry.Get(serviceOf(req.ToolID)); !found {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.writeResult(c, req.ToolID, result)
}

// writeResult encodes a provider result before the status line is sent, so a
// value JSON cannot carry becomes a 500 instead of an empty 200.
func (h *Handlers) writeResult(c *gin.Context, toolID string, result *types.Result) {
	data, err := sonic.Marshal(result)
	if err != nil {
		h.logger.Error("Failed to encode result", zap.String("tool", toolID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "result could not be encoded"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
