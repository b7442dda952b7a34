package ws

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/numbers"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/trig"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Widgets that sync their state over the stream
const (
	WidgetNumberClassifier = "number-classifier"
	WidgetUnitCircle       = "unit-circle"
)

const (
	maxMessageSize = 4096
	writeWait      = 10 * time.Second
)

// ErrUnknownWidget is returned for state events from widgets without a live evaluator
var ErrUnknownWidget = errors.New("ws: unknown widget")

// Reply is a server-to-client frame
type Reply struct {
	Type         string      `json:"type"`
	Widget       string      `json:"widget,omitempty"`
	Result       interface{} `json:"result,omitempty"`
	Message      string      `json:"message,omitempty"`
	ConnectionID string      `json:"connection_id,omitempty"`
	Timestamp    int64       `json:"timestamp"`
}

// Handler manages WebSocket connections
type Handler struct {
	upgrader websocket.Upgrader
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandler creates a new WebSocket handler. Origins lists the allowed
// browser origins; "*" or an empty list allows any. metrics may be nil.
func NewHandler(metrics *monitoring.Metrics, logger *logging.Logger, origins []string) *Handler {
	return &Handler{
		upgrader: websocket.Upgrader{CheckOrigin: originChecker(origins)},
		metrics:  metrics,
		logger:   logger.Named("ws"),
	}
}

func originChecker(origins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		allowed[o] = true
	}
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowed[origin]
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	log := h.logger.With(zap.String("connection_id", connID))
	log.Info("WebSocket connected", zap.String("remote", c.ClientIP()))

	if h.metrics != nil {
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}

	conn.SetReadLimit(maxMessageSize)

	h.send(conn, Reply{
		Type:         "system",
		Message:      "Connected to MathForDevs stream",
		ConnectionID: connID,
	})

	// Listen for messages
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("WebSocket read error", zap.Error(err))
			}
			break
		}

		var msg types.WSMessage
		if err := sonic.Unmarshal(data, &msg); err != nil {
			h.recordMessage("in", "invalid")
			h.sendError(conn, "invalid message")
			continue
		}

		switch msg.Type {
		case "state":
			h.recordMessage("in", msg.Type)
			h.handleState(conn, msg, log)
		case "ping":
			h.recordMessage("in", msg.Type)
			h.send(conn, Reply{Type: "pong"})
		default:
			h.recordMessage("in", "unknown")
			h.sendError(conn, "unknown message type")
		}
	}

	log.Info("WebSocket disconnected")
}

func (h *Handler) handleState(conn *websocket.Conn, msg types.WSMessage, log *logging.Logger) {
	result, err := h.Evaluate(msg)
	if err != nil {
		log.Debug("State rejected", zap.String("widget", msg.Widget), zap.Error(err))
		h.sendError(conn, err.Error())
		return
	}
	h.send(conn, Reply{Type: "result", Widget: msg.Widget, Result: result})
}

// Evaluate computes the new widget state from a state-change event
func (h *Handler) Evaluate(msg types.WSMessage) (interface{}, error) {
	switch msg.Widget {
	case WidgetNumberClassifier:
		c := numbers.Classify(msg.Value)
		if h.metrics != nil {
			h.metrics.RecordClassification(string(c.Representation), c.Valid)
		}
		return c, nil
	case WidgetUnitCircle:
		angle, err := trig.ParseAngle(msg.Value)
		if err != nil {
			return nil, err
		}
		e := trig.Evaluate(angle)
		if h.metrics != nil {
			h.metrics.RecordTrigEvaluation(e.IsSpecial())
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, msg.Widget)
	}
}

func (h *Handler) send(conn *websocket.Conn, reply Reply) error {
	if reply.Timestamp == 0 {
		reply.Timestamp = time.Now().Unix()
	}
	data, err := sonic.Marshal(reply)
	if err != nil {
		h.logger.Error("Failed to encode reply", zap.String("type", reply.Type), zap.Error(err))
		if reply.Type == "error" {
			return err
		}
		return h.sendError(conn, "result could not be encoded")
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return err
	}
	h.recordMessage("out", reply.Type)
	return nil
}

func (h *Handler) sendError(conn *websocket.Conn, msg string) error {
	return h.send(conn, Reply{Type: "error", Message: msg})
}

func (h *Handler) recordMessage(direction, msgType string) {
	if h.metrics != nil {
		h.metrics.RecordWSMessage(direction, msgType)
	}
}
