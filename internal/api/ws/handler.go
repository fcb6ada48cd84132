package ws

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/NumServe/internal/infrastructure/config"
	"github.com/GriffinCanCode/NumServe/internal/infrastructure/logging"
	"github.com/GriffinCanCode/NumServe/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/NumServe/internal/service"
	"github.com/GriffinCanCode/NumServe/internal/shared/id"
	"github.com/GriffinCanCode/NumServe/internal/shared/utils"
	"github.com/GriffinCanCode/NumServe/internal/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Handler manages WebSocket connections
type Handler struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	cfg      *config.Config
	logger   *logging.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(registry *service.Registry, metrics *monitoring.Metrics, cfg *config.Config, logger *logging.Logger) *Handler {
	return &Handler{
		registry: registry,
		metrics:  metrics,
		cfg:      cfg,
		logger:   logger,
	}
}

// client wraps a connection with a write lock so frames never interleave
type client struct {
	conn *websocket.Conn
	id   string
	mu   sync.Mutex
}

func (cl *client) send(v interface{}) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return err
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.WriteMessage(websocket.TextMessage, data)
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(h.cfg.Eval.MaxBodyBytes)

	cl := &client{
		conn: conn,
		id:   uuid.New().String(),
	}

	h.metrics.IncWSConnections()
	defer h.metrics.DecWSConnections()

	h.logger.Info("websocket connected", zap.String("connection_id", cl.id))

	// Get request context for propagation
	reqCtx := c.Request.Context()

	// Send welcome message
	cl.send(map[string]interface{}{
		"type":          "system",
		"message":       "Connected to NumServe",
		"connection_id": cl.id,
		"timestamp":     time.Now().Unix(),
	})

	// Listen for messages
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read error", zap.Error(err))
			}
			break
		}

		var msg types.WSMessage
		if err := sonic.Unmarshal(data, &msg); err != nil {
			h.sendError(cl, "", "malformed message")
			continue
		}

		h.metrics.RecordWSMessage("in", msg.Type)

		switch msg.Type {
		case "execute":
			h.handleExecute(cl, msg, reqCtx)
		case "services":
			h.handleServices(cl)
		case "ping":
			h.sendFrame(cl, "pong", map[string]interface{}{"type": "pong"})
		default:
			h.sendError(cl, msg.ID, "unknown message type")
		}
	}

	h.logger.Info("websocket disconnected", zap.String("connection_id", cl.id))
}

func (h *Handler) handleExecute(cl *client, msg types.WSMessage, reqCtx context.Context) {
	if err := utils.ValidateToolID(msg.ToolID, "tool_id", true); err != nil {
		h.sendError(cl, msg.ID, err.Error())
		return
	}

	if err := utils.ValidateParams(msg.Params); err != nil {
		h.sendError(cl, msg.ID, err.Error())
		return
	}

	// Bound evaluation time like the HTTP execute endpoint
	timeout := time.Duration(h.cfg.Eval.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(reqCtx, timeout)
	defer cancel()

	reqID := id.NewRequestID().String()
	appCtx := &types.Context{
		RequestID: &reqID,
		ClientID:  &cl.id,
	}

	svc, tool := splitToolID(msg.ToolID)
	timer := monitoring.NewTimer(h.metrics, svc, tool)

	result, err := h.registry.Execute(ctx, msg.ToolID, msg.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		h.sendError(cl, msg.ID, err.Error())
		return
	}

	if result.Success {
		timer.Stop("success")
		if converged, ok := result.Data["converged"].(bool); ok && !converged {
			h.metrics.RecordNonConverged(svc, tool)
		}
	} else {
		timer.Stop("failure")
	}

	frame := map[string]interface{}{
		"type":      "result",
		"tool_id":   msg.ToolID,
		"result":    result,
		"timestamp": time.Now().Unix(),
	}
	if msg.ID != "" {
		frame["id"] = msg.ID
	}

	h.sendFrame(cl, "result", frame)
}

func (h *Handler) handleServices(cl *client) {
	h.sendFrame(cl, "services", map[string]interface{}{
		"type":      "services",
		"services":  h.registry.List(nil),
		"timestamp": time.Now().Unix(),
	})
}

func (h *Handler) sendFrame(cl *client, msgType string, frame map[string]interface{}) {
	if err := cl.send(frame); err != nil {
		h.logger.Warn("websocket write failed",
			zap.String("connection_id", cl.id),
			zap.Error(err),
		)
		return
	}
	h.metrics.RecordWSMessage("out", msgType)
}

func (h *Handler) sendError(cl *client, msgID, message string) {
	frame := map[string]interface{}{
		"type":      "error",
		"message":   message,
		"timestamp": time.Now().Unix(),
	}
	if msgID != "" {
		frame["id"] = msgID
	}

	h.sendFrame(cl, "error", frame)
}

func splitToolID(toolID string) (svc, tool string) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
