package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/NumServe/internal/infrastructure/config"
	"github.com/GriffinCanCode/NumServe/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/NumServe/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/NumServe/internal/service"
	"github.com/GriffinCanCode/NumServe/internal/shared/id"
	"github.com/GriffinCanCode/NumServe/internal/shared/utils"
	"github.com/GriffinCanCode/NumServe/internal/types"
)

// Version reported by the root endpoint
const Version = "0.1.0"

// Discovery result bounds
const (
	DefaultDiscoverLimit = 5
	MaxDiscoverLimit     = 20
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	cfg      *config.Config
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, cfg *config.Config) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		cfg:      cfg,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "NumServe",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":              "healthy",
		"registry":            h.registry.Stats(),
		"metrics":             h.metrics.Snapshot(),
		"avg_request_seconds": h.metrics.AverageRequestSeconds(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	// Validate category if provided
	if categoryStr != "" {
		if err := utils.ValidateCategory(categoryStr, false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// DiscoverServices scores services against a free-form query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateQuery(req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultDiscoverLimit
	}
	if limit > MaxDiscoverLimit {
		limit = MaxDiscoverLimit
	}

	services := h.registry.Discover(req.Query, limit)

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": services,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validate tool ID
	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validate params size and nesting
	if err := utils.ValidateParams(req.Params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Bound evaluation time; expressions are untrusted input
	timeout := time.Duration(h.cfg.Eval.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	appCtx := h.requestContext(c)

	svc, tool := splitToolID(req.ToolID)
	timer := monitoring.NewTimer(h.metrics, svc, tool)

	result, err := h.registry.Execute(ctx, req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
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

	c.JSON(http.StatusOK, result)
}

// requestContext builds the execution context passed to providers
func (h *Handlers) requestContext(c *gin.Context) *types.Context {
	reqID := id.NewRequestID().String()
	appCtx := &types.Context{RequestID: &reqID}

	if traceID := tracing.GetTraceID(c.Request.Context()); traceID != "" {
		s := string(traceID)
		appCtx.TraceID = &s
	}

	return appCtx
}

func splitToolID(toolID string) (svc, tool string) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
