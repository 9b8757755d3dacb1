package apicontrollers

import (
	"net/http"

	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AgentController struct {
	logger           *zap.Logger
	agentService     services.AgentService
	analyticsService services.AnalyticsService
}

func NewAgentController(logger *zap.Logger, agentService services.AgentService, analyticsService services.AnalyticsService) *AgentController {
	return &AgentController{
		logger:           logger,
		agentService:     agentService,
		analyticsService: analyticsService,
	}
}

type CreateAgentRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Version     string                `json:"version"`
	Status      entities.AgentStatus  `json:"status"`
	Category    string                `json:"category"`
	Author      string                `json:"author"`
	Files       []entities.Attachment `json:"files"`
}

type UpdateAgentRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Version     string               `json:"version"`
	Status      entities.AgentStatus `json:"status"`
	Category    string               `json:"category"`
	Author      string               `json:"author"`
}

type UploadResponse struct {
	Agent   *entities.Agent         `json:"agent,omitempty"`
	Receipt *entities.UploadReceipt `json:"receipt"`
	Message string                  `json:"message"`
}

// RegisterRoutes registers all agent-related routes with Echo
func (c *AgentController) RegisterRoutes(e *echo.Group) {
	e.GET("/agents", c.ListAgents)
	e.GET("/agents/summary", c.GetSummary)
	e.GET("/agents/:id", c.GetAgent)
	e.POST("/agents", c.CreateAgent)
	e.PUT("/agents/:id", c.UpdateAgent)
	e.DELETE("/agents/:id", c.DeleteAgent)
	e.POST("/agents/upload", c.UploadAgentFiles)
	e.POST("/agents/:id/code", c.UploadAgentCode)
	e.GET("/agents/:id/analytics", c.GetAgentAnalytics)
	e.GET("/analytics", c.GetPlatformAnalytics)
}

// ListAgents godoc
// @Summary List agents
// @Description Lists the agent catalog. With chat=true only agents available for chat are returned.
// @Tags agents
// @Produce json
// @Param chat query bool false "Only chat-selectable agents"
// @Success 200 {array} entities.Agent "Successfully retrieved list of agents"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/agents [get]
func (c *AgentController) ListAgents(ctx echo.Context) error {
	var (
		agents []*entities.Agent
		err    error
	)
	if ctx.QueryParam("chat") == "true" {
		agents, err = c.agentService.ListChatAgents(ctx.Request().Context())
	} else {
		agents, err = c.agentService.ListAgents(ctx.Request().Context())
	}
	if err != nil {
		return c.handleError(ctx, err.Error(), http.StatusInternalServerError)
	}
	return ctx.JSON(http.StatusOK, agents)
}

// GetSummary godoc
// @Summary Agent summary
// @Description Total usage, active agents and total agents.
// @Tags agents
// @Produce json
// @Success 200 {object} entities.AgentSummary
// @Router /api/agents/summary [get]
func (c *AgentController) GetSummary(ctx echo.Context) error {
	summary, err := c.agentService.Summary(ctx.Request().Context())
	if err != nil {
		return c.handleError(ctx, err.Error(), http.StatusInternalServerError)
	}
	return ctx.JSON(http.StatusOK, summary)
}

// GetAgent godoc
// @Summary Get an agent by ID
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} entities.Agent
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Router /api/agents/{id} [get]
func (c *AgentController) GetAgent(ctx echo.Context) error {
	id := ctx.Param("id")
	if id == "" {
		return c.handleError(ctx, "Missing agent ID", http.StatusBadRequest)
	}

	agent, err := c.agentService.GetAgent(ctx.Request().Context(), id)
	if err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	return ctx.JSON(http.StatusOK, agent)
}

// CreateAgent godoc
// @Summary Create an agent
// @Description Registers a new agent. At least one file descriptor is required.
// @Tags agents
// @Accept json
// @Produce json
// @Param request body CreateAgentRequest true "Agent to create"
// @Success 201 {object} entities.Agent
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /api/agents [post]
func (c *AgentController) CreateAgent(ctx echo.Context) error {
	var input CreateAgentRequest
	if err := ctx.Bind(&input); err != nil {
		return c.handleError(ctx, "Invalid request body", http.StatusBadRequest)
	}

	draft := &entities.Agent{
		Name:        input.Name,
		Description: input.Description,
		Version:     input.Version,
		Status:      input.Status,
		Category:    input.Category,
		Author:      input.Author,
	}

	agent, err := c.agentService.CreateAgent(ctx.Request().Context(), draft, input.Files)
	if err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	return ctx.JSON(http.StatusCreated, agent)
}

// UpdateAgent godoc
// @Summary Update an agent
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param request body UpdateAgentRequest true "Agent settings"
// @Success 200 {object} entities.Agent
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Router /api/agents/{id} [put]
func (c *AgentController) UpdateAgent(ctx echo.Context) error {
	id := ctx.Param("id")
	if id == "" {
		return c.handleError(ctx, "Missing agent ID", http.StatusBadRequest)
	}

	var input UpdateAgentRequest
	if err := ctx.Bind(&input); err != nil {
		return c.handleError(ctx, "Invalid request body", http.StatusBadRequest)
	}

	agent := &entities.Agent{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Version:     input.Version,
		Status:      input.Status,
		Category:    input.Category,
		Author:      input.Author,
	}

	if err := c.agentService.UpdateAgent(ctx.Request().Context(), agent); err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	return ctx.JSON(http.StatusOK, agent)
}

// DeleteAgent godoc
// @Summary Delete an agent
// @Tags agents
// @Param id path string true "Agent ID"
// @Success 204
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Router /api/agents/{id} [delete]
func (c *AgentController) DeleteAgent(ctx echo.Context) error {
	id := ctx.Param("id")
	if id == "" {
		return c.handleError(ctx, "Missing agent ID", http.StatusBadRequest)
	}

	if err := c.agentService.DeleteAgent(ctx.Request().Context(), id); err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UploadAgentFiles godoc
// @Summary Upload agent files
// @Description Creates a pending agent from the uploaded files.
// @Tags agents
// @Accept mpfd
// @Produce json
// @Param files formData file true "Agent files"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} map[string]interface{} "No files"
// @Router /api/agents/upload [post]
func (c *AgentController) UploadAgentFiles(ctx echo.Context) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return c.handleError(ctx, "Invalid multipart form", http.StatusBadRequest)
	}

	agent, receipt, err := c.agentService.UploadAgentFiles(ctx.Request().Context(), Attachments(form, "files"))
	if err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	return ctx.JSON(http.StatusCreated, UploadResponse{Agent: agent, Receipt: receipt, Message: receipt.Summary()})
}

// UploadAgentCode godoc
// @Summary Upload a new code version
// @Tags agents
// @Accept mpfd
// @Produce json
// @Param id path string true "Agent ID"
// @Param file formData file true "Code archive"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} map[string]interface{} "No file"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Router /api/agents/{id}/code [post]
func (c *AgentController) UploadAgentCode(ctx echo.Context) error {
	id := ctx.Param("id")
	form, err := ctx.MultipartForm()
	if err != nil {
		return c.handleError(ctx, "Invalid multipart form", http.StatusBadRequest)
	}

	files := Attachments(form, "file")
	if len(files) == 0 {
		return c.handleError(ctx, "a code file is required", http.StatusBadRequest)
	}

	receipt, err := c.agentService.UploadAgentCode(ctx.Request().Context(), id, files[0])
	if err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	return ctx.JSON(http.StatusOK, UploadResponse{Receipt: receipt, Message: receipt.Summary()})
}

// GetAgentAnalytics godoc
// @Summary Agent analytics
// @Tags analytics
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} entities.Analytics
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Router /api/agents/{id}/analytics [get]
func (c *AgentController) GetAgentAnalytics(ctx echo.Context) error {
	analytics, err := c.analyticsService.AgentAnalytics(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}
	return ctx.JSON(http.StatusOK, analytics)
}

// GetPlatformAnalytics godoc
// @Summary Platform analytics
// @Tags analytics
// @Produce json
// @Success 200 {object} entities.Analytics
// @Router /api/analytics [get]
func (c *AgentController) GetPlatformAnalytics(ctx echo.Context) error {
	analytics, err := c.analyticsService.PlatformAnalytics(ctx.Request().Context())
	if err != nil {
		return c.handleError(ctx, err.Error(), http.StatusInternalServerError)
	}
	return ctx.JSON(http.StatusOK, analytics)
}

// handleError handles errors and returns them in a consistent format
func (c *AgentController) handleError(ctx echo.Context, err interface{}, statusCode int) error {
	if statusCode >= http.StatusInternalServerError {
		c.logger.Error("Error occurred", zap.Any("error", err))
	} else {
		c.logger.Debug("Request rejected", zap.Any("error", err), zap.Int("status", statusCode))
	}
	return ctx.JSON(statusCode, map[string]interface{}{
		"error": err,
	})
}
