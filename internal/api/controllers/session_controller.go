package apicontrollers

import (
	"net/http"

	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/services"
	"github.com/drujensen/agenthub/internal/markdown"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SessionController struct {
	logger      *zap.Logger
	chatService services.ChatService
}

func NewSessionController(logger *zap.Logger, chatService services.ChatService) *SessionController {
	return &SessionController{
		logger:      logger,
		chatService: chatService,
	}
}

type CreateSessionRequest struct {
	AgentID string `json:"agent_id"`
}

type SelectAgentRequest struct {
	AgentID string `json:"agent_id"`
}

type SendMessageRequest struct {
	Text        string                `json:"text"`
	Attachments []entities.Attachment `json:"attachments"`
	Voice       bool                  `json:"voice"`
}

type InfoResponse struct {
	Available bool   `json:"available"`
	Markdown  string `json:"markdown,omitempty"`
	HTML      string `json:"html,omitempty"`
}

// RegisterRoutes registers all session-related routes with Echo
func (c *SessionController) RegisterRoutes(e *echo.Group) {
	e.GET("/sessions", c.ListSessions)
	e.POST("/sessions", c.CreateSession)
	e.GET("/sessions/:id", c.GetSession)
	e.DELETE("/sessions/:id", c.DeleteSession)
	e.POST("/sessions/:id/messages", c.SendMessage)
	e.PUT("/sessions/:id/agent", c.SelectAgent)
	e.POST("/sessions/:id/reset", c.ResetSession)
	e.GET("/sessions/:id/info", c.GetInfo)
	e.GET("/quick-prompts", c.ListQuickPrompts)
}

// ListSessions godoc
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Success 200 {array} entities.Chat
// @Router /api/sessions [get]
func (c *SessionController) ListSessions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.chatService.ListSessions(ctx.Request().Context()))
}

// CreateSession godoc
// @Summary Start a chat session
// @Description Starts a session on the agent selection view, or with the given agent already selected.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest false "Initial agent"
// @Success 201 {object} entities.Chat
// @Failure 404 {object} map[string]interface{} "Agent not available"
// @Router /api/sessions [post]
func (c *SessionController) CreateSession(ctx echo.Context) error {
	var input CreateSessionRequest
	if err := ctx.Bind(&input); err != nil {
		return c.handleError(ctx, "Invalid request body", http.StatusBadRequest)
	}

	sess, err := c.chatService.CreateSession(ctx.Request().Context(), input.AgentID)
	if err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	return ctx.JSON(http.StatusCreated, sess.Snapshot())
}

// GetSession godoc
// @Summary Get a session snapshot
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} entities.Chat
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /api/sessions/{id} [get]
func (c *SessionController) GetSession(ctx echo.Context) error {
	sess, err := c.chatService.GetSession(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	return ctx.JSON(http.StatusOK, sess.Snapshot())
}

// DeleteSession godoc
// @Summary End a session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /api/sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx echo.Context) error {
	if err := c.chatService.DeleteSession(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendMessage godoc
// @Summary Submit a message
// @Description Appends the user message and schedules the agent reply. The reply arrives asynchronously.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SendMessageRequest true "Message"
// @Success 202 {object} entities.Message "User message accepted"
// @Failure 400 {object} map[string]interface{} "Empty message or no agent selected"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 409 {object} map[string]interface{} "A reply is already pending"
// @Router /api/sessions/{id}/messages [post]
func (c *SessionController) SendMessage(ctx echo.Context) error {
	var input SendMessageRequest
	if err := ctx.Bind(&input); err != nil {
		return c.handleError(ctx, "Invalid request body", http.StatusBadRequest)
	}

	attachments := input.Attachments
	if input.Voice {
		attachments = append(attachments, entities.VoiceRecording())
	}

	pending, err := c.chatService.SendMessage(ctx.Request().Context(), ctx.Param("id"), input.Text, attachments)
	if err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	return ctx.JSON(http.StatusAccepted, pending.Prompt())
}

// SelectAgent godoc
// @Summary Select an agent
// @Description Starts a new conversation with the agent. Any pending reply is discarded.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SelectAgentRequest true "Agent"
// @Success 200 {object} entities.Chat
// @Failure 404 {object} map[string]interface{} "Session or agent not found"
// @Router /api/sessions/{id}/agent [put]
func (c *SessionController) SelectAgent(ctx echo.Context) error {
	var input SelectAgentRequest
	if err := ctx.Bind(&input); err != nil {
		return c.handleError(ctx, "Invalid request body", http.StatusBadRequest)
	}

	chat, err := c.chatService.SelectAgent(ctx.Request().Context(), ctx.Param("id"), input.AgentID)
	if err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	return ctx.JSON(http.StatusOK, chat)
}

// ResetSession godoc
// @Summary Reset a session
// @Description Returns the session to agent selection and clears its log.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} entities.Chat
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /api/sessions/{id}/reset [post]
func (c *SessionController) ResetSession(ctx echo.Context) error {
	chat, err := c.chatService.ResetSession(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	return ctx.JSON(http.StatusOK, chat)
}

// GetInfo godoc
// @Summary Latest info panel
// @Description The info payload of the most recent agent message that carried one, raw and rendered.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} InfoResponse
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /api/sessions/{id}/info [get]
func (c *SessionController) GetInfo(ctx echo.Context) error {
	sess, err := c.chatService.GetSession(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.handleError(ctx, err.Error(), statusFor(err))
	}

	info, ok := sess.LatestInfo()
	if !ok {
		return ctx.JSON(http.StatusOK, InfoResponse{})
	}

	return ctx.JSON(http.StatusOK, InfoResponse{
		Available: true,
		Markdown:  info,
		HTML:      markdown.Render(info),
	})
}

// ListQuickPrompts godoc
// @Summary Quick prompts
// @Tags sessions
// @Produce json
// @Success 200 {array} entities.QuickPrompt
// @Router /api/quick-prompts [get]
func (c *SessionController) ListQuickPrompts(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.chatService.QuickPrompts())
}

// handleError handles errors and returns them in a consistent format
func (c *SessionController) handleError(ctx echo.Context, err interface{}, statusCode int) error {
	if statusCode >= http.StatusInternalServerError {
		c.logger.Error("Error occurred", zap.Any("error", err))
	} else {
		c.logger.Debug("Request rejected", zap.Any("error", err), zap.Int("status", statusCode))
	}
	return ctx.JSON(statusCode, map[string]interface{}{
		"error": err,
	})
}
