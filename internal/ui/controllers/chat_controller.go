package uicontrollers

import (
	"html/template"
	"net/http"

	apicontrollers "github.com/drujensen/agenthub/internal/api/controllers"
	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/errs"
	"github.com/drujensen/agenthub/internal/domain/services"
	"github.com/drujensen/agenthub/internal/domain/views"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ChatController struct {
	logger       *zap.Logger
	tmpl         *template.Template
	chatService  services.ChatService
	agentService services.AgentService
}

func NewChatController(logger *zap.Logger, tmpl *template.Template, chatService services.ChatService, agentService services.AgentService) *ChatController {
	return &ChatController{
		logger:       logger,
		tmpl:         tmpl,
		chatService:  chatService,
		agentService: agentService,
	}
}

func (c *ChatController) RegisterRoutes(e *echo.Echo) {
	e.GET("/chat", c.SelectionHandler)
	e.POST("/chat/sessions", c.CreateSessionHandler)
	e.GET("/chat/sessions/:id", c.ChatHandler)
	e.GET("/chat/sessions/:id/messages", c.MessagesHandler)
	e.POST("/chat/sessions/:id/messages", c.SendMessageHandler)
	e.POST("/chat/sessions/:id/agent", c.SelectAgentHandler)
	e.POST("/chat/sessions/:id/reset", c.ResetHandler)
}

func (c *ChatController) SelectionHandler(eCtx echo.Context) error {
	return c.selection(eCtx, "")
}

func (c *ChatController) selection(eCtx echo.Context, sessionID string) error {
	agents, err := c.agentService.ListChatAgents(eCtx.Request().Context())
	if err != nil {
		c.logger.Error("Failed to list agents", zap.Error(err))
		return eCtx.String(http.StatusInternalServerError, "Failed to load agents")
	}

	action := "/chat/sessions"
	if sessionID != "" {
		action = "/chat/sessions/" + sessionID + "/agent"
	}

	data := map[string]interface{}{
		"Title":           "AgentHub - Choose an Agent",
		"ContentTemplate": "chat_selection_content",
		"Agents":          agents,
		"Action":          action,
		"SessionID":       sessionID,
	}
	return render(eCtx, c.tmpl, c.logger, http.StatusOK, "layout", data)
}

func (c *ChatController) CreateSessionHandler(eCtx echo.Context) error {
	sess, err := c.chatService.CreateSession(eCtx.Request().Context(), eCtx.FormValue("agent_id"))
	if err != nil {
		switch err.(type) {
		case *errs.NotFoundError, *errs.ValidationError:
			return eCtx.Redirect(http.StatusSeeOther, "/chat")
		default:
			c.logger.Error("Failed to create session", zap.Error(err))
			return eCtx.String(http.StatusInternalServerError, "Failed to start chat")
		}
	}

	return eCtx.Redirect(http.StatusSeeOther, "/chat/sessions/"+sess.ID())
}

func (c *ChatController) ChatHandler(eCtx echo.Context) error {
	sess, err := c.chatService.GetSession(eCtx.Request().Context(), eCtx.Param("id"))
	if err != nil {
		return eCtx.Redirect(http.StatusFound, "/chat")
	}

	if sess.View() == views.ChatSelection {
		return c.selection(eCtx, sess.ID())
	}

	chat := sess.Snapshot()
	data := map[string]interface{}{
		"Title":           "AgentHub - " + chat.AgentName,
		"ContentTemplate": "chat_content",
		"Chat":            chat,
		"Agent":           sess.Agent(),
		"QuickPrompts":    c.chatService.QuickPrompts(),
	}
	return render(eCtx, c.tmpl, c.logger, http.StatusOK, "layout", data)
}

// MessagesHandler renders the message list and info panel for in-place
// refreshes.
func (c *ChatController) MessagesHandler(eCtx echo.Context) error {
	sess, err := c.chatService.GetSession(eCtx.Request().Context(), eCtx.Param("id"))
	if err != nil {
		return eCtx.String(http.StatusNotFound, "Session not found")
	}

	return render(eCtx, c.tmpl, c.logger, http.StatusOK, "chat_messages_partial", map[string]interface{}{
		"Chat": sess.Snapshot(),
	})
}

// SendMessageHandler submits the form. Empty and busy submissions are
// ignored; the page simply reloads.
func (c *ChatController) SendMessageHandler(eCtx echo.Context) error {
	id := eCtx.Param("id")

	var attachments []entities.Attachment
	if form, err := eCtx.MultipartForm(); err == nil {
		attachments = apicontrollers.Attachments(form, "files")
	}
	if eCtx.FormValue("voice") != "" {
		attachments = append(attachments, entities.VoiceRecording())
	}

	if _, err := c.chatService.SendMessage(eCtx.Request().Context(), id, eCtx.FormValue("message"), attachments); err != nil {
		switch err.(type) {
		case *errs.ValidationError, *errs.BusyError:
			c.logger.Debug("Submission ignored", zap.String("session_id", id), zap.Error(err))
		case *errs.NotFoundError:
			return eCtx.Redirect(http.StatusSeeOther, "/chat")
		default:
			c.logger.Error("Failed to send message", zap.Error(err))
			return eCtx.String(http.StatusInternalServerError, "Failed to send message")
		}
	}

	return eCtx.Redirect(http.StatusSeeOther, "/chat/sessions/"+id)
}

func (c *ChatController) SelectAgentHandler(eCtx echo.Context) error {
	id := eCtx.Param("id")

	if _, err := c.chatService.SelectAgent(eCtx.Request().Context(), id, eCtx.FormValue("agent_id")); err != nil {
		switch err.(type) {
		case *errs.NotFoundError, *errs.ValidationError:
			c.logger.Debug("Agent selection rejected", zap.String("session_id", id), zap.Error(err))
		default:
			c.logger.Error("Failed to select agent", zap.Error(err))
			return eCtx.String(http.StatusInternalServerError, "Failed to select agent")
		}
	}

	return eCtx.Redirect(http.StatusSeeOther, "/chat/sessions/"+id)
}

func (c *ChatController) ResetHandler(eCtx echo.Context) error {
	id := eCtx.Param("id")

	if _, err := c.chatService.ResetSession(eCtx.Request().Context(), id); err != nil {
		return eCtx.Redirect(http.StatusSeeOther, "/chat")
	}

	return eCtx.Redirect(http.StatusSeeOther, "/chat/sessions/"+id)
}
