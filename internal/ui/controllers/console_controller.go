package uicontrollers

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	apicontrollers "github.com/drujensen/agenthub/internal/api/controllers"
	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/errs"
	"github.com/drujensen/agenthub/internal/domain/services"
	"github.com/drujensen/agenthub/internal/domain/views"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var consoleTemplates = map[views.ConsoleView]string{
	views.ConsoleDashboard: "console_dashboard_content",
	views.ConsoleDetails:   "console_details_content",
	views.ConsoleCreator:   "console_creator_content",
}

// ConsoleController serves the developer console. Every page is reached
// through a console view transition.
type ConsoleController struct {
	logger           *zap.Logger
	tmpl             *template.Template
	agentService     services.AgentService
	analyticsService services.AnalyticsService
}

func NewConsoleController(logger *zap.Logger, tmpl *template.Template, agentService services.AgentService, analyticsService services.AnalyticsService) *ConsoleController {
	return &ConsoleController{
		logger:           logger,
		tmpl:             tmpl,
		agentService:     agentService,
		analyticsService: analyticsService,
	}
}

func (c *ConsoleController) RegisterRoutes(e *echo.Echo) {
	e.GET("/console", c.DashboardHandler)
	e.POST("/console/upload", c.UploadHandler)
	e.GET("/console/agents/new", c.CreatorHandler)
	e.POST("/console/agents", c.CreateAgentHandler)
	e.GET("/console/agents/:id", c.DetailsHandler)
	e.POST("/console/agents/:id", c.UpdateAgentHandler)
	e.POST("/console/agents/:id/code", c.UploadCodeHandler)
	e.POST("/console/agents/:id/delete", c.DeleteAgentHandler)
}

func (c *ConsoleController) DashboardHandler(eCtx echo.Context) error {
	return c.dashboard(eCtx, http.StatusOK, eCtx.QueryParam("notice"))
}

func (c *ConsoleController) dashboard(eCtx echo.Context, status int, notice string) error {
	ctx := eCtx.Request().Context()

	agents, err := c.agentService.ListAgents(ctx)
	if err != nil {
		c.logger.Error("Failed to list agents", zap.Error(err))
		return eCtx.String(http.StatusInternalServerError, "Failed to load agents")
	}
	summary, err := c.agentService.Summary(ctx)
	if err != nil {
		c.logger.Error("Failed to summarize agents", zap.Error(err))
		return eCtx.String(http.StatusInternalServerError, "Failed to load agents")
	}
	analytics, err := c.analyticsService.PlatformAnalytics(ctx)
	if err != nil {
		c.logger.Error("Failed to load analytics", zap.Error(err))
		return eCtx.String(http.StatusInternalServerError, "Failed to load analytics")
	}

	return c.show(eCtx, status, views.ConsoleDashboard, map[string]interface{}{
		"Title":     "AgentHub - Developer Console",
		"Agents":    agents,
		"Summary":   summary,
		"Analytics": analytics,
		"Notice":    notice,
	})
}

func (c *ConsoleController) CreatorHandler(eCtx echo.Context) error {
	return c.creator(eCtx, http.StatusOK, &entities.Agent{Status: entities.AgentStatusPending}, "")
}

func (c *ConsoleController) creator(eCtx echo.Context, status int, draft *entities.Agent, formErr string) error {
	view, err := views.ConsoleDashboard.Next(views.OpenCreator)
	if err != nil {
		return eCtx.String(http.StatusBadRequest, err.Error())
	}

	return c.show(eCtx, status, view, map[string]interface{}{
		"Title":    "AgentHub - Create Agent",
		"Draft":    draft,
		"Error":    formErr,
		"Statuses": []entities.AgentStatus{entities.AgentStatusPending, entities.AgentStatusActive, entities.AgentStatusInactive},
	})
}

func (c *ConsoleController) CreateAgentHandler(eCtx echo.Context) error {
	draft := agentFromForm(eCtx)

	var files []entities.Attachment
	if form, err := eCtx.MultipartForm(); err == nil {
		files = apicontrollers.Attachments(form, "files")
	}

	agent, err := c.agentService.CreateAgent(eCtx.Request().Context(), draft, files)
	if err != nil {
		switch err.(type) {
		case *errs.ValidationError:
			return c.creator(eCtx, http.StatusUnprocessableEntity, draft, err.Error())
		default:
			c.logger.Error("Failed to create agent", zap.Error(err))
			return eCtx.String(http.StatusInternalServerError, "Failed to create agent")
		}
	}

	if _, err := views.ConsoleCreator.Next(views.AgentCreated); err != nil {
		return eCtx.String(http.StatusBadRequest, err.Error())
	}
	return eCtx.Redirect(http.StatusSeeOther, "/console/agents/"+agent.ID+"?notice=created")
}

func (c *ConsoleController) DetailsHandler(eCtx echo.Context) error {
	return c.details(eCtx, http.StatusOK, eCtx.Param("id"), noticeText(eCtx.QueryParam("notice")), "")
}

func (c *ConsoleController) details(eCtx echo.Context, status int, id, notice, formErr string) error {
	ctx := eCtx.Request().Context()

	agent, err := c.agentService.GetAgent(ctx, id)
	if err != nil {
		switch err.(type) {
		case *errs.NotFoundError, *errs.ValidationError:
			return eCtx.Redirect(http.StatusFound, "/console")
		default:
			c.logger.Error("Failed to load agent", zap.Error(err))
			return eCtx.String(http.StatusInternalServerError, "Failed to load agent")
		}
	}

	analytics, err := c.analyticsService.AgentAnalytics(ctx, id)
	if err != nil {
		c.logger.Error("Failed to load agent analytics", zap.Error(err))
		return eCtx.String(http.StatusInternalServerError, "Failed to load analytics")
	}

	view, err := views.ConsoleDashboard.Next(views.OpenDetails)
	if err != nil {
		return eCtx.String(http.StatusBadRequest, err.Error())
	}

	return c.show(eCtx, status, view, map[string]interface{}{
		"Title":     "AgentHub - " + agent.Name,
		"Agent":     agent,
		"Analytics": analytics,
		"Notice":    notice,
		"Error":     formErr,
		"Statuses":  []entities.AgentStatus{entities.AgentStatusActive, entities.AgentStatusInactive, entities.AgentStatusPending, entities.AgentStatusDisabled},
	})
}

func (c *ConsoleController) UpdateAgentHandler(eCtx echo.Context) error {
	id := eCtx.Param("id")
	agent := agentFromForm(eCtx)
	agent.ID = id

	if err := c.agentService.UpdateAgent(eCtx.Request().Context(), agent); err != nil {
		switch err.(type) {
		case *errs.ValidationError:
			return c.details(eCtx, http.StatusUnprocessableEntity, id, "", err.Error())
		case *errs.NotFoundError:
			return eCtx.Redirect(http.StatusSeeOther, "/console")
		default:
			c.logger.Error("Failed to update agent", zap.Error(err))
			return eCtx.String(http.StatusInternalServerError, "Failed to update agent")
		}
	}

	if _, err := views.ConsoleDetails.Next(views.AgentSaved); err != nil {
		return eCtx.String(http.StatusBadRequest, err.Error())
	}
	return eCtx.Redirect(http.StatusSeeOther, "/console/agents/"+id+"?notice=saved")
}

func (c *ConsoleController) UploadCodeHandler(eCtx echo.Context) error {
	id := eCtx.Param("id")

	var files []entities.Attachment
	if form, err := eCtx.MultipartForm(); err == nil {
		files = apicontrollers.Attachments(form, "file")
	}
	if len(files) == 0 {
		return c.details(eCtx, http.StatusUnprocessableEntity, id, "", "Choose a code file to upload")
	}

	if _, err := c.agentService.UploadAgentCode(eCtx.Request().Context(), id, files[0]); err != nil {
		switch err.(type) {
		case *errs.NotFoundError:
			return eCtx.Redirect(http.StatusSeeOther, "/console")
		default:
			c.logger.Error("Failed to upload agent code", zap.Error(err))
			return eCtx.String(http.StatusInternalServerError, "Failed to upload code")
		}
	}

	return eCtx.Redirect(http.StatusSeeOther, "/console/agents/"+id+"?notice=uploaded")
}

func (c *ConsoleController) DeleteAgentHandler(eCtx echo.Context) error {
	if err := c.agentService.DeleteAgent(eCtx.Request().Context(), eCtx.Param("id")); err != nil {
		switch err.(type) {
		case *errs.NotFoundError:
		default:
			c.logger.Error("Failed to delete agent", zap.Error(err))
			return eCtx.String(http.StatusInternalServerError, "Failed to delete agent")
		}
	}

	if _, err := views.ConsoleDetails.Next(views.Back); err != nil {
		return eCtx.String(http.StatusBadRequest, err.Error())
	}
	return eCtx.Redirect(http.StatusSeeOther, "/console")
}

func (c *ConsoleController) UploadHandler(eCtx echo.Context) error {
	var files []entities.Attachment
	if form, err := eCtx.MultipartForm(); err == nil {
		files = apicontrollers.Attachments(form, "files")
	}

	_, receipt, err := c.agentService.UploadAgentFiles(eCtx.Request().Context(), files)
	if err != nil {
		switch err.(type) {
		case *errs.ValidationError:
			return c.dashboard(eCtx, http.StatusUnprocessableEntity, "Choose at least one file to upload")
		default:
			c.logger.Error("Failed to upload agent files", zap.Error(err))
			return eCtx.String(http.StatusInternalServerError, "Failed to upload files")
		}
	}

	return c.dashboard(eCtx, http.StatusOK, receipt.Summary())
}

func (c *ConsoleController) show(eCtx echo.Context, status int, view views.ConsoleView, data map[string]interface{}) error {
	name, ok := consoleTemplates[view]
	if !ok {
		return eCtx.String(http.StatusInternalServerError, fmt.Sprintf("no template for %s view", view))
	}
	data["ContentTemplate"] = name
	data["View"] = view.String()
	return render(eCtx, c.tmpl, c.logger, status, "layout", data)
}

func agentFromForm(eCtx echo.Context) *entities.Agent {
	return &entities.Agent{
		Name:        strings.TrimSpace(eCtx.FormValue("name")),
		Description: strings.TrimSpace(eCtx.FormValue("description")),
		Version:     strings.TrimSpace(eCtx.FormValue("version")),
		Status:      entities.AgentStatus(eCtx.FormValue("status")),
		Category:    strings.TrimSpace(eCtx.FormValue("category")),
		Author:      strings.TrimSpace(eCtx.FormValue("author")),
	}
}

func noticeText(code string) string {
	switch code {
	case "created":
		return "Agent created successfully"
	case "saved":
		return "Settings saved"
	case "uploaded":
		return "Code uploaded successfully"
	}
	return ""
}
