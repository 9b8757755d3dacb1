package uicontrollers

import (
	"html/template"
	"net/http"

	"github.com/drujensen/agenthub/internal/domain/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HomeController struct {
	logger       *zap.Logger
	tmpl         *template.Template
	agentService services.AgentService
}

func NewHomeController(logger *zap.Logger, tmpl *template.Template, agentService services.AgentService) *HomeController {
	return &HomeController{
		logger:       logger,
		tmpl:         tmpl,
		agentService: agentService,
	}
}

func (c *HomeController) RegisterRoutes(e *echo.Echo) {
	e.GET("/", c.HomeHandler)
}

func (c *HomeController) HomeHandler(eCtx echo.Context) error {
	summary, err := c.agentService.Summary(eCtx.Request().Context())
	if err != nil {
		c.logger.Error("Failed to load agent summary", zap.Error(err))
		return eCtx.String(http.StatusInternalServerError, "Failed to load agents")
	}

	data := map[string]interface{}{
		"Title":           "AgentHub",
		"ContentTemplate": "home_content",
		"Summary":         summary,
	}
	return render(eCtx, c.tmpl, c.logger, http.StatusOK, "layout", data)
}
