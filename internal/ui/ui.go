package ui

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/drujensen/agenthub/internal/domain/services"

	_ "github.com/drujensen/agenthub/internal/api"
	apicontrollers "github.com/drujensen/agenthub/internal/api/controllers"
	uicontrollers "github.com/drujensen/agenthub/internal/ui/controllers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"go.uber.org/zap"
)

//go:embed static/* templates/*
var embeddedFiles embed.FS

const shutdownTimeout = 5 * time.Second

type UI struct {
	chatService      services.ChatService
	agentService     services.AgentService
	analyticsService services.AnalyticsService
	addr             string
	logger           *zap.Logger
	hub              *Hub
}

func NewUI(chatService services.ChatService, agentService services.AgentService, analyticsService services.AnalyticsService, addr string, logger *zap.Logger) *UI {
	return &UI{
		chatService:      chatService,
		agentService:     agentService,
		analyticsService: analyticsService,
		addr:             addr,
		logger:           logger,
		hub:              NewHub(logger),
	}
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcMap()).ParseFS(embeddedFiles, "templates/*.html")
}

// Handler wires the dashboard pages, the REST API, websockets and swagger
// docs onto a fresh echo instance.
func (u *UI) Handler() (*echo.Echo, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	homeController := uicontrollers.NewHomeController(u.logger, tmpl, u.agentService)
	consoleController := uicontrollers.NewConsoleController(u.logger, tmpl, u.agentService, u.analyticsService)
	chatController := uicontrollers.NewChatController(u.logger, tmpl, u.chatService, u.agentService)

	apiAgentController := apicontrollers.NewAgentController(u.logger, u.agentService, u.analyticsService)
	apiSessionController := apicontrollers.NewSessionController(u.logger, u.chatService)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("logger", u.logger)
			return next(c)
		}
	})

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Content-Language", "en")
			return next(c)
		}
	})

	// serve static files from embedded
	e.GET("/static/*", u.staticHandler)

	homeController.RegisterRoutes(e)
	consoleController.RegisterRoutes(e)
	chatController.RegisterRoutes(e)

	// WebSocket endpoints for real-time updates
	e.GET("/ws/sessions/:id", u.sessionSocket)
	e.GET("/ws/console", func(c echo.Context) error {
		return u.hub.Serve(c, consoleTopic)
	})

	api := e.Group("/api")
	apiAgentController.RegisterRoutes(api)
	apiSessionController.RegisterRoutes(api)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// Run serves until ctx is canceled, then shuts the server down gracefully.
func (u *UI) Run(ctx context.Context) error {
	e, err := u.Handler()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		u.logger.Info("Starting HTTP server", zap.String("addr", u.addr))
		if err := e.Start(u.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	u.logger.Info("Shutting down HTTP server")
	return e.Shutdown(shutdownCtx)
}

// Close disconnects websocket clients and stops event delivery.
func (u *UI) Close() {
	u.hub.Close()
}

func (u *UI) sessionSocket(c echo.Context) error {
	sess, err := u.chatService.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Session not found")
	}
	return u.hub.Serve(c, sessionTopic(sess.ID()))
}

func (u *UI) staticHandler(c echo.Context) error {
	path := c.Param("*")
	filePath := "static/" + path
	file, err := embeddedFiles.Open(filePath)
	if err != nil {
		u.logger.Debug("Static file not found", zap.String("path", filePath))
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}
	defer file.Close()

	// Determine MIME type based on file extension
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	content, err := io.ReadAll(file)
	if err != nil {
		u.logger.Error("Failed to read static file", zap.String("path", filePath), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read file")
	}

	return c.Blob(http.StatusOK, mimeType, content)
}
