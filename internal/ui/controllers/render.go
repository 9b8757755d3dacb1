package uicontrollers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// render executes name into a buffer so a failing template never leaves a
// half written page behind.
func render(eCtx echo.Context, tmpl *template.Template, logger *zap.Logger, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error("Failed to render template", zap.String("template", name), zap.Error(err))
		return eCtx.String(http.StatusInternalServerError, "Internal server error")
	}
	return eCtx.HTMLBlob(status, buf.Bytes())
}
