package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return a.renderError(c, statusCode, http.StatusText(statusCode))
}

func (a *App) renderError(c echo.Context, statusCode int, message string) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(statusCode)
	}

	return c.Render(statusCode, "error.html", &errorPage{
		Page:    Page{Title: http.StatusText(statusCode)},
		Code:    statusCode,
		Message: message,
	})
}

// HTTPErrorHandler 处理路由不存在、绑定失败等由 echo 返回的错误
func (a *App) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	statusCode := http.StatusInternalServerError
	message := http.StatusText(statusCode)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		statusCode = he.Code
		message = http.StatusText(statusCode)
		if m, ok := he.Message.(string); ok && statusCode < http.StatusInternalServerError {
			message = m
		}
	}

	if statusCode >= http.StatusInternalServerError {
		a.l.Error("request failed", zap.String("URI", c.Request().RequestURI), zap.Error(err))
	}

	if err = a.renderError(c, statusCode, message); err != nil {
		a.l.Error("failed to render error page", zap.Error(err))
	}
}
