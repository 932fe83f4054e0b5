package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// HealthCheck 直接使用连接池，数据库不可用时返回 503
func (a *App) HealthCheck(c echo.Context) error {
	if err := a.db.WithContext(c.Request().Context()).Exec("SELECT 1").Error; err != nil {
		a.l.Error("health check failed", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
