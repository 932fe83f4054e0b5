package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"material-site/app/server/store"
	"net/http"
)

func (a *App) redirectToLogin(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}

func (a *App) Dashboard(c echo.Context) error {
	// 抓取 user 信息（认证）
	user := a.currentUser(c)
	if user == nil {
		return a.redirectToLogin(c)
	}

	tx := a.tx(c)

	materials, err := store.ListMaterials(tx, 0, 0)
	if err != nil {
		a.l.Error("failed to get material list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	total, err := store.CountMaterials(tx)
	if err != nil {
		a.l.Error("failed to count material", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Render(http.StatusOK, "admin.html", &dashboardPage{
		Page:      Page{Title: "Dashboard", User: user},
		Materials: materials,
		Total:     total,
	})
}
