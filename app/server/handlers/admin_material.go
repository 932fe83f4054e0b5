package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"material-site/app/server/metrics"
	"material-site/app/server/store"
	"net/http"
)

func (a *App) MaterialCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	user := a.currentUser(c)
	if user == nil {
		return a.redirectToLogin(c)
	}

	// 绑定请求体
	var req AddMaterialForm
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 验证
	if err := req.Validate(); err != nil {
		return a.renderError(c, http.StatusBadRequest, err.Error())
	}

	// 创建
	material, err := store.CreateMaterial(a.tx(c), req.Title, req.Content, req.Category)
	if err != nil {
		a.l.Error("failed to create material", zap.String("title", req.Title), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.m.Mutation(metrics.OpCreate)
	a.l.Info("material created", zap.Uint("id", material.ID), zap.String("by", user.Username))

	return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

func (a *App) MaterialDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	user := a.currentUser(c)
	if user == nil {
		return a.redirectToLogin(c)
	}

	var req MaterialIDParam
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 删除
	deleted, err := store.DeleteMaterial(a.tx(c), req.ID)
	if err != nil {
		a.l.Error("failed to delete material", zap.Uint("id", req.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if deleted != nil {
		a.evictMaterial(c, deleted.ID)
		a.m.Mutation(metrics.OpDelete)
		a.l.Info("material deleted", zap.Uint("id", deleted.ID), zap.String("by", user.Username))
	}

	return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}
