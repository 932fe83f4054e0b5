package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"material-site/app/server/store"
	"net/http"
)

func (a *App) MaterialList(c echo.Context) error {
	// 绑定查询参数
	var req ListMaterialsQuery
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind query", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	skip, limit := a.parsePagination(req.Skip, req.Limit)

	materials, err := store.ListMaterials(a.tx(c), skip, limit)
	if err != nil {
		a.l.Error("failed to get material list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Render(http.StatusOK, "index.html", &listPage{
		Page:      Page{User: a.currentUser(c)},
		Materials: materials,
	})
}

func (a *App) MaterialDetail(c echo.Context) error {
	var req MaterialIDParam
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &req); err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	material, err := a.getMaterial(c, req.ID)
	if err != nil {
		a.l.Error("failed to get material", zap.Uint("id", req.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if material == nil {
		return a.renderError(c, http.StatusNotFound, "Material not found")
	}

	// 用于 "其他材料" 部分
	materials, err := store.ListMaterials(a.tx(c), 0, 0)
	if err != nil {
		a.l.Error("failed to get material list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Render(http.StatusOK, "material.html", &detailPage{
		Page:      Page{Title: material.Title, User: a.currentUser(c)},
		Material:  material,
		Materials: materials,
	})
}
