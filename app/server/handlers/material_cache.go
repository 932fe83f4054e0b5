package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"material-site/app/server/constants"
	"material-site/app/server/models"
	"material-site/app/server/store"
)

// getMaterial 先查询缓存，未命中时从数据库读取并加入缓存；找不到时返回 nil, nil
func (a *App) getMaterial(c echo.Context, id uint) (*models.Material, error) {
	rctx := c.Request().Context()
	cacheKey := fmt.Sprintf(constants.CacheKeyMaterial, id)

	// 查询缓存
	if a.rdb != nil {
		if cacheBytes, err := a.rdb.Get(rctx, cacheKey).Bytes(); err != nil {
			if !errors.Is(err, redis.Nil) {
				a.l.Error("failed to query cache for material", zap.Uint("id", id), zap.Error(err))
			}
		} else if string(cacheBytes) == constants.CacheMaterialTombstone {
			// 已被删除
			return nil, nil
		} else {
			var material models.Material
			if err = json.Unmarshal(cacheBytes, &material); err != nil {
				a.l.Error("failed to unmarshal material", zap.Uint("id", id), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
				// 可能是无效的缓存，清理掉
				a.rdb.Del(rctx, cacheKey)
			} else {
				return &material, nil
			}
		}
	}

	// 查询数据库
	material, err := store.GetMaterial(a.tx(c), id)
	if err != nil || material == nil {
		return material, err
	}

	a.cacheMaterial(c, material)

	return material, nil
}

// cacheMaterial 只在键不存在时写入，不会覆盖删除时留下的标记
func (a *App) cacheMaterial(c echo.Context, material *models.Material) {
	if a.rdb == nil {
		return
	}

	cacheKey := fmt.Sprintf(constants.CacheKeyMaterial, material.ID)
	if cacheBytes, err := json.Marshal(material); err != nil {
		a.l.Error("failed to marshal material", zap.Uint("id", material.ID), zap.Error(err))
	} else if err = a.rdb.SetNX(c.Request().Context(), cacheKey, cacheBytes, constants.CacheExpireMaterial).Err(); err != nil {
		a.l.Error("failed to cache material", zap.Uint("id", material.ID), zap.Error(err))
	}
}

// evictMaterial 用删除标记覆盖缓存，删除之前读到旧数据的请求无法再把它写回
func (a *App) evictMaterial(c echo.Context, id uint) {
	if a.rdb == nil {
		return
	}

	cacheKey := fmt.Sprintf(constants.CacheKeyMaterial, id)
	if err := a.rdb.Set(c.Request().Context(), cacheKey, constants.CacheMaterialTombstone, constants.CacheExpireMaterial).Err(); err != nil {
		a.l.Error("failed to evict material cache", zap.Uint("id", id), zap.Error(err))
	}
}
