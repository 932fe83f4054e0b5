package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"material-site/app/server/middlewares"
	"material-site/app/server/models"
	"material-site/app/server/store"
)

// tx 返回当前请求的数据库连接
func (a *App) tx(c echo.Context) *gorm.DB {
	if tx := middlewares.DB(c); tx != nil {
		return tx
	}

	return a.db.WithContext(c.Request().Context())
}

// currentUser 返回当前登录的用户；令牌无效、用户不存在或已停用时都视为匿名，返回 nil
func (a *App) currentUser(c echo.Context) *models.User {
	subject := middlewares.Subject(c)
	if subject == "" {
		return nil
	}

	user, err := store.FindUserByName(a.tx(c), subject)
	if err != nil {
		a.l.Error("failed to find session user", zap.String("username", subject), zap.Error(err))
		return nil
	}

	if user == nil || !user.IsActive {
		return nil
	}

	return user
}
