package middlewares

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"material-site/app/server/constants"
)

// DBScope 为每个请求取出一个专用连接，请求结束（包括出错）时归还
func DBScope(db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rctx := c.Request().Context()

			return db.WithContext(rctx).Connection(func(tx *gorm.DB) error {
				c.Set(constants.ContextKeyDB, tx)
				defer c.Set(constants.ContextKeyDB, nil)

				return next(c)
			})
		}
	}
}

// DB 取出当前请求的数据库连接，没有使用 DBScope 时返回 nil
func DB(c echo.Context) *gorm.DB {
	tx, _ := c.Get(constants.ContextKeyDB).(*gorm.DB)
	return tx
}
