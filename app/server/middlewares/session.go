package middlewares

import (
	"errors"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"material-site/app/server/constants"
	"material-site/app/server/jwt"
)

// Session 从 cookie 中读取令牌并验证；缺失或无效的令牌都会被忽略，请求继续以匿名身份处理
func Session(j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + constants.AuthCookieName,
		ContextKey:  constants.ContextKeySubject,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return j.Verify(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, jwt.ErrInvalidToken) {
				l.Debug("ignore invalid session token", zap.Error(err))
			}
			return nil
		},
		ContinueOnIgnoredError: true,
	})
}

// Subject 返回已验证令牌中的用户名，匿名请求返回空字符串
func Subject(c echo.Context) string {
	subject, _ := c.Get(constants.ContextKeySubject).(string)
	return subject
}
