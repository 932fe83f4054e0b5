package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"material-site/app/server/constants"
	"material-site/app/server/store"
	"net/http"
	"time"
)

const loginFailedMessage = "Invalid username or password"

func (a *App) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", &loginPage{
		Page: Page{Title: "Sign in", User: a.currentUser(c)},
	})
}

func (a *App) loginFailed(c echo.Context, username string, message string) error {
	return c.Render(http.StatusOK, "login.html", &loginPage{
		Page:     Page{Title: "Sign in"},
		Error:    message,
		Username: username,
	})
}

func (a *App) AuthLogin(c echo.Context) error {
	// 绑定请求体
	var req LoginForm
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind login form", zap.Error(err))
		return a.loginFailed(c, "", loginFailedMessage)
	}

	// 没有写用户名或密码
	if err := req.Validate(); err != nil {
		return a.loginFailed(c, req.Username, "Username and password are required")
	}

	user, err := store.FindUserByName(a.tx(c), req.Username)
	if err != nil {
		a.l.Error("failed to find user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 用户不存在、已停用或密码不一致
	if user == nil || !user.IsActive || !a.h.Verify(req.Password, user.PasswordHash) {
		a.m.Login(false)
		a.l.Info("login failed", zap.String("username", req.Username))
		return a.loginFailed(c, req.Username, loginFailedMessage)
	}

	// 签出 JWT
	token, expires, err := a.jwt.Issue(user.Username, constants.AuthTokenDuration)
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   a.cs,
		SameSite: http.SameSiteLaxMode,
	})

	a.m.Login(true)
	a.l.Info("login succeeded", zap.String("username", user.Username))

	return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// AuthLogout 无论是否已登录都会清除 cookie
func (a *App) AuthLogout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cs,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusSeeOther, "/")
}
