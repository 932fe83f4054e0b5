package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"material-site/app/server/middlewares"
	"material-site/app/server/views"
	"time"
)

// Echo 准备 echo 服务：中间件、模板、静态文件与全部路由
func (a *App) Echo(gatherer prometheus.Gatherer) (*echo.Echo, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("init views: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = a.HTTPErrorHandler

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			a.l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middlewares.Session(a.jwt, a.l))

	// 只有读写数据的路由占用专用连接
	scoped := middlewares.DBScope(a.db)

	e.StaticFS("/static", views.Static())
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/healthz", a.HealthCheck)

	// 公开页面
	e.GET("/", a.MaterialList, scoped)
	e.GET("/material/:id", a.MaterialDetail, scoped)

	// 管理页面
	admin := e.Group("/admin")
	admin.GET("/login", a.LoginPage, scoped)
	admin.POST("/login", a.AuthLogin, scoped)
	admin.GET("/logout", a.AuthLogout)
	admin.GET("/dashboard", a.Dashboard, scoped)
	admin.POST("/add-material", a.MaterialCreate, scoped)
	admin.POST("/delete-material/:id", a.MaterialDelete, scoped)

	e.Server.ReadHeaderTimeout = 10 * time.Second

	return e, nil
}
