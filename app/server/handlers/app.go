package handlers

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"material-site/app/server/jwt"
	"material-site/app/server/metrics"
	"material-site/app/server/password"
)

type App struct {
	l   *zap.Logger      // 日志
	db  *gorm.DB         // 数据库
	rdb *redis.Client    // Redis ，为 nil 时不使用缓存
	jwt *jwt.JWT         // JWT ，用于无状态验证
	h   *password.Hasher // 密码 hash
	m   *metrics.Metrics // 指标
	cs  bool             // 会话 cookie 是否只在 HTTPS 下发送 (CookieSecure)
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, h *password.Hasher, m *metrics.Metrics, cookieSecure bool) *App {
	return &App{
		l:   l,
		db:  db,
		rdb: rdb,
		jwt: j,
		h:   h,
		m:   m,
		cs:  cookieSecure,
	}
}
