package inits

import (
	"context"
	"fmt"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"material-site/app/server/config"
	"material-site/app/server/models"
	"material-site/app/server/store"
	"time"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

func DB(ctx context.Context, driver string, conn string, isProd bool) (db *gorm.DB, err error) {
	var dialector gorm.Dialector
	switch driver {
	case DBDriverPostgres:
		dialector = postgres.Open(conn)
	case DBDriverSQLite:
		dialector = sqlite.Open(conn)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", driver)
	}

	logLevel := logger.Warn
	if isProd {
		logLevel = logger.Silent
	}

	// 打开连接，数据库可能比服务启动得晚，所以需要重试
	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	if err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		opened, err := gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(logLevel),
		})
		if err != nil {
			// 自动 ping 失败时连接池已经打开，需要关掉再重试
			closeDB(opened)
			return retry.RetryableError(err)
		}

		sqlDB, err := opened.DB()
		if err != nil {
			return err
		}
		if err = sqlDB.PingContext(ctx); err != nil {
			closeDB(opened)
			return retry.RetryableError(err)
		}

		db = opened
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 返回
	return db, nil
}

// closeDB 关闭 gorm 底层的连接池，db 为 nil 时什么都不做
func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Material{},
		&models.User{},
	)
}

// Bootstrap 确保默认管理员存在；失败只返回错误，由调用方决定是否继续启动
func Bootstrap(ctx context.Context, db *gorm.DB, h store.Hasher, cfg *config.Config, l *zap.Logger) error {
	created, err := store.EnsureUser(
		db.WithContext(ctx),
		h,
		cfg.Bootstrap.AdminUsername,
		cfg.Bootstrap.AdminPassword,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if created {
		l.Info("admin user created", zap.String("username", cfg.Bootstrap.AdminUsername))
	}

	return nil
}
