package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"material-site/app/server/handlers"
	"material-site/app/server/inits"
	"material-site/app/server/jwt"
	"material-site/app/server/metrics"
	"material-site/app/server/password"
	"material-site/app/server/store"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// NewRootCmd 直接运行时启动站点
func NewRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "material-site",
		Short:         "Material site server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd, configFile)
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML)")
	cmd.PersistentFlags().String("db-driver", inits.DBDriverPostgres, "database driver: postgres or sqlite")
	cmd.PersistentFlags().String("db-conn", "", "database connection string")
	cmd.Flags().String("listen", ":1323", "listen address")

	cmd.AddCommand(newUserCmd(&configFile))

	return cmd
}

func newUserCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage admin users",
	}

	var username, pass string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an admin user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := inits.Config(cmd.Flags(), *configFile)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			db, err := inits.DB(cmd.Context(), cfg.System.DBDriver, cfg.System.DBConnectionString, cfg.System.IsProd)
			if err != nil {
				return fmt.Errorf("error initializing DB connection: %w", err)
			}

			user, err := store.CreateUser(db.WithContext(cmd.Context()), password.New(), username, pass)
			if err != nil {
				return err
			}

			cmd.Printf("user %s created (id %d)\n", user.Username, user.ID)
			return nil
		},
	}
	create.Flags().StringVar(&username, "username", "", "username")
	create.Flags().StringVar(&pass, "password", "", "password")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}

func serve(cmd *cobra.Command, configFile string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 初始化配置
	cfg, err := inits.Config(cmd.Flags(), configFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(ctx, cfg.System.DBDriver, cfg.System.DBConnectionString, cfg.System.IsProd)
	if err != nil {
		l.Error("error initializing DB connection", zap.Error(err))
		return err
	}

	// 初始化 redis 连接（可选）
	rdb, err := inits.Redis(ctx, cfg.System.RedisConnectionString)
	if err != nil {
		l.Error("error initializing Redis connection", zap.Error(err))
		return err
	} else if rdb == nil {
		l.Info("redis not configured, material cache disabled")
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey, cfg.Security.SigningAlgorithm)
	if err != nil {
		l.Error("error initializing JWT", zap.Error(err))
		return err
	}

	hasher := password.New()

	// 创建默认管理员，失败时不影响启动
	if err = inits.Bootstrap(ctx, db, hasher, cfg, l); err != nil {
		l.Error("error creating default admin", zap.Error(err))
	}

	// 准备 handler app
	reg := prometheus.NewRegistry()
	handlerApp := handlers.NewApp(l, db, rdb, j, hasher, metrics.New(reg), cfg.Security.CookieSecure)

	e, err := handlerApp.Echo(reg)
	if err != nil {
		l.Error("error initializing echo", zap.Error(err))
		return err
	}

	// 启动 echo 服务
	errCh := make(chan error, 1)
	go func() {
		l.Info("starting server", zap.String("listen", cfg.System.Listen))
		errCh <- e.Start(cfg.System.Listen)
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			l.Error("shutting down the server", zap.Error(err))
			return err
		}
	case <-ctx.Done():
		l.Info("shutting down the server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		l.Error("error shutting down the server", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	return nil
}
