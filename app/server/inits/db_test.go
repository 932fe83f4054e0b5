package inits

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"material-site/app/server/config"
	"material-site/app/server/models"
	"material-site/app/server/password"
	"material-site/app/server/store"
	"material-site/app/server/testutil"
	"testing"
)

func TestDB_SQLite(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := DB(context.Background(), DBDriverSQLite, dsn, true)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	assert.True(t, db.Migrator().HasTable(&models.Material{}))
	assert.True(t, db.Migrator().HasTable(&models.User{}))
}

func TestDB_UnsupportedDriver(t *testing.T) {
	_, err := DB(context.Background(), "mysql", "x", false)
	assert.Error(t, err)
}

func TestBootstrap(t *testing.T) {
	db := testutil.NewDB(t)
	h := password.NewWithParams(testutil.FastHashParams)

	var cfg config.Config
	cfg.Bootstrap.AdminUsername = "admin"
	cfg.Bootstrap.AdminPassword = "password"

	require.NoError(t, Bootstrap(context.Background(), db, h, &cfg, zap.NewNop()))

	user, err := store.FindUserByName(db, "admin")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, h.Verify("password", user.PasswordHash))

	// 再次启动不会创建重复用户，也不会修改密码
	cfg.Bootstrap.AdminPassword = "changed"
	require.NoError(t, Bootstrap(context.Background(), db, h, &cfg, zap.NewNop()))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	user, err = store.FindUserByName(db, "admin")
	require.NoError(t, err)
	assert.True(t, h.Verify("password", user.PasswordHash))
}

func TestCloseDB(t *testing.T) {
	closeDB(nil)

	db := testutil.NewDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())

	closeDB(db)
	assert.Error(t, sqlDB.Ping())
}
