package middlewares

import (
	"errors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"material-site/app/server/constants"
	"material-site/app/server/jwt"
	"material-site/app/server/testutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func runSession(t *testing.T, j *jwt.JWT, cookie *http.Cookie) string {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var subject string
	h := Session(j, zap.NewNop())(func(c echo.Context) error {
		subject = Subject(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	return subject
}

func TestSession(t *testing.T) {
	j, err := jwt.New("secret", "HS256")
	require.NoError(t, err)

	token, _, err := j.Issue("admin", time.Minute)
	require.NoError(t, err)

	expired, _, err := j.Issue("admin", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie *http.Cookie
		want   string
	}{
		{name: "valid", cookie: &http.Cookie{Name: constants.AuthCookieName, Value: token}, want: "admin"},
		{name: "missing", cookie: nil, want: ""},
		{name: "other cookie", cookie: &http.Cookie{Name: "session", Value: token}, want: ""},
		{name: "garbage", cookie: &http.Cookie{Name: constants.AuthCookieName, Value: "garbage"}, want: ""},
		{name: "expired", cookie: &http.Cookie{Name: constants.AuthCookieName, Value: expired}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runSession(t, j, tt.cookie))
		})
	}
}

func TestDBScope(t *testing.T) {
	db := testutil.NewDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := DBScope(db)(func(c echo.Context) error {
		tx := DB(c)
		require.NotNil(t, tx)
		assert.Equal(t, 1, sqlDB.Stats().InUse)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, h(c))
	assert.Equal(t, 0, sqlDB.Stats().InUse)
	assert.Nil(t, DB(c))
}

func TestDBScope_ReleasesOnError(t *testing.T) {
	db := testutil.NewDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	boom := errors.New("boom")
	h := DBScope(db)(func(c echo.Context) error {
		return boom
	})

	assert.ErrorIs(t, h(c), boom)
	assert.Equal(t, 0, sqlDB.Stats().InUse)
}
