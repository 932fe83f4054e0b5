package jwt

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"strings"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestJWT(t *testing.T) *JWT {
	t.Helper()

	j, err := New("super-secret", "")
	require.NoError(t, err)
	return j
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New("", "HS256")
	assert.Error(t, err)

	_, err = New("k", "RS256")
	assert.Error(t, err)

	for _, alg := range []string{"", "HS256", "HS384", "HS512"} {
		_, err = New("k", alg)
		assert.NoError(t, err, "algorithm %q", alg)
	}
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t)

	before := time.Now()
	token, expires, err := j.Issue("admin", 30*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, before.Add(30*time.Minute), expires, 2*time.Second)

	subject, err := j.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestIssue_UniqueTokenID(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t)

	t1, _, err := j.Issue("admin", time.Minute)
	require.NoError(t, err)
	t2, _, err := j.Issue("admin", time.Minute)
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t)

	token, _, err := j.Issue("admin", -1*time.Second)
	require.NoError(t, err)

	_, err = j.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_ExpiresWithClock(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t)
	now := time.Now()
	j.now = func() time.Time { return now }

	token, _, err := j.Issue("admin", 30*time.Minute)
	require.NoError(t, err)

	j.now = func() time.Time { return now.Add(29 * time.Minute) }
	_, err = j.Verify(token)
	assert.NoError(t, err)

	j.now = func() time.Time { return now.Add(31 * time.Minute) }
	_, err = j.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t)

	token, _, err := j.Issue("admin", time.Minute)
	require.NoError(t, err)

	// 修改签名中间的一个字符，避开末尾的填充位
	b := []byte(token)
	i := len(b) - 10
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}

	_, err = j.Verify(string(b))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t)

	token, _, err := j.Issue("admin", time.Minute)
	require.NoError(t, err)

	other, _, err := j.Issue("root", time.Minute)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	forged := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, err = j.Verify(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongKey(t *testing.T) {
	t.Parallel()

	other, err := New("another-secret", "HS256")
	require.NoError(t, err)

	token, _, err := other.Issue("admin", time.Minute)
	require.NoError(t, err)

	_, err = newTestJWT(t).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t)

	// 同样的密钥，但使用 HS512 签名
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = j.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// alg=none
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MissingClaims(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t)

	// 没有过期时间
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "admin",
	}).SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = j.Verify(noExp)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// 没有 subject
	noSub, _, err := j.Issue("", time.Minute)
	require.NoError(t, err)

	_, err = j.Verify(noSub)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t)

	for _, token := range []string{"", "not.a.jwt", "abc", "a.b", "...."} {
		_, err := j.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
