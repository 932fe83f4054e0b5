package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"time"
)

// ErrInvalidToken 覆盖所有验证失败的情况：签名错误、格式错误、过期等
var ErrInvalidToken = errors.New("invalid token")

type JWT struct {
	key    []byte
	method jwt.SigningMethod
	now    func() time.Time
}

func New(key string, algorithm string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	if algorithm == "" {
		algorithm = jwt.SigningMethodHS256.Alg()
	}

	var method jwt.SigningMethod
	switch algorithm {
	case jwt.SigningMethodHS256.Alg():
		method = jwt.SigningMethodHS256
	case jwt.SigningMethodHS384.Alg():
		method = jwt.SigningMethodHS384
	case jwt.SigningMethodHS512.Alg():
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm: %s", algorithm)
	}

	return &JWT{
		key:    []byte(key),
		method: method,
		now:    time.Now,
	}, nil
}

// Issue 签发一个包含 subject 的令牌，在 now+ttl 时过期
func (j *JWT) Issue(subject string, ttl time.Duration) (string, time.Time, error) {
	now := j.now()
	expires := now.Add(ttl)

	// 创建声明
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}

	// 签名并返回
	token, err := jwt.NewWithClaims(j.method, claims).SignedString(j.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return token, expires, nil
}

// Verify 返回令牌中的 subject ；任何失败都返回包装了 ErrInvalidToken 的错误
func (j *JWT) Verify(tokenString string) (string, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return "", fmt.Errorf("%w: token string is empty", ErrInvalidToken)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{j.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	// 匹配内容
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims.Subject, nil
}
