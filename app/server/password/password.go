// Package password 负责密码的 hash 与校验。
package password

import (
	"fmt"
	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
	"strings"
)

type Hasher struct {
	params *argon2id.Params
}

// New 使用 argon2id 的默认参数
func New() *Hasher {
	return NewWithParams(argon2id.DefaultParams)
}

func NewWithParams(params *argon2id.Params) *Hasher {
	return &Hasher{params: params}
}

// Hash 每次调用都会使用新的随机盐
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := argon2id.CreateHash(plaintext, h.params)
	if err != nil {
		return "", fmt.Errorf("create hash: %w", err)
	}

	return digest, nil
}

// Verify 不匹配或 digest 无法解析时都返回 false
func (h *Hasher) Verify(plaintext, digest string) bool {
	// 兼容旧的 bcrypt 记录
	if isBcrypt(digest) {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
	}

	match, _, err := argon2id.CheckHash(plaintext, digest)
	if err != nil {
		return false
	}

	return match
}

func isBcrypt(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}
