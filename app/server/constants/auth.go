package constants

import "time"

const (
	AuthTokenDuration = 30 * time.Minute // 登录令牌有效期
	AuthCookieName    = "access_token"   // 携带令牌的 cookie
)

// echo context 中使用的键
const (
	ContextKeyDB      = "db"      // 请求范围内的数据库连接
	ContextKeySubject = "subject" // 已验证令牌中的用户名
)
