package config

type Config struct {
	System struct {
		IsProd                bool   `koanf:"is_prod"`    // 是否为生产环境
		Listen                string `koanf:"listen"`     // 监听地址
		DBDriver              string `koanf:"db_driver"`  // 数据库驱动： postgres 或 sqlite
		DBConnectionString    string `koanf:"db_conn"`    // 数据库的连接字符串
		RedisConnectionString string `koanf:"redis_conn"` // Redis 的连接字符串，留空则不启用缓存
	} `koanf:"system"`
	Security struct {
		SignatureSecretKey string `koanf:"signature_secret_key"` // 签名密钥，用于签发 JWT ，更新会导致旧有会话失效
		SigningAlgorithm   string `koanf:"signing_algorithm"`    // JWT 签名算法（ HS256 / HS384 / HS512 ）
		CookieSecure       bool   `koanf:"cookie_secure"`        // 会话 cookie 是否只在 HTTPS 下发送
	} `koanf:"security"`
	Bootstrap struct {
		AdminUsername string `koanf:"admin_username"` // 启动时确保存在的管理员用户名
		AdminPassword string `koanf:"admin_password"` // 管理员初始密码，仅在创建时使用
	} `koanf:"bootstrap"`
}
