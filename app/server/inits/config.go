package inits

import (
	"errors"
	"fmt"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"material-site/app/server/config"
	"os"
	"strconv"
	"strings"
)

var defaults = map[string]any{
	"system.is_prod":                false,
	"system.listen":                 ":1323", // 默认监听地址
	"system.db_driver":              DBDriverPostgres,
	"system.db_conn":                "",
	"system.redis_conn":             "",
	"security.signature_secret_key": "",
	"security.signing_algorithm":    "HS256",
	"security.cookie_secure":        false,
	"bootstrap.admin_username":      "admin",
	"bootstrap.admin_password":      "password",
}

// 环境变量与配置项的对应关系
var envKeys = map[string]string{
	"LISTEN":               "system.listen",
	"DB_DRIVER":            "system.db_driver",
	"DB_CONN":              "system.db_conn",
	"REDIS_CONN":           "system.redis_conn",
	"SIGNATURE_SECRET_KEY": "security.signature_secret_key",
	"SIGNING_ALGORITHM":    "security.signing_algorithm",
	"ADMIN_USERNAME":       "bootstrap.admin_username",
	"ADMIN_PASSWORD":       "bootstrap.admin_password",
}

// 命令行参数与配置项的对应关系
var flagKeys = map[string]string{
	"listen":    "system.listen",
	"db-driver": "system.db_driver",
	"db-conn":   "system.db_conn",
}

// Config 按 默认值 -> 配置文件 -> 环境变量 -> 命令行参数 的顺序加载配置
func Config(flags *pflag.FlagSet, path string) (*config.Config, error) {
	k := koanf.New(".")

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := loadEnv(k); err != nil {
		return nil, err
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg config.Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadEnv(k *koanf.Koanf) error {
	{
		mode, exist := os.LookupEnv("MODE")
		if exist && strings.HasPrefix(strings.ToLower(mode), "p") {
			_ = k.Set("system.is_prod", true)
			_ = k.Set("security.cookie_secure", true) // 生产环境默认只在 HTTPS 下发送 cookie
		}
	}

	for env, key := range envKeys {
		if value, exist := os.LookupEnv(env); exist {
			_ = k.Set(key, value)
		}
	}

	if secureStr, exist := os.LookupEnv("COOKIE_SECURE"); exist {
		secure, err := strconv.ParseBool(secureStr)
		if err != nil {
			return fmt.Errorf("COOKIE_SECURE should be a boolean")
		}
		_ = k.Set("security.cookie_secure", secure)
	}

	return nil
}

func validate(cfg *config.Config) error {
	switch cfg.System.DBDriver {
	case DBDriverPostgres, DBDriverSQLite:
	default:
		return fmt.Errorf("unsupported db driver: %s", cfg.System.DBDriver)
	}

	if cfg.System.DBConnectionString == "" {
		return errors.New("DB_CONN not set")
	}

	if cfg.Security.SignatureSecretKey == "" {
		return errors.New("SIGNATURE_SECRET_KEY not set")
	}

	switch cfg.Security.SigningAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("unsupported signing algorithm: %s", cfg.Security.SigningAlgorithm)
	}

	if cfg.Bootstrap.AdminUsername == "" {
		return errors.New("ADMIN_USERNAME should not be empty")
	}

	return nil
}
