package config

import (
	"fmt"

	"authapi/internal/secrets"
)

// Config holds process-wide configuration resolved once at startup through
// the secret provider and never mutated afterwards.
type Config struct {
	ServerPort       string
	MySQLDSN         string
	RedisAddr        string
	RedisDB          int
	RedisPass        string
	JWTSecret        string
	JWTExpireMinutes int
	JWTCookieKey     string
	PasswordCost     int
}

// Load builds Config from the secret provider. Authentication secrets are
// required; infrastructure settings fall back to local defaults.
func Load(provider *secrets.Manager) (*Config, error) {
	jwtSecret, err := provider.Get("JWT_SECRET")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	jwtExpireMinutes, err := provider.GetInt("JWT_EXPIRE_MINUTES")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	jwtCookieKey, err := provider.Get("JWT_COOKIE_KEY")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	passwordCost, err := provider.GetInt("PASSWORD_SALT")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &Config{
		ServerPort:       getOr(provider, "SV_PORT", "8080"),
		MySQLDSN:         getOr(provider, "MYSQL_DSN", "user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        getOr(provider, "REDIS_ADDR", "localhost:6379"),
		RedisDB:          getIntOr(provider, "REDIS_DB", 0),
		RedisPass:        getOr(provider, "REDIS_PASSWORD", ""),
		JWTSecret:        jwtSecret,
		JWTExpireMinutes: jwtExpireMinutes,
		JWTCookieKey:     jwtCookieKey,
		PasswordCost:     passwordCost,
	}, nil
}

func getOr(provider *secrets.Manager, key, def string) string {
	if v, err := provider.Get(key); err == nil && v != "" {
		return v
	}
	return def
}

func getIntOr(provider *secrets.Manager, key string, def int) int {
	if v, err := provider.GetInt(key); err == nil {
		return v
	}
	return def
}
