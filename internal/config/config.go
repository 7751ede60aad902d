package config

import (
	"strings"
	"time"

	"github.com/hankosign/hankosign/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	FrontURL    string
	DB          DatabaseConfig
	Minio       MinioConfig
	Redis       RedisConfig
	RateLimiter RateLimiterConfig
	Mail        MailConfig
	Auth        AuthConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	JWT_SECRET string
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	BUCKET     string
	USE_SSL    bool
}

type RedisConfig struct {
	ADDR     string
	PASSWORD string
	DB       int
}

type MailConfig struct {
	// Provider is either "sendgrid" or "smtp".
	Provider      string
	FROM_EMAIL    string
	SUPPORT_EMAIL string
	SEND_GRID     SendGridConfig
	SMTP          SMTPConfig
}

type SendGridConfig struct {
	API_KEY string
}

type SMTPConfig struct {
	HOST     string
	PORT     int
	USERNAME string
	PASSWORD string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimiteTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimiteTimeFrame = 60 * time.Second
	}

	return Config{
		Port:     env.GetString("PORT", "8080"),
		ENV:      env.GetString("ENV", "development"),
		FrontURL: env.GetString("FRONT_URL", "http://localhost:3000"),
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "hankosign"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		Minio: MinioConfig{
			ENDPOINT:   env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
			ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
			BUCKET:     env.GetString("MINIO_BUCKET", "hankosign-documents"),
			USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
		},
		Redis: RedisConfig{
			ADDR:     env.GetString("REDIS_ADDR", "127.0.0.1:6379"),
			PASSWORD: env.GetString("REDIS_PASSWORD", ""),
			DB:       env.GetInt("REDIS_DB", 0),
		},
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimiteTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Mail: MailConfig{
			Provider:      env.GetString("MAIL_PROVIDER", "smtp"),
			FROM_EMAIL:    env.GetString("MAIL_FROM_MAIL", "noreply@hankosign.jp"),
			SUPPORT_EMAIL: env.GetString("MAIL_SUPPORT_MAIL", "support@hankosign.jp"),
			SEND_GRID: SendGridConfig{
				API_KEY: env.GetString("MAIL_SEND_GRID_API_KEY", ""),
			},
			SMTP: SMTPConfig{
				HOST:     env.GetString("SMTP_HOST", "127.0.0.1"),
				PORT:     env.GetInt("SMTP_PORT", 587),
				USERNAME: env.GetString("SMTP_USER", ""),
				PASSWORD: env.GetString("SMTP_PASSWORD", ""),
			},
		},
		Auth: AuthConfig{
			JWT_SECRET: env.GetString("AUTH_JWT_SECRET", ""),
		},
	}
}
