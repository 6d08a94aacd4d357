package config

import (
	"os"
	"strconv"
	"time"
)

// Config アプリケーション設定
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Storage StorageConfig
	Auth    AuthConfig
}

// ServerConfig サーバー設定
type ServerConfig struct {
	Port string
}

// LogConfig ログ設定
type LogConfig struct {
	Level     string
	Directory string
}

// StorageConfig スナップショット保存先の設定
type StorageConfig struct {
	Backend   string // "file", "s3", "postgres"
	Directory string // fileバックエンド用
	S3        S3Config
	Postgres  PostgresConfig
}

// S3Config S3設定
type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	UseSSL          bool
}

// PostgresConfig Postgres設定
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AuthConfig ボードロック設定（パスワード未設定ならロック無効）
type AuthConfig struct {
	BoardPassword string
	JWTSecret     string
	TokenExpiry   time.Duration
}

// LoadConfig 環境変数から設定を読み込み
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Log: LogConfig{
			Level:     getEnv("LOG_LEVEL", "info"),
			Directory: getEnv("LOG_DIRECTORY", "logs"),
		},
		Storage: StorageConfig{
			Backend:   getEnv("STORAGE_BACKEND", "file"),
			Directory: getEnv("STORAGE_DIRECTORY", "data"),
			S3: S3Config{
				Endpoint:        getEnv("S3_ENDPOINT", "http://localhost:9000"), // MinIO用のデフォルト
				AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", "minioadmin"),
				SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", "minioadmin"),
				Region:          getEnv("S3_REGION", "us-east-1"),
				Bucket:          getEnv("S3_BUCKET", "keep-app-snapshots"),
				UseSSL:          getBoolEnv("S3_USE_SSL", false),
			},
			Postgres: PostgresConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getIntEnv("DB_PORT", 5432),
				User:     getEnv("DB_USER", "postgres"),
				Password: getEnv("DB_PASSWORD", ""),
				DBName:   getEnv("DB_NAME", "keep_app"),
				SSLMode:  getEnv("DB_SSLMODE", "disable"),
			},
		},
		Auth: AuthConfig{
			BoardPassword: getEnv("BOARD_PASSWORD", ""),
			JWTSecret:     getEnv("JWT_SECRET", "keep-app-dev-secret"),
			TokenExpiry:   getDurationEnv("TOKEN_EXPIRY", 24*time.Hour),
		},
	}
}

// getEnv 環境変数を取得（デフォルト値付き）
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv 環境変数をboolで取得
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getIntEnv 環境変数をintで取得
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getDurationEnv 環境変数をtime.Durationで取得
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
