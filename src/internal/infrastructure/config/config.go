package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// ===========================
// 環境配置
// ===========================

// Config 服務配置
//
// 一律從環境變數載入（.env 僅開發便利用），
// 缺失的值採用本地開發預設。
type Config struct {
	// HTTP 服務
	ServerPort     string
	AllowedOrigins string // 逗號分隔的 CORS 白名單

	// 資料庫（SQLite 路徑；:memory: 供測試）
	DatabasePath string

	// 認證
	JWTSecret string

	// Redis（列表快取）
	RedisAddr     string
	RedisPassword string

	// S3（媒體 / 文件對象存儲）
	AwsRegion          string
	AwsAccessKeyID     string
	AwsSecretAccessKey string
	AwsS3Bucket        string
}

// Load 載入配置
//
// .env 不存在不是錯誤（生產環境直接注入環境變數）。
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[INFO] no .env file loaded: %v", err)
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabasePath: getEnv("DATABASE_PATH", "listing_crm.db"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		AwsRegion:          getEnv("AWS_REGION", "us-east-1"),
		AwsAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AwsSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AwsS3Bucket:        getEnv("AWS_S3_BUCKET", "listing-crm-media"),
	}
}

// getEnv 讀取環境變數（空值採用預設）
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
