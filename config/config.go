package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server       ServerConfig
	API          APIConfig
	Session      SessionConfig
	Notification NotificationConfig
	Redis        RedisConfig
}

type ServerConfig struct {
	Port     string
	LogLevel string
}

// APIConfig 遠端 REST 後端設定
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	TTL time.Duration
}

type NotificationConfig struct {
	Queue     string // memory | redis
	InboxSize int
	Buffer    int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LoadConfig 讀取環境變數；工作目錄有 .env 時先載入，但不覆蓋已存在的變數
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
	return &Config{
		Server: ServerConfig{
			Port:     getEnv("SERVER_PORT", "8080"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:3000/api"),
			Timeout: getDuration("API_TIMEOUT", 30*time.Second),
		},
		Session: SessionConfig{
			TTL: getDuration("SESSION_TTL", 24*time.Hour),
		},
		Notification: NotificationConfig{
			Queue:     getEnv("NOTIFICATION_QUEUE", "memory"),
			InboxSize: getInt("NOTIFICATION_INBOX_SIZE", 50),
			Buffer:    getInt("NOTIFICATION_BUFFER", 256),
		},
		Redis: GetRedisConfig(),
	}
}

func LoadTestConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "0", LogLevel: "error"},
		API: APIConfig{
			BaseURL: "http://127.0.0.1:0",
			Timeout: 2 * time.Second,
		},
		Session: SessionConfig{TTL: time.Hour},
		Notification: NotificationConfig{
			Queue:     "memory",
			InboxSize: 10,
			Buffer:    16,
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     "6380", // 測試 Redis 用 6380 port
			Password: "",
			DB:       1,
		},
	}
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		panic(err)
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		panic(err)
	}
	return d
}
