package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Feed   FeedConfig
	Intel  IntelConfig
	AI     AIConfig
	Redis  RedisConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	ListenAddr string
}

// FeedConfig - 알림 피드 및 원시 로그 파일 경로
// 수집기가 newline-delimited JSON으로 기록하는 파일을 매 폴링마다 다시 읽는다
type FeedConfig struct {
	AlertsFile   string
	LogsFile     string
	PollInterval time.Duration
}

type IntelConfig struct {
	APIKey  string
	BaseURL string
}

type AIConfig struct {
	APIKey string
	Model  string
}

type RedisConfig struct {
	Addr     string
	IntelTTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() Config {
	// .env 파일이 있으면 로드 (없어도 무시)
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			ListenAddr: getenv("LISTEN_ADDR", ":8080"),
		},
		Feed: FeedConfig{
			AlertsFile:   getenv("ALERTS_FILE", "alerts.txt"),
			LogsFile:     getenv("LOGS_FILE", "logs.txt"),
			PollInterval: getduration("POLL_INTERVAL", 5*time.Second),
		},
		Intel: IntelConfig{
			APIKey:  os.Getenv("ABUSEIPDB_KEY"),
			BaseURL: getenv("ABUSEIPDB_URL", "https://api.abuseipdb.com/api/v2"),
		},
		AI: AIConfig{
			APIKey: os.Getenv("AI_API_KEY"),
			Model:  getenv("AI_MODEL", "gemini-2.0-flash"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			IntelTTL: getduration("INTEL_CACHE_TTL", time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func splitCSV(val string) []string {
	if val == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
