package config

import (
	"log"
	"os"
)

// Config 应用配置
type Config struct {
	Env          string
	Port         string
	TMDBAPIKey   string
	TMDBBaseURL  string
	OpenAIAPIKey string
}

// Load 加载配置
// 两个密钥只在进程启动时读取一次，缺失不在本地校验，
// 只会在外部调用认证失败时暴露出来
func Load() *Config {
	cfg := &Config{
		Env:          getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "5000"),
		TMDBAPIKey:   getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL:  getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
	}

	if cfg.TMDBAPIKey == "" {
		log.Println("【警告】TMDB_API_KEY 未设置，TMDB 请求将会失败")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("【警告】OPENAI_API_KEY 未设置，对话请求将会失败")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
