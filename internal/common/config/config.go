package config

import (
	"os"
	"strconv"
	"strings"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port          string
	Environment   string
	ReadTimeout   int
	WriteTimeout  int
	LogLevel      string
	MaxCanvasSide int
	BatchWorkers  int
	CORSOrigins   []string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		Environment:   getEnv("ENV", "development"),
		ReadTimeout:   getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout:  getEnvAsInt("WRITE_TIMEOUT", 10),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		MaxCanvasSide: getEnvAsInt("MAX_CANVAS_SIDE", 8192),
		BatchWorkers:  getEnvAsInt("BATCH_WORKERS", 4),
		CORSOrigins:   getEnvAsList("CORS_ORIGINS", []string{"*"}),
	}
}

// PortOr подставляет порт сервиса, если PORT не задан явно.
func (c *Config) PortOr(port string) *Config {
	if os.Getenv("PORT") == "" {
		c.Port = port
	}
	return c
}

// Getenv читает переменную сервиса со значением по умолчанию.
func Getenv(key, defaultVal string) string {
	return getEnv(key, defaultVal)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются.
func getEnvAsList(key string, defaultVal []string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
