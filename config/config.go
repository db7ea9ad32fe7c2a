package config

import (
	"os"
	"time"
)

// PlaceholderEndpoint is the collector URL shipped in example configs.
// Seeing it at runtime means nobody pointed the service at a real
// collector, so the client falls back to mock mode.
const PlaceholderEndpoint = "https://api.example.com/survey"

type Config struct {
	MongoURI  string
	RedisAddr string
	HTTPPort  string

	CollectorEndpoint string
	UseMockCollector  bool
	CollectorTimeout  time.Duration

	JWTSecret string
}

func Load() *Config {
	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:  getEnv("HTTP_PORT", "8080"),

		CollectorEndpoint: getEnv("COLLECTOR_ENDPOINT", PlaceholderEndpoint),
		UseMockCollector:  os.Getenv("USE_MOCK_COLLECTOR") == "true",
		CollectorTimeout:  3000 * time.Millisecond,

		JWTSecret: getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
