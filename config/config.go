package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName    string
	Port           string
	BackendBaseURL string
	RedisHost      string
	RedisPort      string
	JaegerAddress  string
	SessionTTL     time.Duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("couldn't load .env, falling back to environment")
	}

	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "8085"
	}

	sessionTTLMinutes := 60
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err == nil && minutes > 0 {
			sessionTTLMinutes = minutes
		}
	}

	return &Config{
		ServiceName:    "booking-client",
		Port:           port,
		BackendBaseURL: os.Getenv("BACKEND_BASE_URL"),
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPort:      os.Getenv("REDIS_PORT"),
		JaegerAddress:  os.Getenv("JAEGER_ADDRESS"),
		SessionTTL:     time.Duration(sessionTTLMinutes) * time.Minute,
	}
}
