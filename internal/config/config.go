package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	HTTPAddr         string
	DBDSN            string
	MQTTBrokerURL    string
	MQTTClientID     string
	MQTTUsername     string
	MQTTPassword     string
	MQTTTopicPrefix  string
	SchedAPIBaseURL  string
	SchedAPIKey      string
	SchedTimeout     time.Duration
	LLMProvider      string
	LLMModel         string
	OpenAIBaseURL    string
	OpenAIAPIKey     string
	AnthropicBaseURL string
	AnthropicAPIKey  string
	HandleTimeout    time.Duration
}

func LoadServerConfig() (ServerConfig, error) {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	cfg := ServerConfig{
		HTTPAddr:         getenvDefault("SCHEDBOT_HTTP_ADDR", ":9020"),
		DBDSN:            os.Getenv("DB_DSN"),
		MQTTBrokerURL:    getenvDefault("MQTT_BROKER_URL", "tcp://localhost:1883"),
		MQTTClientID:     getenvDefault("SCHEDBOT_MQTT_CLIENT_ID", "schedbot-server"),
		MQTTUsername:     os.Getenv("MQTT_USERNAME"),
		MQTTPassword:     os.Getenv("MQTT_PASSWORD"),
		MQTTTopicPrefix:  getenvDefault("MQTT_TOPIC_PREFIX", "schedbot"),
		SchedAPIBaseURL:  strings.TrimRight(os.Getenv("SCHED_API_BASE_URL"), "/"),
		SchedAPIKey:      os.Getenv("SCHED_API_KEY"),
		SchedTimeout:     time.Duration(getenvIntDefault("SCHED_TIMEOUT_SECONDS", 5)) * time.Second,
		LLMProvider:      getenvDefault("LLM_PROVIDER", "openai"),
		LLMModel:         getenvDefault("LLM_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:    getenvDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		AnthropicBaseURL: getenvDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		HandleTimeout:    time.Duration(getenvIntDefault("HANDLE_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	if cfg.DBDSN == "" {
		return ServerConfig{}, fmt.Errorf("DB_DSN is required")
	}
	if cfg.SchedAPIBaseURL == "" {
		return ServerConfig{}, fmt.Errorf("SCHED_API_BASE_URL is required")
	}
	if cfg.LLMProvider == "openai" && cfg.OpenAIAPIKey == "" {
		return ServerConfig{}, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
	}
	if cfg.LLMProvider == "claude" && cfg.AnthropicAPIKey == "" {
		return ServerConfig{}, fmt.Errorf("ANTHROPIC_API_KEY is required when LLM_PROVIDER=claude")
	}

	return cfg, nil
}

func getenvDefault(key, val string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return val
}

func getenvIntDefault(key string, val int) int {
	v := os.Getenv(key)
	if v == "" {
		return val
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return val
	}
	return n
}
