package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string

	NATSURL     string
	NATSSubject string

	StoragePath string

	// RulesPath optionally points at a YAML file overriding the built-in
	// extraction patterns and classification triggers.
	RulesPath string

	// NERURL enables the external entity-recognition collaborator when
	// non-empty. The engine runs without it.
	NERURL            string
	NERTimeoutSeconds int

	APIRateLimitRPS   int
	APIRateLimitBurst int
	APIMaxConcurrent  int

	WorkerMetricsPort string
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		NATSURL:     mustEnv("NATS_URL", "nats://localhost:4222"),
		NATSSubject: mustEnv("NATS_SUBJECT", "documents.analyze"),

		StoragePath: mustEnv("STORAGE_PATH", "./data/documents"),

		RulesPath: mustEnv("ANALYZER_RULES_PATH", ""),

		NERURL:            mustEnv("NER_URL", ""),
		NERTimeoutSeconds: mustEnvInt("NER_TIMEOUT_SECONDS", 30),

		APIRateLimitRPS:   mustEnvInt("API_RATE_LIMIT_RPS", 20),
		APIRateLimitBurst: mustEnvInt("API_RATE_LIMIT_BURST", 40),
		APIMaxConcurrent:  mustEnvInt("API_MAX_CONCURRENT", 64),

		WorkerMetricsPort: mustEnv("WORKER_METRICS_PORT", "9090"),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
