package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// OwnerRez sandbox identity used only for local development. Production
// deployments must supply real credentials through the environment.
const (
	devOwnerRezUsername = "premiere-dev"
	devOwnerRezToken    = "sandbox-token"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env                string
	HTTPAddr           string
	MongoURI           string
	MongoDB            string
	KafkaBrokers       []string
	KafkaTopicPrefix   string
	OutboxPollInterval time.Duration
	RetryBackoff       []time.Duration
	OwnerRezBaseURL    string
	OwnerRezUsername   string
	OwnerRezToken      string
	UpstreamMaxFetches int
	UpstreamRatePerSec int
}

// Load parses configuration from the current environment. Upstream API
// credentials are a startup failure outside dev rather than a silent
// per-request fallback.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getEnv("MONGO_DB", "premiere"),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", ""),
		OwnerRezBaseURL:  getEnv("OWNERREZ_BASE_URL", "https://api.ownerrez.com/v2"),
		OwnerRezUsername: os.Getenv("OWNERREZ_USERNAME"),
		OwnerRezToken:    os.Getenv("OWNERREZ_TOKEN"),
	}
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	poll, err := parseDurationEnv("OUTBOX_POLL_INTERVAL", 500*time.Millisecond)
	if err != nil {
		return Config{}, err
	}
	cfg.OutboxPollInterval = poll

	retryStr := getEnv("RETRY_BACKOFF", "1s,5s,30s")
	for _, raw := range strings.Split(retryStr, ",") {
		val := strings.TrimSpace(raw)
		if val == "" {
			continue
		}
		d, err := time.ParseDuration(val)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RETRY_BACKOFF component %q: %w", raw, err)
		}
		cfg.RetryBackoff = append(cfg.RetryBackoff, d)
	}

	maxFetches, err := parseIntEnv("UPSTREAM_MAX_FETCHES", 10)
	if err != nil {
		return Config{}, err
	}
	cfg.UpstreamMaxFetches = maxFetches

	ratePerSec, err := parseIntEnv("UPSTREAM_RATE_PER_SEC", 10)
	if err != nil {
		return Config{}, err
	}
	cfg.UpstreamRatePerSec = ratePerSec

	if cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.OwnerRezUsername == "" || cfg.OwnerRezToken == "" {
		if !isDev(cfg.Env) {
			return Config{}, fmt.Errorf("OWNERREZ_USERNAME and OWNERREZ_TOKEN are required outside dev")
		}
		cfg.OwnerRezUsername = devOwnerRezUsername
		cfg.OwnerRezToken = devOwnerRezToken
	}
	return cfg, nil
}

func isDev(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test", "testing":
		return true
	default:
		return false
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	var v int
	if _, err := fmt.Sscanf(strings.TrimSpace(raw), "%d", &v); err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}
