// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port        string
	MetricsPort string
	UploadDir   string

	GeminiAPIKey string
	GeminiModel  string

	STTProvider string // "mock" or "google"
	STTTimeout  time.Duration

	RewriteTimeout time.Duration

	TTSEnabled bool

	FeedbackPolicy string // "threshold" or "random"

	Kafka KafkaConfig
}

// KafkaConfig holds event publishing configuration.
type KafkaConfig struct {
	Enabled        bool
	Brokers        []string
	TopicInterview string
	TopicResume    string
	Principal      string
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present.
//
// GEMINI_API_KEY is required: the resume rewriter cannot operate
// without it, so absence is a startup error rather than a per-request
// failure.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	cfg := &Config{
		Port:           envOrDefault("PORT", "8080"),
		MetricsPort:    envOrDefault("METRICS_PORT", "9090"),
		UploadDir:      envOrDefault("UPLOAD_DIR", "uploads"),
		GeminiAPIKey:   apiKey,
		GeminiModel:    envOrDefault("GEMINI_MODEL", "gemini-pro"),
		STTProvider:    envOrDefault("STT_PROVIDER", "mock"),
		STTTimeout:     durationOrDefault("STT_TIMEOUT", 30*time.Second),
		RewriteTimeout: durationOrDefault("REWRITE_TIMEOUT", 30*time.Second),
		TTSEnabled:     boolOrDefault("TTS_ENABLED", false),
		FeedbackPolicy: envOrDefault("FEEDBACK_POLICY", "threshold"),
		Kafka: KafkaConfig{
			Enabled:        boolOrDefault("KAFKA_ENABLED", false),
			Brokers:        splitNonEmpty(os.Getenv("KAFKA_BROKERS")),
			TopicInterview: envOrDefault("KAFKA_TOPIC_INTERVIEW", "interview.results"),
			TopicResume:    envOrDefault("KAFKA_TOPIC_RESUME", "resume.results"),
			Principal:      envOrDefault("KAFKA_PRINCIPAL", "ai-interview-prep-service"),
		},
	}

	switch cfg.STTProvider {
	case "mock", "google":
	default:
		return nil, fmt.Errorf("unknown STT_PROVIDER %q", cfg.STTProvider)
	}

	switch cfg.FeedbackPolicy {
	case "threshold", "random":
	default:
		return nil, fmt.Errorf("unknown FEEDBACK_POLICY %q", cfg.FeedbackPolicy)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func boolOrDefault(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
