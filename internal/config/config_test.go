package config

import (
	"os"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"PORT", "METRICS_PORT", "UPLOAD_DIR",
		"GEMINI_API_KEY", "GEMINI_MODEL",
		"STT_PROVIDER", "STT_TIMEOUT", "REWRITE_TIMEOUT",
		"TTS_ENABLED", "FEEDBACK_POLICY",
		"KAFKA_ENABLED", "KAFKA_BROKERS", "KAFKA_TOPIC_INTERVIEW",
		"KAFKA_TOPIC_RESUME", "KAFKA_PRINCIPAL",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error when GEMINI_API_KEY is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	os.Setenv("GEMINI_API_KEY", "test-key")
	defer os.Unsetenv("GEMINI_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port '8080', got %s", cfg.Port)
	}
	if cfg.MetricsPort != "9090" {
		t.Errorf("expected default metrics port '9090', got %s", cfg.MetricsPort)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("expected default upload dir 'uploads', got %s", cfg.UploadDir)
	}
	if cfg.GeminiModel != "gemini-pro" {
		t.Errorf("expected default model 'gemini-pro', got %s", cfg.GeminiModel)
	}
	if cfg.STTProvider != "mock" {
		t.Errorf("expected default STT provider 'mock', got %s", cfg.STTProvider)
	}
	if cfg.STTTimeout != 30*time.Second {
		t.Errorf("expected default STT timeout 30s, got %v", cfg.STTTimeout)
	}
	if cfg.RewriteTimeout != 30*time.Second {
		t.Errorf("expected default rewrite timeout 30s, got %v", cfg.RewriteTimeout)
	}
	if cfg.TTSEnabled {
		t.Error("expected TTS disabled by default")
	}
	if cfg.FeedbackPolicy != "threshold" {
		t.Errorf("expected default feedback policy 'threshold', got %s", cfg.FeedbackPolicy)
	}
	if cfg.Kafka.Enabled {
		t.Error("expected Kafka disabled by default")
	}
	if cfg.Kafka.TopicInterview != "interview.results" {
		t.Errorf("expected default interview topic, got %s", cfg.Kafka.TopicInterview)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	os.Setenv("GEMINI_API_KEY", "test-key")
	os.Setenv("PORT", "9999")
	os.Setenv("GEMINI_MODEL", "gemini-1.5-flash")
	os.Setenv("STT_PROVIDER", "google")
	os.Setenv("STT_TIMEOUT", "10s")
	os.Setenv("TTS_ENABLED", "true")
	os.Setenv("FEEDBACK_POLICY", "random")
	os.Setenv("KAFKA_ENABLED", "true")
	os.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	defer clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("expected port '9999', got %s", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("expected model 'gemini-1.5-flash', got %s", cfg.GeminiModel)
	}
	if cfg.STTProvider != "google" {
		t.Errorf("expected STT provider 'google', got %s", cfg.STTProvider)
	}
	if cfg.STTTimeout != 10*time.Second {
		t.Errorf("expected STT timeout 10s, got %v", cfg.STTTimeout)
	}
	if !cfg.TTSEnabled {
		t.Error("expected TTS enabled")
	}
	if cfg.FeedbackPolicy != "random" {
		t.Errorf("expected feedback policy 'random', got %s", cfg.FeedbackPolicy)
	}
	if !cfg.Kafka.Enabled {
		t.Error("expected Kafka enabled")
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[0] != "broker-1:9092" || cfg.Kafka.Brokers[1] != "broker-2:9092" {
		t.Errorf("expected two trimmed brokers, got %v", cfg.Kafka.Brokers)
	}
}

func TestLoad_InvalidValues_FallbackToDefaults(t *testing.T) {
	clearEnv(t)
	os.Setenv("GEMINI_API_KEY", "test-key")
	os.Setenv("STT_TIMEOUT", "not-a-duration")
	os.Setenv("TTS_ENABLED", "invalid")
	defer clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.STTTimeout != 30*time.Second {
		t.Errorf("expected default STT timeout on invalid input, got %v", cfg.STTTimeout)
	}
	if cfg.TTSEnabled {
		t.Error("expected default TTS setting on invalid input")
	}
}

func TestLoad_InvalidEnums(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad stt provider", "STT_PROVIDER", "azure"},
		{"bad feedback policy", "FEEDBACK_POLICY", "merged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			os.Setenv("GEMINI_API_KEY", "test-key")
			os.Setenv(tt.key, tt.value)
			defer clearEnv(t)

			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestBoolOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		def      bool
		expected bool
	}{
		{"true string", "true", false, true},
		{"false string", "false", true, false},
		{"1", "1", false, true},
		{"0", "0", true, false},
		{"TRUE uppercase", "TRUE", false, true},
		{"invalid", "invalid", true, true},
		{"empty", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_BOOL_VAR"
			if tt.envValue != "" {
				os.Setenv(key, tt.envValue)
			} else {
				os.Unsetenv(key)
			}
			defer os.Unsetenv(key)

			got := boolOrDefault(key, tt.def)
			if got != tt.expected {
				t.Errorf("boolOrDefault(%s, %v) = %v, want %v", tt.envValue, tt.def, got, tt.expected)
			}
		})
	}
}
