// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ai_interview_prep"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Interview flow metrics
	QuestionsServed     prometheus.Counter
	AnswersAnalyzed     prometheus.Counter
	ConversionErrors    prometheus.Counter
	ClarityScore        prometheus.Histogram
	AudioBytesReceived  prometheus.Counter

	// STT metrics
	TranscriptionsTotal *prometheus.CounterVec
	TranscriptionErrors *prometheus.CounterVec
	STTLatency          *prometheus.HistogramVec

	// TTS metrics
	SynthesisTotal  prometheus.Counter
	SynthesisErrors prometheus.Counter

	// Resume flow metrics
	UploadsTotal     *prometheus.CounterVec
	RewritesTotal    prometheus.Counter
	RewriteFallbacks prometheus.Counter
	RewriteLatency   prometheus.Histogram

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled",
		}, []string{"route", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"route"}),

		QuestionsServed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_served_total",
			Help:      "Total number of interview questions served",
		}),
		AnswersAnalyzed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_analyzed_total",
			Help:      "Total number of interview answers analyzed",
		}),
		ConversionErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audio_conversion_errors_total",
			Help:      "Total number of audio conversion failures",
		}),
		ClarityScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "clarity_score",
			Help:      "Distribution of clarity scores",
			Buckets:   []float64{0, 10, 25, 50, 75, 90, 100},
		}),
		AudioBytesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audio_bytes_received_total",
			Help:      "Total audio bytes received",
		}),

		TranscriptionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcriptions_total",
			Help:      "Total number of transcription attempts",
		}, []string{"provider"}),
		TranscriptionErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcription_errors_total",
			Help:      "Total number of transcription errors",
		}, []string{"provider", "error_type"}),
		STTLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stt_latency_seconds",
			Help:      "Speech-to-text processing latency in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"provider"}),

		SynthesisTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tts_synthesis_total",
			Help:      "Total number of question audio syntheses",
		}),
		SynthesisErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tts_synthesis_errors_total",
			Help:      "Total number of question audio synthesis failures",
		}),

		UploadsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resume_uploads_total",
			Help:      "Total number of resume uploads",
		}, []string{"format"}),
		RewritesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "section_rewrites_total",
			Help:      "Total number of resume section rewrite calls",
		}),
		RewriteFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "section_rewrite_fallbacks_total",
			Help:      "Total number of rewrites that returned the fallback text",
		}),
		RewriteLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "section_rewrite_latency_seconds",
			Help:      "Generative rewrite latency in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}),

		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total number of Kafka messages published",
		}, []string{"topic", "event_type"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic", "event_type"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),
	}
}

// RecordRequest records a handled HTTP request.
func (m *Metrics) RecordRequest(route, status string, durationSeconds float64) {
	m.RequestsTotal.WithLabelValues(route, status).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(durationSeconds)
}

// RecordQuestionServed records an interview question being served.
func (m *Metrics) RecordQuestionServed() {
	m.QuestionsServed.Inc()
}

// RecordAnswerAnalyzed records a completed answer analysis with its score.
func (m *Metrics) RecordAnswerAnalyzed(clarityScore int) {
	m.AnswersAnalyzed.Inc()
	m.ClarityScore.Observe(float64(clarityScore))
}

// RecordConversionError records an audio conversion failure.
func (m *Metrics) RecordConversionError() {
	m.ConversionErrors.Inc()
}

// RecordAudioReceived records audio bytes received.
func (m *Metrics) RecordAudioReceived(bytes int64) {
	m.AudioBytesReceived.Add(float64(bytes))
}

// RecordTranscription records a transcription attempt and its latency.
func (m *Metrics) RecordTranscription(provider string, err error, latencySeconds float64) {
	m.TranscriptionsTotal.WithLabelValues(provider).Inc()
	m.STTLatency.WithLabelValues(provider).Observe(latencySeconds)
	if err != nil {
		m.TranscriptionErrors.WithLabelValues(provider, "transcribe").Inc()
	}
}

// RecordSynthesis records a TTS synthesis attempt.
func (m *Metrics) RecordSynthesis(err error) {
	m.SynthesisTotal.Inc()
	if err != nil {
		m.SynthesisErrors.Inc()
	}
}

// RecordUpload records a resume upload by file format.
func (m *Metrics) RecordUpload(format string) {
	m.UploadsTotal.WithLabelValues(format).Inc()
}

// RecordRewrite records a section rewrite call.
func (m *Metrics) RecordRewrite(fallback bool, latencySeconds float64) {
	m.RewritesTotal.Inc()
	m.RewriteLatency.Observe(latencySeconds)
	if fallback {
		m.RewriteFallbacks.Inc()
	}
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic, eventType string, err error, latencySeconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic, eventType).Inc()
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic, eventType).Inc()
	}
}
