// Package app wires the service's components together from its
// configuration.
package app

import (
	"context"
	"fmt"
	"time"

	"ai-interview-prep-service/internal/config"
	"ai-interview-prep-service/internal/events"
	"ai-interview-prep-service/internal/observability/logging"
	"ai-interview-prep-service/internal/service/audio"
	"ai-interview-prep-service/internal/service/interview"
	"ai-interview-prep-service/internal/service/resume"
	"ai-interview-prep-service/internal/service/stt"
	sttgoogle "ai-interview-prep-service/internal/service/stt/google"
	sttmock "ai-interview-prep-service/internal/service/stt/mock"
	"ai-interview-prep-service/internal/service/tts"
	ttsgoogle "ai-interview-prep-service/internal/service/tts/google"
	"ai-interview-prep-service/internal/storage"

	"github.com/rs/zerolog"
)

// Application holds process-wide state for the service.
type Application struct {
	StartupTime time.Time
	Logger      zerolog.Logger
	Cfg         *config.Config

	Store       *storage.Store
	Questions   *interview.Questions
	Analyzer    *audio.Analyzer
	Optimizer   *resume.Optimizer
	Publisher   *events.Publisher
	Synthesizer tts.Synthesizer // nil when question audio is disabled

	adapter  stt.Adapter
	rewriter resume.Rewriter
}

// New constructs a fully wired Application from the provided
// configuration. External clients (STT, Gemini, TTS) are created
// eagerly so a bad credential fails startup rather than the first
// request.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	a := &Application{
		Cfg:    cfg,
		Logger: logging.WithComponent("application"),
	}

	store, err := storage.New(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("creating upload store: %w", err)
	}
	a.Store = store

	a.Publisher = events.New(&events.Config{
		Brokers:        cfg.Kafka.Brokers,
		TopicInterview: cfg.Kafka.TopicInterview,
		TopicResume:    cfg.Kafka.TopicResume,
		Principal:      cfg.Kafka.Principal,
		Enabled:        cfg.Kafka.Enabled,
	})

	a.adapter, err = newAdapter(ctx, cfg.STTProvider)
	if err != nil {
		return nil, fmt.Errorf("creating stt adapter: %w", err)
	}

	a.rewriter, err = resume.NewGeminiRewriter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.RewriteTimeout)
	if err != nil {
		return nil, fmt.Errorf("creating rewriter: %w", err)
	}

	if cfg.TTSEnabled {
		synth, err := ttsgoogle.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating synthesizer: %w", err)
		}
		a.Synthesizer = synth
	}

	a.Questions = interview.NewQuestions()
	a.Analyzer = audio.NewAnalyzer(
		a.Store,
		audio.NewFFmpegTranscoder(),
		a.adapter,
		interview.StrategyFor(cfg.FeedbackPolicy),
		a.Publisher,
		cfg.STTTimeout,
	)
	a.Optimizer = resume.NewOptimizer(a.Store, a.rewriter, a.Publisher)

	a.Logger.Info().
		Str("sttProvider", cfg.STTProvider).
		Str("feedbackPolicy", cfg.FeedbackPolicy).
		Bool("ttsEnabled", cfg.TTSEnabled).
		Msg("Interview prep service application created")
	return a, nil
}

func newAdapter(ctx context.Context, provider string) (stt.Adapter, error) {
	switch provider {
	case "google":
		return sttgoogle.New(ctx)
	default:
		return sttmock.New(), nil
	}
}

// Start performs any startup work required before serving traffic.
func (a *Application) Start() error {
	a.StartupTime = time.Now().UTC()
	a.Logger.Info().
		Time("startupTime", a.StartupTime).
		Msg("Interview prep service starting")
	return nil
}

// Shutdown closes external clients in reverse wiring order. Errors
// are logged rather than returned since the process is exiting.
func (a *Application) Shutdown() {
	a.Logger.Info().Msg("Interview prep service shutting down")

	if a.Synthesizer != nil {
		if err := a.Synthesizer.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close synthesizer")
		}
	}
	if closer, ok := a.rewriter.(interface{ Close() error }); ok && closer != nil {
		if err := closer.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close rewriter")
		}
	}
	if a.adapter != nil {
		if err := a.adapter.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close stt adapter")
		}
	}
	if a.Publisher != nil {
		if err := a.Publisher.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close event publisher")
		}
	}
}
