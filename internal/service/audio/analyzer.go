package audio

import (
	"context"
	"errors"
	"io"
	"time"

	"ai-interview-prep-service/internal/events"
	"ai-interview-prep-service/internal/models"
	"ai-interview-prep-service/internal/observability/logging"
	"ai-interview-prep-service/internal/observability/metrics"
	"ai-interview-prep-service/internal/service/interview"
	"ai-interview-prep-service/internal/service/stt"
	"ai-interview-prep-service/internal/storage"
)

// Stage errors let the HTTP layer map failures to the right status
// and message without parsing error text.
var (
	// ErrConversion means the uploaded audio could not be decoded or
	// normalized.
	ErrConversion = errors.New("audio conversion failed")

	// ErrTranscription means the STT call itself failed. Unrecognized
	// speech is not an error; it scores zero.
	ErrTranscription = errors.New("speech processing failed")
)

// Analysis is the outcome of a fully processed interview answer.
type Analysis struct {
	Transcript   string
	ClarityScore int
	FinalScore   float64
	Improvements string
}

// Analyzer runs the answer pipeline. All temp files are keyed per
// request and removed before returning, so concurrent submissions
// never touch each other's state.
type Analyzer struct {
	store      *storage.Store
	transcoder Transcoder
	adapter    stt.Adapter
	feedback   interview.FeedbackStrategy
	publisher  *events.Publisher
	metrics    *metrics.Metrics
	sttTimeout time.Duration
}

// NewAnalyzer wires the answer pipeline together.
func NewAnalyzer(
	store *storage.Store,
	transcoder Transcoder,
	adapter stt.Adapter,
	feedback interview.FeedbackStrategy,
	publisher *events.Publisher,
	sttTimeout time.Duration,
) *Analyzer {
	return &Analyzer{
		store:      store,
		transcoder: transcoder,
		adapter:    adapter,
		feedback:   feedback,
		publisher:  publisher,
		metrics:    metrics.DefaultMetrics,
		sttTimeout: sttTimeout,
	}
}

// Analyze ingests a raw answer recording, normalizes it, transcribes
// it and produces a score plus feedback. requestID keys temp files
// and the published result event.
func (a *Analyzer) Analyze(ctx context.Context, requestID string, rawAudio io.Reader) (Analysis, error) {
	logger := logging.WithComponent("analyzer").With().Str("requestId", requestID).Logger()

	rawKey, err := a.store.Save(rawAudio, "webm")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to persist uploaded audio")
		return Analysis{}, ErrConversion
	}
	wavKey := a.store.NewKey("wav")
	defer a.store.Remove(rawKey, wavKey)

	rawPath, err := a.store.Path(rawKey)
	if err != nil {
		return Analysis{}, ErrConversion
	}
	wavPath, err := a.store.Path(wavKey)
	if err != nil {
		return Analysis{}, ErrConversion
	}

	if err := a.transcoder.ToWAV(ctx, rawPath, wavPath); err != nil {
		logger.Error().Err(err).Msg("Audio conversion failed")
		a.metrics.RecordConversionError()
		return Analysis{}, ErrConversion
	}

	sttCtx, cancel := context.WithTimeout(ctx, a.sttTimeout)
	defer cancel()

	start := time.Now()
	result, err := a.adapter.Transcribe(sttCtx, wavPath)
	a.metrics.RecordTranscription(a.adapter.Provider(), err, time.Since(start).Seconds())
	if err != nil {
		logger.Error().Err(err).Str("provider", a.adapter.Provider()).Msg("Transcription failed")
		return Analysis{}, ErrTranscription
	}

	score := interview.ClarityScore(result.Transcript)
	analysis := Analysis{
		Transcript:   result.Transcript,
		ClarityScore: score,
		FinalScore:   float64(score),
		Improvements: a.feedback.Feedback(result.Transcript, score),
	}
	a.metrics.RecordAnswerAnalyzed(score)

	logger.Info().
		Int("clarityScore", score).
		Int("transcriptLen", len(result.Transcript)).
		Msg("Answer analyzed")

	ev := models.AnswerAnalyzed{
		EventType:    "interview.answer.analyzed",
		RequestID:    requestID,
		Transcript:   analysis.Transcript,
		ClarityScore: analysis.ClarityScore,
		Improvements: analysis.Improvements,
		Timestamp:    time.Now().UnixMilli(),
	}
	if err := a.publisher.PublishInterview(ctx, requestID, ev); err != nil {
		logger.Error().Err(err).Msg("Failed to publish answer event")
	}

	return analysis, nil
}
