package resume

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"ai-interview-prep-service/internal/events"
	"ai-interview-prep-service/internal/models"
	"ai-interview-prep-service/internal/observability/logging"
	"ai-interview-prep-service/internal/observability/metrics"
	"ai-interview-prep-service/internal/storage"
)

// Static analysis placeholders. Real semantic similarity scoring was
// never implemented upstream; the endpoint contract still carries the
// fields.
var placeholderAnalysis = models.ResumeAnalysis{
	SimilarityScore: 85,
	MissingKeywords: []string{"Python", "Machine Learning"},
}

// Optimization is the outcome of a resume upload.
type Optimization struct {
	Filename string
	Original Sections
	Improved Sections
	Analysis models.ResumeAnalysis
}

// Optimizer runs the resume flow: store, extract, parse, rewrite.
type Optimizer struct {
	store     *storage.Store
	rewriter  Rewriter
	publisher *events.Publisher
	metrics   *metrics.Metrics
	extract   func(path string) (string, error)
}

// NewOptimizer wires the resume flow together.
func NewOptimizer(store *storage.Store, rewriter Rewriter, publisher *events.Publisher) *Optimizer {
	return &Optimizer{
		store:     store,
		rewriter:  rewriter,
		publisher: publisher,
		metrics:   metrics.DefaultMetrics,
		extract:   ExtractText,
	}
}

// Optimize processes one uploaded resume against a job description.
// The stored file is removed before returning; only ExtractText's
// ErrUnsupportedFormat and storage errors are surfaced, rewrite
// failures degrade per section.
func (o *Optimizer) Optimize(ctx context.Context, requestID, filename string, file io.Reader, jobDescription string) (Optimization, error) {
	logger := logging.WithUpload(requestID, filename)

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext != "pdf" && ext != "docx" {
		return Optimization{}, ErrUnsupportedFormat
	}

	key, err := o.store.Save(file, ext)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to persist resume upload")
		return Optimization{}, err
	}
	defer o.store.Remove(key)

	path, err := o.store.Path(key)
	if err != nil {
		return Optimization{}, err
	}

	text, err := o.extract(path)
	if err != nil {
		logger.Error().Err(err).Msg("Text extraction failed")
		return Optimization{}, err
	}
	o.metrics.RecordUpload(ext)

	original := ParseSections(text)

	improved := make(Sections, len(original))
	for _, name := range SectionNames() {
		rewritten, err := o.rewriter.Rewrite(ctx, name, original[name], jobDescription)
		if err != nil {
			logger.Error().Err(err).Str("section", name).Msg("Rewrite failed")
			rewritten = RewriteFallback
		}
		improved[name] = rewritten
	}

	logger.Info().Int("textLen", len(text)).Msg("Resume optimized")

	ev := models.ResumeOptimized{
		EventType: "resume.optimized",
		RequestID: requestID,
		Filename:  filename,
		Sections:  len(improved),
		Timestamp: time.Now().UnixMilli(),
	}
	if err := o.publisher.PublishResume(ctx, requestID, ev); err != nil {
		logger.Error().Err(err).Msg("Failed to publish resume event")
	}

	return Optimization{
		Filename: filename,
		Original: original,
		Improved: improved,
		Analysis: placeholderAnalysis,
	}, nil
}
