package resume

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"ai-interview-prep-service/internal/observability/logging"
	"ai-interview-prep-service/internal/observability/metrics"
)

// RewriteFallback is returned whenever the generative service yields
// no usable text. The endpoint never partially fails: a dead rewrite
// degrades to this placeholder.
const RewriteFallback = "Error generating improved section."

// Rewriter rewrites one resume section against a job description.
type Rewriter interface {
	Rewrite(ctx context.Context, section, original, jobDescription string) (string, error)
	Close() error
}

// GeminiRewriter implements Rewriter with the Gemini API. Every call
// gets a bounded timeout and transport errors are retried with
// backoff before degrading to the fallback text.
type GeminiRewriter struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	metrics *metrics.Metrics
}

const (
	rewriteRetries = 2
	rewriteBackoff = 500 * time.Millisecond
)

// NewGeminiRewriter creates a Gemini-backed rewriter.
func NewGeminiRewriter(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiRewriter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiRewriter{
		client:  client,
		model:   model,
		timeout: timeout,
		metrics: metrics.DefaultMetrics,
	}, nil
}

// Rewrite submits the section to Gemini and returns the trimmed
// response text. Empty output and retry-exhausted failures both yield
// RewriteFallback with a nil error.
func (r *GeminiRewriter) Rewrite(ctx context.Context, section, original, jobDescription string) (string, error) {
	logger := logging.WithComponent("rewriter").With().Str("section", section).Logger()
	prompt := buildRewritePrompt(section, original, jobDescription)

	start := time.Now()
	var lastErr error
	for attempt := 0; attempt <= rewriteRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				r.metrics.RecordRewrite(true, time.Since(start).Seconds())
				return RewriteFallback, nil
			case <-time.After(time.Duration(attempt) * rewriteBackoff):
			}
		}

		text, err := r.generate(ctx, prompt)
		if err == nil {
			fallback := text == ""
			if fallback {
				text = RewriteFallback
			}
			r.metrics.RecordRewrite(fallback, time.Since(start).Seconds())
			return text, nil
		}
		lastErr = err
		logger.Warn().Err(err).Int("attempt", attempt+1).Msg("Rewrite attempt failed")
	}

	logger.Error().Err(lastErr).Msg("Rewrite failed after retries, using fallback")
	r.metrics.RecordRewrite(true, time.Since(start).Seconds())
	return RewriteFallback, nil
}

func (r *GeminiRewriter) generate(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	model := r.client.GenerativeModel(r.model)
	resp, err := model.GenerateContent(callCtx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return extractResponseText(resp), nil
}

// Close releases the underlying client.
func (r *GeminiRewriter) Close() error {
	return r.client.Close()
}

// buildRewritePrompt embeds the section name, job description and
// original text into the rewriting instruction.
func buildRewritePrompt(section, original, jobDescription string) string {
	return fmt.Sprintf(`You are an expert resume writer. Rewrite the '%s' section of the resume
to better align with the following job description while keeping the original details intact.

Job Description:
%s

Original Resume Section:
%s

Improved Resume Section:
`, section, jobDescription, original)
}

// extractResponseText flattens the candidate text parts of a Gemini
// response; a response with no text yields "".
func extractResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
