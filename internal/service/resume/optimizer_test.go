package resume

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-interview-prep-service/internal/events"
	"ai-interview-prep-service/internal/storage"
)

// fakeRewriter echoes a deterministic rewrite or fails.
type fakeRewriter struct {
	err   error
	calls []string
}

func (f *fakeRewriter) Rewrite(ctx context.Context, section, original, jobDescription string) (string, error) {
	f.calls = append(f.calls, section)
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("improved %s for %s", section, jobDescription), nil
}

func (f *fakeRewriter) Close() error { return nil }

func newTestOptimizer(t *testing.T, rewriter Rewriter) (*Optimizer, *storage.Store) {
	t.Helper()
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	o := NewOptimizer(store, rewriter, events.New(&events.Config{Enabled: false}))
	o.extract = func(path string) (string, error) {
		data, err := os.ReadFile(path)
		return string(data), err
	}
	return o, store
}

func TestOptimizer_Success(t *testing.T) {
	rewriter := &fakeRewriter{}
	o, store := newTestOptimizer(t, rewriter)

	text := "Education: MIT\nExperience: ACME Corp\nSkills: Go"
	got, err := o.Optimize(context.Background(), "req-1", "resume.pdf", strings.NewReader(text), "Go backend role")
	require.NoError(t, err)

	assert.Equal(t, "resume.pdf", got.Filename)
	assert.Equal(t, "Education: MIT", got.Original[SectionEducation])
	assert.Equal(t, "improved Education for Go backend role", got.Improved[SectionEducation])
	assert.Equal(t, "improved Skills for Go backend role", got.Improved[SectionSkills])
	assert.Equal(t, 85, got.Analysis.SimilarityScore)
	assert.Equal(t, []string{"Python", "Machine Learning"}, got.Analysis.MissingKeywords)

	// All three sections rewritten, in priority order.
	assert.Equal(t, SectionNames(), rewriter.calls)

	// Stored upload removed when done.
	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOptimizer_UnsupportedExtension(t *testing.T) {
	o, store := newTestOptimizer(t, &fakeRewriter{})

	for _, name := range []string{"resume.txt", "resume", "resume.tar.gz"} {
		_, err := o.Optimize(context.Background(), "req-2", name, strings.NewReader("x"), "jd")
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "filename %s", name)
	}

	// Rejected before anything is stored.
	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOptimizer_RewriteFailureDegradesToFallback(t *testing.T) {
	rewriter := &fakeRewriter{err: errors.New("service down")}
	o, _ := newTestOptimizer(t, rewriter)

	got, err := o.Optimize(context.Background(), "req-3", "resume.docx", strings.NewReader("Skills: Go"), "jd")
	require.NoError(t, err)

	for _, name := range SectionNames() {
		assert.Equal(t, RewriteFallback, got.Improved[name])
	}
}

func TestOptimizer_ExtractionFailure(t *testing.T) {
	o, store := newTestOptimizer(t, &fakeRewriter{})
	o.extract = func(path string) (string, error) {
		return "", errors.New("corrupt document")
	}

	_, err := o.Optimize(context.Background(), "req-4", "resume.pdf", strings.NewReader("bytes"), "jd")
	require.Error(t, err)

	// Upload cleaned up even on failure.
	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOptimizer_NoKeywordResume_AllBucketsNA(t *testing.T) {
	rewriter := &fakeRewriter{}
	o, _ := newTestOptimizer(t, rewriter)

	got, err := o.Optimize(context.Background(), "req-5", "resume.pdf", strings.NewReader("Jane Doe\nEngineer"), "jd")
	require.NoError(t, err)

	for _, name := range SectionNames() {
		assert.Equal(t, EmptySection, got.Original[name])
	}
}
