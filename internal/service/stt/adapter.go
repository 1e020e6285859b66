// Package stt defines the interface for Speech-to-Text adapters.
package stt

import "context"

// Result is the outcome of a transcription call. An empty Transcript
// with a nil error means the provider recognized no speech; callers
// score that as zero rather than treating it as a failure.
type Result struct {
	Transcript string
	Confidence float64
}

// Adapter defines the interface for STT providers (Google, mock, ...).
type Adapter interface {
	// Transcribe converts a normalized mono 16 kHz PCM WAV file into
	// text. Implementations must honor ctx cancellation.
	Transcribe(ctx context.Context, wavPath string) (Result, error)

	// Provider returns a short provider name for logs and metrics.
	Provider() string

	// Close releases any resources held by the adapter.
	Close() error
}
