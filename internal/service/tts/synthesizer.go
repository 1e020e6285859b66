// Package tts defines the interface for text-to-speech synthesizers
// used to voice interview questions.
package tts

import "context"

// Synthesizer converts a question prompt into playable audio.
type Synthesizer interface {
	// Synthesize returns encoded audio (MP3) for the given text.
	Synthesize(ctx context.Context, text string) ([]byte, error)

	// Close releases any resources held by the synthesizer.
	Close() error
}
