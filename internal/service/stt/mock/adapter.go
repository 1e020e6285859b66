// Package mock provides a mock STT adapter for local development and
// tests without cloud credentials. It cycles through canned answers so
// successive submissions look like a real interview.
package mock

import (
	"context"
	"sync"

	"ai-interview-prep-service/internal/service/stt"
)

// DefaultAnswers provides sample interview answers for simulation.
var DefaultAnswers = []stt.Result{
	{
		Transcript: "I am a software engineer with five years of experience building backend services",
		Confidence: 0.94,
	},
	{
		Transcript: "My greatest strength is breaking down complex problems my weakness is taking on too much at once",
		Confidence: 0.91,
	},
	{
		Transcript: "We once lost a production database and I led the recovery effort",
		Confidence: 0.89,
	},
	{
		Transcript: "In five years I see myself leading a small engineering team",
		Confidence: 0.97,
	},
	{
		Transcript: "Yes",
		Confidence: 0.98,
	},
}

// Adapter implements stt.Adapter with canned transcripts. Each call
// returns the next answer in the cycle; an Adapter with no answers
// simulates unrecognized speech.
type Adapter struct {
	mu      sync.Mutex
	answers []stt.Result
	next    int
}

// New creates a mock adapter cycling through the default answers.
func New() *Adapter {
	return &Adapter{answers: DefaultAnswers}
}

// NewWithAnswers creates a mock adapter with a custom answer cycle.
// An empty slice makes every call return the unrecognized-speech
// result (empty transcript, nil error).
func NewWithAnswers(answers []stt.Result) *Adapter {
	return &Adapter{answers: answers}
}

// Transcribe returns the next canned answer.
func (a *Adapter) Transcribe(ctx context.Context, wavPath string) (stt.Result, error) {
	if err := ctx.Err(); err != nil {
		return stt.Result{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.answers) == 0 {
		return stt.Result{}, nil
	}
	res := a.answers[a.next%len(a.answers)]
	a.next++
	return res, nil
}

// Provider returns the provider name.
func (a *Adapter) Provider() string {
	return "mock"
}

// Close is a no-op.
func (a *Adapter) Close() error {
	return nil
}
