// Package google provides a Google Cloud Speech-to-Text adapter.
package google

import (
	"context"
	"fmt"
	"os"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"

	"ai-interview-prep-service/internal/service/stt"
)

// Adapter implements stt.Adapter using the synchronous Google Cloud
// Speech-to-Text Recognize API. Answers are short (seconds, not
// minutes), so the non-streaming call is sufficient.
type Adapter struct {
	client *speech.Client
}

// New creates a new Google STT adapter.
// Requires GOOGLE_APPLICATION_CREDENTIALS environment variable to be set.
func New(ctx context.Context) (*Adapter, error) {
	c, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create speech client: %w", err)
	}
	return &Adapter{client: c}, nil
}

// Transcribe sends the normalized WAV file to Google and returns the
// top alternative of each result, concatenated in order. No confident
// transcription yields an empty Result with a nil error.
func (a *Adapter) Transcribe(ctx context.Context, wavPath string) (stt.Result, error) {
	data, err := os.ReadFile(wavPath)
	if err != nil {
		return stt.Result{}, fmt.Errorf("read wav: %w", err)
	}

	resp, err := a.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: 16000,
			LanguageCode:    "en-US",
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: data},
		},
	})
	if err != nil {
		return stt.Result{}, fmt.Errorf("recognize: %w", err)
	}

	return flattenResponse(resp), nil
}

// flattenResponse joins the top alternative of every result into one
// transcript and keeps the highest alternative confidence.
func flattenResponse(resp *speechpb.RecognizeResponse) stt.Result {
	var (
		parts      []string
		confidence float64
	)
	for _, r := range resp.Results {
		if len(r.Alternatives) == 0 {
			continue
		}
		alt := r.Alternatives[0]
		parts = append(parts, alt.Transcript)
		if c := float64(alt.Confidence); c > confidence {
			confidence = c
		}
	}

	return stt.Result{
		Transcript: strings.TrimSpace(strings.Join(parts, " ")),
		Confidence: confidence,
	}
}

// Provider returns the provider name.
func (a *Adapter) Provider() string {
	return "google"
}

// Close releases the underlying client.
func (a *Adapter) Close() error {
	return a.client.Close()
}
