// Package audio coordinates the interview answer pipeline: ingest,
// normalization, transcription, scoring and feedback.
package audio

import (
	"context"
	"fmt"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Transcoder converts an uploaded audio container into the normalized
// waveform the transcription engine expects.
type Transcoder interface {
	// ToWAV decodes src and writes a mono 16 kHz PCM WAV to dst.
	ToWAV(ctx context.Context, src, dst string) error
}

// FFmpegTranscoder implements Transcoder by shelling out to ffmpeg.
type FFmpegTranscoder struct{}

// NewFFmpegTranscoder returns an ffmpeg-backed transcoder. The ffmpeg
// binary must be on PATH.
func NewFFmpegTranscoder() *FFmpegTranscoder {
	return &FFmpegTranscoder{}
}

// ToWAV runs ffmpeg with -ac 1 -ar 16000 -f wav. The process is
// killed if ctx is canceled so a hung decode cannot pin a request
// worker forever.
func (t *FFmpegTranscoder) ToWAV(ctx context.Context, src, dst string) error {
	cmd := ffmpeg.Input(src).
		Output(dst, ffmpeg.KwArgs{"ac": 1, "ar": 16000, "f": "wav"}).
		OverWriteOutput().
		Silent(true).
		Compile()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("ffmpeg transcode: %w", err)
		}
		return nil
	}
}
