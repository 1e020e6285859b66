package google

import (
	"testing"

	"cloud.google.com/go/speech/apiv1/speechpb"
)

func TestFlattenResponse(t *testing.T) {
	tests := []struct {
		name           string
		resp           *speechpb.RecognizeResponse
		wantTranscript string
		wantConfidence float64
	}{
		{
			name:           "empty response means unrecognized speech",
			resp:           &speechpb.RecognizeResponse{},
			wantTranscript: "",
			wantConfidence: 0,
		},
		{
			name: "single result",
			resp: &speechpb.RecognizeResponse{
				Results: []*speechpb.SpeechRecognitionResult{
					{
						Alternatives: []*speechpb.SpeechRecognitionAlternative{
							{Transcript: "tell me about yourself", Confidence: 0.92},
						},
					},
				},
			},
			wantTranscript: "tell me about yourself",
			wantConfidence: 0.92,
		},
		{
			name: "multiple results joined, highest confidence kept",
			resp: &speechpb.RecognizeResponse{
				Results: []*speechpb.SpeechRecognitionResult{
					{
						Alternatives: []*speechpb.SpeechRecognitionAlternative{
							{Transcript: "I am a software engineer", Confidence: 0.85},
							{Transcript: "ignored second alternative", Confidence: 0.99},
						},
					},
					{
						Alternatives: []*speechpb.SpeechRecognitionAlternative{
							{Transcript: "with five years of experience", Confidence: 0.91},
						},
					},
				},
			},
			wantTranscript: "I am a software engineer with five years of experience",
			wantConfidence: 0.91,
		},
		{
			name: "result with no alternatives skipped",
			resp: &speechpb.RecognizeResponse{
				Results: []*speechpb.SpeechRecognitionResult{
					{},
					{
						Alternatives: []*speechpb.SpeechRecognitionAlternative{
							{Transcript: "hello", Confidence: 0.7},
						},
					},
				},
			},
			wantTranscript: "hello",
			wantConfidence: 0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flattenResponse(tt.resp)
			if got.Transcript != tt.wantTranscript {
				t.Errorf("transcript = %q, want %q", got.Transcript, tt.wantTranscript)
			}
			if diff := got.Confidence - tt.wantConfidence; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}
