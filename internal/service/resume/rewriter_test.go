package resume

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestBuildRewritePrompt(t *testing.T) {
	prompt := buildRewritePrompt("Skills", "Skills: Go, SQL", "Looking for a Go backend engineer")

	assert.Contains(t, prompt, "'Skills' section")
	assert.Contains(t, prompt, "Looking for a Go backend engineer")
	assert.Contains(t, prompt, "Skills: Go, SQL")
	assert.Contains(t, prompt, "Improved Resume Section:")
}

func TestExtractResponseText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{
			"nil content",
			&genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			},
			"",
		},
		{
			"single part trimmed",
			&genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{
						Content: &genai.Content{
							Parts: []genai.Part{genai.Text("  Improved skills text.\n")},
						},
					},
				},
			},
			"Improved skills text.",
		},
		{
			"multiple parts joined",
			&genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{
						Content: &genai.Content{
							Parts: []genai.Part{genai.Text("part one "), genai.Text("part two")},
						},
					},
				},
			},
			"part one part two",
		},
		{
			"whitespace-only means empty",
			&genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{
						Content: &genai.Content{
							Parts: []genai.Part{genai.Text("   \n ")},
						},
					},
				},
			},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractResponseText(tt.resp))
		})
	}
}

func TestRewriteFallback_ExactString(t *testing.T) {
	assert.Equal(t, "Error generating improved section.", RewriteFallback)
}
