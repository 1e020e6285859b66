// Package models defines the wire-level data structures for the API
// and for published result events.
package models

// QuestionResponse is the payload for GET /get_question/{index}.
// AudioURL is only set when question audio synthesis is enabled.
type QuestionResponse struct {
	Question string `json:"question"`
	Index    int    `json:"index"`
	AudioURL string `json:"audio_url,omitempty"`
}

// AnalysisResponse is the payload for POST /analyze_response.
type AnalysisResponse struct {
	ClarityScore int     `json:"clarity_score"`
	FinalScore   float64 `json:"final_score"`
	Improvements string  `json:"improvements"`
}

// UploadResponse is the payload for POST /upload.
type UploadResponse struct {
	Filename        string            `json:"filename"`
	OriginalResume  map[string]string `json:"original_resume"`
	ImprovedResume  map[string]string `json:"improved_resume"`
	Analysis        ResumeAnalysis    `json:"analysis"`
}

// ResumeAnalysis carries the similarity metrics attached to an upload
// response. The values are static placeholders; real semantic scoring
// is out of scope.
type ResumeAnalysis struct {
	SimilarityScore int      `json:"similarity_score"`
	MissingKeywords []string `json:"missing_keywords"`
}

// ErrorResponse is the payload for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AnswerAnalyzed is the event published after an interview answer has
// been scored.
type AnswerAnalyzed struct {
	EventType    string `json:"eventType"`
	RequestID    string `json:"requestId"`
	Transcript   string `json:"transcript"`
	ClarityScore int    `json:"clarityScore"`
	Improvements string `json:"improvements"`
	Timestamp    int64  `json:"timestamp"`
}

// ResumeOptimized is the event published after a resume has been
// rewritten.
type ResumeOptimized struct {
	EventType string `json:"eventType"`
	RequestID string `json:"requestId"`
	Filename  string `json:"filename"`
	Sections  int    `json:"sections"`
	Timestamp int64  `json:"timestamp"`
}
