package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"ai-interview-prep-service/internal/models"
	"ai-interview-prep-service/internal/observability/logging"
	"ai-interview-prep-service/internal/observability/metrics"
	"ai-interview-prep-service/internal/service/audio"
	"ai-interview-prep-service/internal/service/interview"
	"ai-interview-prep-service/internal/service/resume"
	"ai-interview-prep-service/internal/service/tts"
	"ai-interview-prep-service/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxUploadBytes caps multipart memory buffering; larger parts spill
// to disk.
const maxUploadBytes = 32 << 20

// AnswerAnalyzer scores one recorded interview answer.
type AnswerAnalyzer interface {
	Analyze(ctx context.Context, requestID string, rawAudio io.Reader) (audio.Analysis, error)
}

// ResumeOptimizer processes one uploaded resume against a job
// description.
type ResumeOptimizer interface {
	Optimize(ctx context.Context, requestID, filename string, file io.Reader, jobDescription string) (resume.Optimization, error)
}

// Handlers implements the API endpoints.
type Handlers struct {
	questions   *interview.Questions
	analyzer    AnswerAnalyzer
	optimizer   ResumeOptimizer
	synthesizer tts.Synthesizer // nil disables question audio
	store       *storage.Store
	metrics     *metrics.Metrics
}

// NewHandlers creates the endpoint set from the service components.
func NewHandlers(
	questions *interview.Questions,
	analyzer AnswerAnalyzer,
	optimizer ResumeOptimizer,
	synthesizer tts.Synthesizer,
	store *storage.Store,
) *Handlers {
	return &Handlers{
		questions:   questions,
		analyzer:    analyzer,
		optimizer:   optimizer,
		synthesizer: synthesizer,
		store:       store,
		metrics:     metrics.DefaultMetrics,
	}
}

// GetQuestion serves the scripted prompt at {index}. A non-integer or
// out-of-range index yields the terminal sentinel rather than an
// error; the client treats it as end-of-interview.
func (h *Handlers) GetQuestion(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetReqID(r.Context())
	logger := logging.WithRequest(requestID, "get_question")

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		index = -1
	}
	question := h.questions.Get(index)
	h.metrics.RecordQuestionServed()

	resp := models.QuestionResponse{
		Question: question.Prompt,
		Index:    question.Index,
	}

	if h.synthesizer != nil && question.Index != -1 {
		data, err := h.synthesizer.Synthesize(r.Context(), question.Prompt)
		h.metrics.RecordSynthesis(err)
		if err != nil {
			// Text-only degradation; the prompt itself still renders.
			logger.Warn().Err(err).Int("index", question.Index).Msg("Question audio synthesis failed")
		} else if key, err := h.store.SaveBytes(data, "mp3"); err != nil {
			logger.Warn().Err(err).Msg("Failed to store synthesized audio")
		} else {
			resp.AudioURL = "/audio/" + key
		}
	}

	logger.Info().Int("index", question.Index).Msg("Question served")
	writeJSON(w, http.StatusOK, resp)
}

// AnalyzeResponse ingests a recorded answer from the multipart "audio"
// part and returns its clarity score and feedback.
func (h *Handlers) AnalyzeResponse(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetReqID(r.Context())
	logger := logging.WithRequest(requestID, "analyze_response")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No audio uploaded")
		return
	}
	file, header, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No audio uploaded")
		return
	}
	defer file.Close()
	h.metrics.RecordAudioReceived(header.Size)

	analysis, err := h.analyzer.Analyze(r.Context(), requestID, file)
	if err != nil {
		logger.Error().Err(err).Msg("Answer analysis failed")
		if errors.Is(err, audio.ErrTranscription) {
			writeError(w, http.StatusInternalServerError, "Speech processing failed. Please try again.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Audio conversion failed.")
		return
	}

	writeJSON(w, http.StatusOK, models.AnalysisResponse{
		ClarityScore: analysis.ClarityScore,
		FinalScore:   analysis.FinalScore,
		Improvements: analysis.Improvements,
	})
}

// Upload runs the resume flow: multipart "resume" file plus a
// "job_description" form field.
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetReqID(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Resume and job description required")
		return
	}
	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Resume and job description required")
		return
	}
	defer file.Close()

	jobDescription := r.FormValue("job_description")
	if jobDescription == "" {
		writeError(w, http.StatusBadRequest, "Resume and job description required")
		return
	}

	logger := logging.WithUpload(requestID, header.Filename)

	result, err := h.optimizer.Optimize(r.Context(), requestID, header.Filename, file, jobDescription)
	if err != nil {
		logger.Error().Err(err).Msg("Resume optimization failed")
		if errors.Is(err, resume.ErrUnsupportedFormat) {
			writeError(w, http.StatusBadRequest, "Unsupported file format")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to process resume")
		return
	}

	writeJSON(w, http.StatusOK, models.UploadResponse{
		Filename:       result.Filename,
		OriginalResume: result.Original,
		ImprovedResume: result.Improved,
		Analysis:       result.Analysis,
	})
}

// ServeAudio streams previously synthesized question audio by storage
// key.
func (h *Handlers) ServeAudio(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	path, err := h.store.Path(key)
	if err != nil {
		writeError(w, http.StatusNotFound, "Audio not found")
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, path)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger := logging.WithComponent("http")
		logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}
