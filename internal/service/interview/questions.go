// Package interview implements the scripted mock-interview flow:
// question sequencing, clarity scoring and feedback generation.
package interview

// Question is a single scripted interview prompt.
type Question struct {
	Prompt string
	Index  int
}

// CompletePrompt is the terminal sentinel returned once the scripted
// question list is exhausted.
const CompletePrompt = "Interview Complete!"

// DefaultPrompts is the scripted interview, in order. The first entry
// is the welcome message and the last announces feedback processing.
var DefaultPrompts = []string{
	"Welcome to your AI Mock Interview. Click 'Next' to begin.",
	"Tell me about yourself.",
	"What are your strengths and weaknesses?",
	"Describe a challenge you've faced at work.",
	"Where do you see yourself in five years?",
	"Why should we hire you?",
	"The interview is complete! Processing your feedback...",
}

// Questions serves prompts from a fixed ordered list.
type Questions struct {
	prompts []string
}

// NewQuestions returns a sequencer over the default prompt list.
func NewQuestions() *Questions {
	return &Questions{prompts: DefaultPrompts}
}

// NewQuestionsFrom returns a sequencer over a custom prompt list.
func NewQuestionsFrom(prompts []string) *Questions {
	return &Questions{prompts: prompts}
}

// Len returns the number of scripted prompts.
func (q *Questions) Len() int {
	return len(q.prompts)
}

// Get returns the prompt at index. Any index outside the list,
// including negative ones, maps to the terminal sentinel with
// index -1.
func (q *Questions) Get(index int) Question {
	if index < 0 || index >= len(q.prompts) {
		return Question{Prompt: CompletePrompt, Index: -1}
	}
	return Question{Prompt: q.prompts[index], Index: index}
}
