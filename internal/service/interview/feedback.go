package interview

import (
	"math/rand"
	"strings"
)

// FeedbackStrategy produces improvement text for a scored answer.
//
// Two strategies exist and disagree for the same input: the random
// pool ignores the answer entirely, the threshold rules react to it.
// The default is chosen by configuration; both stay available.
type FeedbackStrategy interface {
	Feedback(transcript string, clarityScore int) string
}

// feedbackPool is the fixed set of canned messages for RandomPool.
var feedbackPool = []string{
	"You have a strong presence and a confident tone! Try elaborating on your answers for more depth.",
	"Great response! To improve, consider adding specific examples to support your points.",
	"Your speech clarity is solid! Next time, try varying your tone to sound more engaging.",
	"You showed good enthusiasm! Consider slowing down slightly for better articulation.",
}

// RandomPool selects feedback uniformly at random from a fixed pool,
// independent of the transcript and score.
type RandomPool struct {
	rng *rand.Rand
}

// NewRandomPool returns a RandomPool backed by the given source. A nil
// rng falls back to the package-level generator.
func NewRandomPool(rng *rand.Rand) *RandomPool {
	return &RandomPool{rng: rng}
}

func (p *RandomPool) Feedback(transcript string, clarityScore int) string {
	if p.rng != nil {
		return feedbackPool[p.rng.Intn(len(feedbackPool))]
	}
	return feedbackPool[rand.Intn(len(feedbackPool))]
}

// Threshold rule messages.
const (
	clarityWarning   = "Try to speak more clearly and articulate your words."
	elaborateWarning = "Try to provide more detailed answers and elaborate your thoughts."
	positiveMessage  = "Great job! You performed well. Continue practicing your responses."

	clarityThreshold    = 50
	transcriptMinLength = 10
)

// ThresholdRules derives feedback from the score and transcript:
// a low score triggers the clarity warning, a short transcript the
// elaborate warning; with neither triggered a single positive message
// is returned; triggered warnings are joined with a space.
type ThresholdRules struct{}

// NewThresholdRules returns the threshold-based strategy.
func NewThresholdRules() *ThresholdRules {
	return &ThresholdRules{}
}

func (t *ThresholdRules) Feedback(transcript string, clarityScore int) string {
	var suggestions []string
	if clarityScore < clarityThreshold {
		suggestions = append(suggestions, clarityWarning)
	}
	if len(transcript) < transcriptMinLength {
		suggestions = append(suggestions, elaborateWarning)
	}
	if len(suggestions) == 0 {
		return positiveMessage
	}
	return strings.Join(suggestions, " ")
}

// StrategyFor maps a configured policy name to its strategy. Unknown
// names fall back to threshold rules.
func StrategyFor(policy string) FeedbackStrategy {
	if policy == "random" {
		return NewRandomPool(nil)
	}
	return NewThresholdRules()
}
