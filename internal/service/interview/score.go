package interview

import "strings"

// maxClarityScore caps the word-count heuristic.
const maxClarityScore = 100

// ClarityScore derives a 0-100 score from the transcript word count:
// min(100, 4 x words). It is a purely lexical proxy; an empty or
// unrecognized transcript scores zero.
func ClarityScore(transcript string) int {
	words := len(strings.Fields(transcript))
	score := words * 4
	if score > maxClarityScore {
		return maxClarityScore
	}
	return score
}
