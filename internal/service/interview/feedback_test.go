package interview

import (
	"math/rand"
	"strings"
	"testing"
)

func TestThresholdRules(t *testing.T) {
	rules := NewThresholdRules()

	tests := []struct {
		name         string
		transcript   string
		clarityScore int
		want         string
	}{
		{
			name:         "both warnings",
			transcript:   "hi",
			clarityScore: 30,
			want:         clarityWarning + " " + elaborateWarning,
		},
		{
			name:         "clarity warning only",
			transcript:   "a longer answer text",
			clarityScore: 30,
			want:         clarityWarning,
		},
		{
			name:         "elaborate warning only",
			transcript:   "short",
			clarityScore: 80,
			want:         elaborateWarning,
		},
		{
			name:         "positive message",
			transcript:   "a confident and complete answer with plenty of detail",
			clarityScore: 80,
			want:         positiveMessage,
		},
		{
			name:         "boundary score 50 does not warn",
			transcript:   "an answer of reasonable length",
			clarityScore: 50,
			want:         positiveMessage,
		},
		{
			name:         "boundary length 10 does not warn",
			transcript:   "exactly10!",
			clarityScore: 75,
			want:         positiveMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.Feedback(tt.transcript, tt.clarityScore)
			if got != tt.want {
				t.Errorf("Feedback(%q, %d) = %q, want %q", tt.transcript, tt.clarityScore, got, tt.want)
			}
		})
	}
}

func TestThresholdRules_SpecExamples(t *testing.T) {
	rules := NewThresholdRules()

	// score 30, transcript length 5: both warnings present
	got := rules.Feedback("hello", 30)
	if !strings.Contains(got, clarityWarning) || !strings.Contains(got, elaborateWarning) {
		t.Errorf("expected both warnings, got %q", got)
	}

	// score 80, transcript length 50: generic positive message only
	long := strings.Repeat("workplace challenge ", 3)[:50]
	if got := rules.Feedback(long, 80); got != positiveMessage {
		t.Errorf("expected positive message, got %q", got)
	}
}

func TestRandomPool_DrawsFromPool(t *testing.T) {
	pool := NewRandomPool(rand.New(rand.NewSource(1)))

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		msg := pool.Feedback("anything", 100)
		found := false
		for _, candidate := range feedbackPool {
			if msg == candidate {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("message not from pool: %q", msg)
		}
		seen[msg] = true
	}

	// With 200 draws every pool entry should appear.
	if len(seen) != len(feedbackPool) {
		t.Errorf("expected all %d pool messages, saw %d", len(feedbackPool), len(seen))
	}
}

func TestRandomPool_IgnoresInput(t *testing.T) {
	// Same seed, different inputs: identical draw sequence.
	a := NewRandomPool(rand.New(rand.NewSource(42)))
	b := NewRandomPool(rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		if a.Feedback("", 0) != b.Feedback("a long and thorough answer", 100) {
			t.Fatal("random pool output depends on input")
		}
	}
}

func TestStrategyFor(t *testing.T) {
	if _, ok := StrategyFor("random").(*RandomPool); !ok {
		t.Error("expected RandomPool for 'random'")
	}
	if _, ok := StrategyFor("threshold").(*ThresholdRules); !ok {
		t.Error("expected ThresholdRules for 'threshold'")
	}
	if _, ok := StrategyFor("unknown").(*ThresholdRules); !ok {
		t.Error("expected ThresholdRules fallback for unknown policy")
	}
}
