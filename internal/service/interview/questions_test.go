package interview

import "testing"

func TestQuestions_Get_InBounds(t *testing.T) {
	q := NewQuestions()

	for i := 0; i < q.Len(); i++ {
		got := q.Get(i)
		if got.Index != i {
			t.Errorf("Get(%d).Index = %d, want %d", i, got.Index, i)
		}
		if got.Prompt != DefaultPrompts[i] {
			t.Errorf("Get(%d).Prompt = %q, want %q", i, got.Prompt, DefaultPrompts[i])
		}
	}
}

func TestQuestions_Get_PastEnd(t *testing.T) {
	q := NewQuestions()

	for _, idx := range []int{q.Len(), q.Len() + 1, 1000} {
		got := q.Get(idx)
		if got.Prompt != CompletePrompt {
			t.Errorf("Get(%d).Prompt = %q, want %q", idx, got.Prompt, CompletePrompt)
		}
		if got.Index != -1 {
			t.Errorf("Get(%d).Index = %d, want -1", idx, got.Index)
		}
	}
}

func TestQuestions_Get_Negative(t *testing.T) {
	q := NewQuestions()

	got := q.Get(-1)
	if got.Prompt != CompletePrompt || got.Index != -1 {
		t.Errorf("Get(-1) = %+v, want terminal sentinel", got)
	}
}

func TestQuestions_CustomList(t *testing.T) {
	q := NewQuestionsFrom([]string{"Only question?"})

	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
	if got := q.Get(0); got.Prompt != "Only question?" || got.Index != 0 {
		t.Errorf("Get(0) = %+v", got)
	}
	if got := q.Get(1); got.Index != -1 {
		t.Errorf("Get(1) = %+v, want terminal sentinel", got)
	}
}
