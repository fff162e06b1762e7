package questionnaire

import (
	"errors"
	"testing"
)

func TestStateTransitions(t *testing.T) {
	f := NewForm(false)
	if f.State() != Unanswered {
		t.Fatalf("new form state = %v, want Unanswered", f.State())
	}

	if err := f.Select("commute", 0); err != nil {
		t.Fatal(err)
	}
	if f.State() != PartiallyAnswered {
		t.Errorf("after one answer state = %v, want PartiallyAnswered", f.State())
	}

	if err := f.Select("meat", 0); err != nil {
		t.Fatal(err)
	}
	if err := f.Select("electronics", 1); err != nil {
		t.Fatal(err)
	}
	if f.State() != FullyAnswered {
		t.Errorf("after all answers state = %v, want FullyAnswered", f.State())
	}

	impact, err := f.BeginSubmit()
	if err != nil {
		t.Fatal(err)
	}
	if f.State() != Submitting {
		t.Errorf("after BeginSubmit state = %v, want Submitting", f.State())
	}
	// Walk/Cycle (3) + plant-based (2) + some unplugged (1)
	if impact != 6 {
		t.Errorf("impact = %d, want 6", impact)
	}

	f.SubmitSucceeded()
	if f.State() != SubmittedToday {
		t.Errorf("after success state = %v, want SubmittedToday", f.State())
	}
}

func TestIncompleteSubmitBlocked(t *testing.T) {
	f := NewForm(false)
	f.Select("commute", 0)

	_, err := f.BeginSubmit()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("incomplete submit should fail with ValidationError, got %v", err)
	}
	if f.State() != PartiallyAnswered {
		t.Errorf("blocked submit must not change state, got %v", f.State())
	}
}

func TestReselectionReplacesAnswer(t *testing.T) {
	f := NewForm(false)
	f.Select("commute", 3) // Car (single), weight 0
	f.Select("meat", 1)    // Yes, weight 0
	f.Select("electronics", 2)

	f.Select("commute", 0) // switch to Walk/Cycle, weight 3

	impact, err := f.BeginSubmit()
	if err != nil {
		t.Fatal(err)
	}
	if impact != 3 {
		t.Errorf("impact after reselect = %d, want 3", impact)
	}

	answered, total := f.Answered()
	if answered != 3 || total != 3 {
		t.Errorf("Answered() = %d/%d, want 3/3", answered, total)
	}
}

func TestSubmitFailureReverts(t *testing.T) {
	f := NewForm(false)
	f.Select("commute", 0)
	f.Select("meat", 0)
	f.Select("electronics", 0)

	if _, err := f.BeginSubmit(); err != nil {
		t.Fatal(err)
	}
	f.SubmitFailed()
	if f.State() != FullyAnswered {
		t.Errorf("failed submit must revert to FullyAnswered, got %v", f.State())
	}

	// retry is allowed after a failure
	if _, err := f.BeginSubmit(); err != nil {
		t.Errorf("retry after failure should be allowed, got %v", err)
	}
}

func TestAlreadySubmittedToday(t *testing.T) {
	f := NewForm(true)
	if f.State() != SubmittedToday {
		t.Fatalf("pre-submitted form state = %v, want SubmittedToday", f.State())
	}

	if err := f.Select("commute", 0); err == nil {
		t.Error("selections must be rejected after submission")
	}
	if _, err := f.BeginSubmit(); err == nil {
		t.Error("resubmission must be rejected")
	}
}

func TestInvalidSelections(t *testing.T) {
	f := NewForm(false)

	tests := []struct {
		name       string
		questionID string
		option     int
	}{
		{"unknown question", "favorite_color", 0},
		{"option out of range", "commute", 99},
		{"negative option", "commute", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.Select(tt.questionID, tt.option)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("Select(%q, %d) error = %v, want ValidationError", tt.questionID, tt.option, err)
			}
		})
	}

	if f.State() != Unanswered {
		t.Errorf("rejected selections must not advance state, got %v", f.State())
	}
}

func TestProgress(t *testing.T) {
	f := NewForm(false)
	if f.Progress() != 0 {
		t.Errorf("empty form progress = %v", f.Progress())
	}
	f.Select("commute", 0)
	if got := f.Progress(); got < 0.33 || got > 0.34 {
		t.Errorf("one-answer progress = %v, want ~1/3", got)
	}
	f.Select("meat", 0)
	f.Select("electronics", 0)
	if f.Progress() != 1 {
		t.Errorf("full form progress = %v, want 1", f.Progress())
	}
}
