// Package questionnaire holds the daily check-in form: three required
// single-choice questions whose answers aggregate into one integer impact
// score submitted to the server.
package questionnaire

import "fmt"

// State is the lifecycle of the check-in form for the current session.
type State int

const (
	Unanswered State = iota
	PartiallyAnswered
	FullyAnswered
	Submitting
	SubmittedToday
)

func (s State) String() string {
	switch s {
	case Unanswered:
		return "unanswered"
	case PartiallyAnswered:
		return "partially answered"
	case FullyAnswered:
		return "fully answered"
	case Submitting:
		return "submitting"
	case SubmittedToday:
		return "submitted today"
	default:
		return "unknown"
	}
}

// ValidationError reports a locally rejected submission. It never reaches
// the network.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Option is one selectable answer. Weight is its explicit contribution to
// the impact score; greener choices weigh more.
type Option struct {
	Label  string
	Weight int
}

// Question is one required single-choice group.
type Question struct {
	ID      string
	Prompt  string
	Options []Option
}

// Questions returns the daily check-in questions in display order.
func Questions() []Question {
	return []Question{
		{
			ID:     "commute",
			Prompt: "How did you commute today?",
			Options: []Option{
				{Label: "🚶 Walk/Cycle", Weight: 3},
				{Label: "🚌 Public Transport", Weight: 2},
				{Label: "👥 Car (carpool)", Weight: 1},
				{Label: "🚗 Car (single)", Weight: 0},
			},
		},
		{
			ID:     "meat",
			Prompt: "Did you consume meat today?",
			Options: []Option{
				{Label: "🥬 No (Plant-based)", Weight: 2},
				{Label: "🥩 Yes", Weight: 0},
			},
		},
		{
			ID:     "electronics",
			Prompt: "Did you unplug unused electronics?",
			Options: []Option{
				{Label: "✅ Yes, all", Weight: 2},
				{Label: "⚡ Some", Weight: 1},
				{Label: "❌ No", Weight: 0},
			},
		},
	}
}

// Form tracks selections and drives the state machine. It is not safe for
// concurrent use; one form belongs to one view.
type Form struct {
	questions []Question
	selected  map[string]int
	state     State
}

// NewForm creates an empty form over the standard questions. Pass
// submittedToday true when a submission was already recorded for the
// current calendar day, which starts the form disabled.
func NewForm(submittedToday bool) *Form {
	f := &Form{
		questions: Questions(),
		selected:  make(map[string]int),
	}
	if submittedToday {
		f.state = SubmittedToday
	}
	return f
}

// Questions returns the form's questions in display order.
func (f *Form) Questions() []Question { return f.questions }

// State returns the current lifecycle state.
func (f *Form) State() State { return f.state }

// Selected returns the chosen option index for a question and whether one
// has been chosen.
func (f *Form) Selected(questionID string) (int, bool) {
	idx, ok := f.selected[questionID]
	return idx, ok
}

// Select records an answer. Re-selecting a question replaces its previous
// answer; a selection never removes one. Selections are rejected once the
// form is submitting or already submitted.
func (f *Form) Select(questionID string, option int) error {
	if f.state == Submitting || f.state == SubmittedToday {
		return &ValidationError{Reason: "check-in already submitted for today"}
	}

	q := f.question(questionID)
	if q == nil {
		return &ValidationError{Reason: fmt.Sprintf("unknown question %q", questionID)}
	}
	if option < 0 || option >= len(q.Options) {
		return &ValidationError{Reason: fmt.Sprintf("question %q has no option %d", questionID, option)}
	}

	f.selected[questionID] = option
	if len(f.selected) == len(f.questions) {
		f.state = FullyAnswered
	} else {
		f.state = PartiallyAnswered
	}
	return nil
}

func (f *Form) question(id string) *Question {
	for i := range f.questions {
		if f.questions[i].ID == id {
			return &f.questions[i]
		}
	}
	return nil
}

// Answered returns how many questions have an answer and the total count.
func (f *Form) Answered() (answered, total int) {
	return len(f.selected), len(f.questions)
}

// Progress is the answered ratio in [0,1] for the progress bar.
func (f *Form) Progress() float64 {
	answered, total := f.Answered()
	return float64(answered) / float64(total)
}

// Impact sums the weights of the selected options. It fails with a
// ValidationError unless every question has exactly one selection.
func (f *Form) Impact() (int, error) {
	if len(f.selected) != len(f.questions) {
		answered, total := f.Answered()
		return 0, &ValidationError{Reason: fmt.Sprintf("answer all questions before submitting (%d/%d)", answered, total)}
	}

	sum := 0
	for _, q := range f.questions {
		sum += q.Options[f.selected[q.ID]].Weight
	}
	return sum, nil
}

// BeginSubmit moves the form into Submitting. It validates first, so a
// caller that sees an error knows no network call should be made.
func (f *Form) BeginSubmit() (int, error) {
	if f.state == Submitting {
		return 0, &ValidationError{Reason: "submission already in progress"}
	}
	if f.state == SubmittedToday {
		return 0, &ValidationError{Reason: "check-in already submitted for today"}
	}

	impact, err := f.Impact()
	if err != nil {
		return 0, err
	}
	f.state = Submitting
	return impact, nil
}

// SubmitSucceeded finalizes a successful submission; the form stays
// disabled until the next calendar day.
func (f *Form) SubmitSucceeded() {
	f.state = SubmittedToday
}

// SubmitFailed reverts a failed submission so the user can retry.
func (f *Form) SubmitFailed() {
	f.state = FullyAnswered
}
