package render

import (
	"math"
	"strings"
	"testing"

	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/models"
)

func TestRingOffset(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		radius float64
		want   float64
	}{
		{"zero score fills nothing", 0, constants.ScoreRingRadiusLarge, Circumference(constants.ScoreRingRadiusLarge)},
		{"full score fills everything", 100, constants.ScoreRingRadiusLarge, 0},
		{"zero score compact ring", 0, constants.ScoreRingRadiusCompact, Circumference(constants.ScoreRingRadiusCompact)},
		{"full score compact ring", 100, constants.ScoreRingRadiusCompact, 0},
		{"half score is half the circumference", 50, constants.ScoreRingRadiusLarge, Circumference(constants.ScoreRingRadiusLarge) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RingOffset(tt.score, tt.radius)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RingOffset(%d, %v) = %v, want %v", tt.score, tt.radius, got, tt.want)
			}
		})
	}
}

func TestRingOffsetMonotonic(t *testing.T) {
	prev := RingOffset(0, constants.ScoreRingRadiusLarge)
	for score := 1; score <= 100; score++ {
		got := RingOffset(score, constants.ScoreRingRadiusLarge)
		if got >= prev {
			t.Fatalf("offset must shrink as score grows: score %d gave %v after %v", score, got, prev)
		}
		prev = got
	}
}

func TestCarbonText(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.345, "12.3 kg CO2e"},
		{0, "0.0 kg CO2e"},
		{9.96, "10.0 kg CO2e"},
	}

	for _, tt := range tests {
		if got := CarbonText(tt.in); got != tt.want {
			t.Errorf("CarbonText(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStreakLabels(t *testing.T) {
	if got := StreakText(4); got != "4 days" {
		t.Errorf("StreakText(4) = %q", got)
	}
	if got := StreakCounter(4); got != "4" {
		t.Errorf("StreakCounter(4) = %q", got)
	}
}

func TestHabitListEmptyState(t *testing.T) {
	out := HabitList(nil)
	if !strings.Contains(out, "No habits yet") {
		t.Errorf("empty habit list should show the empty-state message, got %q", out)
	}
}

func TestHabitRowViews(t *testing.T) {
	read := HabitRow(models.Habit{ID: 1, Text: "recycle", Completed: true})
	if !strings.Contains(read, "[x]") || !strings.Contains(read, "recycle") {
		t.Errorf("completed read view = %q", read)
	}

	open := HabitRow(models.Habit{ID: 1, Text: "recycle"})
	if !strings.Contains(open, "[ ]") {
		t.Errorf("incomplete read view = %q", open)
	}

	editing := HabitRow(models.Habit{ID: 1, Text: "recycle", Editing: true})
	if !strings.Contains(editing, "editing") {
		t.Errorf("edit view = %q", editing)
	}
}

func TestDashboardIdempotent(t *testing.T) {
	state := models.UserState{
		Username:            "ada",
		Streak:              4,
		CarbonFootprint:     12.34,
		SustainabilityScore: 73,
		Habits:              []models.Habit{{ID: 1, Text: "recycle", Completed: true}},
	}
	achievementList := []models.Achievement{
		{Type: "first_checkin", Title: "First Check-in", Unlocked: true},
		{Type: "streak_3", Title: "3-Day Streak"},
	}

	first := Dashboard(state, achievementList)
	second := Dashboard(state, achievementList)
	if first != second {
		t.Error("Dashboard must render identically for unchanged state")
	}

	for _, fn := range []func() string{
		func() string { return HabitList(state.Habits) },
		func() string { return AchievementGrid(achievementList) },
		func() string { return AchievementsPreview(achievementList) },
		func() string { return SuggestionCards(nil) },
	} {
		if fn() != fn() {
			t.Error("render output must be idempotent")
		}
	}
}

func TestDashboardContent(t *testing.T) {
	state := models.UserState{Username: "ada", Streak: 2, CarbonFootprint: 8.15, SustainabilityScore: 55}
	out := Dashboard(state, nil)

	for _, want := range []string{"ada", "8.1 kg CO2e", "2 days", "55", "growing"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q:\n%s", want, out)
		}
	}
}

func TestAchievementsPreviewSelection(t *testing.T) {
	list := []models.Achievement{
		{Type: "first_checkin", Title: "First Check-in"},
		{Type: "streak_3", Title: "3-Day Streak", Unlocked: true},
		{Type: "streak_7", Title: "7-Day Streak", Unlocked: true},
		{Type: "streak_30", Title: "Monthly Master", Unlocked: true},
		{Type: "habits_5", Title: "5 Habits", Unlocked: true},
	}

	out := AchievementsPreview(list)
	for _, want := range []string{"3-Day Streak", "7-Day Streak", "Monthly Master"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing unlocked %q", want)
		}
	}
	for _, reject := range []string{"First Check-in", "5 Habits"} {
		if strings.Contains(out, reject) {
			t.Errorf("preview should not include %q", reject)
		}
	}
}

func TestAchievementGridUnknownType(t *testing.T) {
	out := AchievementGrid([]models.Achievement{{Type: "llama_whisperer", Title: "Mystery", Unlocked: true}})
	if !strings.Contains(out, "🏆") || !strings.Contains(out, "Achievement unlocked!") {
		t.Errorf("unknown type must fall back to defaults, got %q", out)
	}
}

func TestSuggestionCardsFallback(t *testing.T) {
	out := SuggestionCards(nil)
	if !strings.Contains(out, "Reduce Meat Consumption") {
		t.Error("empty suggestion list must fall back to the built-in cards")
	}

	out = SuggestionCards([]models.Suggestion{{Title: "Go paperless", Reason: "less waste", CarbonReduction: "2kg/mo"}})
	if !strings.Contains(out, "Go paperless") || strings.Contains(out, "Reduce Meat Consumption") {
		t.Errorf("server suggestions must replace the defaults, got %q", out)
	}
}

func TestCompactWidgetGauge(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		filled int
	}{
		{"zero score leaves the gauge empty", 0, 0},
		{"half score fills half the gauge", 50, 5},
		{"full score fills the gauge", 100, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := CompactWidget(models.UserState{SustainabilityScore: tt.score, Streak: 4})
			if got := strings.Count(out, "●"); got != tt.filled {
				t.Errorf("CompactWidget score %d filled %d cells, want %d:\n%s", tt.score, got, tt.filled, out)
			}
			if got := strings.Count(out, "○"); got != 10-tt.filled {
				t.Errorf("CompactWidget score %d left %d cells empty, want %d:\n%s", tt.score, got, 10-tt.filled, out)
			}
			if !strings.Contains(out, "🔥 4") {
				t.Errorf("CompactWidget missing streak counter:\n%s", out)
			}
		})
	}
}

func TestEcosystemHealthBands(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "thriving"},
		{80, "thriving"},
		{60, "growing"},
		{25, "sprouting"},
		{5, "needs care"},
	}

	for _, tt := range tests {
		if got := EcosystemHealth(tt.score); !strings.Contains(got, tt.want) {
			t.Errorf("EcosystemHealth(%d) = %q, want substring %q", tt.score, got, tt.want)
		}
	}
}
