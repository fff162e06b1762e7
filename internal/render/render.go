// Package render projects store state onto terminal output. Every function
// here is a pure projection: the same inputs always produce the same string,
// no matter how many times it is called, and nothing in here mutates state
// or talks to the network.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/ecotrack/ecotrack-cli/internal/achievements"
	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/models"
)

// Circumference returns the perimeter of the score ring with the given
// radius.
func Circumference(radius float64) float64 {
	return 2 * math.Pi * radius
}

// RingOffset converts a sustainability score in [0,100] into the stroke
// offset of a ring gauge: 0 fills nothing (offset equals the circumference)
// and 100 fills the whole ring (offset 0).
func RingOffset(score int, radius float64) float64 {
	c := Circumference(radius)
	return c - (float64(score)/100)*c
}

// scoreBar is the terminal stand-in for the ring gauge. ViewAs is
// deterministic for a fixed score, which keeps Dashboard idempotent.
func scoreBar(score int) string {
	p := progress.New(
		progress.WithGradient("#1a7a3a", "#3ddc84"),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)
	return p.ViewAs(float64(score) / 100)
}

// CarbonText formats the carbon footprint figure to one decimal place.
func CarbonText(kg float64) string {
	return fmt.Sprintf("%.1f kg CO2e", kg)
}

// StreakText is the long-form streak label.
func StreakText(days int) string {
	return fmt.Sprintf("%d days", days)
}

// StreakCounter is the bare-number streak label for compact widgets.
func StreakCounter(days int) string {
	return strconv.Itoa(days)
}

// EcosystemHealth summarizes the score as the health of the user's virtual
// ecosystem.
func EcosystemHealth(score int) string {
	switch {
	case score >= 80:
		return "Your ecosystem is thriving 🌳"
	case score >= 50:
		return "Your ecosystem is growing 🌿"
	case score >= 20:
		return "Your ecosystem is sprouting 🌱"
	default:
		return "Your ecosystem needs care 🍂"
	}
}

// Dashboard renders the main overview: greeting, score gauge, carbon
// figure, streak, and the achievements preview.
func Dashboard(state models.UserState, achievementList []models.Achievement) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hello, "+state.Username) + "\n\n")

	b.WriteString("Sustainability score: " + scoreStyle.Render(strconv.Itoa(state.SustainabilityScore)) + "\n")
	b.WriteString(scoreBar(state.SustainabilityScore) + "\n")
	b.WriteString(mutedStyle.Render(EcosystemHealth(state.SustainabilityScore)) + "\n\n")

	b.WriteString("Carbon footprint: " + CarbonText(state.CarbonFootprint) + "\n")
	b.WriteString("Streak: " + StreakText(state.Streak) + "\n\n")

	b.WriteString(titleStyle.Render("Achievements") + "\n")
	b.WriteString(AchievementsPreview(achievementList))

	return b.String()
}

// compactGaugeWidth is the cell count of the CompactWidget gauge.
const compactGaugeWidth = 10

// CompactWidget is the one-line score summary used where the full
/// dashboard does not fit: a small gauge driven by the compact ring's
// offset math, the score, and the bare streak counter.
func CompactWidget(state models.UserState) string {
	r := RingRadius(true)
	c := Circumference(r)
	filled := int(math.Round((c - RingOffset(state.SustainabilityScore, r)) / c * compactGaugeWidth))

	gauge := strings.Repeat("●", filled) + strings.Repeat("○", compactGaugeWidth-filled)
	return fmt.Sprintf("%s %s · 🔥 %s",
		gauge,
		scoreStyle.Render(strconv.Itoa(state.SustainabilityScore)),
		StreakCounter(state.Streak))
}

// HabitList renders one row per habit, or the empty-state message. A habit
// flagged as editing gets the inline edit view instead of its read view.
func HabitList(habits []models.Habit) string {
	if len(habits) == 0 {
		return mutedStyle.Render("No habits yet. Add one to start tracking.")
	}

	var b strings.Builder
	for i, h := range habits {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(HabitRow(h))
	}
	return b.String()
}

// HabitRow renders a single habit line.
func HabitRow(h models.Habit) string {
	if h.Editing {
		return editStyle.Render(fmt.Sprintf("✎ %s (editing — enter saves, esc cancels)", h.Text))
	}
	box := "[ ]"
	if h.Completed {
		box = "[x]"
	}
	return fmt.Sprintf("%s %s", box, h.Text)
}

// AchievementGrid renders the full achievement list, locked ones dimmed.
func AchievementGrid(list []models.Achievement) string {
	if len(list) == 0 {
		return mutedStyle.Render("No achievements yet.")
	}

	var b strings.Builder
	for i, a := range list {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(achievementLine(a))
	}
	return b.String()
}

// AchievementsPreview renders the dashboard's top-3 selection.
func AchievementsPreview(list []models.Achievement) string {
	preview := achievements.Preview(list)
	if len(preview) == 0 {
		return mutedStyle.Render("Nothing unlocked yet.")
	}

	var b strings.Builder
	for i, a := range preview {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(achievementLine(a))
	}
	return b.String()
}

func achievementLine(a models.Achievement) string {
	line := fmt.Sprintf("%s %s — %s", achievements.Icon(a.Type), a.Title, achievements.Description(a.Type))
	if a.Unlocked {
		return unlockedStyle.Render(line)
	}
	return lockedStyle.Render(line + " (locked)")
}

// DefaultSuggestions is the built-in list shown when the server has none.
func DefaultSuggestions() []models.Suggestion {
	return []models.Suggestion{
		{
			Title:           "Reduce Meat Consumption",
			Reason:          "Producing meat requires significant resources. Opting for plant-based meals reduces your environmental impact.",
			CarbonReduction: "5-10 kg CO2e/month",
		},
		{
			Title:           "Switch to LED Light Bulbs",
			Reason:          "LEDs consume up to 85% less electricity than incandescent bulbs, lowering your carbon emissions and energy bills.",
			CarbonReduction: "3-5 kg CO2e/month",
		},
		{
			Title:           "Compost Food Waste",
			Reason:          "Composting diverts food from landfills, where it produces methane, a potent greenhouse gas.",
			CarbonReduction: "2-4 kg CO2e/month",
		},
	}
}

// SuggestionCards renders suggestions as actionable cards. An empty list
// falls back to the built-in defaults so the view is never blank.
func SuggestionCards(list []models.Suggestion) string {
	if len(list) == 0 {
		list = DefaultSuggestions()
	}

	cards := make([]string, 0, len(list))
	for _, s := range list {
		body := titleStyle.Render(s.Title) + "\n" +
			s.Reason + "\n" +
			mutedStyle.Render(s.CarbonReduction)
		cards = append(cards, cardStyle.Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// Notice renders a user-visible failure banner. Gateway errors end here
// instead of crashing a view.
func Notice(message string) string {
	return noticeStyle.Render("⚠ " + message)
}

// RingRadius picks the radius declared for the given gauge variant, so the
// offset math always matches the graphic it drives.
func RingRadius(compact bool) float64 {
	if compact {
		return constants.ScoreRingRadiusCompact
	}
	return constants.ScoreRingRadiusLarge
}
