package suggestions

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecotrack/ecotrack-cli/internal/models"
)

func TestEmptyListShowsDefaults(t *testing.T) {
	m := New(nil, 80, 24)

	view := m.View()
	for _, want := range []string{
		"Reduce Meat Consumption",
		"Switch to LED Light Bulbs",
		"Compost Food Waste",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing default suggestion %q", want)
		}
	}
}

func TestFetchFailureFallsBackToDefaults(t *testing.T) {
	m := New([]models.Suggestion{
		{Title: "Go paperless", Reason: "less waste", CarbonReduction: "2kg/mo"},
	}, 80, 24)

	if !strings.Contains(m.View(), "Go paperless") {
		t.Fatal("server suggestion not shown")
	}

	// a failed refresh replaces the list with nothing; the defaults take over
	m.SetSuggestions(nil)
	if !strings.Contains(m.View(), "Reduce Meat Consumption") {
		t.Error("empty list must fall back to the default cards")
	}
	if strings.Contains(m.View(), "Go paperless") {
		t.Error("stale server suggestion still shown after reset")
	}
}

func TestStartFirstDefaultSuggestion(t *testing.T) {
	m := New(nil, 80, 24)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a default card must emit a start message")
	}
	start, ok := cmd().(StartHabitMsg)
	if !ok {
		t.Fatalf("expected StartHabitMsg, got %T", cmd())
	}
	if start.Title != "Reduce Meat Consumption" {
		t.Errorf("started %q, want the first default card", start.Title)
	}
}
