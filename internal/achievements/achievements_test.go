package achievements

import (
	"testing"

	"github.com/ecotrack/ecotrack-cli/internal/models"
)

func TestIcon(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		want string
	}{
		{"known type", "first_checkin", "🌱"},
		{"score milestone", "score_80", "🏆"},
		{"unknown type falls back to trophy", "llama_whisperer", "🏆"},
		{"empty type falls back to trophy", "", "🏆"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Icon(tt.typ); got != tt.want {
				t.Errorf("Icon(%q) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		want string
	}{
		{"known type", "streak_7", "Maintain a 7-day streak"},
		{"unknown type", "llama_whisperer", "Achievement unlocked!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Description(tt.typ); got != tt.want {
				t.Errorf("Description(%q) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func a(typ string, unlocked bool) models.Achievement {
	return models.Achievement{Type: typ, Unlocked: unlocked}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		in   []models.Achievement
		want []string
	}{
		{
			name: "three or more unlocked shows first three unlocked",
			in:   []models.Achievement{a("a", false), a("b", true), a("c", true), a("d", true), a("e", true)},
			want: []string{"b", "c", "d"},
		},
		{
			name: "fewer than three unlocked falls back to first three overall",
			in:   []models.Achievement{a("a", false), a("b", true), a("c", false), a("d", true)},
			want: []string{"a", "b", "c"},
		},
		{
			name: "nothing unlocked still previews",
			in:   []models.Achievement{a("a", false), a("b", false)},
			want: []string{"a", "b"},
		},
		{
			name: "empty list",
			in:   nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preview(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Preview() returned %d achievements, want %d", len(got), len(tt.want))
			}
			for i, typ := range tt.want {
				if got[i].Type != typ {
					t.Errorf("Preview()[%d].Type = %q, want %q", i, got[i].Type, typ)
				}
			}
		})
	}
}
