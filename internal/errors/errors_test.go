package errors

import (
	"errors"
	"testing"

	"github.com/ecotrack/ecotrack-cli/internal/api"
)

func TestNotice(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		err      error
		expected string
	}{
		{
			name:     "network failure",
			action:   "Could not load habits",
			err:      &api.NetworkError{Op: "get_user_data", Err: errors.New("connection refused")},
			expected: "Could not load habits: cannot reach the server",
		},
		{
			name:     "http failure with server message",
			action:   "Could not save habit",
			err:      &api.HTTPError{Op: "save_habit", StatusCode: 403, Message: "Not logged in"},
			expected: "Could not save habit: Not logged in",
		},
		{
			name:     "http failure without server message",
			action:   "Could not save habit",
			err:      &api.HTTPError{Op: "save_habit", StatusCode: 500},
			expected: "Could not save habit: server returned 500",
		},
		{
			name:     "parse failure",
			action:   "Could not load achievements",
			err:      &api.ParseError{Op: "get_achievements", Err: errors.New("unexpected EOF")},
			expected: "Could not load achievements: unexpected server response",
		},
		{
			name:     "other failure passes through",
			action:   "Check-in failed",
			err:      errors.New("answer all questions first"),
			expected: "Check-in failed: answer all questions first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Notice(tt.action, tt.err)
			if result != tt.expected {
				t.Errorf("Notice(%q, %v) = %q, want %q", tt.action, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}
