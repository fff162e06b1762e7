package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/ecotrack/ecotrack-cli/internal/api"
	"github.com/ecotrack/ecotrack-cli/internal/logger"
)

// Notice converts a failed action into the single user-visible line shown
// for it. Gateway failures collapse to a short cause; the raw error never
// reaches the screen.
func Notice(action string, err error) string {
	var netErr *api.NetworkError
	var httpErr *api.HTTPError
	var parseErr *api.ParseError
	switch {
	case stderrors.As(err, &netErr):
		return fmt.Sprintf("%s: cannot reach the server", action)
	case stderrors.As(err, &httpErr):
		if httpErr.Message != "" {
			return fmt.Sprintf("%s: %s", action, httpErr.Message)
		}
		return fmt.Sprintf("%s: server returned %d", action, httpErr.StatusCode)
	case stderrors.As(err, &parseErr):
		return fmt.Sprintf("%s: unexpected server response", action)
	default:
		return fmt.Sprintf("%s: %v", action, err)
	}
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
