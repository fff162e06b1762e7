// Package notify delivers desktop notifications. Delivery is always best
// effort: the dashboard must keep working when no notification channel is
// available, so callers get a Provider chosen once at startup and never
// branch on platform themselves.
package notify

import "github.com/ecotrack/ecotrack-cli/internal/logger"

// Provider is a single notification delivery channel.
type Provider interface {
	// Name identifies the channel for logs and `doctor` output.
	Name() string
	// Enabled reports whether the channel can actually deliver; the UI
	// reads it to gate notification affordances and nothing else.
	Enabled() bool
	// Notify shows a transient message to the user.
	Notify(text string) error
}

// Detect tries the available channels once and returns the first usable
// one. The check covers reachability only; an individual Notify call can
// still fail later (tray restarted, lockfile gone) and callers treat that
// as non-fatal.
func Detect() Provider {
	tray := NewTray()
	if err := tray.Reachable(); err == nil {
		logger.Debug("notification provider selected", "provider", tray.Name())
		return tray
	} else {
		logger.Debug("tray provider unavailable", "error", err)
	}
	return Noop{}
}

// Noop is the fallback provider when no channel is usable. It swallows
// every notification.
type Noop struct{}

func (Noop) Name() string { return "none" }

func (Noop) Enabled() bool { return false }

func (Noop) Notify(text string) error {
	logger.Debug("notification dropped, no provider", "text", text)
	return nil
}
