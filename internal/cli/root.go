package cli

import (
	"context"
	"time"

	"github.com/ecotrack/ecotrack-cli/internal/config"
	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/notify"
	"github.com/ecotrack/ecotrack-cli/internal/store"
)

type Context struct {
	Config   config.Config
	Store    *store.Store
	Notifier notify.Provider
}

// RequestContext returns a context bounded by the single-call HTTP timeout,
// for commands that make one round trip and exit.
func RequestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), constants.HTTPTimeout)
}

// FormatDay renders a calendar day for user-facing output.
func FormatDay(day string) string {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return day
	}
	return t.Format("Mon, Jan 2 2006")
}
