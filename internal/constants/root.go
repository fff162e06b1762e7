package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateDashboard SessionState = iota
	StateHabits
	StateCheckin
	StateAchievements
	StateSuggestions
	StateChat
	StateAddHabit
	StateEditHabit
	StateConfirmDelete

	// NumMainTabs is the number of top-level tab views (states past this are modal)
	NumMainTabs = 6
)

const (
	AppName            = "ecotrack"
	DefaultKeyringUser = "session-credentials"
	DefaultConfigDir   = "~/.config/ecotrack"
	DefaultServerURL   = "http://127.0.0.1:8000"
	Version            = "v0.3.0"

	// DateFormat is the calendar-day format used for check-in bookkeeping (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// CSRFCookieName is the cookie the server sets; its value is echoed back
	// in the CSRFHeader on every mutating request.
	CSRFCookieName = "csrftoken"
	CSRFHeader     = "X-CSRFToken"

	// HTTPTimeout bounds a single gateway call. There is no retry; a failed
	// call surfaces one notice and ends the operation.
	HTTPTimeout = 15 * time.Second

	// ChatPollInterval is the cadence of the community message poller.
	ChatPollInterval = 3 * time.Second

	// ScoreRingRadiusLarge is the radius of the dashboard score ring;
	// ScoreRingRadiusCompact is the radius used by the compact widget.
	ScoreRingRadiusLarge   = 54.0
	ScoreRingRadiusCompact = 45.0

	// Notify constants
	NotifierLockfileName   = "ecotrack-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.ecotrack.tray"
)
