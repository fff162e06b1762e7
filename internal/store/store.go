package store

import (
	"context"
	"sync"
	"time"

	"github.com/ecotrack/ecotrack-cli/internal/api"
	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/logger"
	"github.com/ecotrack/ecotrack-cli/internal/models"
)

// Store holds the client-side view of server state. Every read path renders
// from here; every write path goes to the server first and then refreshes,
// so the store only ever contains server-confirmed data.
//
// Refreshes replace state wholesale rather than patching it. Each fetch is
// tagged with a sequence number, and a response that arrives after a newer
// one has already been applied is discarded.
type Store struct {
	mu     sync.Mutex
	client *api.Client
	cache  *Cache

	user    models.UserState
	hasUser bool

	achievements []models.Achievement
	suggestions  []models.Suggestion

	// editing habit ids survive a refresh; everything else is replaced.
	editing map[int]bool

	lastCheckinDate string

	userSeq        uint64
	userApplied    uint64
	achSeq         uint64
	achApplied     uint64
	suggestSeq     uint64
	suggestApplied uint64
}

// New creates a store backed by the given gateway client. cache may be nil,
// in which case nothing is persisted between sessions.
func New(client *api.Client, cache *Cache) *Store {
	s := &Store{
		client:  client,
		cache:   cache,
		editing: make(map[int]bool),
	}
	if cache != nil {
		if user, achievements, ok, err := cache.LoadSnapshot(); err != nil {
			logger.Warn("failed to load cached snapshot", "error", err)
		} else if ok {
			s.user = user
			s.hasUser = true
			s.achievements = achievements
		}
		if day, err := cache.CheckinDate(); err != nil {
			logger.Warn("failed to load cached check-in date", "error", err)
		} else {
			s.lastCheckinDate = day
		}
	}
	return s
}

// Client exposes the gateway for write operations that bypass the store.
func (s *Store) Client() *api.Client { return s.client }

// User returns the current user snapshot and whether one has been loaded.
func (s *Store) User() (models.UserState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userLocked(), s.hasUser
}

func (s *Store) userLocked() models.UserState {
	user := s.user
	user.Habits = make([]models.Habit, len(s.user.Habits))
	copy(user.Habits, s.user.Habits)
	for i := range user.Habits {
		user.Habits[i].Editing = s.editing[user.Habits[i].ID]
	}
	return user
}

// Habits returns a copy of the current habit list.
func (s *Store) Habits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userLocked().Habits
}

// Achievements returns a copy of the current achievement list.
func (s *Store) Achievements() []models.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Achievement, len(s.achievements))
	copy(out, s.achievements)
	return out
}

// Suggestions returns a copy of the current suggestion list.
func (s *Store) Suggestions() []models.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Suggestion, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// SetEditing marks or unmarks a habit as being edited. The flag is local
// presentation state and survives refreshes by habit id.
func (s *Store) SetEditing(id int, editing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if editing {
		s.editing[id] = true
	} else {
		delete(s.editing, id)
	}
}

// ClearEditing drops all edit flags.
func (s *Store) ClearEditing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = make(map[int]bool)
}

// LastCheckinDate returns the calendar day of the last questionnaire
// submission, formatted per constants.DateFormat, or "" when none.
func (s *Store) LastCheckinDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCheckinDate
}

// MarkCheckedInToday records today as the last check-in day.
func (s *Store) MarkCheckedInToday() {
	day := time.Now().Format(constants.DateFormat)
	s.mu.Lock()
	s.lastCheckinDate = day
	cache := s.cache
	s.mu.Unlock()
	if cache != nil {
		if err := cache.SaveCheckinDate(day); err != nil {
			logger.Warn("failed to persist check-in date", "error", err)
		}
	}
}

// CheckedInToday reports whether a questionnaire was already submitted on
// the current calendar day. It flips back to false at local midnight.
func (s *Store) CheckedInToday() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCheckinDate == time.Now().Format(constants.DateFormat)
}

// NextUserSeq issues a sequence number for an in-flight user data fetch.
func (s *Store) NextUserSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userSeq++
	return s.userSeq
}

// ApplyUser installs a fetched user state if no newer fetch has already
// been applied. It reports whether the state was accepted.
func (s *Store) ApplyUser(user models.UserState, seq uint64) bool {
	s.mu.Lock()
	if seq <= s.userApplied {
		s.mu.Unlock()
		logger.Debug("discarding stale user data response", "seq", seq, "applied", s.userApplied)
		return false
	}
	s.userApplied = seq
	s.user = user
	s.hasUser = true
	achievements := make([]models.Achievement, len(s.achievements))
	copy(achievements, s.achievements)
	cache := s.cache
	s.mu.Unlock()

	if cache != nil {
		if err := cache.SaveSnapshot(user, achievements); err != nil {
			logger.Warn("failed to persist snapshot", "error", err)
		}
	}
	return true
}

// NextAchievementsSeq issues a sequence number for an achievements fetch.
func (s *Store) NextAchievementsSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.achSeq++
	return s.achSeq
}

// ApplyAchievements installs a fetched achievement list unless a newer
// fetch has already been applied.
func (s *Store) ApplyAchievements(achievements []models.Achievement, seq uint64) bool {
	s.mu.Lock()
	if seq <= s.achApplied {
		s.mu.Unlock()
		logger.Debug("discarding stale achievements response", "seq", seq, "applied", s.achApplied)
		return false
	}
	s.achApplied = seq
	s.achievements = achievements
	user := s.user
	hasUser := s.hasUser
	cache := s.cache
	s.mu.Unlock()

	if cache != nil && hasUser {
		if err := cache.SaveSnapshot(user, achievements); err != nil {
			logger.Warn("failed to persist snapshot", "error", err)
		}
	}
	return true
}

// NextSuggestionsSeq issues a sequence number for a suggestions fetch.
func (s *Store) NextSuggestionsSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestSeq++
	return s.suggestSeq
}

// ApplySuggestions installs a fetched suggestion list unless a newer fetch
// has already been applied.
func (s *Store) ApplySuggestions(suggestions []models.Suggestion, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.suggestApplied {
		logger.Debug("discarding stale suggestions response", "seq", seq, "applied", s.suggestApplied)
		return false
	}
	s.suggestApplied = seq
	s.suggestions = suggestions
	return true
}

// Refresh fetches the latest user state synchronously and applies it.
func (s *Store) Refresh(ctx context.Context) error {
	seq := s.NextUserSeq()
	user, err := s.client.FetchUserData(ctx)
	if err != nil {
		return err
	}
	s.ApplyUser(user, seq)
	return nil
}

// RefreshAchievements fetches the latest achievements synchronously and
// applies them.
func (s *Store) RefreshAchievements(ctx context.Context) error {
	seq := s.NextAchievementsSeq()
	achievements, err := s.client.FetchAchievements(ctx)
	if err != nil {
		return err
	}
	s.ApplyAchievements(achievements, seq)
	return nil
}

// RefreshSuggestions fetches the latest suggestions synchronously and
// applies them.
func (s *Store) RefreshSuggestions(ctx context.Context) error {
	seq := s.NextSuggestionsSeq()
	suggestions, err := s.client.FetchSuggestions(ctx)
	if err != nil {
		return err
	}
	s.ApplySuggestions(suggestions, seq)
	return nil
}
