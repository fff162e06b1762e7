package tui

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/ecotrack-cli/internal/api"
	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/models"
	"github.com/ecotrack/ecotrack-cli/internal/notify"
	"github.com/ecotrack/ecotrack-cli/internal/store"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/habitlist"
	"github.com/ecotrack/ecotrack-cli/internal/tui/handlers"
	"github.com/ecotrack/ecotrack-cli/internal/tui/state"
)

func newTestModel(t *testing.T, handler http.HandlerFunc) Model {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewModel(store.New(api.NewClient(srv.URL, "", ""), nil), notify.Noop{})
}

func TestToggleDoesNotBlockEventLoop(t *testing.T) {
	release := make(chan struct{})
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{"status":"success"}`))
	})
	m.State = constants.StateHabits

	// Update must hand back a command immediately even while the server
	// is sitting on the request.
	returned := make(chan tea.Cmd, 1)
	go func() {
		_, cmd := m.Update(habitlist.ToggleHabitMsg{ID: 3})
		returned <- cmd
	}()

	var cmd tea.Cmd
	select {
	case cmd = <-returned:
	case <-time.After(time.Second):
		t.Fatal("Update must not wait on the network")
	}
	require.NotNil(t, cmd)

	close(release)
	result, ok := cmd().(handlers.HabitMutationMsg)
	require.True(t, ok, "toggle command must resolve to a mutation result")
	assert.NoError(t, result.Err)
}

func TestFetchResultAppliesWhileHabitFormOpen(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success"}`))
	})
	m.HabitForm = &state.HabitFormModel{}
	m.Form = handlers.NewHabitForm(m.HabitForm)
	m.State = constants.StateAddHabit

	seq := m.Store.NextUserSeq()
	updated, _ := m.Update(handlers.UserDataMsg{
		Seq:   seq,
		State: models.UserState{Username: "ada", SustainabilityScore: 42},
	})
	mm := updated.(Model)

	user, ok := mm.Store.User()
	require.True(t, ok, "a resolved fetch must land even while a form is open")
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, constants.StateAddHabit, mm.State, "the form stays open")
}

func TestWindowSizeAppliesWhileConfirmDeleteOpen(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success"}`))
	})
	m.State = constants.StateConfirmDelete

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	mm := updated.(Model)

	assert.Equal(t, 120, mm.Width)
	assert.Equal(t, 40, mm.Height)
	assert.Equal(t, constants.StateConfirmDelete, mm.State, "the prompt stays open")
}

func TestConfirmDeleteDispatchesCommand(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success"}`))
	})
	m.State = constants.StateConfirmDelete
	m.HabitToDelete = 9

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	mm := updated.(Model)

	assert.Equal(t, constants.StateHabits, mm.State)
	require.NotNil(t, cmd)
	result, ok := cmd().(handlers.HabitMutationMsg)
	require.True(t, ok)
	assert.NoError(t, result.Err)
}
