package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-session", "test-csrf")
}

func TestFetchUserDataKeyedHabits(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_user_data", r.URL.Path)
		assert.Equal(t, "test-csrf", r.Header.Get("X-CSRFToken"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		cookie, err := r.Cookie("sessionid")
		require.NoError(t, err)
		assert.Equal(t, "test-session", cookie.Value)

		w.Write([]byte(`{
			"status": "success",
			"data": {
				"username": "ada",
				"streak": 4,
				"carbon_footprint": 12.345,
				"sustainability_score": 73,
				"habits": {
					"9": {"text": "bike to work", "completed": true},
					"2": {"text": "meatless monday", "completed": false}
				}
			}
		}`))
	})

	state, err := client.FetchUserData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ada", state.Username)
	assert.Equal(t, 4, state.Streak)
	assert.Equal(t, 73, state.SustainabilityScore)
	require.Len(t, state.Habits, 2)
	// keyed habits come back ordered by id, with the key as the id
	assert.Equal(t, 2, state.Habits[0].ID)
	assert.Equal(t, "meatless monday", state.Habits[0].Text)
	assert.Equal(t, 9, state.Habits[1].ID)
	assert.True(t, state.Habits[1].Completed)
}

func TestFetchUserDataArrayHabits(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"username": "ada",
				"habits": [
					{"id": 5, "text": "compost", "completed": false},
					{"id": 1, "text": "recycle", "completed": true}
				]
			}
		}`))
	})

	state, err := client.FetchUserData(context.Background())
	require.NoError(t, err)
	require.Len(t, state.Habits, 2)
	// array habits keep the server's order
	assert.Equal(t, 5, state.Habits[0].ID)
	assert.Equal(t, 1, state.Habits[1].ID)
}

func TestFetchUserDataNullHabits(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": {"username": "ada", "habits": null}}`))
	})

	state, err := client.FetchUserData(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Habits)
	assert.NotNil(t, state.Habits)
}

func TestFetchUserDataHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"status": "error", "message": "session expired"}`))
	})

	_, err := client.FetchUserData(context.Background())
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
	assert.Equal(t, "session expired", httpErr.Message)
}

func TestFetchUserDataErrorEnvelope(t *testing.T) {
	// 200 with status "error" is still a failure.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "message": "no such user"}`))
	})

	_, err := client.FetchUserData(context.Background())
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "no such user", httpErr.Message)
}

func TestFetchUserDataNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, "", "")

	_, err := client.FetchUserData(context.Background())
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotNil(t, errors.Unwrap(netErr))
}

func TestFetchUserDataParseError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	})

	_, err := client.FetchUserData(context.Background())
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestFetchAchievementsTopLevel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "success",
			"achievements": [
				{"achievement_type": "first_steps", "achievement_title": "First Steps", "unlocked": true}
			]
		}`))
	})

	list, err := client.FetchAchievements(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "first_steps", list[0].Type)
	assert.True(t, list[0].Unlocked)
}

func TestFetchAchievementsNestedUnderData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "success",
			"data": {"achievements": [{"achievement_type": "week_warrior", "unlocked": false}]}
		}`))
	})

	list, err := client.FetchAchievements(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "week_warrior", list[0].Type)
}

func TestFetchAchievementsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success"}`))
	})

	list, err := client.FetchAchievements(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSaveHabitPayload(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/save_habit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"status": "success"}`))
	})

	require.NoError(t, client.SaveHabit(context.Background(), "plant a tree"))
	assert.Equal(t, "plant a tree", got["habit_text"])
}

func TestUpdateHabitPayload(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/update_habit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"status": "success"}`))
	})

	require.NoError(t, client.UpdateHabit(context.Background(), 7, "cycle more"))
	assert.Equal(t, float64(7), got["habit_id"])
	assert.Equal(t, "cycle more", got["habit_text"])
}

func TestSubmitQuestionnaire(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submit_questionnaire", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.SubmitQuestionnaire(context.Background(), 3))
	assert.Equal(t, float64(3), got["impact"])
}

func TestSubmitQuestionnaireRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	err := client.SubmitQuestionnaire(context.Background(), 3)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
}

func TestFetchSuggestionsNonList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": "try turning lights off"}`))
	})

	list, err := client.FetchSuggestions(context.Background())
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestFetchSuggestionsList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "success",
			"data": [{"title": "Go paperless", "reason": "less waste", "carbon_reduction": "2kg/mo"}]
		}`))
	})

	list, err := client.FetchSuggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Go paperless", list[0].Title)
}

func TestFetchMessages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/communities/12/messages", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(`{
			"status": "success",
			"data": [{"id": 1, "sender": "ada", "content": "hi", "created_at": "2026-08-30T10:00:00Z"}]
		}`))
	})

	msgs, err := client.FetchMessages(context.Background(), 12, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "ada", msgs[0].Sender)
}
