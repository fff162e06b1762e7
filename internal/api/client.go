package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/logger"
	"github.com/ecotrack/ecotrack-cli/internal/models"
)

// Server endpoints, relative to the base URL. submit_questionnaire is the
// one path the server mounts absolutely.
const (
	epUserData      = "get_user_data"
	epAchievements  = "get_achievements"
	epSaveHabit     = "save_habit"
	epUpdateHabit   = "update_habit"
	epDeleteHabit   = "delete_habit"
	epToggleHabit   = "toggle_habit"
	epQuestionnaire = "submit_questionnaire"
	epSuggestions   = "get_suggestions"
	epMyCommunities = "api/communities/my-communities"
	epSendMessage   = "api/communities/send-message"
)

// Client is the remote data gateway. One method per server action; every
// call is single-shot with no retry, and every failure is a NetworkError,
// HTTPError, or ParseError.
type Client struct {
	baseURL    string
	session    string
	csrfToken  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a gateway client for the given server. Session and CSRF
// token may be empty; the call proceeds and the server's rejection surfaces
// as an HTTPError.
func NewClient(baseURL, session, csrfToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:   baseURL,
		session:   session,
		csrfToken: csrfToken,
		httpClient: &http.Client{
			Timeout: constants.HTTPTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the server's response wrapper, decoded exactly once at this
// boundary so nothing above the gateway inspects raw JSON shape.
type envelope struct {
	Status       string          `json:"status"`
	Message      string          `json:"message"`
	Data         json.RawMessage `json:"data"`
	Achievements json.RawMessage `json:"achievements"`
}

// userDataPayload mirrors the data object of get_user_data. Habits arrive
// keyed by id in one server code path and as an array in another.
type userDataPayload struct {
	Username            string          `json:"username"`
	Streak              int             `json:"streak"`
	CarbonFootprint     float64         `json:"carbon_footprint"`
	SustainabilityScore int             `json:"sustainability_score"`
	Habits              json.RawMessage `json:"habits"`
}

// FetchUserData retrieves the authoritative user state. On failure the
// caller must leave its existing state untouched.
func (c *Client) FetchUserData(ctx context.Context) (models.UserState, error) {
	env, err := c.get(ctx, epUserData)
	if err != nil {
		return models.UserState{}, err
	}

	var payload userDataPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return models.UserState{}, &ParseError{Op: epUserData, Err: err}
	}

	habits, err := normalizeHabits(payload.Habits)
	if err != nil {
		return models.UserState{}, &ParseError{Op: epUserData, Err: err}
	}

	return models.UserState{
		Username:            payload.Username,
		Streak:              payload.Streak,
		CarbonFootprint:     payload.CarbonFootprint,
		SustainabilityScore: payload.SustainabilityScore,
		Habits:              habits,
	}, nil
}

// FetchAchievements retrieves the achievement list. Achievements are
// non-critical; callers degrade to an empty or stale list on error instead
// of blocking the dashboard.
func (c *Client) FetchAchievements(ctx context.Context) ([]models.Achievement, error) {
	env, err := c.get(ctx, epAchievements)
	if err != nil {
		return nil, err
	}

	raw := env.Achievements
	if len(raw) == 0 {
		// Older server versions nest the list under data.
		raw = env.Data
	}
	if len(raw) == 0 {
		return []models.Achievement{}, nil
	}

	var list []models.Achievement
	if err := json.Unmarshal(raw, &list); err != nil {
		// data may be an object {achievements: [...]}
		var nested struct {
			Achievements []models.Achievement `json:"achievements"`
		}
		if err2 := json.Unmarshal(raw, &nested); err2 != nil {
			return nil, &ParseError{Op: epAchievements, Err: err}
		}
		list = nested.Achievements
	}
	return list, nil
}

// SaveHabit creates a new habit with the given text. The id is assigned by
// the server; the caller must refresh before treating the list as
// authoritative.
func (c *Client) SaveHabit(ctx context.Context, text string) error {
	_, err := c.post(ctx, epSaveHabit, map[string]any{"habit_text": text})
	return err
}

// UpdateHabit replaces the text of an existing habit.
func (c *Client) UpdateHabit(ctx context.Context, id int, text string) error {
	_, err := c.post(ctx, epUpdateHabit, map[string]any{"habit_id": id, "habit_text": text})
	return err
}

// DeleteHabit removes a habit.
func (c *Client) DeleteHabit(ctx context.Context, id int) error {
	_, err := c.post(ctx, epDeleteHabit, map[string]any{"habit_id": id})
	return err
}

// ToggleHabit flips the completion state of a habit for today.
func (c *Client) ToggleHabit(ctx context.Context, id int) error {
	_, err := c.post(ctx, epToggleHabit, map[string]any{"habit_id": id})
	return err
}

// SubmitQuestionnaire records the daily check-in impact score. The server
// answers with a bare status code; only 2xx counts as success.
func (c *Client) SubmitQuestionnaire(ctx context.Context, impact int) error {
	body, err := json.Marshal(map[string]any{"impact": impact})
	if err != nil {
		return &ParseError{Op: epQuestionnaire, Err: err}
	}

	resp, err := c.do(ctx, http.MethodPost, epQuestionnaire, bytes.NewReader(body))
	if err != nil {
		return &NetworkError{Op: epQuestionnaire, Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Op: epQuestionnaire, StatusCode: resp.StatusCode}
	}
	return nil
}

// FetchSuggestions retrieves improvement suggestions. Non-critical; callers
// fall back to the built-in list on error.
func (c *Client) FetchSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	env, err := c.post(ctx, epSuggestions, map[string]any{})
	if err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	var list []models.Suggestion
	if err := json.Unmarshal(env.Data, &list); err != nil {
		// The server sometimes returns free-form text here; treat anything
		// that is not a suggestion list as "no server suggestions".
		return nil, nil
	}
	return list, nil
}

// FetchCommunities lists the communities the user belongs to.
func (c *Client) FetchCommunities(ctx context.Context) ([]models.Community, error) {
	env, err := c.get(ctx, epMyCommunities)
	if err != nil {
		return nil, err
	}
	var list []models.Community
	if err := json.Unmarshal(env.Data, &list); err != nil {
		return nil, &ParseError{Op: epMyCommunities, Err: err}
	}
	return list, nil
}

// FetchMessages retrieves one page of messages for a community.
func (c *Client) FetchMessages(ctx context.Context, communityID, page int) ([]models.ChatMessage, error) {
	op := fmt.Sprintf("api/communities/%d/messages", communityID)
	env, err := c.get(ctx, op+"?page="+strconv.Itoa(page))
	if err != nil {
		return nil, err
	}
	var list []models.ChatMessage
	if err := json.Unmarshal(env.Data, &list); err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	return list, nil
}

// SendMessage posts a chat message to a community.
func (c *Client) SendMessage(ctx context.Context, communityID int, content string) error {
	_, err := c.post(ctx, epSendMessage, map[string]any{
		"community_id": communityID,
		"message":      content,
	})
	return err
}

func (c *Client) get(ctx context.Context, op string) (*envelope, error) {
	resp, err := c.do(ctx, http.MethodGet, op, nil)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	return c.decode(op, resp)
}

func (c *Client) post(ctx context.Context, op string, payload any) (*envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	resp, err := c.do(ctx, http.MethodPost, op, bytes.NewReader(body))
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	return c.decode(op, resp)
}

func (c *Client) do(ctx context.Context, method, op string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+op, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.csrfToken != "" {
		req.Header.Set(constants.CSRFHeader, c.csrfToken)
	}
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: "sessionid", Value: c.session})
	}
	if c.csrfToken != "" {
		req.AddCookie(&http.Cookie{Name: constants.CSRFCookieName, Value: c.csrfToken})
	}

	logger.Debug("Gateway request", "method", method, "op", op)
	return c.httpClient.Do(req)
}

func (c *Client) decode(op string, resp *http.Response) (*envelope, error) {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The error envelope carries a message; decoding it is best effort.
		var env envelope
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		json.Unmarshal(data, &env)
		return nil, &HTTPError{Op: op, StatusCode: resp.StatusCode, Message: env.Message}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	if env.Status == "error" {
		return nil, &HTTPError{Op: op, StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

// normalizeHabits accepts habits either as an ordered array or keyed by id
// and always produces an id-ordered slice, so render code sees one shape.
func normalizeHabits(raw json.RawMessage) ([]models.Habit, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []models.Habit{}, nil
	}

	var list []models.Habit
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var keyed map[string]models.Habit
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return nil, fmt.Errorf("habits are neither a list nor an id map: %w", err)
	}

	list = make([]models.Habit, 0, len(keyed))
	for key, h := range keyed {
		if h.ID == 0 {
			// Some payloads omit the id field inside the value; the map key
			// is authoritative in that case.
			if id, err := strconv.Atoi(key); err == nil {
				h.ID = id
			}
		}
		list = append(list, h)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
