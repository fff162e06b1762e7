package models

// UserState is the server-confirmed dashboard state. It is owned by the view
// model store and replaced wholesale on every successful fetch; no field is
// merged individually.
type UserState struct {
	Username            string  `json:"username"`
	Streak              int     `json:"streak"`
	CarbonFootprint     float64 `json:"carbon_footprint"`
	SustainabilityScore int     `json:"sustainability_score"`
	Habits              []Habit `json:"habits"`
}

// Habit is a user-tracked recurring sustainable action. IDs are
// server-assigned; the client never generates one. Editing is ephemeral UI
// state layered onto server data and must never be sent to the backend.
type Habit struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Editing   bool   `json:"-"`
}

// Achievement is a server-defined unlockable badge, read-only on the client.
// Icon and description are derived locally from Type.
type Achievement struct {
	Type     string `json:"achievement_type"`
	Title    string `json:"achievement_title"`
	Unlocked bool   `json:"unlocked"`
}

// Suggestion is an improvement suggestion rendered as an actionable card;
// starting one saves its title as a new habit.
type Suggestion struct {
	Title           string `json:"title"`
	Reason          string `json:"reason"`
	CarbonReduction string `json:"carbon_reduction"`
}

// Community is a chat group the user belongs to.
type Community struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	JoinCode string `json:"join_code"`
	Members  int    `json:"member_count"`
}

// ChatMessage is a single community chat message.
type ChatMessage struct {
	ID        int    `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
