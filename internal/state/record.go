package state

import "goal-chatter/internal/llm"

// UserRecord is everything the bot remembers about one Telegram user.
type UserRecord struct {
	Name        string        `json:"name,omitempty"`
	Goals       []string      `json:"goals"`
	ChatHistory []llm.Message `json:"chat_history"`
	DialogMode  bool          `json:"dialog_mode"`
}

func newRecord() *UserRecord {
	return &UserRecord{Goals: []string{}, ChatHistory: []llm.Message{}}
}

func (r *UserRecord) clone() UserRecord {
	out := UserRecord{
		Name:        r.Name,
		Goals:       make([]string, len(r.Goals)),
		ChatHistory: make([]llm.Message, len(r.ChatHistory)),
		DialogMode:  r.DialogMode,
	}
	copy(out.Goals, r.Goals)
	copy(out.ChatHistory, r.ChatHistory)
	return out
}

// Backend persists the whole set of records. Implementations must be safe for
// sequential use by a single Store; the Store serializes calls.
type Backend interface {
	Load() (map[int64]UserRecord, error)
	Save(records map[int64]UserRecord) error
}
