package history

import "goal-chatter/internal/llm"

// DefaultLimit is the number of most recent turns kept per user.
const DefaultLimit = 20

// Log is a bounded chat history. Once it holds more than limit entries the
// oldest ones are evicted first.
type Log struct {
	limit   int
	entries []llm.Message
}

func New(limit int, entries ...llm.Message) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	l := &Log{limit: limit}
	for _, m := range entries {
		l.Append(m)
	}
	return l
}

func (l *Log) AppendUser(content string) { l.Append(llm.Message{Role: llm.RoleUser, Content: content}) }
func (l *Log) AppendAssistant(content string) {
	l.Append(llm.Message{Role: llm.RoleAssistant, Content: content})
}

func (l *Log) Append(msg llm.Message) {
	l.entries = append(l.entries, msg)
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = append(l.entries[:0:0], l.entries[over:]...)
	}
}

func (l *Log) Len() int { return len(l.entries) }

// Messages returns a copy of the entries, oldest first.
func (l *Log) Messages() []llm.Message {
	out := make([]llm.Message, len(l.entries))
	copy(out, l.entries)
	return out
}

// Trim returns the last limit messages of msgs as a new slice.
func Trim(msgs []llm.Message, limit int) []llm.Message {
	return New(limit, msgs...).Messages()
}
