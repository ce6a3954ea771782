package domain

import "time"

// ChatLogEntry is one completed exchange within a session. Entries are
// immutable after creation; both message fields are always populated.
type ChatLogEntry struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	UserMessage string    `json:"userMessage"`
	BotReply    string    `json:"botReply"`
	Timestamp   time.Time `json:"timestamp"`
}
