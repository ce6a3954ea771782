package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/aircloud/supportbot/internal/domain"
)

// ChatLogRepository handles the append-only conversation log.
type ChatLogRepository struct {
	db *DB
}

// NewChatLogRepository creates a new chat log repository
func NewChatLogRepository(db *DB) *ChatLogRepository {
	return &ChatLogRepository{db: db}
}

// Append records one completed exchange.
func (r *ChatLogRepository) Append(sessionID, userMessage, botReply string) (*domain.ChatLogEntry, error) {
	entry := &domain.ChatLogEntry{
		ID:          uuid.New().String(),
		SessionID:   sessionID,
		UserMessage: userMessage,
		BotReply:    botReply,
		Timestamp:   time.Now(),
	}

	_, err := r.db.Exec(`
		INSERT INTO chat_logs (id, session_id, user_message, bot_reply, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.SessionID, entry.UserMessage, entry.BotReply, entry.Timestamp)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// List retrieves log entries newest-first. A non-empty needle keeps only
// entries whose session ID contains it, case-insensitively.
func (r *ChatLogRepository) List(needle string) ([]*domain.ChatLogEntry, error) {
	query := `
		SELECT id, session_id, user_message, bot_reply, timestamp
		FROM chat_logs
	`
	args := []any{}
	if needle != "" {
		query += ` WHERE instr(lower(session_id), lower(?)) > 0`
		args = append(args, needle)
	}
	query += ` ORDER BY timestamp DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.ChatLogEntry
	for rows.Next() {
		entry := &domain.ChatLogEntry{}
		if err := rows.Scan(&entry.ID, &entry.SessionID, &entry.UserMessage,
			&entry.BotReply, &entry.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// DeleteBySession removes every entry whose session ID exactly equals the
// argument and reports how many were removed. Unknown sessions delete zero
// rows without error.
func (r *ChatLogRepository) DeleteBySession(sessionID string) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM chat_logs WHERE session_id = ?`, sessionID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
