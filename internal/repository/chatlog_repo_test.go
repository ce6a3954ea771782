package repository

import (
	"testing"
	"time"
)

func appendEntries(t *testing.T, repo *ChatLogRepository, session string, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		if _, err := repo.Append(session, "question", "answer"); err != nil {
			t.Fatalf("append failed: %v", err)
		}
		// Distinct timestamps keep the newest-first ordering deterministic.
		time.Sleep(2 * time.Millisecond)
	}
}

func TestChatLogListNewestFirst(t *testing.T) {
	repo := NewChatLogRepository(newTestDB(t))

	if _, err := repo.Append("sess-1", "first", "a"); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, err := repo.Append("sess-1", "second", "b"); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	entries, err := repo.List("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].UserMessage != "second" || entries[1].UserMessage != "first" {
		t.Fatalf("entries not newest-first: %q, %q", entries[0].UserMessage, entries[1].UserMessage)
	}
	if entries[0].UserMessage == "" || entries[0].BotReply == "" {
		t.Fatal("stored entry missing message fields")
	}
}

func TestChatLogListFiltersCaseInsensitively(t *testing.T) {
	repo := NewChatLogRepository(newTestDB(t))

	appendEntries(t, repo, "ABC-123", 2)
	appendEntries(t, repo, "xyz", 1)

	entries, err := repo.List("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 matching entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.SessionID != "ABC-123" {
			t.Fatalf("unexpected session in filtered result: %q", e.SessionID)
		}
	}

	entries, err = repo.List("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no matches, got %d", len(entries))
	}
}

func TestChatLogDeleteBySession(t *testing.T) {
	repo := NewChatLogRepository(newTestDB(t))

	appendEntries(t, repo, "abc-123", 5)
	appendEntries(t, repo, "other", 2)

	deleted, err := repo.DeleteBySession("abc-123")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted != 5 {
		t.Fatalf("expected 5 deleted, got %d", deleted)
	}

	// Delete followed by substring lookup yields nothing.
	entries, err := repo.List("abc-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("deleted session still has %d entries", len(entries))
	}

	// Other sessions are untouched.
	entries, err = repo.List("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 remaining entries, got %d", len(entries))
	}
}

func TestChatLogDeleteUnknownSessionIsNoop(t *testing.T) {
	repo := NewChatLogRepository(newTestDB(t))

	deleted, err := repo.DeleteBySession("never-seen")
	if err != nil {
		t.Fatalf("delete of unknown session must not error: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("expected 0 deleted, got %d", deleted)
	}
}
