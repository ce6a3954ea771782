package domain

import "strings"

// GroupLogsBySession partitions a flat log listing into per-session
// transcripts, keeping each entry's relative order. Only sessions whose ID
// contains needle (case-insensitively) appear; an empty needle matches all.
// Sessions with no matching entries are absent rather than mapped to an
// empty slice.
func GroupLogsBySession(entries []*ChatLogEntry, needle string) map[string][]*ChatLogEntry {
	needle = strings.ToLower(needle)
	groups := make(map[string][]*ChatLogEntry)

	for _, entry := range entries {
		if needle != "" && !strings.Contains(strings.ToLower(entry.SessionID), needle) {
			continue
		}
		groups[entry.SessionID] = append(groups[entry.SessionID], entry)
	}

	return groups
}
