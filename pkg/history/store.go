/* pkg/history/store.go */

// Package history persists generated passwords to a bounded JSON log.
// Eviction is FIFO at the configured capacity and duplicates are rejected by
// exact string match.
package history

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// DefaultLimit is the maximum number of retained entries when none is
// configured.
const DefaultLimit = 10

// StrengthUnknown labels entries added without a strength evaluation.
const StrengthUnknown = "unknown"

// Entry is one persisted history record. The JSON field layout is a
// compatibility contract; do not rename.
type Entry struct {
	Password  string `json:"password"`
	Timestamp string `json:"timestamp"`
	Strength  string `json:"strength"`
}

// Store is a file-backed password history. It performs a full rewrite of the
// backing file on every mutation; the in-memory list stays authoritative for
// the session even when a write fails.
type Store struct {
	path    string
	limit   int
	entries []Entry
}

// Open loads the history at path, creating an empty store when the file is
// missing and resetting to empty when it is corrupt. A non-positive limit
// uses DefaultLimit.
func Open(ctx context.Context, path string, limit int) (*Store, error) {
	if path == "" {
		return nil, cerr.New("history path must not be empty")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	s := &Store{path: path, limit: limit}
	s.load(ctx)
	return s, nil
}

func (s *Store) load(ctx context.Context) {
	log := otelzap.Ctx(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("History file unreadable, starting fresh",
				zap.String("path", s.path), zap.Error(err))
		}
		s.entries = nil
		return
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn("History file corrupt, starting fresh",
			zap.String("path", s.path), zap.Error(err))
		s.entries = nil
		return
	}

	// The limit may have been lowered since the file was written.
	if len(entries) > s.limit {
		log.Warn("History file exceeds capacity, dropping oldest entries",
			zap.String("path", s.path),
			zap.Int("entries", len(entries)), zap.Int("limit", s.limit))
		entries = entries[len(entries)-s.limit:]
	}
	s.entries = entries
}

// save rewrites the backing file. Failures are logged and swallowed so a
// broken disk never blocks generation.
func (s *Store) save(ctx context.Context) {
	log := otelzap.Ctx(ctx)

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		log.Warn("Failed to encode history", zap.Error(err))
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		log.Warn("Failed to create history directory",
			zap.String("path", s.path), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		log.Warn("Failed to write history file",
			zap.String("path", s.path), zap.Error(err))
	}
}

// Add records a password with an unknown strength label. Returns false for
// empty passwords and exact duplicates.
func (s *Store) Add(ctx context.Context, password string) bool {
	return s.AddWithStrength(ctx, password, StrengthUnknown)
}

// AddWithStrength records a password with its strength level, evicting the
// oldest entry once the store exceeds its capacity. Returns false for empty
// passwords and exact duplicates.
func (s *Store) AddWithStrength(ctx context.Context, password, strengthLevel string) bool {
	if password == "" {
		return false
	}
	for _, entry := range s.entries {
		if entry.Password == password {
			return false
		}
	}

	s.entries = append(s.entries, Entry{
		Password:  password,
		Timestamp: time.Now().Format(time.RFC3339),
		Strength:  strengthLevel,
	})

	if len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}

	s.save(ctx)
	return true
}

// All returns every stored password, oldest first.
func (s *Store) All() []string {
	out := make([]string, len(s.entries))
	for i, entry := range s.entries {
		out[i] = entry.Password
	}
	return out
}

// AllWithMetadata returns a copy of every stored entry, oldest first.
func (s *Store) AllWithMetadata() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Recent returns the most recent count passwords, oldest first. A
// non-positive count returns everything.
func (s *Store) Recent(count int) []string {
	entries := s.RecentWithMetadata(count)
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Password
	}
	return out
}

// RecentWithMetadata returns the most recent count entries, oldest first. A
// non-positive count returns everything.
func (s *Store) RecentWithMetadata(count int) []Entry {
	start := 0
	if count > 0 && count < len(s.entries) {
		start = len(s.entries) - count
	}
	out := make([]Entry, len(s.entries)-start)
	copy(out, s.entries[start:])
	return out
}

// Remove deletes the entry matching password exactly. Returns false when no
// entry matches.
func (s *Store) Remove(ctx context.Context, password string) bool {
	for i, entry := range s.entries {
		if entry.Password == password {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.save(ctx)
			return true
		}
	}
	return false
}

// Clear drops every entry and persists the empty history.
func (s *Store) Clear(ctx context.Context) {
	s.entries = nil
	s.save(ctx)
}

// IsEmpty reports whether the store holds no entries.
func (s *Store) IsEmpty() bool {
	return len(s.entries) == 0
}

// Count returns the number of stored entries.
func (s *Store) Count() int {
	return len(s.entries)
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Limit returns the configured capacity.
func (s *Store) Limit() int {
	return s.limit
}
