package leaderboard

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Store persists the ordered entry list
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Board is the process-wide ranked score list
// Entries stay sorted by score descending; ties keep insertion order
type Board struct {
	mu      sync.RWMutex
	store   Store
	size    int
	entries []Entry
}

// NewBoard creates an empty board of at most size entries backed by store
func NewBoard(store Store, size int) *Board {
	return &Board{store: store, size: size}
}

// Load replaces the entries with the store content
// On failure the board is left empty and the error is returned for logging
func (b *Board) Load() error {
	entries, err := b.store.Load()

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.entries = nil
		return fmt.Errorf("load leaderboard: %w", err)
	}
	b.entries = b.normalize(entries)
	return nil
}

// Record inserts a score, keeps the top entries and persists them
// rank is the 1-based position of the new entry, 0 when it did not place
// A save error leaves the in-memory board updated
func (b *Board) Record(name string, score int) (rank int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry := Entry{Name: NormalizeName(name), Score: score}
	b.entries = append(b.entries, entry)
	// Stable sort keeps the new entry behind earlier equal scores
	slices.SortStableFunc(b.entries, byScoreDesc)

	for i := len(b.entries) - 1; i >= 0; i-- {
		if b.entries[i] == entry {
			rank = i + 1
			break
		}
	}
	if len(b.entries) > b.size {
		b.entries = b.entries[:b.size]
		if rank > b.size {
			rank = 0
		}
	}

	if err := b.store.Save(slices.Clone(b.entries)); err != nil {
		return rank, fmt.Errorf("save leaderboard: %w", err)
	}
	return rank, nil
}

// Entries returns a copy of all entries in rank order
func (b *Board) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.entries)
}

// Top returns up to n leading entries
func (b *Board) Top(n int) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if n > len(b.entries) {
		n = len(b.entries)
	}
	return slices.Clone(b.entries[:n])
}

func (b *Board) normalize(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, Entry{Name: NormalizeName(e.Name), Score: e.Score})
	}
	slices.SortStableFunc(out, byScoreDesc)
	if len(out) > b.size {
		out = out[:b.size]
	}
	return out
}

func byScoreDesc(a, b Entry) int {
	return cmp.Compare(b.Score, a.Score)
}
