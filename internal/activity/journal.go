package activity

import (
	"fmt"
	"strings"
	"sync"
)

// Journal holds free-text answers to a fixed set of prompts.
type Journal struct {
	mu      sync.RWMutex
	prompts []string
	entries []string
}

// NewJournal creates an empty journal for prompts.
func NewJournal(prompts []string) *Journal {
	return &Journal{
		prompts: prompts,
		entries: make([]string, len(prompts)),
	}
}

// Prompts returns the journal prompts.
func (j *Journal) Prompts() []string {
	return j.prompts
}

// Set stores the entry for prompt i.
func (j *Journal) Set(i int, text string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if i < 0 || i >= len(j.entries) {
		return fmt.Errorf("journal: no prompt %d", i)
	}
	j.entries[i] = text
	return nil
}

// Entry returns the entry for prompt i.
func (j *Journal) Entry(i int) string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if i < 0 || i >= len(j.entries) {
		return ""
	}
	return j.entries[i]
}

// Entries returns a copy of all entries.
func (j *Journal) Entries() []string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return append([]string(nil), j.entries...)
}

// FilledCount returns how many entries contain non-whitespace text.
func (j *Journal) FilledCount() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	n := 0
	for _, e := range j.entries {
		if strings.TrimSpace(e) != "" {
			n++
		}
	}
	return n
}

// Filled reports whether every prompt has a non-blank entry.
func (j *Journal) Filled() bool {
	return j.FilledCount() == len(j.prompts)
}

// Reset clears all entries.
func (j *Journal) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = make([]string, len(j.prompts))
}
