// Package vocabulary holds the known-word set used for out-of-vocabulary
// detection. Lookup is case-insensitive; the set is read-mostly and safe to
// share across concurrent correction runs.
package vocabulary

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// Store answers membership queries against a fixed word set.
type Store struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

// New returns an empty store.
func New() *Store {
	return &Store{words: make(map[string]struct{})}
}

// Load reads a line-per-word vocabulary file.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	s := New()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		s.words[strings.ToLower(word)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return s, nil
}

// LoadMmap reads the same format through a memory mapping. Model vocabularies
// run to hundreds of thousands of lines, so this avoids double-buffering the
// file while the word map is built.
func LoadMmap(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap vocabulary: %w", err)
	}
	defer data.Unmap()

	s := New()
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		word := strings.TrimSpace(string(line))
		if word == "" {
			continue
		}
		s.words[strings.ToLower(word)] = struct{}{}
	}
	return s, nil
}

// Contains reports whether word is known. The check is case-insensitive.
func (s *Store) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Add registers a word at runtime (user dictionary merges, custom-word API).
func (s *Store) Add(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words[strings.ToLower(word)] = struct{}{}
}

// Remove drops a word from the set.
func (s *Store) Remove(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.words, strings.ToLower(word))
}

// Len returns the number of known words.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}
