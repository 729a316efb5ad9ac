package customdict

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 25 * time.Millisecond

// FileStore keeps the user dictionary in a line-per-word file, for
// deployments without Redis. A sidecar lock file serializes writers across
// processes.
type FileStore struct {
	path string
	lock *flock.Flock
}

// NewFile creates a FileStore backed by path. The file is created on first
// Add.
func NewFile(path string) *FileStore {
	return &FileStore{path: path, lock: flock.New(path + ".lock")}
}

// Add appends a word unless it is already present.
func (s *FileStore) Add(ctx context.Context, word string) error {
	if err := s.acquire(ctx, false); err != nil {
		return err
	}
	defer s.lock.Unlock()

	words, err := s.read()
	if err != nil {
		return err
	}
	for _, w := range words {
		if w == word {
			return nil
		}
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintln(f, word)
	return err
}

// Remove rewrites the file without the given word.
func (s *FileStore) Remove(ctx context.Context, word string) error {
	if err := s.acquire(ctx, false); err != nil {
		return err
	}
	defer s.lock.Unlock()

	words, err := s.read()
	if err != nil {
		return err
	}
	kept := words[:0]
	for _, w := range words {
		if w != word {
			kept = append(kept, w)
		}
	}
	out := strings.Join(kept, "\n")
	if out != "" {
		out += "\n"
	}
	return os.WriteFile(s.path, []byte(out), 0o644)
}

// All returns every stored word.
func (s *FileStore) All(ctx context.Context) ([]string, error) {
	if err := s.acquire(ctx, true); err != nil {
		return nil, err
	}
	defer s.lock.Unlock()
	return s.read()
}

func (s *FileStore) acquire(ctx context.Context, shared bool) error {
	var (
		ok  bool
		err error
	)
	if shared {
		ok, err = s.lock.TryRLockContext(ctx, lockRetryDelay)
	} else {
		ok, err = s.lock.TryLockContext(ctx, lockRetryDelay)
	}
	if err != nil {
		return fmt.Errorf("lock user dictionary: %w", err)
	}
	if !ok {
		return errors.New("lock user dictionary: not acquired")
	}
	return nil
}

func (s *FileStore) read() ([]string, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w != "" {
			words = append(words, w)
		}
	}
	return words, sc.Err()
}
