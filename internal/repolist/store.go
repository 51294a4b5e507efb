package repolist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Store persists remembered repository paths as a flat text file, one path
// per line. New paths are appended; duplicates are never written twice.
type Store struct {
	Path string
}

// Load returns the remembered paths in file order, skipping blank lines
// and de-duplicating while maintaining stable order. A missing file is an
// empty list, not an error.
func (s *Store) Load() ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open repo list: %w", err)
	}
	defer f.Close()

	var paths []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read repo list: %w", err)
	}

	return paths, nil
}

// Save appends a path to the list unless it is already remembered.
func (s *Store) Save(path string) error {
	existing, err := s.Load()
	if err != nil {
		return err
	}
	for _, p := range existing {
		if p == path {
			return nil
		}
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open repo list for append: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, path); err != nil {
		return fmt.Errorf("failed to append repo path: %w", err)
	}
	return nil
}
