package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SelectedFile is the persisted selection record, stored inside the lists
// directory as one entry name per line. It is overwritten wholesale on save.
const SelectedFile = "selected.txt"

// SelectionStore reads and writes the persisted selection record
type SelectionStore interface {
	Load() ([]string, error)
	Save(names []string) error
	Path() string
}

// fileSelectionStore is the concrete implementation
type fileSelectionStore struct {
	filePath string
}

// NewSelectionStore creates a selection store for the given lists directory
func NewSelectionStore(listsDir string) SelectionStore {
	return &fileSelectionStore{
		filePath: filepath.Join(listsDir, SelectedFile),
	}
}

// Path returns the location of the selection file
func (s *fileSelectionStore) Path() string {
	return s.filePath
}

// Load returns the previously persisted selection, one name per line. A
// missing file is not an error; it just means nothing was selected before.
// Lines are returned as-is: matching against discovered files happens at
// catalog build time, so stale or malformed lines are silently ignored there.
func (s *fileSelectionStore) Load() ([]string, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read selection file: %w", err)
	}

	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}

// Save overwrites the selection file with the given names in order. An empty
// set writes an empty file.
func (s *fileSelectionStore) Save(names []string) error {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(s.filePath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write selection file: %w", err)
	}
	return nil
}
