package discovery

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

const (
	// Candidate list files must match ListPrefix*ListExt.
	ListPrefix = "list-"
	ListExt    = ".txt"

	// UltimateFile is the generated union of all selected lists. It lives in
	// the same directory but is never a selectable candidate itself.
	UltimateFile = "list-ultimate.txt"
)

// FindListFiles scans the lists directory for candidate list files and
// returns their names sorted lexicographically. The directory is created if
// it does not exist; an empty directory yields an empty (non-error) result.
func FindListFiles(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lists directory: %w", err)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read lists directory: %w", err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !isCandidate(name) {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	log.Printf("Discovered %d list files in %s", len(names), dir)
	return names, nil
}

// isCandidate reports whether a filename is a selectable list file.
func isCandidate(name string) bool {
	return strings.HasPrefix(name, ListPrefix) &&
		strings.HasSuffix(name, ListExt) &&
		name != UltimateFile
}
