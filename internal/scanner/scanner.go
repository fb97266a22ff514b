package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExecutableExtensions is the extension set the launcher targets.
var ExecutableExtensions = []string{".exe"}

// iconNames is the fixed icon lookup order next to a found executable.
var iconNames = []string{"icon.ico", "icon.png", "icon.gif"}

// FolderEntry is one row of the launcher's result list: a first-level
// folder, the executable found in its subtree and an optional icon.
type FolderEntry struct {
	FolderName     string
	ExecutablePath string
	IconPath       string
}

// errFound aborts a walk once the first matching file has been seen.
var errFound = errors.New("executable found")

// Scan enumerates the immediate child directories of startDir and
// returns an entry for each one whose subtree contains a file matching
// one of the extensions. Folders without a match are omitted. Entries
// are sorted by folder name; traversal within each folder is lexical,
// so the "first" executable is deterministic for a fixed layout.
func Scan(startDir string, extensions []string) ([]FolderEntry, error) {
	info, err := os.Stat(startDir)
	if err != nil {
		return nil, fmt.Errorf("directory %q does not exist: %w", startDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", startDir)
	}

	children, err := os.ReadDir(startDir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", startDir, err)
	}

	var entries []FolderEntry
	for _, child := range children {
		if !child.IsDir() {
			continue
		}

		childPath := filepath.Join(startDir, child.Name())
		execPath, ok := findFirstExecutable(childPath, extensions)
		if !ok {
			continue
		}

		entries = append(entries, FolderEntry{
			FolderName:     child.Name(),
			ExecutablePath: execPath,
			IconPath:       findIcon(filepath.Dir(execPath)),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].FolderName < entries[j].FolderName
	})
	return entries, nil
}

// findFirstExecutable walks the subtree rooted at dir and returns the
// first file whose lowercased name ends with one of the extensions.
// The walk short-circuits on the first match.
func findFirstExecutable(dir string, extensions []string) (string, bool) {
	var found string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees contribute nothing.
			return nil
		}
		if d.IsDir() {
			return nil
		}

		name := strings.ToLower(d.Name())
		for _, ext := range extensions {
			if strings.HasSuffix(name, ext) {
				found = path
				return errFound
			}
		}
		return nil
	})

	if errors.Is(err, errFound) {
		return found, true
	}
	return "", false
}

// findIcon returns the first of the fixed icon names present in dir,
// or empty. Subdirectories are not searched.
func findIcon(dir string) string {
	for _, name := range iconNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
