package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"funkin-launcher/internal/theme"

	"github.com/adrg/xdg"
)

// File names under the user's home directory. They match the original
// launcher's cache files so existing state is picked up.
const (
	dirCacheFile   = ".executable_launcher_cache"
	themeCacheFile = ".executable_launcher_theme_cache"
	themesFile     = "themes.json"
)

// Store persists launcher preferences as fixed single files in a root
// directory, the user's home by default. Loads validate before
// trusting; saves overwrite wholesale.
type Store struct {
	root string
}

// New returns a store rooted at the user's home directory.
func New() *Store {
	return &Store{root: xdg.Home}
}

// NewAt returns a store rooted at dir. Used by tests and anything that
// needs an isolated preference location.
func NewAt(dir string) *Store {
	return &Store{root: dir}
}

func (s *Store) dirCachePath() string {
	return filepath.Join(s.root, dirCacheFile)
}

func (s *Store) themeCachePath() string {
	return filepath.Join(s.root, themeCacheFile)
}

func (s *Store) themesPath() string {
	return filepath.Join(s.root, themesFile)
}

// LastDirectory returns the cached start directory. The cached value is
// discarded when the file is unreadable or the path no longer names an
// existing directory.
func (s *Store) LastDirectory() (string, bool) {
	data, err := os.ReadFile(s.dirCachePath())
	if err != nil {
		return "", false
	}

	dir := strings.TrimSpace(string(data))
	if dir == "" {
		return "", false
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return dir, true
}

// SaveLastDirectory overwrites the directory cache with path.
func (s *Store) SaveLastDirectory(path string) error {
	if err := os.WriteFile(s.dirCachePath(), []byte(path), 0o644); err != nil {
		return fmt.Errorf("save last directory: %w", err)
	}
	return nil
}

// ThemeName returns the cached theme name, or the default when no valid
// cache exists.
func (s *Store) ThemeName() string {
	data, err := os.ReadFile(s.themeCachePath())
	if err != nil {
		return theme.DefaultName
	}

	name := strings.TrimSpace(string(data))
	if name == "" {
		return theme.DefaultName
	}
	return name
}

// SaveThemeName overwrites the theme name cache.
func (s *Store) SaveThemeName(name string) error {
	if err := os.WriteFile(s.themeCachePath(), []byte(name), 0o644); err != nil {
		return fmt.Errorf("save theme name: %w", err)
	}
	return nil
}

// Themes returns the user-saved themes. A missing or malformed themes
// file yields an empty map, never an error.
func (s *Store) Themes() map[string]theme.Theme {
	data, err := os.ReadFile(s.themesPath())
	if err != nil {
		return map[string]theme.Theme{}
	}

	var themes map[string]theme.Theme
	if err := json.Unmarshal(data, &themes); err != nil || themes == nil {
		return map[string]theme.Theme{}
	}
	return themes
}

// SaveThemes overwrites the themes file with the given user themes.
func (s *Store) SaveThemes(themes map[string]theme.Theme) error {
	data, err := json.MarshalIndent(themes, "", "    ")
	if err != nil {
		return fmt.Errorf("encode themes: %w", err)
	}
	if err := os.WriteFile(s.themesPath(), data, 0o644); err != nil {
		return fmt.Errorf("save themes: %w", err)
	}
	return nil
}
