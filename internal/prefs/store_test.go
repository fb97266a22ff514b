package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"funkin-launcher/internal/theme"
)

func TestLastDirectoryAbsentWithoutCache(t *testing.T) {
	store := NewAt(t.TempDir())

	if dir, ok := store.LastDirectory(); ok {
		t.Errorf("expected absent, got %q", dir)
	}
}

func TestLastDirectoryRoundTrip(t *testing.T) {
	store := NewAt(t.TempDir())
	target := t.TempDir()

	if err := store.SaveLastDirectory(target); err != nil {
		t.Fatalf("save: %v", err)
	}

	dir, ok := store.LastDirectory()
	if !ok {
		t.Fatal("expected cached directory")
	}
	if dir != target {
		t.Errorf("expected %q, got %q", target, dir)
	}
}

func TestLastDirectoryDiscardsStalePath(t *testing.T) {
	store := NewAt(t.TempDir())
	target := filepath.Join(t.TempDir(), "gone")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := store.SaveLastDirectory(target); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := os.Remove(target); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if dir, ok := store.LastDirectory(); ok {
		t.Errorf("expected absent for deleted directory, got %q", dir)
	}
}

func TestLastDirectoryDiscardsFilePath(t *testing.T) {
	store := NewAt(t.TempDir())
	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := store.SaveLastDirectory(file); err != nil {
		t.Fatalf("save: %v", err)
	}

	if dir, ok := store.LastDirectory(); ok {
		t.Errorf("expected absent for non-directory, got %q", dir)
	}
}

func TestThemeNameDefault(t *testing.T) {
	store := NewAt(t.TempDir())

	if name := store.ThemeName(); name != theme.DefaultName {
		t.Errorf("expected %q, got %q", theme.DefaultName, name)
	}
}

func TestThemeNameRoundTrip(t *testing.T) {
	store := NewAt(t.TempDir())

	if err := store.SaveThemeName("Xbox"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if name := store.ThemeName(); name != "Xbox" {
		t.Errorf("expected Xbox, got %q", name)
	}
}

func TestThemesEmptyWithoutFile(t *testing.T) {
	store := NewAt(t.TempDir())

	if themes := store.Themes(); len(themes) != 0 {
		t.Errorf("expected empty map, got %d themes", len(themes))
	}
}

func TestThemesMalformedFileYieldsEmptyMap(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "themes.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewAt(root)
	if themes := store.Themes(); len(themes) != 0 {
		t.Errorf("expected empty map for malformed file, got %d themes", len(themes))
	}
}

func TestThemesRoundTrip(t *testing.T) {
	store := NewAt(t.TempDir())

	saved := map[string]theme.Theme{
		"Custom": {
			BgDark:  "#101010",
			Bg:      "#202020",
			Fg:      "#eeeeee",
			Hover:   "#303030",
			Click:   "#404040",
			LabelBg: "#101010",
			LabelFg: "#eeeeee",
		},
	}
	if err := store.SaveThemes(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := store.Themes()
	if len(loaded) != 1 {
		t.Fatalf("expected 1 theme, got %d", len(loaded))
	}
	if loaded["Custom"] != saved["Custom"] {
		t.Errorf("theme changed across save/load: %+v", loaded["Custom"])
	}
}
