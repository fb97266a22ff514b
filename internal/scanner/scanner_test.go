package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScanFindsExecutablesInSubtrees(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A", "deep", "nested", "app.exe"))
	writeFile(t, filepath.Join(root, "B", "readme.txt"))
	writeFile(t, filepath.Join(root, "C", "x.exe"))
	writeFile(t, filepath.Join(root, "C", "icon.png"))

	entries, err := Scan(root, ExecutableExtensions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].FolderName != "A" || entries[1].FolderName != "C" {
		t.Errorf("expected folders [A C], got [%s %s]", entries[0].FolderName, entries[1].FolderName)
	}
	if entries[0].ExecutablePath != filepath.Join(root, "A", "deep", "nested", "app.exe") {
		t.Errorf("unexpected executable for A: %s", entries[0].ExecutablePath)
	}
	if entries[0].IconPath != "" {
		t.Errorf("expected no icon for A, got %s", entries[0].IconPath)
	}
	if entries[1].IconPath != filepath.Join(root, "C", "icon.png") {
		t.Errorf("unexpected icon for C: %s", entries[1].IconPath)
	}
}

func TestScanFirstMatchWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "game", "one.exe"))
	writeFile(t, filepath.Join(root, "game", "two.exe"))

	entries, err := Scan(root, ExecutableExtensions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	// Lexical traversal makes the choice deterministic.
	if entries[0].ExecutablePath != filepath.Join(root, "game", "one.exe") {
		t.Errorf("expected one.exe, got %s", entries[0].ExecutablePath)
	}
}

func TestScanMatchesCaseInsensitively(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "game", "GAME.EXE"))

	entries, err := Scan(root, ExecutableExtensions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestScanIconPriority(t *testing.T) {
	tests := []struct {
		name  string
		icons []string
		want  string
	}{
		{"ico over png and gif", []string{"icon.ico", "icon.png", "icon.gif"}, "icon.ico"},
		{"png over gif", []string{"icon.png", "icon.gif"}, "icon.png"},
		{"gif alone", []string{"icon.gif"}, "icon.gif"},
		{"no icon", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, "game", "app.exe"))
			for _, icon := range tt.icons {
				writeFile(t, filepath.Join(root, "game", icon))
			}

			entries, err := Scan(root, ExecutableExtensions)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(entries))
			}

			want := ""
			if tt.want != "" {
				want = filepath.Join(root, "game", tt.want)
			}
			if entries[0].IconPath != want {
				t.Errorf("expected icon %q, got %q", want, entries[0].IconPath)
			}
		})
	}
}

func TestScanIconNotSearchedInSubdirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "game", "app.exe"))
	writeFile(t, filepath.Join(root, "game", "assets", "icon.png"))

	entries, err := Scan(root, ExecutableExtensions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].IconPath != "" {
		t.Errorf("expected no icon, got %s", entries[0].IconPath)
	}
}

func TestScanIconNextToDeepExecutable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "game", "bin", "app.exe"))
	writeFile(t, filepath.Join(root, "game", "bin", "icon.ico"))
	writeFile(t, filepath.Join(root, "game", "icon.png"))

	entries, err := Scan(root, ExecutableExtensions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The icon lives in the executable's directory, not the folder root.
	if entries[0].IconPath != filepath.Join(root, "game", "bin", "icon.ico") {
		t.Errorf("unexpected icon: %s", entries[0].IconPath)
	}
}

func TestScanTopLevelFilesIgnored(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "loose.exe"))

	entries, err := Scan(root, ExecutableExtensions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries for a loose file, got %d", len(entries))
	}
}

func TestScanInvalidStartDirectory(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "missing"), ExecutableExtensions); err == nil {
		t.Error("expected error for missing directory")
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	writeFile(t, file)
	if _, err := Scan(file, ExecutableExtensions); err == nil {
		t.Error("expected error when start path is a file")
	}
}
