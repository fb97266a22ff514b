package launch

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestRunMissingExecutable(t *testing.T) {
	err := Run(filepath.Join(t.TempDir(), "gone.exe"))
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
	if !errors.Is(err, ErrExecutableNotFound) {
		t.Errorf("expected ErrExecutableNotFound, got %v", err)
	}
}

func TestRunNonExecutableFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "data.exe")
	if err := os.WriteFile(path, []byte("not a program"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := Run(path)
	if err == nil {
		t.Fatal("expected launch failure")
	}
	if errors.Is(err, ErrExecutableNotFound) {
		t.Error("a present but unlaunchable file must not report not-found")
	}
}

func TestRunStartsProcessInItsOwnDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture is unix-only")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "app.exe")
	marker := filepath.Join(dir, "started")

	// The script writes its working directory, proving cwd was set to
	// the executable's folder.
	body := "#!/bin/sh\npwd > started\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}

	if err := Run(script); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		data, err := os.ReadFile(marker)
		if err == nil && len(data) > 0 {
			got, _ := filepath.EvalSymlinks(strings.TrimSpace(string(data)))
			want, _ := filepath.EvalSymlinks(dir)
			if got != want {
				t.Errorf("expected cwd %q, got %q", want, got)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("launched process never wrote its marker file")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
