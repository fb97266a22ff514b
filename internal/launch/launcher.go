package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrExecutableNotFound reports that the target path vanished between
// scan and launch. Distinguished from generic launch failures so the
// caller can message it separately.
var ErrExecutableNotFound = errors.New("executable not found")

// Run starts the executable as an independent process with its working
// directory set to its containing folder, so the launched program finds
// co-located assets. The process is not waited on or tracked; once
// started, launcher and target are fully decoupled.
func Run(executablePath string) error {
	if _, err := os.Stat(executablePath); err != nil {
		return fmt.Errorf("%w: %s", ErrExecutableNotFound, executablePath)
	}

	cmd := exec.Command(executablePath)
	cmd.Dir = filepath.Dir(executablePath)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %q: %w", executablePath, err)
	}

	// Release without waiting; the child's lifecycle is its own.
	go func() { _ = cmd.Wait() }()

	return nil
}
