package app

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"funkin-launcher/internal/gui"
	"funkin-launcher/internal/launch"
	"funkin-launcher/internal/logger"
	"funkin-launcher/internal/scanner"
	"funkin-launcher/internal/session"
	"funkin-launcher/internal/theme"
)

// Handlers translate user actions into calls against the core
// components. Every action is a synchronous request-response; errors
// are shown and end only the triggering action, never the application.
type Handlers struct {
	session    *session.Session
	guiManager *gui.Manager
	log        logger.Logger

	cancelFirstRun func()
}

func NewHandlers(sess *session.Session, gm *gui.Manager, log logger.Logger) *Handlers {
	return &Handlers{
		session:    sess,
		guiManager: gm,
		log:        log,
	}
}

func (h *Handlers) setCancelFirstRun(fn func()) {
	h.cancelFirstRun = fn
}

// HandleRescan re-scans the session's current directory.
func (h *Handlers) HandleRescan() {
	dir := h.session.Directory()
	if !isDir(dir) {
		h.guiManager.ShowInfo("No Directory", "Please select a valid directory first.")
		return
	}
	h.RescanDirectory(dir)
}

// RescanDirectory makes dir the current directory, persists it and
// rebuilds the launch buttons from a fresh scan.
func (h *Handlers) RescanDirectory(dir string) {
	entries, err := scanner.Scan(dir, scanner.ExecutableExtensions)
	if err != nil {
		h.log.Error("Handlers", err, map[string]interface{}{
			"directory": dir,
		})
		h.guiManager.ShowError(fmt.Errorf("the directory '%s' could not be scanned: %w", dir, err))
		h.guiManager.UpdateEntries(nil)
		return
	}

	h.session.SetDirectory(dir)
	h.guiManager.SetDirectory(dir)
	h.guiManager.UpdateEntries(entries)

	h.log.Info("Handlers", "scan complete", map[string]interface{}{
		"directory": dir,
		"entries":   len(entries),
	})
}

// HandleBrowse lets the user pick a new start directory.
func (h *Handlers) HandleBrowse() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			h.guiManager.ShowError(err)
			return
		}
		if uri == nil {
			return
		}
		h.RescanDirectory(uri.Path())
	}, h.guiManager.Window())
}

// BrowseForFirstDirectory runs the first-run directory pick. Unlike
// HandleBrowse, cancelling here ends the session.
func (h *Handlers) BrowseForFirstDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			if h.cancelFirstRun != nil {
				h.cancelFirstRun()
			}
			return
		}
		h.RescanDirectory(uri.Path())
	}, h.guiManager.Window())
}

// HandleLaunch starts the chosen executable, reporting a vanished
// target distinctly from a generic launch failure.
func (h *Handlers) HandleLaunch(executablePath string) {
	err := launch.Run(executablePath)
	if err == nil {
		h.log.Info("Handlers", "launched", map[string]interface{}{
			"executable": executablePath,
		})
		return
	}

	h.log.Error("Handlers", err, map[string]interface{}{
		"executable": executablePath,
	})

	if errors.Is(err, launch.ErrExecutableNotFound) {
		h.guiManager.ShowError(fmt.Errorf("executable not found at: %s", executablePath))
		return
	}
	h.guiManager.ShowError(fmt.Errorf("an error occurred: %w", err))
}

// HandleThemeSelect makes an existing theme active.
func (h *Handlers) HandleThemeSelect(name string) {
	if h.session.ThemeName() == name {
		return
	}
	h.session.SelectTheme(name)
	h.ApplyCurrentTheme()
}

// HandleThemeSave stores a user theme and applies it.
func (h *Handlers) HandleThemeSave(name string, t theme.Theme) {
	h.session.SaveTheme(name, t)
	h.ApplyCurrentTheme()
	h.guiManager.ShowInfo("Success", fmt.Sprintf("Theme '%s' saved and applied!", name))
}

// HandleThemeDelete removes a user theme. A built-in of the same name
// is unaffected.
func (h *Handlers) HandleThemeDelete(name string) {
	h.session.DeleteTheme(name)
	h.ApplyCurrentTheme()
}

// ApplyCurrentTheme pushes the session's resolved theme and the merged
// theme list to the presentation layer.
func (h *Handlers) ApplyCurrentTheme() {
	name := h.session.ThemeName()
	h.guiManager.ApplyTheme(name, h.session.Theme(), theme.Names(h.session.Themes()))
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
