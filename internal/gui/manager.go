package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"funkin-launcher/internal/logger"
	"funkin-launcher/internal/scanner"
	"funkin-launcher/internal/theme"
)

const noEntriesText = "No executable-containing folders found."

// Manager owns the main window content: the control row (directory
// label, refresh, browse, theme controls) and the scrollable button
// column, one button per scanned folder. It is presentation only; all
// behavior is injected through handler setters.
type Manager struct {
	fyneApp fyne.App
	window  fyne.Window
	log     logger.Logger

	background  *canvas.Rectangle
	dirLabel    *canvas.Text
	refreshBtn  *widget.Button
	browseBtn   *widget.Button
	editBtn     *widget.Button
	themeSelect *widget.Select
	buttonsBox  *fyne.Container

	entries      []scanner.FolderEntry
	currentTheme theme.Theme

	launchHandler      func(executablePath string)
	rescanHandler      func()
	browseHandler      func()
	themeSelectHandler func(name string)
	themeSaveHandler   func(name string, t theme.Theme)
	themeDeleteHandler func(name string)
}

func NewManager(fyneApp fyne.App, window fyne.Window, log logger.Logger) *Manager {
	m := &Manager{
		fyneApp:      fyneApp,
		window:       window,
		log:          log,
		currentTheme: theme.BuiltIn()[theme.DefaultName],
	}

	m.background = canvas.NewRectangle(theme.ParseColor(m.currentTheme.BgDark))

	m.dirLabel = canvas.NewText("No directory selected.", theme.ParseColor(m.currentTheme.LabelFg))
	m.dirLabel.TextSize = 12

	m.refreshBtn = widget.NewButton("Refresh", func() {
		if m.rescanHandler != nil {
			m.rescanHandler()
		}
	})
	m.browseBtn = widget.NewButton("Browse", func() {
		if m.browseHandler != nil {
			m.browseHandler()
		}
	})
	m.editBtn = widget.NewButton("Edit Theme", func() {
		m.showThemeEditor()
	})

	m.themeSelect = widget.NewSelect(nil, func(name string) {
		if m.themeSelectHandler != nil {
			m.themeSelectHandler(name)
		}
	})

	m.buttonsBox = container.NewVBox()

	log.Info("GUIManager", "initialized", nil)
	return m
}

// Content builds the window content tree.
func (m *Manager) Content() fyne.CanvasObject {
	controls := container.NewBorder(
		nil, nil,
		container.NewCenter(m.dirLabel),
		container.NewHBox(m.refreshBtn, m.browseBtn, m.editBtn, m.themeSelect),
	)

	body := container.NewVScroll(container.NewPadded(m.buttonsBox))

	return container.NewStack(
		m.background,
		container.NewBorder(controls, nil, nil, nil, body),
	)
}

func (m *Manager) Window() fyne.Window {
	return m.window
}

func (m *Manager) SetLaunchHandler(handler func(executablePath string)) {
	m.launchHandler = handler
}

func (m *Manager) SetRescanHandler(handler func()) {
	m.rescanHandler = handler
}

func (m *Manager) SetBrowseHandler(handler func()) {
	m.browseHandler = handler
}

func (m *Manager) SetThemeSelectHandler(handler func(name string)) {
	m.themeSelectHandler = handler
}

func (m *Manager) SetThemeSaveHandler(handler func(name string, t theme.Theme)) {
	m.themeSaveHandler = handler
}

func (m *Manager) SetThemeDeleteHandler(handler func(name string)) {
	m.themeDeleteHandler = handler
}

// SetDirectory updates the directory label.
func (m *Manager) SetDirectory(dir string) {
	if dir == "" {
		dir = "No directory selected."
	}
	m.dirLabel.Text = dir
	m.dirLabel.Refresh()
}

// UpdateEntries replaces the button column with one button per entry.
// Each scan fully replaces the prior result set.
func (m *Manager) UpdateEntries(entries []scanner.FolderEntry) {
	m.entries = entries
	m.rebuildButtons()

	m.log.Debug("GUIManager", "entries updated", map[string]interface{}{
		"count": len(entries),
	})
}

// ApplyTheme recolors the chrome and refreshes the theme selector
// options and selection.
func (m *Manager) ApplyTheme(name string, t theme.Theme, names []string) {
	m.currentTheme = t

	m.background.FillColor = theme.ParseColor(t.BgDark)
	m.background.Refresh()

	m.dirLabel.Color = theme.ParseColor(t.LabelFg)
	m.dirLabel.Refresh()

	m.themeSelect.Options = names
	m.themeSelect.SetSelected(name)

	m.rebuildButtons()
}

func (m *Manager) rebuildButtons() {
	m.buttonsBox.Objects = nil

	if len(m.entries) == 0 {
		empty := canvas.NewText(noEntriesText, theme.ParseColor(m.currentTheme.LabelFg))
		empty.Alignment = fyne.TextAlignCenter
		m.buttonsBox.Add(empty)
		m.buttonsBox.Refresh()
		return
	}

	for _, entry := range m.entries {
		m.buttonsBox.Add(m.newEntryButton(entry))
	}
	m.buttonsBox.Refresh()
}

// newEntryButton builds one launch button. The icon resource is loaded
// here and owned by the widget tree, so it lives exactly as long as the
// button shows it.
func (m *Manager) newEntryButton(entry scanner.FolderEntry) fyne.CanvasObject {
	execPath := entry.ExecutablePath
	tapped := func() {
		if m.launchHandler != nil {
			m.launchHandler(execPath)
		}
	}

	if entry.IconPath != "" {
		res, err := fyne.LoadResourceFromPath(entry.IconPath)
		if err == nil {
			return widget.NewButtonWithIcon(entry.FolderName, res, tapped)
		}
		m.log.Warning("GUIManager", "could not load icon", map[string]interface{}{
			"icon":  entry.IconPath,
			"error": err.Error(),
		})
	}
	return widget.NewButton(entry.FolderName, tapped)
}

// ShowError surfaces an action-level failure without ending the session.
func (m *Manager) ShowError(err error) {
	dialog.ShowError(err, m.window)
}

// ShowInfo shows an informational message box.
func (m *Manager) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, m.window)
}
