package app

import (
	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"funkin-launcher/internal/gui"
	"funkin-launcher/internal/logger"
	"funkin-launcher/internal/prefs"
	"funkin-launcher/internal/session"
	"funkin-launcher/internal/shutdown"
)

const (
	AppName      = "Friday Night Funkin' Launcher"
	AppID        = "com.gamelaunchers.funkinlauncher"
	AppVersion   = "2.0.0"
	WindowWidth  = 500
	WindowHeight = 500
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	log        logger.Logger
	store      *prefs.Store
	session    *session.Session
	guiManager *gui.Manager
	handlers   *Handlers
	shutdownMg *shutdown.Manager
	lifecycle  *Lifecycle
}

func NewApplication(log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  WindowWidth,
		"window_height": WindowHeight,
	})

	store := prefs.New()
	sess := session.New(store, log)
	guiManager := gui.NewManager(fyneApp, window, log)
	handlers := NewHandlers(sess, guiManager, log)

	shutdownMg := shutdown.NewManager(log)
	lifecycle := NewLifecycle(sess, log)
	shutdownMg.Register(lifecycle)
	shutdownMg.Listen()

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		log:        log,
		store:      store,
		session:    sess,
		guiManager: guiManager,
		handlers:   handlers,
		shutdownMg: shutdownMg,
		lifecycle:  lifecycle,
	}

	application.setupHandlers()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	a.guiManager.SetLaunchHandler(a.handlers.HandleLaunch)
	a.guiManager.SetRescanHandler(a.handlers.HandleRescan)
	a.guiManager.SetBrowseHandler(a.handlers.HandleBrowse)
	a.guiManager.SetThemeSelectHandler(a.handlers.HandleThemeSelect)
	a.guiManager.SetThemeSaveHandler(a.handlers.HandleThemeSave)
	a.guiManager.SetThemeDeleteHandler(a.handlers.HandleThemeDelete)

	// Cancelling the first-run directory pick is the one deliberate
	// way to end the session.
	a.handlers.setCancelFirstRun(func() {
		a.guiManager.ShowInfo("Cancelled", "Directory selection cancelled.")
		a.shutdownMg.Shutdown()
		a.window.Close()
	})
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.log.Info("Application", "shutdown requested", nil)
		a.shutdownMg.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.Content())
	a.handlers.ApplyCurrentTheme()
	a.window.Show()

	if dir := a.session.Directory(); dir != "" {
		a.handlers.RescanDirectory(dir)
	} else {
		a.handlers.BrowseForFirstDirectory()
	}

	a.log.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
