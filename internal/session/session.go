package session

import (
	"funkin-launcher/internal/logger"
	"funkin-launcher/internal/prefs"
	"funkin-launcher/internal/theme"
)

// Session holds the launcher's mutable state: the current start
// directory and the active theme. It replaces ambient globals; every
// mutation is flushed to the preference store immediately. Preference
// write failures are logged and otherwise ignored, they are never fatal
// to the running action.
type Session struct {
	store *prefs.Store
	log   logger.Logger

	directory string
	themeName string
}

// New restores a session from the store: the last valid directory (may
// be empty on first run) and the last theme name.
func New(store *prefs.Store, log logger.Logger) *Session {
	s := &Session{
		store: store,
		log:   log,
	}

	if dir, ok := store.LastDirectory(); ok {
		s.directory = dir
	}
	s.themeName = store.ThemeName()

	return s
}

// Directory returns the current start directory, empty when none has
// been chosen yet.
func (s *Session) Directory() string {
	return s.directory
}

// SetDirectory records dir as the current start directory and persists it.
func (s *Session) SetDirectory(dir string) {
	s.directory = dir
	if err := s.store.SaveLastDirectory(dir); err != nil {
		s.log.Warning("Session", "could not save directory to cache", map[string]interface{}{
			"directory": dir,
			"error":     err.Error(),
		})
	}
}

// ThemeName returns the active theme name.
func (s *Session) ThemeName() string {
	return s.themeName
}

// Theme resolves the active theme against built-ins overlaid with the
// user themes currently on disk.
func (s *Session) Theme() theme.Theme {
	return theme.Resolve(s.themeName, s.store.Themes())
}

// Themes returns the merged theme set, user themes winning on name
// collision.
func (s *Session) Themes() map[string]theme.Theme {
	return theme.Merge(s.store.Themes())
}

// SelectTheme makes name the active theme and persists the choice.
func (s *Session) SelectTheme(name string) {
	s.themeName = name
	if err := s.store.SaveThemeName(name); err != nil {
		s.log.Warning("Session", "could not save theme to cache", map[string]interface{}{
			"theme": name,
			"error": err.Error(),
		})
	}
}

// SaveTheme stores t under name as a user theme, overriding any
// built-in of the same name, and makes it active.
func (s *Session) SaveTheme(name string, t theme.Theme) {
	user := s.store.Themes()
	user[name] = t
	if err := s.store.SaveThemes(user); err != nil {
		s.log.Warning("Session", "could not save themes", map[string]interface{}{
			"theme": name,
			"error": err.Error(),
		})
	}
	s.SelectTheme(name)
}

// DeleteTheme removes the user theme with the given name. Built-ins are
// not persisted, so a built-in of the same name is unaffected and
// reappears in the merged set.
func (s *Session) DeleteTheme(name string) {
	user := s.store.Themes()
	if _, ok := user[name]; !ok {
		return
	}
	delete(user, name)
	if err := s.store.SaveThemes(user); err != nil {
		s.log.Warning("Session", "could not save themes", map[string]interface{}{
			"theme": name,
			"error": err.Error(),
		})
	}

	if s.themeName == name {
		if _, stillThere := s.Themes()[name]; !stillThere {
			s.SelectTheme(theme.DefaultName)
		}
	}
}

// Flush persists the session state that is only written on demand.
// Called on window close.
func (s *Session) Flush() {
	if err := s.store.SaveThemeName(s.themeName); err != nil {
		s.log.Warning("Session", "could not flush theme to cache", map[string]interface{}{
			"theme": s.themeName,
			"error": err.Error(),
		})
	}
}
