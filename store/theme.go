package store

import (
	"context"

	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/amancoderhub/EMS-Event-management-System/preferences"
	"go.uber.org/zap"
)

// Theme returns the current display theme.
func (s *Store) Theme() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Theme
}

// RestoreTheme loads the persisted theme. A missing or unknown value leaves
// the dark default in place.
func (s *Store) RestoreTheme(ctx context.Context) error {
	s.themeMu.Lock()
	defer s.themeMu.Unlock()

	val, err := s.prefs.Get(ctx, preferences.ThemeKey)
	if err != nil {
		return err
	}

	theme := models.ThemeDark
	if models.Theme(val) == models.ThemeLight {
		theme = models.ThemeLight
	}
	s.mu.Lock()
	s.state.Theme = theme
	s.mu.Unlock()
	return nil
}

// ToggleTheme flips between dark and light and persists the result. A failed
// write is logged; the in-memory theme still changes.
func (s *Store) ToggleTheme(ctx context.Context) models.Theme {
	s.themeMu.Lock()
	defer s.themeMu.Unlock()

	s.mu.Lock()
	s.state.Theme = s.state.Theme.Toggle()
	theme := s.state.Theme
	s.mu.Unlock()

	if err := s.prefs.Set(ctx, preferences.ThemeKey, string(theme)); err != nil {
		s.logger.Error("Failed to persist theme", zap.String("theme", string(theme)), zap.Error(err))
	}
	return theme
}
