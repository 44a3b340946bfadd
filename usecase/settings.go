package usecase

import (
	"context"
	"strings"

	"tostreak/model"
)

func (t *Tracker) Settings() model.Settings {
	t.mu.Lock()
	defer t.mu.Unlock()
	return model.Settings{Theme: t.state.Theme, APIKey: t.state.APIKey}
}

func (t *Tracker) Theme() model.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Theme
}

func (t *Tracker) SetTheme(ctx context.Context, theme model.Theme) error {
	if !theme.Valid() {
		return ErrInvalidTheme
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saveTheme(ctx, theme)
}

func (t *Tracker) ToggleTheme(ctx context.Context) (model.Theme, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.state.Theme.Toggled()
	if err := t.saveTheme(ctx, next); err != nil {
		return t.state.Theme, err
	}
	return next, nil
}

func (t *Tracker) saveTheme(ctx context.Context, theme model.Theme) error {
	if err := t.repo.SaveTheme(ctx, theme); err != nil {
		return err
	}
	t.state.Theme = theme
	return nil
}

func (t *Tracker) APIKey() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.APIKey
}

// SetAPIKey stores the key as given, trimmed. An empty key clears it.
func (t *Tracker) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.repo.SaveAPIKey(ctx, key); err != nil {
		return err
	}
	t.state.APIKey = key
	return nil
}
