package themeext

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ImSingee/shopify-cli/internal/session"
	"github.com/ImSingee/shopify-cli/internal/ui"
)

const HostThemeName = "App Ext. Host Name"

// HostThemeManager owns the development theme used to preview theme app extensions
type HostThemeManager struct {
	API     ThemeAPI
	Session *session.AdminSession
}

func (m *HostThemeManager) FindOrCreate(ctx context.Context) (*Theme, error) {
	themes, err := m.API.ListThemes(ctx, m.Session, RoleDevelopment)
	if err != nil {
		return nil, err
	}

	for _, t := range themes {
		if t.Name == HostThemeName {
			slog.Debug("Using existing host theme", "id", t.ID)
			return &t, nil
		}
	}

	slog.Debug("Creating host theme", "store", m.Session.StoreFqdn)
	return m.API.CreateTheme(ctx, m.Session, HostThemeName, RoleDevelopment)
}

// FindOrCreateHostTheme returns the id of theme when given, or of the managed
// host theme otherwise
func FindOrCreateHostTheme(ctx context.Context, api ThemeAPI, s *session.AdminSession, theme string) (string, error) {
	if theme == "" {
		t, err := (&HostThemeManager{API: api, Session: s}).FindOrCreate(ctx)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(t.ID, 10), nil
	}

	notFound := &ui.NotFoundError{
		Message: fmt.Sprintf("Could not find a theme on shop %s with id %s", s.StoreFqdn, theme),
	}

	id, err := strconv.ParseInt(theme, 10, 64)
	if err != nil {
		return "", notFound
	}

	t, err := api.FetchTheme(ctx, id, s)
	if err != nil {
		return "", err
	}
	if t == nil {
		return "", notFound
	}

	return strconv.FormatInt(t.ID, 10), nil
}
