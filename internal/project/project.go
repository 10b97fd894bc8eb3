// Package project loads what app commands need to talk to Shopify: the app
// itself, the CLI configuration, credentials and the Partners API client.
package project

import (
	"context"
	"log/slog"
	"os"

	"github.com/ImSingee/go-ex/ee"

	"github.com/ImSingee/shopify-cli/internal/app"
	"github.com/ImSingee/shopify-cli/internal/config"
	"github.com/ImSingee/shopify-cli/internal/partners"
	"github.com/ImSingee/shopify-cli/internal/session"
	"github.com/ImSingee/shopify-cli/internal/ui"
)

type Project struct {
	App      *app.App
	Config   *config.Config
	Sessions session.Provider
	Client   partners.Client
}

// Load reads the app in path (the working directory when empty)
func Load(path string) (*Project, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, ee.Wrap(err, "cannot get working directory")
		}
		path = wd
	}

	a, err := app.Load(path)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(a.Directory)
	if err != nil {
		return nil, err
	}
	if cfg.PackageManager != "" {
		a.PackageManager = cfg.PackageManager
	}

	slog.Debug("Loaded project", "app", a.Directory, "config", cfg.Path, "partners", cfg.PartnersEndpoint)

	return &Project{
		App:      a,
		Config:   cfg,
		Sessions: session.EnvProvider{},
		Client:   partners.NewClient(cfg.PartnersEndpoint),
	}, nil
}

// APIKey is clientID when given, else the client_id of the app configuration
func (p *Project) APIKey(clientID string) (string, error) {
	if clientID != "" {
		return clientID, nil
	}
	if p.App.Configuration.ClientID != "" {
		return p.App.Configuration.ClientID, nil
	}

	return "", ui.NewAbortError(
		"No client ID found for "+p.App.ConfigurationPath,
		"Set `client_id` in "+app.ConfigFileName+" or pass --client-id.",
	)
}

// Credentials returns the Partners token and the API key of the app
func (p *Project) Credentials(ctx context.Context, clientID string) (token string, apiKey string, err error) {
	apiKey, err = p.APIKey(clientID)
	if err != nil {
		return "", "", err
	}

	token, err = p.Sessions.EnsureAuthenticatedPartners(ctx)
	if err != nil {
		return "", "", err
	}

	return token, apiKey, nil
}
