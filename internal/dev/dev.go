package dev

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ImSingee/shopify-cli/internal/app"
	"github.com/ImSingee/shopify-cli/internal/dev/process"
	"github.com/ImSingee/shopify-cli/internal/dev/themeext"
	"github.com/ImSingee/shopify-cli/internal/partners"
	"github.com/ImSingee/shopify-cli/internal/session"
)

type Options struct {
	App      *app.App
	Client   partners.Client
	Sessions session.Provider
	ThemeAPI themeext.ThemeAPI

	APIKey string
	Store  string
	Theme  string

	Port               int // local app port
	ThemeExtensionPort int
	URL                PreviewURLRequest

	Stdout io.Writer
	Stderr io.Writer
}

// Dev prepares the app URL and runs the dev processes until ctx is done
func Dev(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	url, err := GenerateURL(ctx, opts.URL, opts.Port)
	if err != nil {
		return err
	}
	slog.Debug("Generated app URL", "url", url)

	if opts.URL.Update {
		if err := updateAppURLs(ctx, opts, url); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(opts.Stdout, "App URL: %s\n", url)

	var processes []*process.Process

	preview, err := themeext.SetupPreviewProcess(ctx, themeext.PreviewOptions{
		Extensions: opts.App.Extensions,
		Store:      opts.Store,
		Theme:      opts.Theme,
		Port:       opts.ThemeExtensionPort,
		Sessions:   opts.Sessions,
		API:        opts.ThemeAPI,
		Out:        opts.Stdout,
	})
	if err != nil {
		return err
	}
	if preview != nil {
		processes = append(processes, preview)
	}

	if len(processes) == 0 {
		if !opts.URL.Tunnel {
			return nil
		}
		// keep the tunnel open
		<-ctx.Done()
		return nil
	}

	return process.Run(ctx, processes, opts.Stdout, opts.Stderr)
}

// updateAppURLs pushes url to the Partners Dashboard and records it in the app
// configuration. An unchanged URL is only pushed again on reset.
func updateAppURLs(ctx context.Context, opts Options, url string) error {
	c := &opts.App.Configuration
	if !opts.URL.Reset && c.ApplicationURL == url {
		slog.Debug("App URL unchanged", "url", url)
		return nil
	}

	token, err := opts.Sessions.EnsureAuthenticatedPartners(ctx)
	if err != nil {
		return err
	}
	if err := UpdateURLs(ctx, opts.Client, token, opts.APIKey, url, opts.Stdout); err != nil {
		return err
	}

	c.ApplicationURL = url
	c.Auth.RedirectURLs = RedirectURLs(url)
	return opts.App.Save()
}
