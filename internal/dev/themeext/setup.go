package themeext

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ImSingee/shopify-cli/internal/app"
	"github.com/ImSingee/shopify-cli/internal/dev/process"
	"github.com/ImSingee/shopify-cli/internal/session"
)

const (
	ProcessPrefix = "theme-extensions"

	inDevelopmentNotice = "This feature is currently in development and is not ready for use or testing yet."
)

type PreviewOptions struct {
	Extensions []*app.Extension
	Store      string
	Theme      string // host theme id, empty to use the managed host theme
	Port       int

	Sessions session.Provider
	API      ThemeAPI
	Out      io.Writer
}

// SetupPreviewProcess prepares the preview server of the app's theme app
// extensions. It returns nil when there is none.
func SetupPreviewProcess(ctx context.Context, opts PreviewOptions) (*process.Process, error) {
	_, _ = fmt.Fprintln(opts.Out, inDevelopmentNotice)

	var themeExtensions []*app.Extension
	for _, ext := range opts.Extensions {
		if ext.IsThemeExtension() {
			themeExtensions = append(themeExtensions, ext)
		}
	}
	if len(themeExtensions) == 0 {
		return nil, nil
	}
	for _, skipped := range themeExtensions[1:] {
		slog.Warn("Skipping theme app extension", "directory", skipped.Directory)
		_, _ = fmt.Fprintf(opts.Out, "Only one theme app extension can be previewed, skipping %s (%s)\n", skipped.Configuration.Name, skipped.Directory)
	}

	adminSession, err := opts.Sessions.EnsureAuthenticatedAdmin(ctx, opts.Store)
	if err != nil {
		return nil, err
	}

	themeID, err := FindOrCreateHostTheme(ctx, opts.API, adminSession, opts.Theme)
	if err != nil {
		return nil, err
	}

	server, err := NewServer(ServerOptions{
		Root:    themeExtensions[0].Directory,
		Port:    opts.Port,
		Store:   adminSession.StoreFqdn,
		ThemeID: themeID,
	})
	if err != nil {
		return nil, err
	}

	return &process.Process{
		Prefix: ProcessPrefix,
		Run: func(ctx context.Context, stdout, _ io.Writer) error {
			return server.Run(ctx, stdout)
		},
	}, nil
}
