package dev

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"

	"github.com/ImSingee/shopify-cli/internal/partners"
	"github.com/ImSingee/shopify-cli/internal/ui"
)

// PreviewURLRequest controls how the app URL of a dev session is chosen
type PreviewURLRequest struct {
	Reset   bool
	Tunnel  bool
	Update  bool // push the URL to the Partners Dashboard
	Plugins []Plugin
}

type Plugin interface {
	Name() string
}

// TunnelPlugin exposes a local port publicly
type TunnelPlugin interface {
	Plugin
	// Start returns once the public URL is known; the tunnel lives until ctx is done
	Start(ctx context.Context, port int) (string, error)
}

var ErrTunnelPluginNotFound = ui.NewAbortError("The tunnel plugin could not be found.")

// LookupTunnelPlugin returns the first plugin able to open a tunnel
func LookupTunnelPlugin(plugins []Plugin) (TunnelPlugin, bool) {
	for _, p := range plugins {
		if tp, ok := p.(TunnelPlugin); ok {
			return tp, true
		}
	}
	return nil, false
}

func GenerateURL(ctx context.Context, request PreviewURLRequest, port int) (string, error) {
	if !request.Tunnel {
		return "http://localhost:" + strconv.Itoa(port), nil
	}

	plugin, ok := LookupTunnelPlugin(request.Plugins)
	if !ok {
		return "", ErrTunnelPluginNotFound
	}

	slog.Debug("Starting tunnel", "plugin", plugin.Name(), "port", port)
	url, err := plugin.Start(ctx, port)
	if err != nil {
		return "", ee.Wrapf(err, "cannot start tunnel %s", plugin.Name())
	}

	return url, nil
}

var redirectURLSuffixes = []string{
	"/auth/callback",
	"/auth/shopify/callback",
	"/api/auth/callback",
}

// RedirectURLs derives the OAuth callback URLs of an app URL
func RedirectURLs(appURL string) []string {
	result := make([]string, len(redirectURLSuffixes))
	for i, suffix := range redirectURLSuffixes {
		result[i] = appURL + suffix
	}
	return result
}

// UpdateURLs sets the app URL and its redirect URLs in the Partners Dashboard
func UpdateURLs(ctx context.Context, client partners.Client, token, apiKey, appURL string, out io.Writer) error {
	variables := map[string]any{
		"apiKey": apiKey,
		"appUrl": appURL,
		"redir":  RedirectURLs(appURL),
	}

	var result partners.UpdateURLsSchema
	err := client.Request(ctx, partners.UpdateURLsMutation, token, variables, &result)
	if err != nil {
		return err
	}

	if errs := result.AppUpdate.UserErrors; len(errs) != 0 {
		return ui.NewAbortError(errs[0].Message)
	}

	_, _ = fmt.Fprintln(out, pp.GreenString("✔").GetForStdout(), "Allowed redirection URLs updated in Partners Dashboard")
	return nil
}
