package dev

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImSingee/shopify-cli/internal/app"
	"github.com/ImSingee/shopify-cli/internal/partners"
	"github.com/ImSingee/shopify-cli/internal/partners/partnerstest"
	"github.com/ImSingee/shopify-cli/internal/session"
)

type tokenSessions struct{}

func (tokenSessions) EnsureAuthenticatedPartners(context.Context) (string, error) {
	return "token", nil
}

func (tokenSessions) EnsureAuthenticatedAdmin(_ context.Context, store string) (*session.AdminSession, error) {
	return &session.AdminSession{Token: "admin", StoreFqdn: store}, nil
}

func testApp(t *testing.T) *app.App {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, app.ConfigFileName), []byte("client_id = \"api-key\"\nname = \"my-app\"\n"), 0644))

	a, err := app.Load(dir)
	require.NoError(t, err)
	return a
}

func TestDev(t *testing.T) {
	ctx := context.Background()

	t.Run("local url without extensions", func(t *testing.T) {
		out := &bytes.Buffer{}
		fake := partnerstest.New()

		err := Dev(ctx, Options{
			App:      testApp(t),
			Client:   fake,
			Sessions: tokenSessions{},
			Port:     3000,
			Stdout:   out,
			Stderr:   out,
		})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "App URL: http://localhost:3000\n")
		assert.Empty(t, fake.Calls())
	})

	t.Run("update urls", func(t *testing.T) {
		out := &bytes.Buffer{}
		fake := partnerstest.New().Respond(partners.UpdateURLsMutation, `{"appUpdate": {"userErrors": []}}`)
		a := testApp(t)

		opts := Options{
			App:      a,
			Client:   fake,
			Sessions: tokenSessions{},
			APIKey:   "api-key",
			Port:     3000,
			URL:      PreviewURLRequest{Update: true},
			Stdout:   out,
			Stderr:   out,
		}
		require.NoError(t, Dev(ctx, opts))
		require.Len(t, fake.CallsTo(partners.UpdateURLsMutation), 1)

		reloaded, err := app.Load(a.Directory)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000", reloaded.Configuration.ApplicationURL)
		assert.Equal(t, RedirectURLs("http://localhost:3000"), reloaded.Configuration.Auth.RedirectURLs)

		// unchanged url is not pushed again
		require.NoError(t, Dev(ctx, opts))
		assert.Len(t, fake.CallsTo(partners.UpdateURLsMutation), 1)

		// unless reset
		fake.Respond(partners.UpdateURLsMutation, `{"appUpdate": {"userErrors": []}}`)
		opts.URL.Reset = true
		require.NoError(t, Dev(ctx, opts))
		assert.Len(t, fake.CallsTo(partners.UpdateURLsMutation), 2)
	})

	t.Run("missing tunnel plugin", func(t *testing.T) {
		err := Dev(ctx, Options{
			App:    testApp(t),
			Port:   3000,
			URL:    PreviewURLRequest{Tunnel: true},
			Stdout: &bytes.Buffer{},
		})
		assert.ErrorIs(t, err, ErrTunnelPluginNotFound)
	})
}
