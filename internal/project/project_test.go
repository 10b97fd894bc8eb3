package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImSingee/shopify-cli/internal/app"
	"github.com/ImSingee/shopify-cli/internal/config"
	"github.com/ImSingee/shopify-cli/internal/partners"
	"github.com/ImSingee/shopify-cli/internal/session"
	"github.com/ImSingee/shopify-cli/internal/ui"
)

func writeApp(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	t.Setenv(config.EnvPartnersEndpoint, "")
	t.Setenv(config.EnvPackageManager, "")

	dir := writeApp(t, map[string]string{
		app.ConfigFileName: "client_id = \"abc\"\nname = \"my-app\"\n",
		".shopifyrc":       `{"partners-endpoint": "https://partners.example.com/graphql", "package-manager": "pnpm"}`,
		"yarn.lock":        "",
	})

	p, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "my-app", p.App.Configuration.Name)
	assert.Equal(t, "pnpm", p.App.PackageManager)
	assert.Equal(t, "https://partners.example.com/graphql", p.Client.(*partners.GraphQLClient).Endpoint())
	assert.IsType(t, session.EnvProvider{}, p.Sessions)

	t.Run("missing app", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.ErrorContains(t, err, app.ConfigFileName)
	})
}

func TestCredentials(t *testing.T) {
	p := &Project{
		App: &app.App{ConfigurationPath: "/app/shopify.app.toml", Configuration: app.Configuration{ClientID: "abc"}},
		Sessions: session.EnvProvider{Getenv: func(key string) string {
			if key == config.EnvPartnersToken {
				return "token"
			}
			return ""
		}},
	}

	token, apiKey, err := p.Credentials(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "token", token)
	assert.Equal(t, "abc", apiKey)

	_, apiKey, err = p.Credentials(context.Background(), "override")
	require.NoError(t, err)
	assert.Equal(t, "override", apiKey)

	p.App.Configuration.ClientID = ""
	_, _, err = p.Credentials(context.Background(), "")
	require.Error(t, err)
	assert.True(t, ui.IsAbort(err))
}
