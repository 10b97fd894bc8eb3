package release

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImSingee/shopify-cli/internal/app"
	"github.com/ImSingee/shopify-cli/internal/config"
	"github.com/ImSingee/shopify-cli/internal/project"
	"github.com/ImSingee/shopify-cli/internal/session"
)

func testProject(t *testing.T, clientID string) *project.Project {
	t.Helper()

	dir := t.TempDir()
	content := "name = \"my-app\"\n"
	if clientID != "" {
		content = "client_id = \"" + clientID + "\"\n" + content
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, app.ConfigFileName), []byte(content), 0644))

	a, err := app.Load(dir)
	require.NoError(t, err)

	return &project.Project{
		App: a,
		Sessions: session.EnvProvider{Getenv: func(key string) string {
			if key == config.EnvPartnersToken {
				return "api-token"
			}
			return ""
		}},
	}
}

func TestProjectResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("stored client id", func(t *testing.T) {
		p := testProject(t, "stored")

		rc, err := (&ProjectResolver{Project: p}).EnsureReleaseContext(ctx, Options{ClientID: "other"})
		require.NoError(t, err)
		assert.Equal(t, "api-token", rc.Token)
		assert.Equal(t, "other", rc.APIKey)

		reloaded, err := app.Load(p.App.Directory)
		require.NoError(t, err)
		assert.Equal(t, "stored", reloaded.Configuration.ClientID)
	})

	t.Run("reset stores the new client id", func(t *testing.T) {
		p := testProject(t, "stored")

		rc, err := (&ProjectResolver{Project: p}).EnsureReleaseContext(ctx, Options{ClientID: "other", Reset: true})
		require.NoError(t, err)
		assert.Equal(t, "other", rc.APIKey)

		reloaded, err := app.Load(p.App.Directory)
		require.NoError(t, err)
		assert.Equal(t, "other", reloaded.Configuration.ClientID)
	})

	t.Run("missing client id is stored", func(t *testing.T) {
		p := testProject(t, "")

		_, err := (&ProjectResolver{Project: p}).EnsureReleaseContext(ctx, Options{ClientID: "new"})
		require.NoError(t, err)

		reloaded, err := app.Load(p.App.Directory)
		require.NoError(t, err)
		assert.Equal(t, "new", reloaded.Configuration.ClientID)
		assert.Equal(t, "my-app", reloaded.Configuration.Name)
	})

	t.Run("no client id at all", func(t *testing.T) {
		p := testProject(t, "")

		_, err := (&ProjectResolver{Project: p}).EnsureReleaseContext(ctx, Options{})
		assert.ErrorContains(t, err, "No client ID found")
	})
}
