package themeext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImSingee/shopify-cli/internal/partners"
	"github.com/ImSingee/shopify-cli/internal/partners/partnerstest"
)

func TestAdminThemeAPI(t *testing.T) {
	ctx := context.Background()

	newAPI := func(fake *partnerstest.Fake) (*AdminThemeAPI, *[]string) {
		endpoints := &[]string{}
		return &AdminThemeAPI{
			APIVersion: "2024-04",
			NewClient: func(endpoint string) partners.Client {
				*endpoints = append(*endpoints, endpoint)
				return fake
			},
		}, endpoints
	}

	t.Run("fetch", func(t *testing.T) {
		fake := partnerstest.New().
			Respond(themeQuery, `{"theme": {"id": "gid://shopify/OnlineStoreTheme/42", "name": "Dawn", "role": "MAIN"}}`).
			Respond(themeQuery, `{"theme": null}`)
		api, endpoints := newAPI(fake)

		theme, err := api.FetchTheme(ctx, 42, adminSession)
		require.NoError(t, err)
		assert.Equal(t, &Theme{ID: 42, Name: "Dawn", Role: "MAIN"}, theme)

		theme, err = api.FetchTheme(ctx, 43, adminSession)
		require.NoError(t, err)
		assert.Nil(t, theme)

		assert.Equal(t, "https://my-shop.myshopify.com/admin/api/2024-04/graphql.json", (*endpoints)[0])
		calls := fake.CallsTo(themeQuery)
		require.Len(t, calls, 2)
		assert.Equal(t, "token", calls[0].Token)
		assert.Equal(t, map[string]any{"id": "gid://shopify/OnlineStoreTheme/42"}, calls[0].Variables)
	})

	t.Run("list", func(t *testing.T) {
		fake := partnerstest.New().Respond(themesQuery, `{"themes": {"nodes": [
			{"id": "gid://shopify/OnlineStoreTheme/1", "name": "One", "role": "DEVELOPMENT"},
			{"id": "gid://shopify/OnlineStoreTheme/2", "name": "Two", "role": "DEVELOPMENT"}
		]}}`)
		api, _ := newAPI(fake)

		themes, err := api.ListThemes(ctx, adminSession, RoleDevelopment)
		require.NoError(t, err)
		assert.Equal(t, []Theme{
			{ID: 1, Name: "One", Role: RoleDevelopment},
			{ID: 2, Name: "Two", Role: RoleDevelopment},
		}, themes)
		assert.Equal(t, []string{RoleDevelopment}, fake.CallsTo(themesQuery)[0].Variables["roles"])
	})

	t.Run("create", func(t *testing.T) {
		fake := partnerstest.New().
			Respond(themeCreateMutation, `{"themeCreate": {"theme": {"id": "gid://shopify/OnlineStoreTheme/7", "name": "App Ext. Host Name", "role": "DEVELOPMENT"}, "userErrors": []}}`).
			Respond(themeCreateMutation, `{"themeCreate": {"theme": null, "userErrors": [{"message": "Name is taken"}]}}`)
		api, _ := newAPI(fake)

		theme, err := api.CreateTheme(ctx, adminSession, HostThemeName, RoleDevelopment)
		require.NoError(t, err)
		assert.Equal(t, int64(7), theme.ID)

		_, err = api.CreateTheme(ctx, adminSession, HostThemeName, RoleDevelopment)
		assert.ErrorContains(t, err, "Name is taken")
	})

	t.Run("invalid id", func(t *testing.T) {
		fake := partnerstest.New().Respond(themeQuery, `{"theme": {"id": "gid://shopify/Product/abc"}}`)
		api, _ := newAPI(fake)

		_, err := api.FetchTheme(ctx, 1, adminSession)
		assert.ErrorContains(t, err, "invalid theme id")
	})
}
