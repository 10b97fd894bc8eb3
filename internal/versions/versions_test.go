package versions

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ImSingee/go-ex/mr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImSingee/shopify-cli/internal/partners"
	"github.com/ImSingee/shopify-cli/internal/partners/partnerstest"
)

func tags(versions []partners.AppVersion) []string {
	return mr.Map(versions, func(v partners.AppVersion, _ int) string { return v.VersionTag })
}

func TestSort(t *testing.T) {
	t.Run("semantic versions", func(t *testing.T) {
		versions := []partners.AppVersion{{VersionTag: "1.2.0"}, {VersionTag: "1.10.0"}, {VersionTag: "v0.9.1"}, {VersionTag: "2.0.0"}}
		Sort(versions)
		assert.Equal(t, []string{"2.0.0", "1.10.0", "1.2.0", "v0.9.1"}, tags(versions))
	})

	t.Run("free form tags keep the api order", func(t *testing.T) {
		versions := []partners.AppVersion{{VersionTag: "my-app-3"}, {VersionTag: "1.0.0"}, {VersionTag: "my-app-1"}}
		Sort(versions)
		assert.Equal(t, []string{"my-app-3", "1.0.0", "my-app-1"}, tags(versions))
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("table", func(t *testing.T) {
		fake := partnerstest.New().Respond(partners.AppVersionsQuery, `{"app": {"id": "1", "title": "my-app", "appVersions": {"nodes": [
			{"status": "INACTIVE", "versionTag": "1.0.0", "message": "first", "createdAt": "2024-01-01", "createdBy": {"displayName": "Alex"}},
			{"status": "ACTIVE", "versionTag": "1.1.0", "message": "second\nline", "createdAt": "2024-02-01", "createdBy": {"displayName": "Sam"}}
		]}}}`)
		out := &bytes.Buffer{}

		require.NoError(t, List(ctx, fake, "token", "api-key", out))
		assert.Equal(t, ""+
			"VERSION  STATUS    MESSAGE      DATE CREATED  CREATED BY\n"+
			"1.1.0    active    second line  2024-02-01    Sam\n"+
			"1.0.0    inactive  first        2024-01-01    Alex\n",
			out.String())

		calls := fake.CallsTo(partners.AppVersionsQuery)
		require.Len(t, calls, 1)
		assert.Equal(t, map[string]any{"apiKey": "api-key"}, calls[0].Variables)
	})

	t.Run("no versions", func(t *testing.T) {
		fake := partnerstest.New().Respond(partners.AppVersionsQuery, `{"app": {"title": "my-app", "appVersions": {"nodes": []}}}`)
		out := &bytes.Buffer{}

		require.NoError(t, List(ctx, fake, "token", "api-key", out))
		assert.Equal(t, "No app versions found for my-app\n", out.String())
	})

	t.Run("request error", func(t *testing.T) {
		boom := errors.New("boom")
		fake := partnerstest.New().Fail(partners.AppVersionsQuery, boom)

		assert.ErrorIs(t, List(ctx, fake, "token", "api-key", &bytes.Buffer{}), boom)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
