package release

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImSingee/shopify-cli/internal/app"
	"github.com/ImSingee/shopify-cli/internal/partners"
	"github.com/ImSingee/shopify-cli/internal/partners/partnerstest"
	"github.com/ImSingee/shopify-cli/internal/ui"
)

type fakeResolver struct {
	app *app.App
	err error
}

func (f *fakeResolver) EnsureReleaseContext(context.Context, Options) (*ReleaseContext, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ReleaseContext{App: f.app, Token: "api-token", APIKey: "app-id"}, nil
}

type fakePrompter struct {
	answer bool
	err    error
	diffs  []partners.VersionsDiff
}

func (f *fakePrompter) ConfirmRelease(_ context.Context, diff partners.VersionsDiff) (bool, error) {
	f.diffs = append(f.diffs, diff)
	return f.answer, f.err
}

type fakeRenderer struct {
	successes []ui.Report
	errors    []ui.Report
}

func (f *fakeRenderer) Success(r ui.Report) { f.successes = append(f.successes, r) }
func (f *fakeRenderer) Error(r ui.Report)   { f.errors = append(f.errors, r) }
func (f *fakeRenderer) Info(ui.Report)      {}

type fixture struct {
	client   *partnerstest.Fake
	prompter *fakePrompter
	renderer *fakeRenderer
	output   *bytes.Buffer
	deps     Deps
}

func newFixture(confirm bool) *fixture {
	f := &fixture{
		client:   partnerstest.New(),
		prompter: &fakePrompter{answer: confirm},
		renderer: &fakeRenderer{},
		output:   &bytes.Buffer{},
	}
	f.deps = Deps{
		Resolver: &fakeResolver{app: &app.App{PackageManager: "yarn"}},
		Client:   f.client,
		Prompter: f.prompter,
		Tasks:    ui.TaskListRunner{Output: f.output},
		Renderer: f.renderer,
	}
	return f
}

func (f *fixture) release(opts Options) error {
	if opts.Version == "" {
		opts.Version = "app-version"
	}
	return Release(context.Background(), f.deps, opts)
}

func (f *fixture) releaseCalls() []partnerstest.Call {
	return f.client.CallsTo(partners.AppReleaseMutation)
}

const updatedDiff = `{"app": {"versionsDiff": {
	"added": [],
	"updated": [{"registrationTitle": "extension-title", "uuid": "extension-uuid"}],
	"removed": []
}}}`

func appRelease(userErrors string) string {
	return `{"appRelease": {
		"deployment": {"location": "https://example.com", "versionTag": "1.0.0", "message": "message"},
		"userErrors": ` + userErrors + `
	}}`
}

func TestRelease(t *testing.T) {
	t.Run("empty version diff", func(t *testing.T) {
		f := newFixture(true)
		f.client.Respond(partners.AppVersionsDiffQuery, `{"app": {"versionsDiff": {}}}`)

		err := f.release(Options{})
		require.Error(t, err)
		assert.Equal(t, "Version not found", err.Error())
		assert.True(t, ui.IsAbort(err))

		assert.Empty(t, f.prompter.diffs)
		assert.Empty(t, f.releaseCalls())

		calls := f.client.CallsTo(partners.AppVersionsDiffQuery)
		require.Len(t, calls, 1)
		assert.Equal(t, "api-token", calls[0].Token)
		assert.Equal(t, map[string]any{"apiKey": "app-id", "versionId": "app-version"}, calls[0].Variables)
	})

	t.Run("user declines", func(t *testing.T) {
		f := newFixture(false)
		f.client.Respond(partners.AppVersionsDiffQuery, updatedDiff)

		err := f.release(Options{})
		require.NoError(t, err)

		require.Len(t, f.prompter.diffs, 1)
		assert.Equal(t, "extension-title", f.prompter.diffs[0].Updated[0].RegistrationTitle)
		assert.Empty(t, f.releaseCalls())
		assert.Empty(t, f.renderer.successes)
		assert.Empty(t, f.renderer.errors)
	})

	t.Run("user confirms", func(t *testing.T) {
		f := newFixture(true)
		f.client.Respond(partners.AppVersionsDiffQuery, updatedDiff)
		f.client.Respond(partners.AppReleaseMutation, appRelease(`[]`))

		err := f.release(Options{})
		require.NoError(t, err)

		calls := f.releaseCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "api-token", calls[0].Token)
		assert.Equal(t, map[string]any{"apiKey": "app-id", "appVersionId": "app-version"}, calls[0].Variables)

		assert.Equal(t, []ui.Report{{
			Headline: "Version released to users.",
			Body: []ui.Token{
				{Link: &ui.Link{Label: "1.0.0", URL: "https://example.com"}},
				{Text: "\nmessage"},
			},
			NextSteps: [][]ui.Token{{
				{Text: "Run"},
				{Command: "yarn shopify app versions list"},
				{Text: "to see rollout progress."},
			}},
		}}, f.renderer.successes)
		assert.Empty(t, f.renderer.errors)
		assert.Equal(t, "> Releasing version\n✓ Releasing version\n", f.output.String())
	})

	t.Run("force skips the prompt", func(t *testing.T) {
		f := newFixture(false)
		f.client.Respond(partners.AppVersionsDiffQuery, updatedDiff)
		f.client.Respond(partners.AppReleaseMutation, appRelease(`[]`))

		err := f.release(Options{Force: true})
		require.NoError(t, err)

		assert.Empty(t, f.prompter.diffs)
		assert.Len(t, f.releaseCalls(), 1)
		assert.Len(t, f.renderer.successes, 1)
	})

	t.Run("user errors", func(t *testing.T) {
		f := newFixture(true)
		f.client.Respond(partners.AppVersionsDiffQuery, updatedDiff)
		f.client.Respond(partners.AppReleaseMutation, appRelease(`[
			{"message": "some kind of error 1"},
			{"message": "some kind of error 2"}
		]`))

		err := f.release(Options{})
		require.Error(t, err)
		assert.Equal(t, "some kind of error 1, some kind of error 2", err.Error())
		assert.True(t, ui.IsAbort(err))

		assert.Empty(t, f.renderer.successes)
		assert.Contains(t, f.output.String(), "✗ Releasing version")
	})

	t.Run("version needs approval", func(t *testing.T) {
		f := newFixture(true)
		f.client.Respond(partners.AppVersionsDiffQuery, updatedDiff)
		f.client.Respond(partners.AppReleaseMutation, appRelease(`[
			{"message": "needs to be submitted for review and approved by Shopify before it can be released"}
		]`))

		err := f.release(Options{})
		require.NoError(t, err)

		assert.Empty(t, f.renderer.successes)
		assert.Equal(t, []ui.Report{{
			Headline: "Version couldn't be released.",
			Body: []ui.Token{
				{Link: &ui.Link{Label: "1.0.0", URL: "https://example.com"}},
				{Text: "\nmessage"},
				{Text: "\n\nThis version needs to be submitted for review and approved by Shopify before it can be released."},
			},
		}}, f.renderer.errors)
	})

	t.Run("approval wins over other errors", func(t *testing.T) {
		f := newFixture(true)
		f.client.Respond(partners.AppVersionsDiffQuery, updatedDiff)
		f.client.Respond(partners.AppReleaseMutation, appRelease(`[
			{"message": "some kind of error"},
			{"message": "This version needs to be submitted for review and approved by Shopify before it can be released."}
		]`))

		err := f.release(Options{})
		require.NoError(t, err)
		require.Len(t, f.renderer.errors, 1)
	})

	t.Run("gateway errors propagate", func(t *testing.T) {
		boom := errors.New("boom")

		f := newFixture(true)
		f.client.Fail(partners.AppVersionsDiffQuery, boom)
		assert.ErrorIs(t, f.release(Options{}), boom)

		f = newFixture(true)
		f.client.Respond(partners.AppVersionsDiffQuery, updatedDiff)
		f.client.Fail(partners.AppReleaseMutation, boom)
		assert.ErrorIs(t, f.release(Options{}), boom)
		assert.Empty(t, f.renderer.successes)
		assert.Empty(t, f.renderer.errors)
	})

	t.Run("context errors propagate", func(t *testing.T) {
		boom := errors.New("no token")

		f := newFixture(true)
		f.deps.Resolver = &fakeResolver{err: boom}
		assert.ErrorIs(t, f.release(Options{}), boom)
		assert.Empty(t, f.client.Calls())
	})

	t.Run("prompt errors propagate", func(t *testing.T) {
		boom := errors.New("no tty")

		f := newFixture(true)
		f.prompter.err = boom
		f.client.Respond(partners.AppVersionsDiffQuery, updatedDiff)

		assert.ErrorIs(t, f.release(Options{}), boom)
		assert.Empty(t, f.releaseCalls())
	})
}
