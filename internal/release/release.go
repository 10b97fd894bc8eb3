package release

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ImSingee/shopify-cli/internal/app"
	"github.com/ImSingee/shopify-cli/internal/lib/tl"
	"github.com/ImSingee/shopify-cli/internal/partners"
	"github.com/ImSingee/shopify-cli/internal/ui"
)

const approvalRequiredPhrase = "needs to be submitted for review and approved by Shopify before it can be released"

var ErrVersionNotFound = ui.NewAbortError("Version not found")

type Options struct {
	App      *app.App
	Reset    bool
	Force    bool   // release without asking for confirmation
	Version  string // the version to release
	ClientID string // overrides the client_id of the app configuration
}

type ReleaseContext struct {
	App    *app.App
	Token  string
	APIKey string
}

// ContextResolver provides the app identifiers and credentials for a release
type ContextResolver interface {
	EnsureReleaseContext(ctx context.Context, opts Options) (*ReleaseContext, error)
}

// Prompter asks the user to confirm the changes of a version
type Prompter interface {
	ConfirmRelease(ctx context.Context, diff partners.VersionsDiff) (bool, error)
}

type Deps struct {
	Resolver ContextResolver
	Client   partners.Client
	Prompter Prompter
	Tasks    ui.TaskRunner
	Renderer ui.Renderer
}

// Release makes opts.Version the active version of the app.
//
// Declining the confirmation is not an error. A version waiting for review is
// reported but not returned as an error either.
func Release(ctx context.Context, deps Deps, opts Options) error {
	rc, err := deps.Resolver.EnsureReleaseContext(ctx, opts)
	if err != nil {
		return err
	}

	var diff partners.AppVersionsDiffSchema
	err = deps.Client.Request(ctx, partners.AppVersionsDiffQuery, rc.Token, map[string]any{
		"apiKey":    rc.APIKey,
		"versionId": opts.Version,
	}, &diff)
	if err != nil {
		return err
	}

	versionsDiff := diff.App.VersionsDiff
	slog.Debug("Fetched version diff", "version", opts.Version,
		"added", len(versionsDiff.Added), "updated", len(versionsDiff.Updated), "removed", len(versionsDiff.Removed))

	if versionsDiff.Empty() {
		return ErrVersionNotFound
	}

	if !opts.Force {
		confirmed, err := deps.Prompter.ConfirmRelease(ctx, versionsDiff)
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	var result partners.AppReleaseSchema
	err = deps.Tasks.RunTasks(ctx, []*tl.Task{
		tl.NewTask("Releasing version", func(callback tl.TaskCallback) error {
			err := deps.Client.Request(callback.Context(), partners.AppReleaseMutation, rc.Token, map[string]any{
				"apiKey":       rc.APIKey,
				"appVersionId": opts.Version,
			}, &result)
			if err != nil {
				return err
			}

			userErrors := result.AppRelease.UserErrors
			if len(userErrors) != 0 && !needsApproval(userErrors) {
				return ui.NewAbortError(partners.JoinMessages(userErrors))
			}

			return nil
		}),
	})
	if err != nil {
		return err
	}

	deployment := result.AppRelease.Deployment
	body := []ui.Token{
		ui.LinkTo(deployment.VersionTag, deployment.Location),
		ui.Text("\n" + deployment.Message),
	}

	if len(result.AppRelease.UserErrors) != 0 {
		deps.Renderer.Error(ui.Report{
			Headline: "Version couldn't be released.",
			Body:     append(body, ui.Text("\n\nThis version needs to be submitted for review and approved by Shopify before it can be released.")),
		})
		return nil
	}

	deps.Renderer.Success(ui.Report{
		Headline: "Version released to users.",
		Body:     body,
		NextSteps: [][]ui.Token{{
			ui.Text("Run"),
			ui.Command(app.FormatPackageManagerCommand(rc.App.PackageManager, "shopify app versions list")),
			ui.Text("to see rollout progress."),
		}},
	})

	return nil
}

// needsApproval reports whether the release is waiting for Shopify's review.
//
// The API only tells this through the error message.
func needsApproval(userErrors []partners.UserError) bool {
	for _, e := range userErrors {
		if strings.Contains(e.Message, approvalRequiredPhrase) {
			return true
		}
	}
	return false
}
