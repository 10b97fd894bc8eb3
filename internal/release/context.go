package release

import (
	"context"
	"log/slog"

	"github.com/ImSingee/shopify-cli/internal/project"
)

// ProjectResolver resolves the release context from the loaded project.
//
// The resolved client ID is written to the app configuration when it has
// none yet or when a reset is requested.
type ProjectResolver struct {
	Project *project.Project
}

func (r *ProjectResolver) EnsureReleaseContext(ctx context.Context, opts Options) (*ReleaseContext, error) {
	p := r.Project

	token, apiKey, err := p.Credentials(ctx, opts.ClientID)
	if err != nil {
		return nil, err
	}

	a := p.App
	if opts.App != nil {
		a = opts.App
	}

	if opts.Reset || a.Configuration.ClientID == "" {
		if a.Configuration.ClientID != apiKey {
			slog.Debug("Updating app client id", "from", a.Configuration.ClientID, "to", apiKey)
			a.Configuration.ClientID = apiKey
			if err := a.Save(); err != nil {
				return nil, err
			}
		}
	}

	return &ReleaseContext{App: a, Token: token, APIKey: apiKey}, nil
}
