package git

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Source is a repository url with an optional `#branch` suffix
type Source struct {
	URL    string
	Branch string
}

func ParseSource(s string) Source {
	u, branch, _ := strings.Cut(s, "#")
	return Source{URL: u, Branch: branch}
}

func (s Source) String() string {
	if s.Branch == "" {
		return s.URL
	}
	return s.URL + "#" + s.Branch
}

func (s Source) remote() bool {
	return strings.HasPrefix(s.URL, "https://") || strings.HasPrefix(s.URL, "http://") || strings.HasPrefix(s.URL, "git@")
}

// Clone checks out src into dst, dst must not exist or be empty
func Clone(ctx context.Context, src Source, dst string) error {
	slog.Debug("Cloning repository", "source", src.String(), "to", dst)

	o := &gogit.CloneOptions{
		URL:          src.URL,
		SingleBranch: true,
	}
	if src.Branch != "" {
		o.ReferenceName = plumbing.NewBranchReferenceName(src.Branch)
	}
	if src.remote() {
		o.Depth = 1
	}

	_, err := gogit.PlainCloneContext(ctx, dst, false, o)
	if err != nil {
		return ee.Wrapf(err, "cannot clone %s", src.String())
	}

	return nil
}
