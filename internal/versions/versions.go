package versions

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/ImSingee/semver"

	"github.com/ImSingee/shopify-cli/internal/partners"
)

// Fetch returns the versions of an app, newest first
func Fetch(ctx context.Context, client partners.Client, token, apiKey string) (string, []partners.AppVersion, error) {
	var result partners.AppVersionsSchema
	err := client.Request(ctx, partners.AppVersionsQuery, token, map[string]any{"apiKey": apiKey}, &result)
	if err != nil {
		return "", nil, err
	}

	versions := result.App.AppVersions.Nodes
	Sort(versions)

	return result.App.Title, versions, nil
}

// Sort orders versions by descending semantic version when every tag parses,
// keeping the API order otherwise
func Sort(versions []partners.AppVersion) {
	parsed := make([]*semver.Version, len(versions))
	for i, v := range versions {
		sv, err := semver.NewVersion(v.VersionTag)
		if err != nil {
			return
		}
		parsed[i] = sv
	}

	idx := make([]int, len(versions))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return parsed[idx[a]].Compare(parsed[idx[b]]) > 0
	})

	sorted := make([]partners.AppVersion, len(versions))
	for i, j := range idx {
		sorted[i] = versions[j]
	}
	copy(versions, sorted)
}

// List prints the versions of an app as a table
func List(ctx context.Context, client partners.Client, token, apiKey string, out io.Writer) error {
	title, versions, err := Fetch(ctx, client, token, apiKey)
	if err != nil {
		return err
	}

	if len(versions) == 0 {
		_, _ = fmt.Fprintf(out, "No app versions found for %s\n", title)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "VERSION\tSTATUS\tMESSAGE\tDATE CREATED\tCREATED BY")
	for _, v := range versions {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			v.VersionTag,
			strings.ToLower(v.Status),
			truncate(v.Message, 40),
			v.CreatedAt,
			v.CreatedBy.DisplayName,
		)
	}

	return w.Flush()
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
