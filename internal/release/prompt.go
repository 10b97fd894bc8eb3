package release

import (
	"context"
	"strings"

	"github.com/ImSingee/go-ex/mr"

	"github.com/ImSingee/shopify-cli/internal/partners"
	"github.com/ImSingee/shopify-cli/internal/ui"
)

// ConfirmPrompter shows the version diff and asks through a ui.Confirmer
type ConfirmPrompter struct {
	AppName   string
	Confirmer ui.Confirmer
}

func (p *ConfirmPrompter) ConfirmRelease(_ context.Context, diff partners.VersionsDiff) (bool, error) {
	title := "Release this version?"
	if p.AppName != "" {
		title = "Release this version of " + p.AppName + "?"
	}

	return p.Confirmer.Confirm(title, DescribeDiff(diff), "Yes, release this version", "No, cancel")
}

// DescribeDiff lists what a release includes and removes
func DescribeDiff(diff partners.VersionsDiff) string {
	titles := func(entries []partners.VersionDiffEntry) []string {
		return mr.Map(entries, func(e partners.VersionDiffEntry, _ int) string {
			return "  • " + e.RegistrationTitle
		})
	}

	var sections []string
	if includes := titles(append(append([]partners.VersionDiffEntry{}, diff.Added...), diff.Updated...)); len(includes) != 0 {
		sections = append(sections, "Includes:\n"+strings.Join(includes, "\n"))
	}
	if removes := titles(diff.Removed); len(removes) != 0 {
		sections = append(sections, "Removes:\n"+strings.Join(removes, "\n"))
	}

	return strings.Join(sections, "\n\n")
}
