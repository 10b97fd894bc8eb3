package templates

import (
	"context"
	"log/slog"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/exstrings"
	"github.com/ImSingee/go-ex/mr"
	"github.com/ImSingee/go-ex/set"

	"github.com/ImSingee/shopify-cli/internal/partners"
)

// FetchExtensionTemplates returns the remote templates followed by the local
// ones not available remotely, keeping only templates whose identifier or main
// type is one of availableSpecifications.
func FetchExtensionTemplates(ctx context.Context, client partners.Client, token, apiKey string, availableSpecifications []string) ([]ExtensionTemplate, error) {
	var remote partners.RemoteTemplateSpecificationsSchema
	err := client.Request(ctx, partners.RemoteTemplateSpecificationsQuery, token, map[string]any{"apiKey": apiKey}, &remote)
	if err != nil {
		return nil, ee.Wrap(err, "cannot fetch extension templates")
	}

	remoteTemplates := mr.Map(remote.TemplateSpecifications, func(spec partners.TemplateSpecification, _ int) ExtensionTemplate {
		return fromRemote(spec)
	})

	all := merge(remoteTemplates, LocalExtensionTemplates())
	result := mr.Filter(all, func(t ExtensionTemplate, _ int) bool {
		return available(t, availableSpecifications)
	})

	slog.Debug("Resolved extension templates", "remote", len(remoteTemplates), "total", len(all), "available", len(result))

	return result, nil
}

// merge drops local templates sharing an identifier with a remote one (and
// duplicated remote identifiers), remote first
func merge(remote, local []ExtensionTemplate) []ExtensionTemplate {
	seen := set.New[string]()
	result := make([]ExtensionTemplate, 0, len(remote)+len(local))

	for _, t := range mr.Flats(remote, local) {
		if seen.Has(t.Identifier) {
			continue
		}
		seen.Add(t.Identifier)
		result = append(result, t)
	}

	return result
}

func available(t ExtensionTemplate, specifications []string) bool {
	if exstrings.InStringList(specifications, t.Identifier) {
		return true
	}

	main, ok := t.MainType()
	return ok && exstrings.InStringList(specifications, main.Type)
}

// Find returns the template with the given identifier
func Find(templates []ExtensionTemplate, identifier string) (ExtensionTemplate, bool) {
	i := mr.FindIndex(templates, func(t ExtensionTemplate) bool {
		return t.Identifier == identifier
	})
	if i < 0 {
		return ExtensionTemplate{}, false
	}
	return templates[i], true
}
