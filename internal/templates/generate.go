package templates

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/mr"
	"github.com/pelletier/go-toml/v2"

	"github.com/ImSingee/shopify-cli/internal/app"
	"github.com/ImSingee/shopify-cli/internal/lib/git"
	"github.com/ImSingee/shopify-cli/internal/ui"
)

type GenerateOptions struct {
	App      *app.App
	Template ExtensionTemplate
	Name     string // defaults to the template's default name
	Flavor   string // defaults to the first supported flavor
}

// Generate scaffolds a new extension from t into <app>/extensions/<handle>
// and returns the created directory.
func Generate(ctx context.Context, opts GenerateOptions) (string, error) {
	t := opts.Template

	main, ok := t.MainType()
	if !ok {
		return "", ee.Errorf("template %s has no type", t.Identifier)
	}
	flavor, ok := main.Flavor(opts.Flavor)
	if !ok {
		return "", ui.NewAbortError(
			"Invalid flavor "+opts.Flavor+" for template "+t.Identifier,
			"Supported flavors: "+flavorList(main),
		)
	}

	if flavor.Path != "" && !filepath.IsLocal(flavor.Path) {
		return "", ee.Errorf("template %s has an invalid path %q for flavor %s", t.Identifier, flavor.Path, flavor.Value)
	}

	name := opts.Name
	if name == "" {
		name = t.DefaultName
	}
	handle := app.Slugify(name)
	if handle == "" {
		return "", ui.NewAbortError("Invalid extension name: " + name)
	}

	dst := filepath.Join(opts.App.Directory, "extensions", handle)
	if _, err := os.Stat(dst); err == nil {
		return "", ui.NewAbortError(
			"A directory with this name ("+handle+") already exists.",
			"Choose a new name for your extension.",
		)
	}

	tmp, err := os.MkdirTemp("", "shopify-template-*")
	if err != nil {
		return "", ee.Wrap(err, "cannot create temporary directory")
	}
	defer os.RemoveAll(tmp)

	src := git.ParseSource(main.URL)
	slog.Debug("Cloning extension template", "source", src.String(), "flavor", flavor.Value)
	if err := git.Clone(ctx, src, tmp); err != nil {
		return "", err
	}

	if err := copyDir(filepath.Join(tmp, flavor.Path), dst); err != nil {
		_ = os.RemoveAll(dst)
		return "", ee.Wrap(err, "cannot copy template")
	}

	if err := writeExtensionConfig(dst, name, handle, main.Type); err != nil {
		_ = os.RemoveAll(dst)
		return "", err
	}

	return dst, nil
}

// writeExtensionConfig sets name, handle and type in the extension's
// configuration file, creating it when the template has none.
func writeExtensionConfig(dir, name, handle, typ string) error {
	p := filepath.Join(dir, app.ExtensionConfigFileName)

	config := map[string]any{}
	content, err := os.ReadFile(p)
	switch {
	case err == nil:
		if err := toml.Unmarshal(content, &config); err != nil {
			return ee.Wrapf(err, "invalid template configuration %s", p)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return ee.Wrapf(err, "cannot read %s", p)
	}

	config["name"] = name
	config["handle"] = handle
	if _, ok := config["type"]; !ok {
		config["type"] = typ
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return ee.Wrap(err, "cannot encode extension configuration")
	}

	return os.WriteFile(p, data, 0644)
}

func flavorList(t TemplateType) string {
	return strings.Join(mr.Map(t.SupportedFlavors, func(f Flavor, _ int) string {
		return f.Value
	}), ", ")
}
