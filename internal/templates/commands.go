package templates

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ImSingee/go-ex/mr"
	"github.com/spf13/cobra"

	"github.com/ImSingee/shopify-cli/internal/app"
	"github.com/ImSingee/shopify-cli/internal/project"
	"github.com/ImSingee/shopify-cli/internal/ui"
)

type generateOptions struct {
	path           string
	clientID       string
	template       string
	name           string
	flavor         string
	specifications []string
}

func Commands() []*cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new app extension",
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.path, "path", "", "the path to your app directory")
	flags.StringVar(&o.clientID, "client-id", "", "the client ID of your app")
	flags.StringSliceVar(&o.specifications, "specification", nil, "additional extension specification accepted by the app")

	cmd.AddCommand(
		o.extensionCommand(),
		o.templatesCommand(),
	)

	return []*cobra.Command{cmd}
}

func (o *generateOptions) extensionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extension",
		Short: "Generate a new extension from a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.generate(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.template, "template", "t", "", "extension template identifier")
	flags.StringVarP(&o.name, "name", "n", "", "name of the extension")
	flags.StringVar(&o.flavor, "flavor", "", "template flavor, defaults to the first supported one")

	return cmd
}

func (o *generateOptions) templatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the extension templates available to the app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, templates, err := o.fetch(cmd)
			if err != nil {
				return err
			}

			return PrintTemplates(cmd.OutOrStdout(), templates)
		},
	}
}

func (o *generateOptions) fetch(cmd *cobra.Command) (*project.Project, []ExtensionTemplate, error) {
	p, err := project.Load(o.path)
	if err != nil {
		return nil, nil, err
	}

	token, apiKey, err := p.Credentials(cmd.Context(), o.clientID)
	if err != nil {
		return nil, nil, err
	}

	available := append(KnownSpecifications(), o.specifications...)
	templates, err := FetchExtensionTemplates(cmd.Context(), p.Client, token, apiKey, available)
	if err != nil {
		return nil, nil, err
	}

	return p, templates, nil
}

func (o *generateOptions) generate(cmd *cobra.Command) error {
	p, templates, err := o.fetch(cmd)
	if err != nil {
		return err
	}

	t, err := o.chooseTemplate(templates)
	if err != nil {
		return err
	}

	name := o.name
	if name == "" && ui.Interactive() {
		name, err = ui.Input("Name your extension:", t.DefaultName)
		if err != nil {
			return err
		}
	}

	dst, err := Generate(cmd.Context(), GenerateOptions{
		App:      p.App,
		Template: t,
		Name:     name,
		Flavor:   o.flavor,
	})
	if err != nil {
		return err
	}

	ui.NewTerminalRenderer(cmd.OutOrStdout()).Success(ui.Report{
		Headline: "Your extension was created in " + dst + ".",
		NextSteps: [][]ui.Token{{
			ui.Text("To preview this extension along with the rest of the project, run"),
			ui.Command(app.FormatPackageManagerCommand(p.App.PackageManager, "shopify app dev")),
		}},
	})

	return nil
}

func (o *generateOptions) chooseTemplate(templates []ExtensionTemplate) (ExtensionTemplate, error) {
	if o.template != "" {
		t, ok := Find(templates, o.template)
		if !ok {
			return ExtensionTemplate{}, ui.NewAbortError(
				"Unknown extension template "+o.template,
				"Run `shopify app generate templates` to list the available templates.",
			)
		}
		return t, nil
	}

	if len(templates) == 0 {
		return ExtensionTemplate{}, ui.NewAbortError("No extension templates are available for this app.")
	}
	if !ui.Interactive() {
		return ExtensionTemplate{}, ui.NewAbortError("Missing --template.", "Pass a template identifier when not running in a terminal.")
	}

	identifier, err := ui.Select("Type of extension?", mr.Map(templates, func(t ExtensionTemplate, _ int) ui.Option {
		return ui.Option{Label: t.Name, Value: t.Identifier}
	}))
	if err != nil {
		return ExtensionTemplate{}, err
	}

	t, _ := Find(templates, identifier)
	return t, nil
}

// PrintTemplates writes one line per template
func PrintTemplates(w io.Writer, templates []ExtensionTemplate) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "IDENTIFIER\tNAME\tGROUP\tFLAVORS")
	for _, t := range templates {
		flavors := ""
		if main, ok := t.MainType(); ok {
			flavors = strings.Join(mr.Map(main.SupportedFlavors, func(f Flavor, _ int) string { return f.Value }), ", ")
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Identifier, t.Name, t.Group, flavors)
	}
	return tw.Flush()
}
