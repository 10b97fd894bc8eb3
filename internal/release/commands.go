package release

import (
	"github.com/spf13/cobra"

	"github.com/ImSingee/shopify-cli/internal/project"
	"github.com/ImSingee/shopify-cli/internal/ui"
)

var errNotInteractive = ui.NewAbortError(
	"Cannot confirm the release without an interactive terminal.",
	"Pass --force to release without confirmation.",
)

type commandOptions struct {
	path     string
	clientID string
	version  string
	force    bool
	reset    bool
}

func Command() *cobra.Command {
	o := &commandOptions{}

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Release an app version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.path, "path", "", "the path to your app directory")
	flags.StringVar(&o.clientID, "client-id", "", "the client ID of your app")
	flags.StringVar(&o.version, "version", "", "the name of the app version to release")
	flags.BoolVarP(&o.force, "force", "f", false, "release without asking for confirmation")
	flags.BoolVar(&o.reset, "reset", false, "reset the client ID stored in the app configuration")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

// checkConfirmable fails when the release would need a prompt nobody can answer
func checkConfirmable(force, interactive bool) error {
	if force || interactive {
		return nil
	}
	return errNotInteractive
}

func (o *commandOptions) run(cmd *cobra.Command) error {
	if err := checkConfirmable(o.force, ui.Interactive()); err != nil {
		return err
	}

	p, err := project.Load(o.path)
	if err != nil {
		return err
	}

	deps := Deps{
		Resolver: &ProjectResolver{Project: p},
		Client:   p.Client,
		Prompter: &ConfirmPrompter{AppName: p.App.Configuration.Name, Confirmer: ui.HuhConfirmer{}},
		Tasks:    ui.TaskListRunner{Output: cmd.OutOrStdout()},
		Renderer: ui.Default,
	}

	return Release(cmd.Context(), deps, Options{
		App:      p.App,
		Reset:    o.reset,
		Force:    o.force,
		Version:  o.version,
		ClientID: o.clientID,
	})
}
