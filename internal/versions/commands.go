package versions

import (
	"github.com/spf13/cobra"

	"github.com/ImSingee/shopify-cli/internal/project"
)

func Commands() []*cobra.Command {
	cmd := &cobra.Command{
		Use:     "versions",
		Aliases: []string{"version"},
		Short:   "Manage app versions",
	}

	cmd.AddCommand(
		ListCommand(),
	)

	return []*cobra.Command{cmd}
}

func ListCommand() *cobra.Command {
	var path string
	var clientID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the versions of an app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := project.Load(path)
			if err != nil {
				return err
			}

			token, apiKey, err := p.Credentials(cmd.Context(), clientID)
			if err != nil {
				return err
			}

			return List(cmd.Context(), p.Client, token, apiKey, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&path, "path", "", "the path to your app directory")
	flags.StringVar(&clientID, "client-id", "", "the client ID of your app")

	return cmd
}
