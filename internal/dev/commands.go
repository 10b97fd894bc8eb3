package dev

import (
	"github.com/spf13/cobra"

	"github.com/ImSingee/shopify-cli/internal/dev/themeext"
	"github.com/ImSingee/shopify-cli/internal/project"
)

type commandOptions struct {
	path               string
	clientID           string
	store              string
	theme              string
	port               int
	themeExtensionPort int
	tunnel             bool
	update             bool
	reset              bool
}

func Commands() []*cobra.Command {
	o := &commandOptions{}

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Run the app in development mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.path, "path", "", "the path to your app directory")
	flags.StringVar(&o.clientID, "client-id", "", "the client ID of your app")
	flags.StringVarP(&o.store, "store", "s", "", "store URL, e.g. my-store.myshopify.com or my-store")
	flags.StringVarP(&o.theme, "theme", "t", "", "theme ID of the host theme for theme app extensions")
	flags.IntVar(&o.port, "port", 3000, "local port of the app")
	flags.IntVar(&o.themeExtensionPort, "theme-app-extension-port", 0, "local port of the theme app extension development server")
	flags.BoolVar(&o.tunnel, "tunnel", false, "expose the app through a tunnel plugin")
	flags.BoolVar(&o.update, "update-urls", false, "update the app URLs in the Partners Dashboard")
	flags.BoolVar(&o.reset, "reset", false, "reset the cached app URL")

	return []*cobra.Command{cmd}
}

func (o *commandOptions) run(cmd *cobra.Command) error {
	p, err := project.Load(o.path)
	if err != nil {
		return err
	}

	apiKey := ""
	if o.update {
		apiKey, err = p.APIKey(o.clientID)
		if err != nil {
			return err
		}
	}

	themeExtensionPort := o.themeExtensionPort
	if themeExtensionPort == 0 {
		themeExtensionPort = p.Config.ThemeExtensionPort
	}

	return Dev(cmd.Context(), Options{
		App:      p.App,
		Client:   p.Client,
		Sessions: p.Sessions,
		ThemeAPI: themeext.NewAdminThemeAPI(p.Config),

		APIKey: apiKey,
		Store:  o.store,
		Theme:  o.theme,

		Port:               o.port,
		ThemeExtensionPort: themeExtensionPort,
		URL: PreviewURLRequest{
			Reset:   o.reset,
			Tunnel:  o.tunnel,
			Update:  o.update,
			Plugins: TunnelPluginsFromConfig(p.Config.TunnelPlugins),
		},

		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})
}
