package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/ImSingee/shopify-cli/internal/config"
	"github.com/ImSingee/shopify-cli/internal/lib/xlog"
	"github.com/ImSingee/shopify-cli/internal/ui"
	"github.com/ImSingee/shopify-cli/internal/version"
)

// subcommands of `shopify app`, registered by init functions
var appCommands []*cobra.Command

func main() {
	root := &cobra.Command{
		Use:           "shopify",
		Short:         "Build and release Shopify apps",
		Version:       version.GetVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	appCmd := &cobra.Command{
		Use:   "app",
		Short: "Build Shopify apps",
	}
	appCmd.AddCommand(appCommands...)
	root.AddCommand(appCmd)

	// for global flags
	root.PersistentFlags().SortFlags = false
	root.PersistentFlags().StringP("root", "R", "", "change command working directory")
	root.PersistentFlags().BoolVar(&config.Debug, "debug", false, "print additional debug information")
	root.PersistentFlags().BoolP("quiet", "q", false, "quiet mode (hide any output)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		if quiet {
			pp.Stdout.ChangeWriter(io.Discard)
			pp.Stderr.ChangeWriter(io.Discard)
			cmd.SetOut(io.Discard)
			ui.Default = ui.NewTerminalRenderer(io.Discard)
		}

		xlog.Setup(os.Stderr, quiet, config.Debug)

		if dir, _ := root.PersistentFlags().GetString("root"); dir != "" {
			slog.Debug("Change working directory", "root", dir)
			err := os.Chdir(dir)
			if err != nil {
				return ee.Wrapf(err, "cannot change working directory to %s", dir)
			}
		}

		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// run!
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		report(err)
		os.Exit(1)
	}
}

func report(err error) {
	if ee.Is(err, ee.Phantom) || errors.Is(err, context.Canceled) {
		return
	}

	var abort *ui.AbortError
	if errors.As(err, &abort) {
		r := ui.Report{Headline: abort.Message}
		if abort.TryMessage != "" {
			r.Body = []ui.Token{ui.Text(abort.TryMessage)}
		}
		ui.Default.Error(r)
		return
	}

	var notFound *ui.NotFoundError
	if errors.As(err, &notFound) {
		ui.Default.Error(ui.Report{Headline: notFound.Message})
		return
	}

	l("Error: %v", err)
}

func l(msg string, args ...any) {
	s := msg
	if len(args) != 0 {
		s = fmt.Sprintf(msg, args...)
	}

	_, _ = os.Stderr.Write([]byte("shopify - " + strings.TrimSpace(s) + "\n"))
}
