package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/containers/imgenv/pkg/envout"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// gitCommit will be the hash that the binary was built from, populated by the Makefile.
var gitCommit = ""

type globalOptions struct {
	debug          bool          // Enable debug output
	inspector      string        // Image-inspection tool to execute
	commandTimeout time.Duration // Timeout for the command execution
}

// createApp returns a cobra.Command, and the underlying globalOptions object, to be run or tested.
func createApp() (*cobra.Command, *globalOptions) {
	opts := globalOptions{}

	extractOpts := extractOptions{global: &opts}
	rootCommand := &cobra.Command{
		Use:   "imgenv [command options] IMAGE-NAME",
		Short: "Print a container image's environment as shell-quoted assignments",
		Long: "Inspect a container image with an external tool and print its declared\n" +
			"environment as space-separated NAME=\"VALUE\" assignments, without a\n" +
			"trailing newline. The DESCRIPTION and SUMMARY variables are omitted.",
		RunE:              commandAction(extractOpts.run),
		PersistentPreRunE: opts.before,
		SilenceUsage:      true,
		SilenceErrors:     true,
		// Hide the completion command which is provided by cobra
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		// This is documented to parse "local" (non-PersistentFlags) flags of parent commands before
		// running subcommands and handling their options. We don't really run into this comparatively rare
		// case, still, be consistent.
		TraverseChildren: true,
	}
	adjustUsage(rootCommand)
	rootCommand.Flags().AddFlagSet(extractFlags(&extractOpts))
	rootCommand.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug output")
	rootCommand.PersistentFlags().StringVar(&opts.inspector, "inspector", envout.DefaultTool, "image-inspection tool to execute as `TOOL` inspect IMAGE-NAME")
	rootCommand.PersistentFlags().DurationVar(&opts.commandTimeout, "command-timeout", 0, "timeout for the command execution")
	rootCommand.AddCommand(versionCmd())
	return rootCommand, &opts
}

// before is run by the cli package for any command, before running the command-specific handler.
func (opts *globalOptions) before(cmd *cobra.Command, args []string) error {
	logLevel := slog.LevelInfo
	if opts.debug {
		logrus.SetLevel(logrus.DebugLevel)
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetOutput(newLogBridge(logger))
	return nil
}

// commandTimeoutContext returns a context.Context and a cancellation callback based on opts.
// The caller should usually "defer cancel()" immediately after calling this.
func (opts *globalOptions) commandTimeoutContext() (context.Context, context.CancelFunc) {
	ctx := context.Background()
	var cancel context.CancelFunc = func() {}
	if opts.commandTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.commandTimeout)
	}
	return ctx, cancel
}

func main() {
	rootCmd, _ := createApp()
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// commandAction intermediates between the RunE interface and the real handler,
// primarily to ensure that cobra.Command is not available to the handler, which in turn
// makes sure that the cmd.Flags() etc. are not used.
func commandAction(handler func(args []string, stdout io.Writer) error) func(cmd *cobra.Command, args []string) error {
	return func(c *cobra.Command, args []string) error {
		return handler(args, c.OutOrStdout())
	}
}

// adjustUsage uses usageTemplate template to get rid the GLOBAL OPTIONS from usage
// and disable [flag] at the end of usage.
func adjustUsage(c *cobra.Command) {
	c.SetUsageTemplate(usageTemplate)
	c.DisableFlagsInUseLine = true
}

// "verbose" printing. Handles all kinds of needed printing fields.
const usageTemplate = `Usage:{{if (and .Runnable (not .HasAvailableSubCommands))}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsagesWrapped 125 | trimTrailingWhitespaces}}{{end}}
`
