// Package cli implements the mufmt command.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is reported by --version.
var Version = "dev"

// app holds what every command shares once flags and config are resolved.
type app struct {
	stdout io.Writer
	stderr io.Writer
	opts   Options
	log    zerolog.Logger
}

// Execute runs the mufmt command with the process arguments.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

// NewRootCommand builds the command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "mufmt [flags] FORMAT [ARG...]",
		Short: "Render printf-style templates with the mufmt engine",
		Long: `mufmt renders printf-style templates exactly as the library does, lists
the directives of a template, and runs YAML case files against the engine.

Without a subcommand it behaves like "mufmt render".`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.runRender(args[0], args[1:])
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().String("config", defaultConfigFile, "config file (TOML)")
	root.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error|off)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	addRenderFlags(root)

	root.AddCommand(newRenderCommand(a))
	root.AddCommand(newParseCommand(a))
	root.AddCommand(newCasesCommand(a))
	return root
}

// setup resolves options from defaults, the config file and flags, in that
// order, and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	opts := DefaultOptions()
	path, _ := cmd.Flags().GetString("config")
	if err := loadConfig(path, cmd.Flags().Changed("config"), &opts); err != nil {
		return err
	}
	if err := applyFlags(cmd, &opts); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	a.opts = opts
	a.log = newLogger(a.stderr, opts.LogLevel)
	a.log.Debug().Str("config", path).Str("command", cmd.Name()).Msg("options resolved")
	return nil
}
