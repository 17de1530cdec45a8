package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/handlers/repl"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

// Options are the settings taken from the command line before the shell is built.
type Options struct {
	ConfigFile string
	LogLevel   string
	In         io.Reader
	Out        io.Writer
}

// Shell is the assembled runtime the subcommands operate on.
type Shell struct {
	Registry   ports.CommandRegistry
	Dispatcher ports.Dispatcher
	Aliases    ports.AliasManagementService
	REPL       *repl.REPL
	// Greet, if set, runs before the interactive loop starts.
	Greet func() error
}

// ShellFactory builds the Shell once flags have been parsed.
type ShellFactory func(opts Options) (*Shell, error)

// NewRootCommand creates the minish root command. Without a subcommand it
// starts the interactive shell.
func NewRootCommand(version string, factory ShellFactory) *cobra.Command {
	opts := &Options{}
	var shell *Shell
	current := func() *Shell { return shell }

	rootCmd = &cobra.Command{
		Use:   "minish",
		Short: "minish is a small interactive command shell.",
		Long: `minish runs built-in commands with typed, validated arguments and
falls back to programs on your PATH for everything else.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			opts.In = cmd.InOrStdin()
			opts.Out = cmd.OutOrStdout()
			s, err := factory(*opts)
			if err != nil {
				return fmt.Errorf("starting minish: %w", err)
			}
			shell = s
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if shell.Greet != nil {
				if err := shell.Greet(); err != nil {
					return err
				}
			}
			return shell.REPL.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default ~/.minish/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")

	rootCmd.AddCommand(NewListCommand(current))
	rootCmd.AddCommand(NewExecCommand(current))
	rootCmd.AddCommand(NewAliasCommand(current))
	rootCmd.AddCommand(NewVersionCommand(version))
	rootCmd.SetHelpCommand(NewHelpCommand(current))

	return rootCmd
}
