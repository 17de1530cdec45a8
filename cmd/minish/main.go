package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/minish/internal/adapters/aliasoverlay"
	"github.com/AntonioJCosta/minish/internal/adapters/builtins"
	"github.com/AntonioJCosta/minish/internal/adapters/lineparse"
	"github.com/AntonioJCosta/minish/internal/adapters/oscommand"
	"github.com/AntonioJCosta/minish/internal/adapters/semverconv"
	"github.com/AntonioJCosta/minish/internal/config"
	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/minish/internal/core/services/dispatch"
	"github.com/AntonioJCosta/minish/internal/core/services/registry"
	"github.com/AntonioJCosta/minish/internal/handlers/cli"
	"github.com/AntonioJCosta/minish/internal/handlers/repl"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/AntonioJCosta/minish/internal/logging"
	"github.com/AntonioJCosta/minish/internal/repositories/history"
	"github.com/sirupsen/logrus"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, buildShell)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

// buildShell wires the adapters and services once the command-line flags are known.
func buildShell(opts cli.Options) (*cli.Shell, error) {
	cfg, err := config.Load(config.New(), opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := logging.New(os.Stderr, level)
	if cfg.Source != "" {
		logging.Component(logger, "config").WithField("file", cfg.Source).Debug("configuration loaded")
	}

	policy, err := registry.ParsePolicy(cfg.DuplicatePolicy)
	if err != nil {
		return nil, err
	}

	converters := convert.NewBuiltinTable()
	if err := semverconv.Register(converters); err != nil {
		return nil, fmt.Errorf("registering version converter: %w", err)
	}

	overlayProvider, err := aliasoverlay.NewYAMLProvider(cfg.AliasFile)
	if err != nil {
		return nil, fmt.Errorf("initializing alias file: %w", err)
	}
	overlay, err := aliasoverlay.DefaultAliases()
	if err != nil {
		return nil, fmt.Errorf("loading default aliases: %w", err)
	}
	userAliases, err := overlayProvider.GetAliasOverlays()
	if err != nil {
		// A broken alias file should not keep the shell from starting.
		logging.Component(logger, "aliases").WithError(err).Warn("could not read alias file, continuing without user aliases")
	}
	overlay = append(overlay, userAliases...)

	entry := logrus.NewEntry(logger)
	env := builtins.NewEnv(opts.In, opts.Out, entry)

	reg, err := registry.RegisterAll(registry.Options{
		Policy:     policy,
		Converters: converters,
		Overlay:    overlay,
		Logger:     entry,
	}, env.Providers()...)
	if err != nil {
		return nil, err
	}

	historyProvider, err := history.NewHistoryProvider(cfg.HistoryFile)
	if err != nil {
		return nil, fmt.Errorf("initializing history: %w", err)
	}

	dispatcher := dispatch.NewService(reg, entry)
	aliasManagementSvc := aliasmanagement.NewService(overlayProvider, reg)

	env.Registry = reg
	env.Dispatcher = dispatcher
	env.History = historyProvider
	env.Aliases = aliasManagementSvc

	var runner ports.ExecutableRunner
	if cfg.ExternalFallback {
		runner = oscommand.NewOSExecutableRunner()
	}

	loop := repl.New(opts.In, opts.Out, repl.Config{
		Prompt:     cfg.Prompt,
		Parser:     lineparse.NewParser(),
		Dispatcher: dispatcher,
		Runner:     runner,
		History:    historyProvider,
		Logger:     entry,
	})

	return &cli.Shell{
		Registry:   reg,
		Dispatcher: dispatcher,
		Aliases:    aliasManagementSvc,
		REPL:       loop,
		Greet:      env.PrintLocation,
	}, nil
}
