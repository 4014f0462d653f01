// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

// admintui is a terminal dashboard for host administration. Its main
// module edits the invoking user's crontab through the crontab binary;
// FTP and MySQL screens are placeholders.
//
// Besides the interactive UI there are three one-shot modes:
//
//	admintui --print           list jobs with next run and description
//	admintui --snapshots       list backups taken before each install
//	admintui --restore ID      reinstall a backup
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/hostadmin/admintui/cmd/admintui/cli"
	"github.com/hostadmin/admintui/lib/adminui"
	"github.com/hostadmin/admintui/lib/clock"
	"github.com/hostadmin/admintui/lib/config"
	"github.com/hostadmin/admintui/lib/crontab"
	"github.com/hostadmin/admintui/lib/process"
	"github.com/hostadmin/admintui/lib/snapshot"
	"github.com/hostadmin/admintui/lib/version"
)

func main() {
	if err := run(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		process.Fatal(err, cli.ExitCodeFor(err))
	}
}

func run() error {
	var (
		configPath    string
		logOutput     string
		timezone      string
		restoreID     string
		printJobsMode bool
		listSnapshots bool
		showVersion   bool
	)

	flagSet := pflag.NewFlagSet("admintui", pflag.ContinueOnError)
	flagSet.StringVarP(&configPath, "config", "c", "", "path to YAML config file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file while the TUI runs")
	flagSet.StringVar(&timezone, "timezone", "", "IANA time zone for next-run times, overriding the config file")
	flagSet.BoolVar(&printJobsMode, "print", false, "print the crontab with next runs and descriptions, then exit")
	flagSet.BoolVar(&listSnapshots, "snapshots", false, "list crontab snapshots, then exit")
	flagSet.StringVar(&restoreID, "restore", "", "reinstall the crontab snapshot with this ID, then exit")
	flagSet.BoolVar(&showVersion, "version", false, "print version information")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return cli.Validation("%w", err).WithHint("Run 'admintui --help' for usage.")
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if showVersion {
		version.Print(os.Stdout, "admintui")
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	modes := 0
	for _, selected := range []bool{printJobsMode, listSnapshots, restoreID != ""} {
		if selected {
			modes++
		}
	}
	if modes > 1 {
		return cli.Validation("--print, --snapshots and --restore cannot be combined")
	}
	interactive := modes == 0

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if timezone != "" {
		cfg.Timezone = timezone
	}
	if err := cfg.Validate(); err != nil {
		return cli.Validation("invalid configuration: %w", err).
			WithHint("Time zones are IANA names such as Europe/Prague, or Local.")
	}
	settings, err := config.SettingsFromConfig(cfg)
	if err != nil {
		return cli.Validation("%w", err)
	}

	var logger *slog.Logger
	if interactive {
		// Nothing may write to the terminal while the alt screen is up.
		if logOutput == "" {
			logger = slog.New(slog.DiscardHandler)
		} else {
			handler, closeLog, err := openFileLogHandler(logOutput)
			if err != nil {
				return cli.Validation("cannot open log file %s: %w", logOutput, err)
			}
			defer closeLog()
			logger = slog.New(handler)
		}
	} else {
		logger = cli.NewCommandLogger()
	}

	snapshots, err := openSnapshots(cfg, logger)
	if err != nil {
		return cli.Internal("opening snapshot store: %w", err)
	}

	options := []crontab.Option{
		crontab.WithBinary(cfg.Crontab.Binary),
		crontab.WithUser(cfg.Crontab.User),
		crontab.WithLocator(settings),
		crontab.WithLogger(logger),
	}
	if snapshots != nil {
		options = append(options, crontab.WithSnapshots(snapshots))
	}
	store := crontab.NewCommandStore(options...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case printJobsMode:
		return printJobs(ctx, os.Stdout, store, termenv.EnvColorProfile())
	case listSnapshots:
		if snapshots == nil {
			return errSnapshotsDisabled()
		}
		return printSnapshots(os.Stdout, snapshots, settings.Location())
	case restoreID != "":
		if snapshots == nil {
			return errSnapshotsDisabled()
		}
		return restoreSnapshot(ctx, logger, store, snapshots, restoreID)
	}

	logger.Info("starting admintui", "version", version.Info(), "timezone", settings.Location().String())
	app := adminui.NewApp(adminui.Env{
		Context:  ctx,
		Store:    store,
		Settings: settings,
		Clock:    clock.Real(),
		Logger:   logger,
		Profile:  termenv.EnvColorProfile(),
	})
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return cli.Internal("running the terminal UI: %w", err)
	}
	return nil
}

// loadConfig reads path, or $ADMINTUI_CONFIG when path is empty, or
// falls back to the defaults.
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, cli.NotFound("%w", err).
			WithHint("Pass --config with an existing file, or unset " + config.EnvironmentVariable + " to use the defaults.")
	case err != nil:
		return nil, cli.Validation("%w", err)
	}
	return cfg, nil
}

// openSnapshots returns nil when snapshots are disabled.
func openSnapshots(cfg *config.Config, logger *slog.Logger) (*snapshot.Store, error) {
	if cfg.Snapshots.Directory == "" {
		return nil, nil
	}
	compression, err := snapshot.ParseCompressionTag(cfg.Snapshots.Compression)
	if err != nil {
		return nil, err
	}
	return snapshot.New(cfg.Snapshots.Directory, snapshot.Options{
		Compression: compression,
		Keep:        cfg.Snapshots.Keep,
		Logger:      logger,
	})
}

func errSnapshotsDisabled() error {
	return cli.Validation("snapshots are disabled").
		WithHint("Set snapshots.directory in the config file.")
}

// openFileLogHandler creates a JSON slog handler writing to path. The
// file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `admintui: terminal dashboard for host administration.

Without flags, opens the interactive UI: a menu of modules, of which
"Cron jobs" edits your crontab through the crontab binary. Every
install first stores a compressed snapshot of the table it replaces.

Usage:
  admintui [flags]

Examples:
  # Open the dashboard
  admintui

  # Show next runs in another zone
  admintui --print --timezone America/New_York

  # Undo the last change
  admintui --snapshots
  admintui --restore 3f9a1c

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
