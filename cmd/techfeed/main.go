// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// techfeed is the terminal subscription form. It shows either the
// company form (categories of one company's engineering blog) or the
// tech-team form (tech-team publishers under a topic) and talks to the
// subscription backend over HTTP.
//
// Configuration comes from --config, else the TECHFEED_CONFIG
// environment variable, else built-in defaults pointing at a local
// techfeed-mock. Flags override the loaded file.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/techfeed/lib/config"
	"github.com/bureau-foundation/techfeed/lib/subscribe"
	"github.com/bureau-foundation/techfeed/lib/subscribeapi"
	"github.com/bureau-foundation/techfeed/lib/subscribeui"
	"github.com/bureau-foundation/techfeed/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		baseURL    string
		formFlag   string
		noColor    bool
		logOutput  string
	)

	flagSet := pflag.NewFlagSet("techfeed", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to techfeed.yaml (default: $"+config.EnvVar+", else built-in defaults)")
	flagSet.StringVar(&baseURL, "base-url", "", "subscription API base URL (overrides api.base_url)")
	flagSet.StringVar(&formFlag, "form", "", "form to show: company or techteam (overrides form.variant)")
	flagSet.BoolVar(&noColor, "no-color", false, "disable colour output")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to the status bar)")
	flagSet.BoolP("help", "h", false, "show help")

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("techfeed")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if formFlag != "" {
		cfg.Form.Variant = formFlag
	}
	if noColor {
		cfg.Display.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("techfeed needs a terminal on stdout")
	}
	if cfg.Display.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Warnings and errors go to the status bar; stderr would corrupt
	// the alternate screen.
	tuiHandler := subscribeui.NewTUILogHandler(slog.LevelWarn)
	var handler slog.Handler = tuiHandler
	if logOutput != "" {
		fileHandler, closeFile, err := openFileLogHandler(logOutput)
		if err != nil {
			return fmt.Errorf("cannot open log file %s: %w", logOutput, err)
		}
		defer closeFile()
		handler = fanoutHandler{tuiHandler, fileHandler}
	}
	logger := slog.New(handler)

	client, err := subscribeapi.NewClient(cfg.API.BaseURL,
		subscribeapi.WithTimeout(cfg.RequestTimeout()),
		subscribeapi.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model, err := subscribeui.NewModel(subscribeui.Options{
		Variant:         subscribe.Variant(cfg.Form.Variant),
		Backend:         client,
		Topics:          cfg.Form.Topics,
		ToastDuration:   cfg.ToastDuration(),
		MessageDuration: cfg.MessageDuration(),
		Context:         ctx,
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	tuiHandler.SetProgram(program)

	logger.Debug("starting", "version", version.Info(), "base_url", client.BaseURL(), "form", cfg.Form.Variant)
	_, err = program.Run()
	return err
}

// loadConfig resolves the configuration source: the --config path,
// else TECHFEED_CONFIG, else the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if os.Getenv(config.EnvVar) != "" {
		return config.Load()
	}
	return config.Default(), nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `techfeed: subscribe to engineering blogs from the terminal.

Shows the tech-team form by default. Use --form company for the
company form. Tab moves between inputs, arrow keys and Enter pick
suggestions, Ctrl+S subscribes, Ctrl+C quits.

Usage:
  techfeed [flags]

Examples:
  # Against a local techfeed-mock on the default port
  techfeed

  # Company form against another backend
  techfeed --form company --base-url https://api.example.com

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. Returns the handler, a cleanup function to close
// the file, and any error. The file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}
