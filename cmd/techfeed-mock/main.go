// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// techfeed-mock serves the subscription API from an in-memory fixture
// so the techfeed client can run without the real backend. State lives
// only as long as the process.
//
// The fixture is a JSON file (comments and trailing commas allowed)
// with companies, categories, techteams and optional pre-existing
// subscriptions. Without --fixture a built-in set is served.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/techfeed/lib/mockbackend"
	"github.com/bureau-foundation/techfeed/lib/netutil"
	"github.com/bureau-foundation/techfeed/lib/version"
)

const defaultListen = "127.0.0.1:5000"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		listen      string
		fixturePath string
		showVersion bool
	)
	flagSet := pflag.NewFlagSet("techfeed-mock", pflag.ContinueOnError)
	flagSet.StringVar(&listen, "listen", defaultListen, "TCP address to serve the API on")
	flagSet.StringVar(&fixturePath, "fixture", "", "JSON fixture file (default: built-in fixture)")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if showVersion {
		version.Print("techfeed-mock")
		return nil
	}

	logger := newLogger(os.Stderr)

	fixture := mockbackend.DefaultFixture()
	if fixturePath != "" {
		loaded, err := mockbackend.ReadFixture(fixturePath)
		if err != nil {
			return err
		}
		fixture = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, listen, fixture, logger)
}

// serve runs the mock backend on address until ctx is cancelled.
func serve(ctx context.Context, address string, fixture mockbackend.Fixture, logger *slog.Logger) error {
	backend := mockbackend.New(fixture, logger)
	server, err := netutil.NewHTTPServer(netutil.HTTPServerConfig{
		Address: address,
		Handler: backend.Handler(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	logger.Info("techfeed mock starting",
		"version", version.Info(),
		"companies", len(fixture.Companies),
		"techteams", len(fixture.TechTeams),
	)
	return server.Serve(ctx)
}

// newLogger writes human-readable text to a terminal and JSON lines
// otherwise.
func newLogger(output *os.File) *slog.Logger {
	return slog.New(newHandler(output, term.IsTerminal(int(output.Fd()))))
}

func newHandler(output io.Writer, terminal bool) slog.Handler {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if terminal {
		return slog.NewTextHandler(output, options)
	}
	return slog.NewJSONHandler(output, options)
}
