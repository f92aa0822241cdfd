// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"log/slog"
)

// fanoutHandler tees records to the status-bar handler and the
// optional log file. Each sink keeps its own level.
type fanoutHandler []slog.Handler

func (sinks fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sink := range sinks {
		if sink.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers record to every sink that accepts its level. A
// failing sink does not stop the others.
func (sinks fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, sink := range sinks {
		if !sink.Enabled(ctx, record.Level) {
			continue
		}
		errs = append(errs, sink.Handle(ctx, record.Clone()))
	}
	return errors.Join(errs...)
}

func (sinks fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return sinks.derive(func(sink slog.Handler) slog.Handler { return sink.WithAttrs(attrs) })
}

func (sinks fanoutHandler) WithGroup(name string) slog.Handler {
	return sinks.derive(func(sink slog.Handler) slog.Handler { return sink.WithGroup(name) })
}

func (sinks fanoutHandler) derive(apply func(slog.Handler) slog.Handler) fanoutHandler {
	derived := make(fanoutHandler, 0, len(sinks))
	for _, sink := range sinks {
		derived = append(derived, apply(sink))
	}
	return derived
}
