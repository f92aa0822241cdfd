// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribeui

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func newRecord(level slog.Level, message string, attrs ...slog.Attr) slog.Record {
	record := slog.NewRecord(time.Time{}, level, message, 0)
	record.AddAttrs(attrs...)
	return record
}

func TestTUILogHandlerEnabled(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelWarn)
	ctx := context.Background()
	if handler.Enabled(ctx, slog.LevelInfo) {
		t.Error("info enabled on a warn handler")
	}
	if !handler.Enabled(ctx, slog.LevelWarn) || !handler.Enabled(ctx, slog.LevelError) {
		t.Error("warn and error must be enabled on a warn handler")
	}
}

func TestTUILogHandlerSummary(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelWarn)

	plain := handler.summarize(newRecord(slog.LevelWarn, "alert"))
	if plain != "alert" {
		t.Errorf("summary without attrs = %q, want %q", plain, "alert")
	}

	derived := handler.WithAttrs([]slog.Attr{slog.String("form", "company")}).
		WithGroup("request").(*TUILogHandler)
	summary := derived.summarize(newRecord(slog.LevelWarn, "request failed",
		slog.String("path", "/categories"),
		slog.Int("status", 500),
	))
	want := "request failed (form=company, request.path=/categories, request.status=500)"
	if summary != want {
		t.Errorf("summary = %q, want %q", summary, want)
	}
}

func TestTUILogHandlerDerivedSharesProgram(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelWarn)
	derived := handler.WithGroup("api").(*TUILogHandler)
	if derived.program != handler.program {
		t.Fatal("derived handler has its own program pointer; SetProgram would not reach it")
	}
	if len(handler.attrs) != 0 || handler.prefix != "" {
		t.Error("WithGroup modified the parent handler")
	}
}

func TestTUILogHandlerDropsWithoutProgram(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelWarn)
	logger := slog.New(handler)
	// Must neither block nor panic before SetProgram.
	logger.Warn("early record", "key", "value")
	if err := handler.Handle(context.Background(), newRecord(slog.LevelError, "early")); err != nil {
		t.Fatalf("Handle before SetProgram: %v", err)
	}
}
