// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderToast renders a one-line transient message. fade is the
// remaining lifetime fraction from [TransientTracker.Remaining]; in
// the last fifth the toast dims before it disappears.
func RenderToast(theme Theme, message string, maxWidth int, fade float64) string {
	style := lipgloss.NewStyle().
		Background(theme.ToastBackground).
		Foreground(theme.ToastForeground).
		Bold(true).
		Padding(0, 1)
	if fade < 0.2 {
		style = style.Bold(false).Faint(true)
	}
	if maxWidth > 2 && ansi.StringWidth(message) > maxWidth-2 {
		message = ansi.Truncate(message, maxWidth-2, "…")
	}
	return style.Render(message)
}

// RenderHint renders the non-blocking hint shown under the focused
// input.
func RenderHint(theme Theme, message string) string {
	return lipgloss.NewStyle().
		Foreground(theme.HintForeground).
		Italic(true).
		Render(message)
}
