// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette of the techfeed terminal UI. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText   lipgloss.Color
	FaintText    lipgloss.Color
	DisabledText lipgloss.Color

	// Highlighted dropdown row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	FocusBorder      lipgloss.Color
	HelpText         lipgloss.Color

	// Matched characters in suggestion rows.
	MatchForeground lipgloss.Color

	// Selected-value tags and their remove control.
	TagBackground lipgloss.Color
	TagForeground lipgloss.Color
	TagRemove     lipgloss.Color

	// Floating surfaces: dropdowns, the notification panel, modals.
	OverlayBackground lipgloss.Color
	OverlayForeground lipgloss.Color

	// Feedback colors.
	AlertBorder     lipgloss.Color
	ToastBackground lipgloss.Color
	ToastForeground lipgloss.Color
	HintForeground  lipgloss.Color
	UnreadDot       lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText:   lipgloss.Color("252"),
	FaintText:    lipgloss.Color("245"),
	DisabledText: lipgloss.Color("239"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	FocusBorder:      lipgloss.Color("75"), // blue
	HelpText:         lipgloss.Color("241"),

	MatchForeground: lipgloss.Color("220"), // amber

	TagBackground: lipgloss.Color("24"), // dark blue
	TagForeground: lipgloss.Color("255"),
	TagRemove:     lipgloss.Color("210"), // soft red

	OverlayBackground: lipgloss.Color("237"),
	OverlayForeground: lipgloss.Color("252"),

	AlertBorder:     lipgloss.Color("196"), // red
	ToastBackground: lipgloss.Color("28"),  // green
	ToastForeground: lipgloss.Color("255"),
	HintForeground:  lipgloss.Color("180"), // tan
	UnreadDot:       lipgloss.Color("196"),
}
