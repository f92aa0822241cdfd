// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DropdownOption is one suggestion row.
type DropdownOption struct {
	// Label is the text shown in the row.
	Label string

	// Positions are rune offsets into Label drawn in the match color.
	Positions []int
}

// DropdownOverlay renders a suggestion list anchored below an input.
// It holds no behavior: the owning widget decides the rows, the
// highlighted row and the anchor, and the view splices the rendered
// lines onto the page at (AnchorX, AnchorY).
type DropdownOverlay struct {
	Options []DropdownOption
	Cursor  int // Highlighted row, or -1.
	AnchorX int // Page X coordinate of the top-left corner.
	AnchorY int // Page Y coordinate of the top-left corner.

	// MinWidth widens the overlay to at least this many columns,
	// typically the owning input's width.
	MinWidth int
}

// DropdownWidth returns the rendered width of a dropdown showing
// labels with the given minimum width.
func DropdownWidth(labels []string, minWidth int) int {
	maxLabelWidth := 0
	for _, label := range labels {
		if labelWidth := ansi.StringWidth(label); labelWidth > maxLabelWidth {
			maxLabelWidth = labelWidth
		}
	}
	// Layout: " > LABEL " -- marker and space, label, one column of
	// padding on each side.
	width := 2 + maxLabelWidth + 2
	if width < minWidth {
		width = minWidth
	}
	return width
}

// Width returns the visible width of the rendered dropdown in columns.
func (dropdown *DropdownOverlay) Width() int {
	labels := make([]string, len(dropdown.Options))
	for index, option := range dropdown.Options {
		labels[index] = option.Label
	}
	return DropdownWidth(labels, dropdown.MinWidth)
}

// Render produces one line per row, all the same visible width, with
// a solid background. Matched characters use the match color; the
// highlighted row uses the selection colors.
func (dropdown *DropdownOverlay) Render(theme Theme) []string {
	totalWidth := dropdown.Width()
	innerWidth := totalWidth - 2

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.OverlayBackground).
		Foreground(theme.OverlayForeground)
	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	lines := make([]string, 0, len(dropdown.Options))
	for index, option := range dropdown.Options {
		rowStyle := backgroundStyle
		marker := "  "
		if index == dropdown.Cursor {
			rowStyle = selectedStyle
			marker = "> "
		}
		matchStyle := rowStyle.Foreground(theme.MatchForeground).Bold(true)

		label := highlightRunes(option.Label, option.Positions, rowStyle, matchStyle)
		content := rowStyle.Render(marker) + label
		lines = append(lines, PadOverlayLine(content, innerWidth, totalWidth, rowStyle))
	}
	return lines
}

// highlightRunes renders text with the runes at positions in
// matchStyle and the rest in baseStyle.
func highlightRunes(text string, positions []int, baseStyle, matchStyle lipgloss.Style) string {
	if len(positions) == 0 {
		return baseStyle.Render(text)
	}
	matched := make(map[int]bool, len(positions))
	for _, position := range positions {
		matched[position] = true
	}

	var result strings.Builder
	var run []rune
	runMatched := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runMatched {
			result.WriteString(matchStyle.Render(string(run)))
		} else {
			result.WriteString(baseStyle.Render(string(run)))
		}
		run = run[:0]
	}
	for index, character := range []rune(text) {
		if matched[index] != runMatched {
			flush()
			runMatched = matched[index]
		}
		run = append(run, character)
	}
	flush()
	return result.String()
}
