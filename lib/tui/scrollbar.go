// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ScrollbarThumb returns the first row and the length of the scrollbar
// thumb for a viewport of visibleLines over a page of totalLines,
// drawn on a track height rows tall. size is 0 when the page fits.
func ScrollbarThumb(height, totalLines, visibleLines, scrollOffset int) (start, size int) {
	if height <= 0 || totalLines <= visibleLines {
		return 0, 0
	}
	size = max(height*visibleLines/totalLines, 1)
	track := height - size
	if scrollable := totalLines - visibleLines; track > 0 {
		start = min(scrollOffset*track/scrollable, track)
	}
	return max(start, 0), size
}

// RenderScrollbar produces one line per row of a single-column page
// scrollbar. A page that fits the viewport gets a blank column.
func RenderScrollbar(theme Theme, height, totalLines, visibleLines, scrollOffset int) []string {
	if height <= 0 {
		return nil
	}
	lines := make([]string, height)
	start, size := ScrollbarThumb(height, totalLines, visibleLines, scrollOffset)
	if size == 0 {
		for index := range lines {
			lines[index] = " "
		}
		return lines
	}

	track := lipgloss.NewStyle().Foreground(theme.BorderColor).Render("│")
	thumb := lipgloss.NewStyle().Foreground(theme.FocusBorder).Render("┃")
	for index := range lines {
		lines[index] = track
		if index >= start && index < start+size {
			lines[index] = thumb
		}
	}
	return lines
}
