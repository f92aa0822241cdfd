// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content. The overlay lines are placed starting at (anchorX,
// anchorY) in the view's own coordinates. Uses ANSI-aware truncation
// so escape sequences in the original view are preserved on both
// sides of the overlay. View lines shorter than anchorX are padded
// with spaces; overlay rows below the last view line are dropped.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}
	if anchorX < 0 {
		anchorX = 0
	}

	viewLines := strings.Split(view, "\n")

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 || viewLineIndex >= len(viewLines) {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)
		overlayWidth := ansi.StringWidth(overlayLine)

		// Build: prefix + reset + overlay + reset + suffix.
		var result strings.Builder

		if viewLineWidth < anchorX {
			result.WriteString(viewLine)
			result.WriteString(strings.Repeat(" ", anchorX-viewLineWidth))
		} else if anchorX > 0 {
			result.WriteString(ansi.Truncate(viewLine, anchorX, ""))
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < viewLineWidth {
			result.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[viewLineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// CropLines returns height lines of view starting at line top, padding
// with empty lines when the view is shorter. Used to cut the visible
// viewport out of a taller page.
func CropLines(view string, top, height int) string {
	if height <= 0 {
		return ""
	}
	viewLines := strings.Split(view, "\n")
	if top < 0 {
		top = 0
	}
	cropped := make([]string, height)
	for index := range cropped {
		if top+index < len(viewLines) {
			cropped[index] = viewLines[top+index]
		}
	}
	return strings.Join(cropped, "\n")
}

// PadOverlayLine takes styled content for the inner area and pads it
// to the full width with background-colored spaces. Returns
// " content  " with background applied to the padding. Content wider
// than innerWidth is truncated.
func PadOverlayLine(styledContent string, innerWidth, totalWidth int, backgroundStyle lipgloss.Style) string {
	contentWidth := ansi.StringWidth(styledContent)
	if contentWidth > innerWidth {
		styledContent = ansi.Truncate(styledContent, innerWidth, "…")
		contentWidth = ansi.StringWidth(styledContent)
	}
	rightPad := totalWidth - 1 - contentWidth
	if rightPad < 0 {
		rightPad = 0
	}
	return backgroundStyle.Render(" ") +
		styledContent +
		backgroundStyle.Render(strings.Repeat(" ", rightPad))
}

// WrapText word-wraps plain text to width columns and returns the
// lines. Existing newlines are kept; words longer than width are
// broken.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	wrapped := ansi.Wrap(text, width, "")
	return strings.Split(wrapped, "\n")
}
