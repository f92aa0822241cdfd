// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Hit is a clickable span on one rendered line: columns [StartX,
// EndX) of line Line, relative to the rendered block's top-left.
type Hit struct {
	Value  string
	Line   int
	StartX int
	EndX   int
}

// Contains reports whether (x, y), relative to the rendered block,
// falls on the span.
func (hit Hit) Contains(x, y int) bool {
	return y == hit.Line && x >= hit.StartX && x < hit.EndX
}

// HitAt returns the span under (x, y), if any.
func HitAt(hits []Hit, x, y int) (Hit, bool) {
	for _, hit := range hits {
		if hit.Contains(x, y) {
			return hit, true
		}
	}
	return Hit{}, false
}

const tagRemoveMark = "×"

// RenderTags lays out one removable tag per value, left to right,
// wrapping onto a new line before a tag would pass width. Returns the
// lines and one Hit per remove control, carrying the tag's value.
// No values renders no lines.
func RenderTags(theme Theme, values []string, width int) ([]string, []Hit) {
	if len(values) == 0 {
		return nil, nil
	}
	tagStyle := lipgloss.NewStyle().
		Background(theme.TagBackground).
		Foreground(theme.TagForeground)
	removeStyle := tagStyle.Foreground(theme.TagRemove).Bold(true)

	var lines []string
	var hits []Hit
	var current strings.Builder
	column := 0

	for _, value := range values {
		// " value × " -- label, then the remove mark and its padding.
		labelWidth := 1 + ansi.StringWidth(value) + 1
		tagWidth := labelWidth + 2
		if column > 0 && column+1+tagWidth > width {
			lines = append(lines, current.String())
			current.Reset()
			column = 0
		}
		if column > 0 {
			current.WriteString(" ")
			column++
		}
		current.WriteString(tagStyle.Render(" " + value + " "))
		current.WriteString(removeStyle.Render(tagRemoveMark + " "))
		hits = append(hits, Hit{
			Value:  value,
			Line:   len(lines),
			StartX: column + labelWidth,
			EndX:   column + tagWidth,
		})
		column += tagWidth
	}
	lines = append(lines, current.String())
	return lines, hits
}
