// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Modal chrome overhead: 2 columns border + 2 columns padding = 4
// columns horizontal; 2 lines border + 1 title + 1 footer = 4 lines
// vertical.
const (
	modalChromeWidth  = 4
	modalChromeHeight = 4

	feedbackInnerWidth  = 48
	feedbackInnerHeight = 6
)

// FeedbackModal is the feedback card: a multi-line text area in a
// centered overlay. Ctrl+D sends, Esc cancels; the owning model reads
// those keys before forwarding the rest to Update.
type FeedbackModal struct {
	editor textarea.Model
	theme  Theme
}

// NewFeedbackModal creates an empty, focused feedback card.
func NewFeedbackModal(theme Theme) FeedbackModal {
	editor := textarea.New()
	editor.Placeholder = "Tell us what you think"
	editor.Prompt = ""
	editor.ShowLineNumbers = false
	editor.CharLimit = 2000
	editor.SetWidth(feedbackInnerWidth)
	editor.SetHeight(feedbackInnerHeight)
	editor.Cursor.SetMode(cursor.CursorStatic)
	editor.Focus()
	return FeedbackModal{editor: editor, theme: theme}
}

// Value returns the text entered so far.
func (modal FeedbackModal) Value() string {
	return modal.editor.Value()
}

// Update forwards a message to the text area.
func (modal *FeedbackModal) Update(message tea.Msg) tea.Cmd {
	var command tea.Cmd
	modal.editor, command = modal.editor.Update(message)
	return command
}

// Render produces the modal overlay lines and the anchor position
// (top-left corner in screen coordinates) centering it on a
// screenWidth x screenHeight screen.
func (modal FeedbackModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := feedbackInnerWidth
	if limit := screenWidth - modalChromeWidth; innerWidth > limit && limit > 0 {
		innerWidth = limit
	}
	editor := modal.editor
	editor.SetWidth(innerWidth)

	background := lipgloss.NewStyle().Background(modal.theme.OverlayBackground)
	titleStyle := background.Bold(true).Foreground(modal.theme.HeaderForeground)
	footerStyle := background.Foreground(modal.theme.FaintText)

	lines := []string{padTo(titleStyle.Render("Send feedback"), innerWidth, background)}
	for _, line := range strings.Split(editor.View(), "\n") {
		lines = append(lines, padTo(line, innerWidth, background))
	}
	lines = append(lines, padTo(footerStyle.Render("Ctrl+D send  Esc cancel"), innerWidth, background))

	return boxAndCenter(lines, modal.theme.BorderColor, modal.theme.OverlayBackground, screenWidth, screenHeight)
}

// AlertModal is a blocking message the user acknowledges with Enter,
// Esc or a click.
type AlertModal struct {
	Message string
	theme   Theme
}

// NewAlertModal creates an alert showing message.
func NewAlertModal(message string, theme Theme) AlertModal {
	return AlertModal{Message: message, theme: theme}
}

const alertMaxInnerWidth = 50

// Render produces the alert overlay lines and its centered anchor.
func (modal AlertModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := alertMaxInnerWidth
	if limit := screenWidth - modalChromeWidth; innerWidth > limit && limit > 0 {
		innerWidth = limit
	}
	if messageWidth := ansi.StringWidth(modal.Message); messageWidth < innerWidth {
		innerWidth = max(messageWidth, len("Enter OK"))
	}

	background := lipgloss.NewStyle().Background(modal.theme.OverlayBackground)
	textStyle := background.Foreground(modal.theme.OverlayForeground)
	footerStyle := background.Foreground(modal.theme.FaintText)

	var lines []string
	for _, line := range WrapText(modal.Message, innerWidth) {
		lines = append(lines, padTo(textStyle.Render(line), innerWidth, background))
	}
	lines = append(lines, padTo("", innerWidth, background))
	lines = append(lines, padTo(footerStyle.Render("Enter OK"), innerWidth, background))

	return boxAndCenter(lines, modal.theme.AlertBorder, modal.theme.OverlayBackground, screenWidth, screenHeight)
}

// padTo pads styled content with background-colored spaces to width.
func padTo(styled string, width int, background lipgloss.Style) string {
	if gap := width - ansi.StringWidth(styled); gap > 0 {
		return styled + background.Render(strings.Repeat(" ", gap))
	}
	return styled
}

// boxAndCenter draws a rounded border with one column of padding
// around lines and returns them with the anchor that centers the box
// on the screen.
func boxAndCenter(lines []string, border, background lipgloss.Color, screenWidth, screenHeight int) ([]string, int, int) {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(background).
		Padding(0, 1)

	resultLines := strings.Split(boxStyle.Render(strings.Join(lines, "\n")), "\n")
	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}

	anchorX := max((screenWidth-renderedWidth)/2, 0)
	anchorY := max((screenHeight-len(resultLines))/2, 0)
	return resultLines, anchorX, anchorY
}
