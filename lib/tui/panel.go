// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Notification panel buttons.
const (
	ButtonInterested = "Interested"
	ButtonFeedback   = "Feedback"
)

// NotificationIconWidth is the rendered width of the notification
// icon, including the unread dot column.
const NotificationIconWidth = 4

// RenderNotificationIcon renders the bell-style icon. The unread dot
// is drawn in the last column until the panel is first opened.
func RenderNotificationIcon(theme Theme, unread, open bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	if open {
		iconStyle = iconStyle.Foreground(theme.FocusBorder).Bold(true)
	}
	dot := " "
	if unread {
		dot = lipgloss.NewStyle().Foreground(theme.UnreadDot).Render("●")
	}
	return iconStyle.Render("[!]") + dot
}

// PanelView is a rendered notification panel: its lines, all width
// columns wide, and the button spans relative to its top-left corner.
type PanelView struct {
	Lines   []string
	Buttons []Hit
}

// RenderNotificationPanel renders the announcement panel. An empty
// message shows that there is nothing new; the buttons are always
// shown.
func RenderNotificationPanel(theme Theme, message string, width int) PanelView {
	innerWidth := width - 2
	background := lipgloss.NewStyle().
		Background(theme.OverlayBackground).
		Foreground(theme.OverlayForeground)
	headerStyle := background.Bold(true).Foreground(theme.HeaderForeground)
	faintStyle := background.Foreground(theme.FaintText)
	buttonStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground).
		Bold(true)

	line := func(styled string) string {
		return PadOverlayLine(styled, innerWidth, width, background)
	}

	view := PanelView{Lines: []string{line(headerStyle.Render("Notifications")), line("")}}
	if message == "" {
		view.Lines = append(view.Lines, line(faintStyle.Render("No new notifications.")))
	} else {
		for _, text := range WrapText(message, innerWidth) {
			view.Lines = append(view.Lines, line(background.Render(text)))
		}
	}
	view.Lines = append(view.Lines, line(""))

	buttonLine := len(view.Lines)
	column := 1
	var buttons string
	for index, label := range []string{ButtonInterested, ButtonFeedback} {
		if index > 0 {
			buttons += background.Render("  ")
			column += 2
		}
		rendered := " " + label + " "
		buttons += buttonStyle.Render(rendered)
		view.Buttons = append(view.Buttons, Hit{
			Value:  label,
			Line:   buttonLine,
			StartX: column,
			EndX:   column + len(rendered),
		})
		column += len(rendered)
	}
	view.Lines = append(view.Lines, line(buttons))
	return view
}
