// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribeui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/techfeed/lib/subscribe"
	"github.com/bureau-foundation/techfeed/lib/tui"
)

// View implements tea.Model. The page is rendered in page
// coordinates with dropdowns spliced at their anchors, cropped to the
// viewport, and then fixed layers are drawn on top in screen
// coordinates: scrollbar, notification icon and panel, toast, help
// line, and finally any modal.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}
	screen := model.screen
	theme := screen.theme

	layout := screen.composePage()
	output := strings.Join(layout.lines, "\n")
	for _, element := range model.form.Variant().Inputs() {
		field := screen.fields[element]
		if field == nil || !field.dropdown.Visible {
			continue
		}
		overlay := dropdownOverlay(field, screen.inputWidth())
		output = tui.SpliceOverlay(output, overlay.Render(theme), overlay.AnchorX, overlay.AnchorY)
	}

	viewportHeight := screen.viewportHeight()
	output = tui.CropLines(output, screen.scroll, viewportHeight)

	scrollbar := tui.RenderScrollbar(theme, viewportHeight, len(layout.lines), viewportHeight, screen.scroll)
	output = tui.SpliceOverlay(output, scrollbar, screen.width-1, 0)

	if panel := model.form.Panel(); panel != nil {
		icon := screen.iconRect()
		output = tui.SpliceOverlay(output,
			[]string{tui.RenderNotificationIcon(theme, panel.Unread(), panel.Open())},
			icon.X, icon.Y)
		if panel.Open() {
			rect := screen.panelRect()
			output = tui.SpliceOverlay(output, screen.panelView().Lines, rect.X, rect.Y)
		}
	}

	now := screen.clock.Now()
	if toast := screen.transients.Text(tui.SlotToast, now); toast != "" {
		rendered := tui.RenderToast(theme, toast, screen.width-2, screen.transients.Remaining(tui.SlotToast, now))
		toastX := max(screen.width-1-ansi.StringWidth(rendered)-1, 0)
		output = tui.SpliceOverlay(output, []string{rendered}, toastX, viewportHeight-1)
	}

	output += "\n" + model.renderHelp()

	if screen.feedback != nil {
		lines, anchorX, anchorY := screen.feedback.Render(screen.width, screen.height)
		output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
	}
	if len(screen.alerts) > 0 {
		alert := tui.NewAlertModal(screen.alerts[0], theme)
		lines, anchorX, anchorY := alert.Render(screen.width, screen.height)
		output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
	}
	return output
}

// dropdownOverlay converts a field's dropdown state into the overlay
// the tui package draws.
func dropdownOverlay(field *field, minWidth int) tui.DropdownOverlay {
	options := make([]tui.DropdownOption, len(field.dropdown.Items))
	for index, item := range field.dropdown.Items {
		options[index] = tui.DropdownOption{Label: item.Value, Positions: item.Positions}
	}
	return tui.DropdownOverlay{
		Options:  options,
		Cursor:   field.dropdown.Cursor,
		AnchorX:  field.dropdown.Anchor.X,
		AnchorY:  field.dropdown.Anchor.Y,
		MinWidth: minWidth,
	}
}

// renderHelp renders the bottom line: a recent log notice when there
// is one, otherwise the key bindings that apply right now.
func (model Model) renderHelp() string {
	screen := model.screen
	theme := screen.theme

	if screen.logNotice != "" {
		style := lipgloss.NewStyle().Foreground(theme.HintForeground)
		if screen.logLevel >= slog.LevelError {
			style = style.Foreground(theme.AlertBorder)
		}
		return style.Render(ansi.Truncate(screen.logNotice, screen.width, "…"))
	}

	var bindings []key.Binding
	switch {
	case len(screen.alerts) > 0:
		bindings = []key.Binding{model.keys.Enter, model.keys.Quit}
	case screen.feedback != nil:
		bindings = []key.Binding{model.keys.SendFeedback, model.keys.Cancel, model.keys.Quit}
	default:
		bindings = []key.Binding{
			model.keys.NextField, model.keys.Down, model.keys.Enter, model.keys.Submit,
		}
		if model.form.Variant() == subscribe.TechTeamForm {
			bindings = append(bindings, model.keys.TechTeams, model.keys.Notifications)
		}
		bindings = append(bindings, model.keys.Feedback, model.keys.Quit)
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true)
	descriptionStyle := lipgloss.NewStyle().Foreground(theme.HelpText)
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, keyStyle.Render(help.Key)+" "+descriptionStyle.Render(help.Desc))
	}
	return ansi.Truncate(strings.Join(parts, "  "), screen.width, "…")
}
