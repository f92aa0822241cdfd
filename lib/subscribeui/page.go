// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribeui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/techfeed/lib/autocomplete"
	"github.com/bureau-foundation/techfeed/lib/subscribe"
	"github.com/bureau-foundation/techfeed/lib/tui"
)

const (
	submitLabel   = "[ Subscribe ]"
	techTeamsBox  = "[x] Tech teams"
	techTeamsOff  = "[ ] Tech teams"
	comingSoonBox = "   [ ] Engineers (soon)   [ ] Communities (soon)"
)

// page is the scrollable form content in page coordinates: row 0 is
// the first line of the page, independent of the scroll offset.
type page struct {
	lines []string

	// inputs maps each input element to its one-row box.
	inputs map[subscribe.Element]autocomplete.Rect

	// tagHits holds the remove controls of each multi-select's tags.
	// Hit.Line is a page row and StartX/EndX page columns.
	tagHits map[subscribe.Element][]tui.Hit

	checkbox autocomplete.Rect // Tech-teams publisher kind; zero on the company form.
	submit   autocomplete.Rect
}

func (page *page) add(line string) int {
	page.lines = append(page.lines, line)
	return len(page.lines) - 1
}

// composePage lays out and renders the page. Geometry and text come
// from the same pass, so hit-testing always agrees with what is drawn.
func (screen *screen) composePage() page {
	theme := screen.theme
	margin := strings.Repeat(" ", pageMarginX)
	result := page{
		inputs:  make(map[subscribe.Element]autocomplete.Rect),
		tagHits: make(map[subscribe.Element][]tui.Hit),
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	labelStyle := lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true)

	subtitle := "Subscribe to company engineering blogs"
	if screen.variant == subscribe.TechTeamForm {
		subtitle = "Subscribe to tech-team publishers"
	}
	result.add(margin + titleStyle.Render("techfeed") + "  " + faintStyle.Render(subtitle))
	result.add("")

	for _, element := range screen.variant.Inputs() {
		if element == subscribe.ElementTechTeams {
			screen.composePublisherKinds(&result, margin)
		}
		field := screen.fields[element]
		result.add(margin + labelStyle.Render(field.label))
		row := result.add(margin + screen.renderInput(element, field))
		result.inputs[element] = autocomplete.Rect{
			X: pageMarginX, Y: row, Width: screen.inputWidth(), Height: 1,
		}

		tagLines, hits := tui.RenderTags(theme, field.tags, screen.inputWidth())
		first := len(result.lines)
		for _, line := range tagLines {
			result.add(margin + line)
		}
		for _, hit := range hits {
			hit.Line += first
			hit.StartX += pageMarginX
			hit.EndX += pageMarginX
			result.tagHits[element] = append(result.tagHits[element], hit)
		}
		result.add("")
	}

	buttonStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.SelectedForeground).
		Background(theme.FocusBorder)
	row := result.add(margin + buttonStyle.Render(submitLabel))
	result.submit = autocomplete.Rect{X: pageMarginX, Y: row, Width: ansi.StringWidth(submitLabel), Height: 1}

	now := screen.clock.Now()
	if message := screen.transients.Text(tui.SlotMessage, now); message != "" {
		messageStyle := lipgloss.NewStyle().Foreground(theme.ToastBackground).Bold(true)
		for _, line := range tui.WrapText(message, screen.inputWidth()) {
			result.add(margin + messageStyle.Render(line))
		}
	}
	if screen.hint != "" {
		for _, line := range tui.WrapText(screen.hint, screen.inputWidth()) {
			result.add(margin + tui.RenderHint(theme, line))
		}
	}

	if screen.statusHeading != "" {
		result.add("")
		result.add(margin + titleStyle.Render(screen.statusHeading))
		groupStyle := lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true)
		for _, group := range screen.statusGroups {
			result.add(margin + "  " + groupStyle.Render(group.Name))
			for _, line := range tui.WrapText(strings.Join(group.Items, ", "), screen.inputWidth()-4) {
				result.add(margin + "    " + faintStyle.Render(line))
			}
		}
	}

	// Dropdowns hang below their inputs and may run past the last
	// line; extend the page so they can be scrolled into view.
	for _, field := range screen.fields {
		if !field.dropdown.Visible {
			continue
		}
		for bottom := field.dropdown.Panel.Bottom(); len(result.lines) < bottom; {
			result.add("")
		}
	}
	return result
}

func (screen *screen) composePublisherKinds(result *page, margin string) {
	theme := screen.theme
	labelStyle := lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true)
	result.add(margin + labelStyle.Render("Publisher kinds"))

	box := techTeamsOff
	boxStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	if screen.form != nil && screen.form.TechTeamsEnabled() {
		box = techTeamsBox
		boxStyle = boxStyle.Foreground(theme.FocusBorder).Bold(true)
	}
	soonStyle := lipgloss.NewStyle().Foreground(theme.DisabledText)
	row := result.add(margin + boxStyle.Render(box) + soonStyle.Render(comingSoonBox))
	result.checkbox = autocomplete.Rect{X: pageMarginX, Y: row, Width: ansi.StringWidth(box), Height: 1}
	result.add("")
}

// renderInput draws one input row, exactly inputWidth columns wide.
func (screen *screen) renderInput(element subscribe.Element, field *field) string {
	theme := screen.theme
	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Background(theme.OverlayBackground)
	focused := screen.form != nil && screen.form.Focused() == element
	if focused {
		style = style.Background(theme.SelectedBackground).Foreground(theme.SelectedForeground)
	}
	if screen.form != nil {
		if widget := screen.form.Widget(element); widget != nil && widget.Disabled() {
			style = style.Foreground(theme.DisabledText)
		}
	}

	width := screen.inputWidth()
	view := ansi.Truncate(field.input.View(), width, "…")
	if gap := width - ansi.StringWidth(view); gap > 0 {
		view += strings.Repeat(" ", gap)
	}
	return style.Render(view)
}
