// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribeui

import (
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/bureau-foundation/techfeed/lib/autocomplete"
	"github.com/bureau-foundation/techfeed/lib/clock"
	"github.com/bureau-foundation/techfeed/lib/subscribe"
	"github.com/bureau-foundation/techfeed/lib/subscribeapi"
	"github.com/bureau-foundation/techfeed/lib/tui"
)

// Page geometry, in terminal cells.
const (
	pageMarginX     = 2
	maxContentWidth = 72
	minContentWidth = 24
	panelWidth      = 40
	wheelStep       = 3
)

// field is one text input with the display state its autocomplete
// widget renders into. It implements autocomplete.Renderer.
type field struct {
	label    string
	input    textinput.Model
	dropdown autocomplete.DropdownState
	tags     []string
}

func newField(label, placeholder string) *field {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = placeholder
	input.Cursor.SetMode(cursor.CursorStatic)
	return &field{
		label:    label,
		input:    input,
		dropdown: autocomplete.DropdownState{Cursor: -1},
	}
}

func (field *field) RenderInput(text string) {
	field.input.SetValue(text)
	field.input.CursorEnd()
}

func (field *field) RenderList(dropdown autocomplete.DropdownState) {
	field.dropdown = dropdown
}

func (field *field) HideList() {
	field.dropdown = autocomplete.DropdownState{Cursor: -1}
}

func (field *field) RenderTag(value string) {
	field.tags = append(field.tags, value)
}

func (field *field) RemoveTag(value string) {
	field.tags = slices.DeleteFunc(field.tags, func(tag string) bool { return tag == value })
}

func (field *field) ClearTags() {
	field.tags = nil
}

// screen holds everything the form draws. The bubbletea Model is
// copied on every Update, so this state lives behind a pointer and the
// form keeps a stable Surface and Layout.
type screen struct {
	theme   tui.Theme
	clock   clock.Clock
	logger  *slog.Logger
	variant subscribe.Variant
	form    *subscribe.Form
	fields  map[subscribe.Element]*field

	width  int
	height int
	scroll int // Page row shown at the top of the viewport.

	alerts     []string // Pending alerts, oldest first; the first is shown.
	hint       string
	transients *tui.TransientTracker
	tickActive bool

	statusHeading string
	statusGroups  []subscribeapi.SubscriptionGroup

	feedback *tui.FeedbackModal

	logNotice   string
	logLevel    slog.Level
	logSequence uint64
}

func newScreen(variant subscribe.Variant, theme tui.Theme, clk clock.Clock, logger *slog.Logger) *screen {
	fields := map[subscribe.Element]*field{
		subscribe.ElementEmail: newField("Email", "you@example.com"),
	}
	switch variant {
	case subscribe.CompanyForm:
		fields[subscribe.ElementCompany] = newField("Company", "Start typing a company")
		fields[subscribe.ElementCategories] = newField("Categories", "Pick one or more categories")
	case subscribe.TechTeamForm:
		fields[subscribe.ElementTechTeams] = newField("Tech teams", "Tick Tech teams to pick publishers")
		fields[subscribe.ElementTopic] = newField("Topic", "Pick a topic")
	}
	return &screen{
		theme:      theme,
		clock:      clk,
		logger:     logger,
		variant:    variant,
		fields:     fields,
		transients: tui.NewTransientTracker(),
	}
}

// Surface.

func (screen *screen) Alert(message string) {
	screen.alerts = append(screen.alerts, message)
}

func (screen *screen) Toast(message string, duration time.Duration) {
	screen.transients.Show(tui.SlotToast, message, duration, screen.clock.Now())
}

func (screen *screen) ShowMessage(message string, duration time.Duration) {
	screen.transients.Show(tui.SlotMessage, message, duration, screen.clock.Now())
}

func (screen *screen) Hint(message string) {
	screen.hint = message
}

func (screen *screen) RenderStatus(heading string, groups []subscribeapi.SubscriptionGroup) {
	screen.statusHeading = heading
	screen.statusGroups = groups
}

func (screen *screen) ClearStatus() {
	screen.statusHeading = ""
	screen.statusGroups = nil
}

func (screen *screen) FormReset() {
	screen.fields[subscribe.ElementEmail].input.Reset()
	screen.hint = ""
}

// Layout.

func (screen *screen) Renderer(element subscribe.Element) autocomplete.Renderer {
	return screen.fields[element]
}

// Bounds returns screen coordinates. Inputs scroll with the page; the
// notification icon and panel are fixed to the top-right corner.
func (screen *screen) Bounds(element subscribe.Element) autocomplete.Rect {
	switch element {
	case subscribe.ElementNotificationIcon:
		return screen.iconRect()
	case subscribe.ElementNotificationPanel:
		return screen.panelRect()
	}
	rect, ok := screen.composePage().inputs[element]
	if !ok {
		return autocomplete.Rect{}
	}
	rect.Y -= screen.scroll
	return rect
}

func (screen *screen) Scroll() autocomplete.Point {
	return autocomplete.Point{Y: screen.scroll}
}

func (screen *screen) PanelWidth(_ subscribe.Element, items []autocomplete.Suggestion) int {
	labels := make([]string, len(items))
	for index, item := range items {
		labels[index] = item.Value
	}
	return tui.DropdownWidth(labels, screen.inputWidth())
}

// Geometry.

// contentWidth is the page width, leaving the last column for the
// scrollbar.
func (screen *screen) contentWidth() int {
	return max(min(screen.width-1, maxContentWidth), minContentWidth)
}

func (screen *screen) inputWidth() int {
	return screen.contentWidth() - 2*pageMarginX
}

// viewportHeight is the number of page rows visible above the help
// line.
func (screen *screen) viewportHeight() int {
	return max(screen.height-1, 1)
}

func (screen *screen) iconRect() autocomplete.Rect {
	return autocomplete.Rect{
		X:      max(screen.width-1-tui.NotificationIconWidth-1, 0),
		Y:      0,
		Width:  tui.NotificationIconWidth,
		Height: 1,
	}
}

func (screen *screen) panelRect() autocomplete.Rect {
	view := screen.panelView()
	return autocomplete.Rect{
		X:      max(screen.width-1-panelWidth-1, 0),
		Y:      1,
		Width:  panelWidth,
		Height: len(view.Lines),
	}
}

func (screen *screen) panelView() tui.PanelView {
	message := ""
	if screen.form != nil && screen.form.Panel() != nil {
		message = screen.form.Panel().Message()
	}
	return tui.RenderNotificationPanel(screen.theme, message, panelWidth)
}

// scrollBy moves the viewport by delta rows, clamped to the page.
func (screen *screen) scrollBy(delta int) {
	screen.scroll += delta
	screen.clampScroll()
}

func (screen *screen) clampScroll() {
	limit := max(len(screen.composePage().lines)-screen.viewportHeight(), 0)
	screen.scroll = max(min(screen.scroll, limit), 0)
}
