// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package autocomplete

import (
	"strings"
	"unicode/utf8"
)

// Mode selects what happens when the user picks a suggestion.
type Mode int

const (
	// SingleSelect fills the input with the chosen value (company and
	// topic pickers).
	SingleSelect Mode = iota

	// MultiSelect appends the chosen value to the widget's
	// SelectionSet, clears the input and renders a removable tag
	// (category and tech-team pickers).
	MultiSelect
)

// String returns "single" or "multi".
func (mode Mode) String() string {
	if mode == MultiSelect {
		return "multi"
	}
	return "single"
}

// Point is a screen position, in whatever units the Renderer uses
// (terminal cells for the TUI).
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned screen rectangle. X and Y are the top-left
// corner; a Rect with zero Width or Height contains no points.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether point falls inside the rectangle.
func (rect Rect) Contains(point Point) bool {
	return point.X >= rect.X && point.X < rect.X+rect.Width &&
		point.Y >= rect.Y && point.Y < rect.Y+rect.Height
}

// Bottom returns the first row below the rectangle.
func (rect Rect) Bottom() int {
	return rect.Y + rect.Height
}

// DropdownState is the transient view of a widget's suggestion list.
// It is recomputed on every keystroke and focus and never persisted.
type DropdownState struct {
	// Visible is false when the dropdown is hidden. A hidden dropdown
	// has no Items.
	Visible bool

	// Items is the filtered candidate list currently displayed. Every
	// item matches the widget's input text.
	Items []Suggestion

	// Anchor is the top-left corner of the panel: the left edge and
	// bottom edge of the owning input, plus the scroll offset.
	Anchor Point

	// Panel is the area the dropdown occupies, used for click
	// hit-testing.
	Panel Rect

	// Cursor is the index of the keyboard-highlighted item, or -1
	// when nothing is highlighted.
	Cursor int
}

// Renderer receives every display effect a Widget produces. The
// methods are called synchronously from the widget's event handlers.
type Renderer interface {
	// RenderInput replaces the text shown in the owning input.
	RenderInput(text string)

	// RenderList replaces the dropdown contents with dropdown.Items
	// and shows it at dropdown.Anchor. Called with a visible state
	// only.
	RenderList(dropdown DropdownState)

	// HideList hides the dropdown. May be called when it is already
	// hidden.
	HideList()

	// RenderTag appends one removable tag for value.
	RenderTag(value string)

	// RemoveTag removes the tag for value.
	RemoveTag(value string)

	// ClearTags removes every tag.
	ClearTags()
}

// Options configures a Widget.
type Options struct {
	// Mode selects single or multi select behavior.
	Mode Mode

	// Renderer receives display effects. Required.
	Renderer Renderer

	// Bounds returns the owning input's current on-screen bounding
	// box. It is called on every render because the input may have
	// moved. Nil means the input sits at the origin with zero size.
	Bounds func() Rect

	// Scroll returns the current scroll offset of the surface the
	// widget is drawn on. Nil means no scrolling.
	Scroll func() Point

	// PanelWidth returns the width the Renderer will use for a
	// dropdown showing items. Nil uses the longest item's rune count.
	PanelWidth func(items []Suggestion) int

	// OnSelect is the selection-made event. In SingleSelect mode it
	// fires on every choice; in MultiSelect mode only when the value
	// was newly added to the selection.
	OnSelect func(value string)
}

// Widget is one autocomplete input with its dropdown and, in
// MultiSelect mode, its tag container.
type Widget struct {
	options    Options
	candidates []string
	input      string
	selection  *SelectionSet
	dropdown   DropdownState
	disabled   bool
}

// New creates a widget with an empty candidate list and selection.
// Panics if options.Renderer is nil.
func New(options Options) *Widget {
	if options.Renderer == nil {
		panic("autocomplete: Options.Renderer is required")
	}
	return &Widget{
		options:   options,
		selection: NewSelectionSet(),
		dropdown:  DropdownState{Cursor: -1},
	}
}

// Mode returns the widget's selection mode.
func (widget *Widget) Mode() Mode {
	return widget.options.Mode
}

// SetCandidates replaces the candidate list wholesale. The dropdown is
// not re-rendered; the next keystroke or focus picks up the new list.
func (widget *Widget) SetCandidates(candidates []string) {
	widget.candidates = append([]string(nil), candidates...)
}

// Candidates returns a copy of the current candidate list.
func (widget *Widget) Candidates() []string {
	return append([]string(nil), widget.candidates...)
}

// Input returns the current input text.
func (widget *Widget) Input() string {
	return widget.input
}

// SetInput replaces the input text without filtering, as a
// programmatic assignment would.
func (widget *Widget) SetInput(text string) {
	widget.input = text
	widget.options.Renderer.RenderInput(text)
}

// Type handles an input event: the user changed the text to text.
// Filters and re-renders the dropdown.
func (widget *Widget) Type(text string) {
	if widget.disabled {
		return
	}
	widget.input = text
	widget.Refresh()
}

// Focus handles the input gaining focus: filters and re-renders the
// dropdown for the current text.
func (widget *Widget) Focus() {
	if widget.disabled {
		return
	}
	widget.Refresh()
}

// Refresh filters the candidate list by the current input text and
// renders the result. An empty result hides the dropdown. The anchor
// is recomputed from the input's current bounds on every call.
func (widget *Widget) Refresh() {
	items := Match(widget.input, widget.candidates)
	if len(items) == 0 {
		widget.Hide()
		return
	}

	var bounds Rect
	if widget.options.Bounds != nil {
		bounds = widget.options.Bounds()
	}
	scroll := widget.scroll()
	anchor := Point{X: bounds.X + scroll.X, Y: bounds.Bottom() + scroll.Y}

	widget.dropdown = DropdownState{
		Visible: true,
		Items:   items,
		Anchor:  anchor,
		Panel: Rect{
			X:      anchor.X,
			Y:      anchor.Y,
			Width:  widget.panelWidth(items),
			Height: len(items),
		},
		Cursor: -1,
	}
	widget.options.Renderer.RenderList(widget.dropdown)
}

func (widget *Widget) panelWidth(items []Suggestion) int {
	if widget.options.PanelWidth != nil {
		return widget.options.PanelWidth(items)
	}
	width := 0
	for _, item := range items {
		if length := utf8.RuneCountInString(item.Value); length > width {
			width = length
		}
	}
	return width
}

// Hide hides the dropdown.
func (widget *Widget) Hide() {
	widget.dropdown = DropdownState{Cursor: -1}
	widget.options.Renderer.HideList()
}

// Dropdown returns the current dropdown state.
func (widget *Widget) Dropdown() DropdownState {
	return widget.dropdown
}

// MoveDown highlights the next suggestion, wrapping to the top.
// No-op while the dropdown is hidden.
func (widget *Widget) MoveDown() {
	if !widget.dropdown.Visible {
		return
	}
	widget.dropdown.Cursor++
	if widget.dropdown.Cursor >= len(widget.dropdown.Items) {
		widget.dropdown.Cursor = 0
	}
	widget.options.Renderer.RenderList(widget.dropdown)
}

// MoveUp highlights the previous suggestion, wrapping to the bottom.
// No-op while the dropdown is hidden.
func (widget *Widget) MoveUp() {
	if !widget.dropdown.Visible {
		return
	}
	widget.dropdown.Cursor--
	if widget.dropdown.Cursor < 0 {
		widget.dropdown.Cursor = len(widget.dropdown.Items) - 1
	}
	widget.options.Renderer.RenderList(widget.dropdown)
}

// Select handles the user choosing value from the dropdown.
func (widget *Widget) Select(value string) {
	if widget.disabled {
		return
	}
	switch widget.options.Mode {
	case SingleSelect:
		widget.SetInput(value)
		widget.Hide()
		widget.fireSelect(value)
	case MultiSelect:
		widget.SetInput("")
		widget.Hide()
		if widget.AddTag(value) {
			widget.fireSelect(value)
		}
	}
}

// Commit handles the commit key (Enter). A highlighted suggestion is
// selected. Otherwise, in MultiSelect mode, non-empty input text that
// is not already selected is added as a free-form tag.
//
// Returns true when the key was consumed and must not submit the
// enclosing form. MultiSelect widgets always consume it.
func (widget *Widget) Commit() bool {
	if widget.disabled {
		return false
	}
	dropdown := widget.dropdown
	if dropdown.Visible && dropdown.Cursor >= 0 && dropdown.Cursor < len(dropdown.Items) {
		widget.Select(dropdown.Items[dropdown.Cursor].Value)
		return true
	}
	if widget.options.Mode != MultiSelect {
		return false
	}
	value := strings.TrimSpace(widget.input)
	if value == "" || widget.selection.Contains(value) {
		return true
	}
	widget.AddTag(value)
	widget.SetInput("")
	widget.Hide()
	widget.fireSelect(value)
	return true
}

func (widget *Widget) fireSelect(value string) {
	if widget.options.OnSelect != nil {
		widget.options.OnSelect(value)
	}
}

// Selection returns the selected values in display order.
func (widget *Widget) Selection() []string {
	return widget.selection.Values()
}

// HiddenValue returns the comma-joined selection, the value the form
// submits for a multi-select field.
func (widget *Widget) HiddenValue() string {
	return widget.selection.Join(",")
}

// AddTag adds value to the selection and renders its tag. The input is
// left untouched. Returns false, rendering nothing, if value was
// already selected.
func (widget *Widget) AddTag(value string) bool {
	if !widget.selection.Add(value) {
		return false
	}
	widget.options.Renderer.RenderTag(value)
	return true
}

// RemoveTag removes value from the selection and removes its tag.
// Returns false if value was not selected.
func (widget *Widget) RemoveTag(value string) bool {
	if !widget.selection.Remove(value) {
		return false
	}
	widget.options.Renderer.RemoveTag(value)
	return true
}

// RenderAll clears the tag container and rebuilds one tag per
// selected value.
func (widget *Widget) RenderAll() {
	widget.options.Renderer.ClearTags()
	for _, value := range widget.selection.Values() {
		widget.options.Renderer.RenderTag(value)
	}
}

// Reset returns the widget to its initial state after a form reset:
// empty input, empty selection, hidden dropdown. Candidates are kept.
func (widget *Widget) Reset() {
	widget.SetInput("")
	widget.Hide()
	widget.selection.Clear()
	widget.RenderAll()
}

// SetDisabled enables or disables the widget. A disabled widget
// ignores typing, focus, selection and commit, and hides its dropdown.
func (widget *Widget) SetDisabled(disabled bool) {
	widget.disabled = disabled
	if disabled && widget.dropdown.Visible {
		widget.Hide()
	}
}

// Disabled reports whether the widget is disabled.
func (widget *Widget) Disabled() bool {
	return widget.disabled
}

// OwnsPoint reports whether point, in page coordinates, is on the
// owning input.
func (widget *Widget) OwnsPoint(point Point) bool {
	if widget.options.Bounds == nil {
		return false
	}
	return PageRect(widget.options.Bounds(), widget.scroll()).Contains(point)
}

func (widget *Widget) scroll() Point {
	if widget.options.Scroll == nil {
		return Point{}
	}
	return widget.options.Scroll()
}

// PageRect converts a screen rectangle to page coordinates by adding
// the scroll offset.
func PageRect(screen Rect, scroll Point) Rect {
	screen.X += scroll.X
	screen.Y += scroll.Y
	return screen
}

// PanelContains reports whether point, in page coordinates, is inside
// the visible dropdown.
func (widget *Widget) PanelContains(point Point) bool {
	return widget.dropdown.Visible && widget.dropdown.Panel.Contains(point)
}

// ClickPanel selects the suggestion under point. Returns false if
// point is not on a suggestion row.
func (widget *Widget) ClickPanel(point Point) bool {
	if !widget.PanelContains(point) {
		return false
	}
	index := point.Y - widget.dropdown.Panel.Y
	if index < 0 || index >= len(widget.dropdown.Items) {
		return false
	}
	widget.Select(widget.dropdown.Items[index].Value)
	return true
}

// Dismiss hides the dropdown if it is visible.
func (widget *Widget) Dismiss() {
	if widget.dropdown.Visible {
		widget.Hide()
	}
}
