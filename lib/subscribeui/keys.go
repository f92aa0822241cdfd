// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribeui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings of the subscription form TUI.
// Keys not bound here are typed into the focused input.
type KeyMap struct {
	// Focus movement between inputs, in tab order.
	NextField     key.Binding
	PreviousField key.Binding

	// Dropdown navigation on the focused autocomplete input.
	Up   key.Binding
	Down key.Binding

	// Enter selects the highlighted suggestion, adds a free-form tag,
	// or submits.
	Enter key.Binding

	// Cancel hides open dropdowns and the notification panel, closes
	// the feedback card, or dismisses an alert.
	Cancel key.Binding

	// Page scrolling.
	PageUp   key.Binding
	PageDown key.Binding

	// Form actions.
	Submit        key.Binding
	TechTeams     key.Binding // Tick or untick the tech-teams publisher kind.
	Notifications key.Binding
	Interested    key.Binding
	Feedback      key.Binding

	// SendFeedback sends the open feedback card.
	SendFeedback key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Printable keys all go
// to the inputs, so every action is on a control chord.
var DefaultKeyMap = KeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next"),
	),
	PreviousField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "scroll down"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "subscribe"),
	),
	TechTeams: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("C-t", "tech teams"),
	),
	Notifications: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("C-n", "notifications"),
	),
	Interested: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("C-y", "interested"),
	),
	Feedback: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("C-f", "feedback"),
	),
	SendFeedback: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("C-d", "send"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
