// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribe

import "github.com/bureau-foundation/techfeed/lib/autocomplete"

// DefaultAnnouncement is the message the notification panel opens with.
const DefaultAnnouncement = "Individual engineers and communities are coming to techfeed. " +
	"Press Interested to hear first, or send us feedback."

// NotificationPanel is the announcement panel toggled by the
// notification icon. It takes part in outside-click dismissal: a click
// outside the panel that is not on the icon closes it.
type NotificationPanel struct {
	layout  Layout
	open    bool
	unread  bool
	message string
}

func newNotificationPanel(layout Layout, announcement string) *NotificationPanel {
	return &NotificationPanel{
		layout:  layout,
		unread:  true,
		message: announcement,
	}
}

// Open reports whether the panel is shown.
func (panel *NotificationPanel) Open() bool { return panel.open }

// Unread reports whether the unread dot is shown on the icon.
func (panel *NotificationPanel) Unread() bool { return panel.unread }

// Message returns the announcement text. It is cleared when the panel
// closes and stays empty afterwards.
func (panel *NotificationPanel) Message() string { return panel.message }

// Toggle opens a closed panel or closes an open one. Opening clears
// the unread dot.
func (panel *NotificationPanel) Toggle() {
	if panel.open {
		panel.Close()
		return
	}
	panel.open = true
	panel.unread = false
}

// Close hides the panel and clears its message.
func (panel *NotificationPanel) Close() {
	if !panel.open {
		return
	}
	panel.open = false
	panel.message = ""
}

// OwnsPoint reports whether point, in page coordinates, is on the
// notification icon.
func (panel *NotificationPanel) OwnsPoint(point autocomplete.Point) bool {
	return panel.pageBounds(ElementNotificationIcon).Contains(point)
}

// PanelContains reports whether point, in page coordinates, is inside
// the open panel.
func (panel *NotificationPanel) PanelContains(point autocomplete.Point) bool {
	return panel.open && panel.pageBounds(ElementNotificationPanel).Contains(point)
}

func (panel *NotificationPanel) pageBounds(element Element) autocomplete.Rect {
	return autocomplete.PageRect(panel.layout.Bounds(element), panel.layout.Scroll())
}

// Covers reports whether point, in page coordinates, is on the icon or
// the open panel. Both are drawn above the page and its dropdowns.
func (panel *NotificationPanel) Covers(point autocomplete.Point) bool {
	return panel.OwnsPoint(point) || panel.PanelContains(point)
}

// Dismiss closes the panel.
func (panel *NotificationPanel) Dismiss() { panel.Close() }
