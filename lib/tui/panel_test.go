// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderNotificationPanelButtons(t *testing.T) {
	view := RenderNotificationPanel(DefaultTheme, "Engineers are coming soon.", 40)
	for index, line := range view.Lines {
		if width := ansi.StringWidth(line); width != 40 {
			t.Errorf("line %d width = %d, want 40", index, width)
		}
	}
	if len(view.Buttons) != 2 {
		t.Fatalf("got %d buttons, want 2", len(view.Buttons))
	}
	for _, button := range view.Buttons {
		plain := ansi.Strip(view.Lines[button.Line])
		if label := plain[button.StartX:button.EndX]; strings.TrimSpace(label) != button.Value {
			t.Errorf("button span covers %q, want %q", label, button.Value)
		}
	}
}

func TestRenderNotificationPanelEmptyMessage(t *testing.T) {
	view := RenderNotificationPanel(DefaultTheme, "", 40)
	joined := ansi.Strip(strings.Join(view.Lines, "\n"))
	if !strings.Contains(joined, "No new notifications.") {
		t.Fatalf("panel = %q, want the empty-state text", joined)
	}
}

func TestRenderNotificationIconUnreadDot(t *testing.T) {
	unread := ansi.Strip(RenderNotificationIcon(DefaultTheme, true, false))
	read := ansi.Strip(RenderNotificationIcon(DefaultTheme, false, false))
	if !strings.Contains(unread, "●") {
		t.Errorf("unread icon = %q, want the dot", unread)
	}
	if strings.Contains(read, "●") {
		t.Errorf("read icon = %q, want no dot", read)
	}
	if ansi.StringWidth(unread) != NotificationIconWidth || ansi.StringWidth(read) != NotificationIconWidth {
		t.Errorf("icon widths = %d, %d, want %d", ansi.StringWidth(unread), ansi.StringWidth(read), NotificationIconWidth)
	}
}
