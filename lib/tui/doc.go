// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the terminal rendering pieces of techfeed's
// subscription form. Built on lipgloss and x/ansi, these components
// draw suggestion dropdowns, removable tags, the notification panel,
// toasts, and the alert and feedback modals, and splice floating
// layers onto a rendered page.
//
// Everything here is stateless rendering except [TransientTracker],
// which times toasts and inline messages, and [FeedbackModal], which
// wraps a bubbles text area. Renderers that produce clickable content
// return [Hit] spans so the owning model can route mouse clicks
// without re-deriving the layout.
package tui
