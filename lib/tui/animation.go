// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// TransientTickInterval is the re-render interval while any transient
// message is showing. 100ms keeps expiry and the closing fade smooth.
const TransientTickInterval = 100 * time.Millisecond

// Slot names one place on screen that shows transient messages.
type Slot int

const (
	// SlotToast is the floating toast in the top-right corner.
	SlotToast Slot = iota
	// SlotMessage is the inline message under the submit button.
	SlotMessage
)

type transientEntry struct {
	text     string
	shown    time.Time
	duration time.Duration
}

// TransientTracker maps slots to messages that expire after a fixed
// duration. Showing a new message in a slot replaces the old one and
// restarts its timer.
type TransientTracker struct {
	entries map[Slot]transientEntry
}

// NewTransientTracker creates an empty tracker.
func NewTransientTracker() *TransientTracker {
	return &TransientTracker{
		entries: make(map[Slot]transientEntry),
	}
}

// Show puts text in slot for duration, starting at now.
func (tracker *TransientTracker) Show(slot Slot, text string, duration time.Duration, now time.Time) {
	tracker.entries[slot] = transientEntry{text: text, shown: now, duration: duration}
}

// Text returns the message showing in slot at now, or "" once it has
// expired.
func (tracker *TransientTracker) Text(slot Slot, now time.Time) string {
	if tracker.Remaining(slot, now) <= 0 {
		return ""
	}
	return tracker.entries[slot].text
}

// Remaining returns the fraction of the slot's lifetime left at now:
// 1.0 when shown, decaying linearly to 0.0 at expiry. Empty slots
// return 0.0.
func (tracker *TransientTracker) Remaining(slot Slot, now time.Time) float64 {
	entry, exists := tracker.entries[slot]
	if !exists || entry.duration <= 0 {
		return 0.0
	}
	elapsed := now.Sub(entry.shown)
	if elapsed >= entry.duration {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(entry.duration)
}

// Clear empties slot.
func (tracker *TransientTracker) Clear(slot Slot) {
	delete(tracker.entries, slot)
}

// HasActive returns true if any slot is still showing at now, meaning
// the tick timer should keep running.
func (tracker *TransientTracker) HasActive(now time.Time) bool {
	active := false
	for slot, entry := range tracker.entries {
		if now.Sub(entry.shown) < entry.duration {
			active = true
			continue
		}
		// Garbage-collect expired entries.
		delete(tracker.entries, slot)
	}
	return active
}
