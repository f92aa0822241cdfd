// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"
	"time"
)

func TestTransientTrackerExpires(t *testing.T) {
	tracker := NewTransientTracker()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tracker.Show(SlotToast, "Subscription Updated!", 3*time.Second, start)

	if text := tracker.Text(SlotToast, start.Add(time.Second)); text != "Subscription Updated!" {
		t.Fatalf("Text after 1s = %q", text)
	}
	if remaining := tracker.Remaining(SlotToast, start.Add(1500*time.Millisecond)); remaining != 0.5 {
		t.Errorf("Remaining halfway = %v, want 0.5", remaining)
	}
	if !tracker.HasActive(start.Add(2 * time.Second)) {
		t.Error("HasActive before expiry = false")
	}
	if text := tracker.Text(SlotToast, start.Add(3*time.Second)); text != "" {
		t.Errorf("Text at expiry = %q, want empty", text)
	}
	if tracker.HasActive(start.Add(3 * time.Second)) {
		t.Error("HasActive after expiry = true")
	}
}

func TestTransientTrackerReplaceRestartsTimer(t *testing.T) {
	tracker := NewTransientTracker()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tracker.Show(SlotMessage, "first", 5*time.Second, start)
	tracker.Show(SlotMessage, "second", 5*time.Second, start.Add(4*time.Second))

	if text := tracker.Text(SlotMessage, start.Add(6*time.Second)); text != "second" {
		t.Fatalf("Text = %q, want the replacement still showing", text)
	}
	if text := tracker.Text(SlotToast, start); text != "" {
		t.Errorf("other slot = %q, want empty", text)
	}
	tracker.Clear(SlotMessage)
	if text := tracker.Text(SlotMessage, start.Add(6*time.Second)); text != "" {
		t.Errorf("Text after Clear = %q", text)
	}
}
