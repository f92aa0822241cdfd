// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for testability.
//
// Code that expires on-screen messages reads the time through a Clock
// instead of calling time.Now directly. In production, Real() reads
// the system clock. In tests, Fake() returns a clock that only moves
// when Advance or Set is called:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	model, err := subscribeui.NewModel(subscribeui.Options{Clock: fake, ...})
//	fake.Advance(3 * time.Second) // the toast has now expired
//
// Scheduling stays with the caller (bubbletea's tea.Tick); the clock
// only answers what time it is.
package clock
