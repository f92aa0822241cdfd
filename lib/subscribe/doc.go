// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package subscribe is the subscription form controller: the state and
// behavior of the form independent of how it is drawn.
//
// Two variants exist. The company form picks one company and any
// number of its categories; the tech-team form picks any number of
// tech teams and one topic. Both validate client-side, submit to the
// backend, reset on success, and show the email address's existing
// subscriptions. The tech-team form also carries the notification
// panel, the interest button and the feedback card.
//
// A [Form] never blocks. Operations that need the backend queue a
// [Task]; the caller drains them with [Form.TakeTasks], runs each off
// the event loop, and invokes the returned [Completion] back on the
// event loop. Every mutation of form state therefore happens on one
// goroutine:
//
//	form.Focus(subscribe.ElementCompany)
//	for _, task := range form.TakeTasks() {
//		go func() { results <- task(ctx) }()
//	}
//	...
//	completion := <-results
//	completion()
//
// Superseded fetches are not cancelled. When responses arrive out of
// order the last one to arrive wins; such arrivals are logged at debug
// level.
//
// Display effects go through two interfaces: [Surface] for alerts,
// toasts and the status panel, and [Layout] for per-element renderers
// and on-screen geometry.
package subscribe
