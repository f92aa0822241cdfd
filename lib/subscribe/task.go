// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package subscribe

import "context"

// Task is backend work queued by a Form operation. It may run on any
// goroutine and must not touch form state; the Completion it returns
// does that and must be invoked on the event loop.
type Task func(ctx context.Context) Completion

// Completion applies a finished Task's result to the form.
type Completion func()

type requestKind int

const (
	requestCompanies requestKind = iota
	requestCategories
	requestTechTeams
	requestSubscriptions
	requestSubscribe
	requestInterest
	requestFeedback
)

var requestKindNames = [...]string{
	requestCompanies:     "companies",
	requestCategories:    "categories",
	requestTechTeams:     "techteams",
	requestSubscriptions: "subscriptions",
	requestSubscribe:     "subscribe",
	requestInterest:      "interest",
	requestFeedback:      "feedback",
}

func (kind requestKind) String() string { return requestKindNames[kind] }

// enqueue queues fetch under a new sequence number for kind. The
// completion is wrapped to record arrival order before it applies.
func (form *Form) enqueue(kind requestKind, fetch func(ctx context.Context) Completion) {
	form.issued[kind]++
	sequence := form.issued[kind]
	form.tasks = append(form.tasks, func(ctx context.Context) Completion {
		apply := fetch(ctx)
		return func() {
			form.arrived(kind, sequence)
			apply()
		}
	})
}

// arrived logs responses that were superseded by a later request of
// the same kind. They are still applied: the last response to arrive
// wins.
func (form *Form) arrived(kind requestKind, sequence uint64) {
	if latest := form.issued[kind]; sequence < latest {
		form.logger.Debug("applying superseded response",
			"request", kind.String(),
			"sequence", sequence,
			"latest", latest,
		)
	}
	if sequence < form.applied[kind] {
		form.logger.Debug("response arrived out of order",
			"request", kind.String(),
			"sequence", sequence,
			"applied", form.applied[kind],
		)
		return
	}
	form.applied[kind] = sequence
}

// TakeTasks returns the queued tasks and clears the queue.
func (form *Form) TakeTasks() []Task {
	tasks := form.tasks
	form.tasks = nil
	return tasks
}
