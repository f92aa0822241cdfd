// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for techfeed packages.
//
// [RequireReceive] and [RequireClosed] wrap the select-with-timeout
// pattern for tests that wait on a goroutine: a server becoming ready,
// or Serve returning after its context is cancelled. They are the
// only place in the test suite where real wall-clock timeouts are
// used; timing-dependent production code takes a [clock.Clock]
// instead.
//
// Helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no techfeed-internal dependencies.
//
// [clock.Clock]: github.com/bureau-foundation/techfeed/lib/clock
package testutil
