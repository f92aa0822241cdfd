// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"testing"
	"time"
)

// recordingT captures Fatalf instead of stopping the goroutine.
type recordingT struct {
	failed  bool
	message string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
}

func TestRequireReceive(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 42
	if got := RequireReceive(t, ch, time.Second, "value"); got != 42 {
		t.Errorf("RequireReceive = %d, want 42", got)
	}
}

func TestRequireReceiveClosedChannel(t *testing.T) {
	ch := make(chan int)
	close(ch)
	recorder := &recordingT{}
	RequireReceive(recorder, ch, time.Second, "waiting for %s", "result")
	if !recorder.failed || recorder.message != "channel closed without sending a value: waiting for result" {
		t.Errorf("failed=%v message=%q", recorder.failed, recorder.message)
	}
}

func TestRequireClosed(t *testing.T) {
	ch := make(chan struct{})
	close(ch)
	recorder := &recordingT{}
	RequireClosed(recorder, ch, time.Second)
	if recorder.failed {
		t.Errorf("RequireClosed failed on a closed channel: %s", recorder.message)
	}

	open := make(chan struct{})
	RequireClosed(recorder, open, 10*time.Millisecond, "never closes")
	if !recorder.failed {
		t.Error("RequireClosed did not fail on timeout")
	}
}
