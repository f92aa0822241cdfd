// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClockNow(t *testing.T) {
	fake := Fake(epoch)
	if got := fake.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
}

func TestFakeClockAdvance(t *testing.T) {
	fake := Fake(epoch)
	fake.Advance(3 * time.Second)
	if got := fake.Now(); !got.Equal(epoch.Add(3 * time.Second)) {
		t.Fatalf("Now() after Advance = %v", got)
	}
	fake.Advance(-time.Hour)
	if got := fake.Now(); !got.Equal(epoch.Add(3 * time.Second)) {
		t.Fatalf("negative Advance moved the clock to %v", got)
	}
}

func TestFakeClockSetNeverRunsBackwards(t *testing.T) {
	fake := Fake(epoch)
	fake.Set(epoch.Add(time.Minute))
	fake.Set(epoch)
	if got := fake.Now(); !got.Equal(epoch.Add(time.Minute)) {
		t.Fatalf("Now() = %v, want %v", got, epoch.Add(time.Minute))
	}
}

func TestFakeClockConcurrentAccess(t *testing.T) {
	fake := Fake(epoch)
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fake.Advance(time.Millisecond)
			_ = fake.Now()
		}()
	}
	wg.Wait()
	if got := fake.Now(); !got.Equal(epoch.Add(10 * time.Millisecond)) {
		t.Fatalf("Now() = %v, want 10ms after epoch", got)
	}
}

func TestClockImplementations(t *testing.T) {
	var _ Clock = Fake(epoch)
	var _ Clock = Real()
}
