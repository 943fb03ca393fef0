// Package leaktest checks that test code leaves no goroutines behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// DefaultSettleTimeout bounds how long Check waits for goroutines to exit
	DefaultSettleTimeout = time.Second
	pollInterval         = 10 * time.Millisecond
)

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	t       testing.TB
	before  int
	timeout time.Duration
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{t: t, before: settledCount(), timeout: DefaultSettleTimeout}
}

// Check fails the test when more than tolerance goroutines outlive the
// baseline once the settle timeout has passed.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.timeout)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		after = runtime.NumGoroutine()
	}
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d", g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settledCount lets goroutines that are already exiting finish first
func settledCount() int {
	runtime.Gosched()
	prev := runtime.NumGoroutine()
	for i := 0; i < 5; i++ {
		time.Sleep(pollInterval)
		n := runtime.NumGoroutine()
		if n == prev {
			return n
		}
		prev = n
	}
	return prev
}
