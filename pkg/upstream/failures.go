// Package upstream pkg/upstream/failures.go per-endpoint failure accounting.
package upstream

import "sync"

// DefaultMaxConsecutiveFailures is the circuit-breaker threshold: once an
// endpoint fails this many times in a row its poll loop stops itself.
const DefaultMaxConsecutiveFailures = 10

// FailureTracker keeps the in-memory failure state for all appliance
// endpoints: a consecutive-failure count per endpoint plus one global
// availability flag. It is a standalone value so the accounting rules can
// be tested without any polling machinery. State is not persisted; a
// process restart starts clean.
type FailureTracker struct {
	mu             sync.Mutex
	consecutive    map[string]int
	available      bool
	maxConsecutive int
}

// NewFailureTracker returns a tracker that trips after maxConsecutive
// failures on one endpoint. Zero or negative means the default of 10.
func NewFailureTracker(maxConsecutive int) *FailureTracker {
	if maxConsecutive <= 0 {
		maxConsecutive = DefaultMaxConsecutiveFailures
	}

	return &FailureTracker{
		consecutive:    make(map[string]int),
		available:      true,
		maxConsecutive: maxConsecutive,
	}
}

// Observe applies one call outcome to the tracker:
//   - success resets the endpoint's count and restores availability
//   - unreachable drops availability and counts the failure
//   - timeout and no-response count the failure only
//   - TLS errors reset the count without touching availability
//   - status errors reset the count: the appliance did respond
func (t *FailureTracker) Observe(endpoint string, kind FailureKind) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch kind {
	case FailureNone:
		t.consecutive[endpoint] = 0
		t.available = true
	case FailureUnreachable:
		t.available = false
		t.consecutive[endpoint]++
	case FailureTimeout, FailureNoResponse:
		t.consecutive[endpoint]++
	case FailureTLS, FailureStatus:
		t.consecutive[endpoint] = 0
	}
}

// ConsecutiveFailures returns the current failure streak for an endpoint.
func (t *FailureTracker) ConsecutiveFailures(endpoint string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.consecutive[endpoint]
}

// Stopped reports whether an endpoint has reached the failure threshold.
func (t *FailureTracker) Stopped(endpoint string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.consecutive[endpoint] >= t.maxConsecutive
}

// ServiceAvailable reports the global availability flag.
func (t *FailureTracker) ServiceAvailable() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.available
}

// ResetServiceAvailability restores the availability flag. This is one of
// the two mutators exposed for manual recovery.
func (t *FailureTracker) ResetServiceAvailability() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.available = true
}

// ResetConsecutiveFailures clears one endpoint's failure streak. This is
// the other manual-recovery mutator.
func (t *FailureTracker) ResetConsecutiveFailures(endpoint string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.consecutive[endpoint] = 0
}

// Snapshot returns a copy of all per-endpoint failure counts.
func (t *FailureTracker) Snapshot() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	counts := make(map[string]int, len(t.consecutive))
	for endpoint, n := range t.consecutive {
		counts[endpoint] = n
	}

	return counts
}
