// Package upstream pkg/upstream/poller.go the per-endpoint polling loop.
package upstream

import (
	"context"
	"log"
	"sync"
	"time"
)

// PollLoop repeatedly fetches one appliance endpoint and delivers the
// results on a channel. A failure never reaches the subscriber as an
// error: the loop logs it and emits a nil payload so the subscriber keeps
// running. Once the endpoint trips the failure threshold the loop stops
// itself and must be restarted explicitly.
type PollLoop struct {
	endpoint  string
	interval  time.Duration
	transport Transport
	tracker   *FailureTracker
	logger    *log.Logger

	mu      sync.Mutex
	running bool
	done    chan struct{}
	results chan []byte
}

// NewPollLoop builds a loop for one endpoint. The logger should already be
// bound to a component name.
func NewPollLoop(transport Transport, tracker *FailureTracker, endpoint string, interval time.Duration, logger *log.Logger) *PollLoop {
	if logger == nil {
		logger = log.Default()
	}

	return &PollLoop{
		endpoint:  endpoint,
		interval:  interval,
		transport: transport,
		tracker:   tracker,
		logger:    logger,
		results:   make(chan []byte, 1),
	}
}

// Results returns the channel poll outcomes are delivered on. The channel
// stays open across restarts.
func (p *PollLoop) Results() <-chan []byte {
	return p.results
}

// Running reports whether the loop is currently polling.
func (p *PollLoop) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.running
}

// Start begins polling. Starting an already-running loop is a no-op.
func (p *PollLoop) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	p.running = true
	p.done = make(chan struct{})

	go p.run(ctx, p.done)
}

// Stop halts polling. Safe to call on a stopped loop.
func (p *PollLoop) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	p.running = false
	close(p.done)
}

// Restart resets the endpoint's failure count and resumes polling if the
// loop had stopped. It reports whether a restart actually occurred; a
// running loop is left alone.
func (p *PollLoop) Restart(ctx context.Context) bool {
	p.mu.Lock()

	if p.running {
		p.mu.Unlock()
		return false
	}

	p.tracker.ResetConsecutiveFailures(p.endpoint)
	p.tracker.ResetServiceAvailability()

	p.running = true
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	p.logger.Printf("Restarting polling for %s", p.endpoint)

	go p.run(ctx, done)

	return true
}

func (p *PollLoop) run(ctx context.Context, done chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Printf("Polling %s every %v", p.endpoint, p.interval)

	// Poll once immediately so subscribers are not left waiting a full
	// interval after startup.
	if stopped := p.tick(ctx, done); stopped {
		return
	}

	for {
		select {
		case <-ctx.Done():
			p.markStopped()
			return
		case <-done:
			return
		case <-ticker.C:
			if stopped := p.tick(ctx, done); stopped {
				return
			}
		}
	}
}

// tick performs one fetch and delivers the result. It returns true when
// the loop must exit, either because the failure threshold was reached or
// because it was cancelled mid-delivery.
func (p *PollLoop) tick(ctx context.Context, done chan struct{}) bool {
	payload, err := p.transport.Fetch(ctx, p.endpoint)
	if err != nil {
		p.logger.Printf("Warning: poll of %s failed (%d consecutive): %v",
			p.endpoint, p.tracker.ConsecutiveFailures(p.endpoint), err)

		payload = nil
	}

	select {
	case p.results <- payload:
	case <-ctx.Done():
		p.markStopped()
		return true
	case <-done:
		return true
	}

	if p.tracker.Stopped(p.endpoint) {
		p.logger.Printf("Stopped polling %s after %d consecutive failures",
			p.endpoint, p.tracker.ConsecutiveFailures(p.endpoint))
		p.markStopped()

		return true
	}

	return false
}

func (p *PollLoop) markStopped() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.running = false
}
