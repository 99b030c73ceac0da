// Package sync pkg/sync/orchestrator.go ties one poll loop to one apply
// function.
package sync

import (
	"context"
	"time"

	"github.com/linkmirror/linkmirror/pkg/models"
	"github.com/linkmirror/linkmirror/pkg/upstream"
)

// applyFunc decodes one appliance payload and stores it, returning the
// number of items that landed.
type applyFunc func(payload []byte) (int, error)

// orchestrator owns the sync cycle for one resource family: it subscribes
// to the endpoint's poll loop and pushes each payload through the apply
// function. The startup delay staggers resource families so rows that
// reference other families sync after their targets.
type orchestrator struct {
	resource models.ResourceType
	endpoint string
	delay    time.Duration
	loop     *upstream.PollLoop
	apply    applyFunc
}

// run consumes the loop's results until the context is cancelled. The poll
// loop may stop itself at the failure threshold; the consumer keeps running
// so a later restart resumes delivery on the same channel.
func (s *Service) run(ctx context.Context, o *orchestrator) {
	defer s.wg.Done()

	if o.delay > 0 {
		select {
		case <-time.After(o.delay):
		case <-ctx.Done():
			return
		}
	}

	o.loop.Start(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case payload := <-o.loop.Results():
			s.handlePayload(o, payload)
		}
	}
}

// handlePayload applies one poll outcome and publishes the resulting event.
// A nil payload means the poll failed or the appliance rejected the call;
// the cycle is recorded but nothing is stored. When the failure that
// produced it also tripped the threshold, the recorded error tells the
// operator the loop needs a restart.
func (s *Service) handlePayload(o *orchestrator, payload []byte) {
	if payload == nil {
		msg := "no payload"
		if s.tracker.Stopped(o.endpoint) {
			msg = upstream.ErrPollingStopped.Error()
		}

		s.record(o.resource, 0, msg)

		return
	}

	count, err := o.apply(payload)
	if err != nil {
		s.logger.Printf("Error syncing %s: %v", o.resource, err)
		s.record(o.resource, count, err.Error())

		return
	}

	s.logger.Printf("Synced %d %s items", count, o.resource)
	s.record(o.resource, count, "")
}

// record stores the cycle outcome for status reporting and publishes it on
// the event stream. The stream send never blocks a sync cycle; when no
// subscriber is draining, events are dropped.
func (s *Service) record(resource models.ResourceType, count int, errMsg string) {
	event := models.SyncEvent{
		Resource: resource,
		Count:    count,
		Error:    errMsg,
		At:       time.Now(),
	}

	s.mu.Lock()
	s.lastEvents[resource] = event
	s.mu.Unlock()

	select {
	case s.events <- event:
	default:
	}
}
