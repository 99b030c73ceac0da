package upstream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errPollFailed = errors.New("poll failed")

func TestPollLoopEmitsPayloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := NewFailureTracker(10)
	transport := NewMockTransport(ctrl)
	transport.EXPECT().Fetch(gomock.Any(), EndpointUser).
		Return([]byte(`[{"id":"u1"}]`), nil).AnyTimes()

	loop := NewPollLoop(transport, tracker, EndpointUser, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop.Start(ctx)
	defer loop.Stop()

	select {
	case payload := <-loop.Results():
		assert.JSONEq(t, `[{"id":"u1"}]`, string(payload))
	case <-time.After(time.Second):
		t.Fatal("no payload emitted")
	}
}

func TestPollLoopEmitsNilOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := NewFailureTracker(10)
	transport := NewMockTransport(ctrl)
	transport.EXPECT().Fetch(gomock.Any(), EndpointUser).
		DoAndReturn(func(context.Context, string) ([]byte, error) {
			tracker.Observe(EndpointUser, FailureTimeout)
			return nil, errPollFailed
		}).AnyTimes()

	loop := NewPollLoop(transport, tracker, EndpointUser, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop.Start(ctx)
	defer loop.Stop()

	select {
	case payload := <-loop.Results():
		assert.Nil(t, payload)
	case <-time.After(time.Second):
		t.Fatal("no emission on failure")
	}
}

func TestPollLoopStopsAtThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const maxFailures = 3

	tracker := NewFailureTracker(maxFailures)
	transport := NewMockTransport(ctrl)
	transport.EXPECT().Fetch(gomock.Any(), EndpointUser).
		DoAndReturn(func(context.Context, string) ([]byte, error) {
			tracker.Observe(EndpointUser, FailureTimeout)
			return nil, errPollFailed
		}).Times(maxFailures)

	loop := NewPollLoop(transport, tracker, EndpointUser, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop.Start(ctx)

	// Drain exactly the emissions the loop makes before self-terminating.
	for i := 0; i < maxFailures; i++ {
		select {
		case payload := <-loop.Results():
			assert.Nil(t, payload)
		case <-time.After(time.Second):
			t.Fatalf("missing emission %d", i)
		}
	}

	require.Eventually(t, func() bool {
		return !loop.Running()
	}, time.Second, 5*time.Millisecond, "loop should stop at the failure threshold")

	assert.True(t, tracker.Stopped(EndpointUser))
}

func TestPollLoopRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const maxFailures = 2

	tracker := NewFailureTracker(maxFailures)
	transport := NewMockTransport(ctrl)
	transport.EXPECT().Fetch(gomock.Any(), EndpointUser).
		DoAndReturn(func(context.Context, string) ([]byte, error) {
			tracker.Observe(EndpointUser, FailureNone)
			return []byte(`[]`), nil
		}).AnyTimes()

	loop := NewPollLoop(transport, tracker, EndpointUser, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop.Start(ctx)

	// A running loop must not be restarted.
	assert.False(t, loop.Restart(ctx))

	loop.Stop()

	require.Eventually(t, func() bool {
		return !loop.Running()
	}, time.Second, 5*time.Millisecond)

	// Simulate the streak that stopped it.
	tracker.Observe(EndpointUser, FailureTimeout)
	tracker.Observe(EndpointUser, FailureTimeout)
	require.True(t, tracker.Stopped(EndpointUser))

	assert.True(t, loop.Restart(ctx))
	defer loop.Stop()

	assert.Equal(t, 0, tracker.ConsecutiveFailures(EndpointUser))
	assert.True(t, loop.Running())
}
