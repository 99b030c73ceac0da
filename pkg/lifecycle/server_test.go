package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingService struct {
	name     string
	started  chan struct{}
	stops    chan string
	startErr error
}

func (s *recordingService) Start(ctx context.Context) error {
	close(s.started)

	if s.startErr != nil {
		return s.startErr
	}

	<-ctx.Done()

	return nil
}

func (s *recordingService) Stop(context.Context) error {
	s.stops <- s.name
	return nil
}

func TestRunServerStopsInReverseOrder(t *testing.T) {
	stops := make(chan string, 2)

	first := &recordingService{name: "first", started: make(chan struct{}), stops: stops}
	second := &recordingService{name: "second", started: make(chan struct{}), stops: stops}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- RunServer(ctx, &ServerOptions{
			ServiceName: "test",
			Services:    []Service{first, second},
		})
	}()

	<-first.started
	<-second.started

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("RunServer did not return after cancellation")
	}

	require.Len(t, stops, 2)
	assert.Equal(t, "second", <-stops)
	assert.Equal(t, "first", <-stops)
}

func TestRunServerPropagatesServiceError(t *testing.T) {
	boom := errors.New("listen failed")

	stops := make(chan string, 1)
	svc := &recordingService{name: "svc", started: make(chan struct{}), stops: stops, startErr: boom}

	err := RunServer(context.Background(), &ServerOptions{
		ServiceName: "test",
		Services:    []Service{svc},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// The failed service is still asked to stop.
	assert.Equal(t, "svc", <-stops)
}
