package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/linkmirror/linkmirror/pkg/config"
	"github.com/linkmirror/linkmirror/pkg/db"
	"github.com/linkmirror/linkmirror/pkg/models"
	"github.com/linkmirror/linkmirror/pkg/upstream"
)

// newMockedService wires a Service whose transport expectations the test
// controls directly.
func newMockedService(t *testing.T) (*Service, *upstream.MockTransport, db.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	transport := upstream.NewMockTransport(ctrl)
	tracker := upstream.NewFailureTracker(upstream.DefaultMaxConsecutiveFailures)

	store, err := db.New(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	cfg := &config.MirrorConfig{
		ListenAddr: ":0",
		DBPath:     ":memory:",
		Upstream:   config.UpstreamConfig{BaseURL: "https://appliance", APIKey: "key"},
	}

	return NewService(store, transport, tracker, cfg, nil), transport, store
}

func TestForceSyncUnknownResource(t *testing.T) {
	svc, _, _ := newMockedService(t)

	_, _, err := svc.ForceSync(context.Background(), models.ResourceType("bogus"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestForceSyncStoresItems(t *testing.T) {
	svc, transport, store := newMockedService(t)

	payload := []byte(`[{"id":"u1","name":"alice","status":"enabled","datacredit":100}]`)

	transport.EXPECT().
		Get(gomock.Any(), upstream.EndpointUser).
		Return(payload, nil)

	count, raw, err := svc.ForceSync(context.Background(), models.ResourceUser)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.JSONEq(t, string(payload), string(raw))

	got, err := store.GetUser("u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)

	// The cycle outcome shows up in the status report.
	report := svc.Status()
	for _, res := range report.Resources {
		if res.Resource == models.ResourceUser {
			assert.Equal(t, 1, res.LastCount)
			assert.False(t, res.LastSync.IsZero())
		}
	}
}

func TestForceSyncWhileUnavailable(t *testing.T) {
	svc, transport, _ := newMockedService(t)

	// The one-shot transport path fast-fails with a nil payload while the
	// appliance is marked unavailable.
	transport.EXPECT().
		Get(gomock.Any(), upstream.EndpointWan).
		Return(nil, nil)

	_, _, err := svc.ForceSync(context.Background(), models.ResourceWan)
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream.ErrServiceUnavailable)
}

func TestForceSyncUsesUsageWindow(t *testing.T) {
	svc, transport, _ := newMockedService(t)

	transport.EXPECT().
		Get(gomock.Any(), "/wanusage?days=7").
		Return([]byte(`[]`), nil)

	count, _, err := svc.ForceSync(context.Background(), models.ResourceWanUsage)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRestartPollingUnknownResource(t *testing.T) {
	svc, _, _ := newMockedService(t)

	_, err := svc.RestartPollingIfStopped(context.Background(), models.ResourceType("bogus"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestRestartPollingLeavesRunningLoopAlone(t *testing.T) {
	svc, transport, _ := newMockedService(t)

	transport.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return([]byte(`[]`), nil).
		AnyTimes()

	require.NoError(t, svc.Start(context.Background()))
	defer func() {
		require.NoError(t, svc.Stop(context.Background()))
	}()

	// The user loop has no startup delay, so it is polling shortly after
	// Start.
	require.Eventually(t, func() bool {
		return svc.orchestrators[models.ResourceUser].loop.Running()
	}, time.Second, 10*time.Millisecond)

	restarted, err := svc.RestartPollingIfStopped(context.Background(), models.ResourceUser)
	require.NoError(t, err)
	assert.False(t, restarted)
}

func TestStartTwice(t *testing.T) {
	svc, transport, _ := newMockedService(t)

	transport.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return([]byte(`[]`), nil).
		AnyTimes()

	require.NoError(t, svc.Start(context.Background()))
	assert.ErrorIs(t, svc.Start(context.Background()), ErrAlreadyStarted)
	require.NoError(t, svc.Stop(context.Background()))
}

func TestEventsStream(t *testing.T) {
	svc, transport, _ := newMockedService(t)

	transport.EXPECT().
		Get(gomock.Any(), upstream.EndpointUser).
		Return([]byte(`[{"id":"u1","name":"alice","status":"enabled"}]`), nil)

	_, _, err := svc.ForceSync(context.Background(), models.ResourceUser)
	require.NoError(t, err)

	select {
	case event := <-svc.Events():
		assert.Equal(t, models.ResourceUser, event.Resource)
		assert.Equal(t, 1, event.Count)
		assert.Empty(t, event.Error)
	case <-time.After(time.Second):
		t.Fatal("no sync event published")
	}
}

func TestStatusCoversAllResources(t *testing.T) {
	svc, _, _ := newMockedService(t)

	report := svc.Status()
	assert.True(t, report.ServiceAvailable)
	assert.Len(t, report.Resources, len(models.ResourceTypes()))
}

func TestStatusReportsPollingStopped(t *testing.T) {
	svc, _, _ := newMockedService(t)

	o := svc.orchestrators[models.ResourceUser]

	for i := 0; i < upstream.DefaultMaxConsecutiveFailures; i++ {
		svc.tracker.Observe(o.endpoint, upstream.FailureTimeout)
	}

	// The poll that trips the threshold still delivers one nil payload;
	// the recorded outcome must point the operator at the stopped loop.
	svc.handlePayload(o, nil)

	report := svc.Status()

	for _, rs := range report.Resources {
		if rs.Resource != models.ResourceUser {
			continue
		}

		assert.Equal(t, upstream.ErrPollingStopped.Error(), rs.LastError)
		assert.Equal(t, upstream.DefaultMaxConsecutiveFailures, rs.ConsecutiveFailures)
	}
}

func TestFetchUserDailyUsage(t *testing.T) {
	svc, transport, _ := newMockedService(t)

	// Record type 1 entries are appliance bookkeeping and must be dropped
	// even when the appliance ignored the recordtype filter.
	payload := []byte(`[
		{"userid":"u1","date":"2025-03-09","bytes":300,"recordtype":2},
		{"userid":"u1","date":"2025-03-08","bytes":100,"recordtype":2},
		{"userid":"u1","date":"2025-03-08","bytes":999,"recordtype":1}
	]`)

	transport.EXPECT().
		Get(gomock.Any(), "/usage?days=7&userid=u1&recordtype=2").
		Return(payload, nil)

	items, total, err := svc.FetchUserDailyUsage(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2025-03-08", items[0].Date)
	assert.Equal(t, int64(200), total)
}

func TestFetchUserDailyUsageUnavailable(t *testing.T) {
	svc, transport, _ := newMockedService(t)

	transport.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	_, _, err := svc.FetchUserDailyUsage(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream.ErrServiceUnavailable)
}
