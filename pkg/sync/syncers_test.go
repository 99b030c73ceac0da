package sync

import (
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

// newTestService wires a Service against an in-memory store and a mocked
// transport. Tests exercising the apply functions never touch the network.
func newTestService(t *testing.T) (*Service, db.Service) {
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

	return NewService(store, transport, tracker, cfg, nil), store
}

func TestApplyUsersStoresRowsAndSnapshots(t *testing.T) {
	svc, store := newTestService(t)

	payload := []byte(`[
		{"id":"u1","name":"alice","status":"enabled","datacredit":5000000000},
		{"id":"u2","name":"bob","status":"disabled","usagedebit":1000}
	]`)

	count, err := svc.applyUsers(payload)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := store.GetUser("u1")
	require.NoError(t, err)
	assert.Equal(t, models.UserEnabled, got.Status)
	assert.Equal(t, int64(5_000_000_000), got.DataCredit)

	snaps, err := store.GetUserSnapshots("u1",
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, int64(5_000_000_000), snaps[0].DataCredit)
}

func TestApplyUsersSkipsEmptyID(t *testing.T) {
	svc, store := newTestService(t)

	payload := []byte(`[
		{"id":"","name":"ghost"},
		{"id":"u1","name":"alice","status":"enabled"}
	]`)

	count, err := svc.applyUsers(payload)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	users, err := store.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestApplyUsersDecodeError(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.applyUsers([]byte(`{"not":"a list"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, errDecodePayload)
}

func TestApplyLansUnknownDHCPSkipsItem(t *testing.T) {
	svc, store := newTestService(t)

	payload := []byte(`[
		{"id":"lan1","name":"office","dhcpstatus":"server","bytes":100},
		{"id":"lan2","name":"lab","dhcpstatus":"proxy","bytes":200}
	]`)

	count, err := svc.applyLans(payload)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = store.GetLan("lan1")
	require.NoError(t, err)

	_, err = store.GetLan("lan2")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestApplyLansClearsUnmirroredRefs(t *testing.T) {
	svc, store := newTestService(t)

	// Neither the interface nor the WAN has been mirrored yet; the LAN must
	// still land, with its links cleared until a later cycle resolves them.
	payload := []byte(`[
		{"id":"lan1","name":"office","interfaceid":"eth0","wanid":"wan1","dhcpstatus":"server","bytes":100}
	]`)

	count, err := svc.applyLans(payload)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := store.GetLan("lan1")
	require.NoError(t, err)
	assert.Empty(t, got.InterfaceID)
	assert.Empty(t, got.WanID)

	// Once the targets exist the next cycle fills the links in.
	require.NoError(t, store.UpsertInterface(&models.NetworkInterface{
		ID: "eth0", Name: "eth0", Kind: models.InterfaceEthernet, UpdatedAt: time.Now(),
	}))
	require.NoError(t, store.UpsertWan(&models.Wan{
		ID: "wan1", Name: "uplink", Status: models.WanUp, UpdatedAt: time.Now(),
	}))

	count, err = svc.applyLans(payload)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err = store.GetLan("lan1")
	require.NoError(t, err)
	assert.Equal(t, "eth0", got.InterfaceID)
	assert.Equal(t, "wan1", got.WanID)
}

func TestApplyAutocredits(t *testing.T) {
	svc, store := newTestService(t)

	// The referenced user has not been mirrored yet; the item is skipped,
	// not fatal.
	payload := []byte(`[
		{"userid":"u1","interval":"monthly","type":"data","value":2000000000,"status":"enabled"}
	]`)

	count, err := svc.applyAutocredits(payload)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = svc.applyUsers([]byte(`[{"id":"u1","name":"alice","status":"enabled"}]`))
	require.NoError(t, err)

	count, err = svc.applyAutocredits(payload)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := store.GetUser("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2_000_000_000), got.AutocreditValue)
	assert.Equal(t, models.AutocreditMonthly, got.AutocreditInterval)
	assert.True(t, got.AutocreditEnabled)

	// The top-up value flows into today's snapshot as well.
	snaps, err := store.GetUserSnapshots("u1",
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, int64(2_000_000_000), snaps[0].AutocreditValue)
}

func TestApplyWansWritesSnapshot(t *testing.T) {
	svc, store := newTestService(t)

	payload := []byte(`[
		{"id":"wan1","name":"uplink","status":"up","bytes":123,"maxbytes":1000}
	]`)

	count, err := svc.applyWans(payload)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	snaps, err := store.GetWanSnapshots("wan1",
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, int64(123), snaps[0].Bytes)
	assert.Equal(t, int64(1000), snaps[0].MaxBytes)
}

func TestApplyWanUsageBackfillsDatedSnapshots(t *testing.T) {
	svc, store := newTestService(t)

	require.NoError(t, store.UpsertWan(&models.Wan{
		ID: "wan1", Name: "uplink", Status: models.WanUp, UpdatedAt: time.Now(),
	}))

	payload := []byte(`[
		{"wanid":"wan1","date":"2025-03-08","bytes":100,"maxbytes":1000},
		{"wanid":"wan1","date":"2025-03-09","bytes":250,"maxbytes":1000},
		{"wanid":"ghost","date":"2025-03-09","bytes":1},
		{"wanid":"wan1","date":"not-a-date","bytes":1}
	]`)

	count, err := svc.applyWanUsage(payload)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	snaps, err := store.GetWanSnapshots("wan1", from, to)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, int64(100), snaps[0].Bytes)
	assert.Equal(t, int64(250), snaps[1].Bytes)
}

func TestApplyLanUsage(t *testing.T) {
	svc, store := newTestService(t)

	require.NoError(t, store.UpsertWan(&models.Wan{
		ID: "wan1", Name: "uplink", Status: models.WanUp, UpdatedAt: time.Now(),
	}))
	require.NoError(t, store.UpsertLan(&models.Lan{
		ID: "lan1", Name: "office", DHCP: models.DHCPServer, UpdatedAt: time.Now(),
	}))

	payload := []byte(`[
		{"lanid":"lan1","wanid":"wan1","date":"2025-03-09","bytes":50},
		{"lanid":"ghost","wanid":"wan1","date":"2025-03-09","bytes":1}
	]`)

	count, err := svc.applyLanUsage(payload)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	snaps, err := store.GetLanSnapshots("lan1", from, to)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "wan1", snaps[0].WanID)
	assert.Equal(t, int64(50), snaps[0].Bytes)
}

func TestApplyInterfaces(t *testing.T) {
	svc, store := newTestService(t)

	payload := []byte(`[
		{"id":"eth0","name":"eth0","type":"ether","hwaddress":"aa:bb:cc:dd:ee:ff"},
		{"id":"br0","name":"br0","type":"bridge"}
	]`)

	count, err := svc.applyInterfaces(payload)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	ifaces, err := store.ListInterfaces()
	require.NoError(t, err)
	assert.Len(t, ifaces, 2)
}
