package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkmirror/linkmirror/pkg/models"
)

func newTestDB(t *testing.T) Service {
	t.Helper()

	svc, err := New(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, svc.Close())
	})

	return svc
}

func TestUpsertUser(t *testing.T) {
	svc := newTestDB(t)

	user := &models.User{
		ID:         "u1",
		Name:       "alice",
		Status:     models.UserEnabled,
		DataCredit: 5_000_000_000,
		UpdatedAt:  time.Now(),
	}

	require.NoError(t, svc.UpsertUser(user))

	got, err := svc.GetUser("u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, int64(5_000_000_000), got.DataCredit)

	// Second upsert with changed fields must update, not duplicate.
	user.Name = "alice2"
	user.DataCredit = 4_000_000_000
	require.NoError(t, svc.UpsertUser(user))

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice2", users[0].Name)
	assert.Equal(t, int64(4_000_000_000), users[0].DataCredit)
}

func TestUpdateUserAutocredit(t *testing.T) {
	svc := newTestDB(t)

	err := svc.UpdateUserAutocredit("missing", 100, models.AutocreditMonthly, models.AutocreditData, true)
	assert.ErrorIs(t, err, ErrNotFound)

	user := &models.User{ID: "u1", Name: "alice", Status: models.UserEnabled, UpdatedAt: time.Now()}
	require.NoError(t, svc.UpsertUser(user))

	require.NoError(t, svc.UpdateUserAutocredit("u1", 2_000_000_000,
		models.AutocreditWeekly, models.AutocreditData, true))

	got, err := svc.GetUser("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2_000_000_000), got.AutocreditValue)
	assert.Equal(t, models.AutocreditWeekly, got.AutocreditInterval)
	assert.True(t, got.AutocreditEnabled)

	// A later plain upsert must not clobber the autocredit columns.
	user.Name = "alice2"
	require.NoError(t, svc.UpsertUser(user))

	got, err = svc.GetUser("u1")
	require.NoError(t, err)
	assert.Equal(t, "alice2", got.Name)
	assert.Equal(t, int64(2_000_000_000), got.AutocreditValue)
	assert.True(t, got.AutocreditEnabled)
}

func TestUpsertLanWithoutInterface(t *testing.T) {
	svc := newTestDB(t)

	// No interfaces mirrored yet; LAN row must still be storable with an
	// empty interface link.
	lan := &models.Lan{
		ID:        "lan1",
		Name:      "office",
		DHCP:      models.DHCPServer,
		Bytes:     123,
		UpdatedAt: time.Now(),
	}

	require.NoError(t, svc.UpsertLan(lan))

	got, err := svc.GetLan("lan1")
	require.NoError(t, err)
	assert.Empty(t, got.InterfaceID)
	assert.Equal(t, int64(123), got.Bytes)
}

func TestGetInterface(t *testing.T) {
	svc := newTestDB(t)

	_, err := svc.GetInterface("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	iface := &models.NetworkInterface{
		ID:        "if1",
		Name:      "ether1",
		Kind:      models.InterfaceEthernet,
		HWAddress: "aa:bb:cc:dd:ee:ff",
		UpdatedAt: time.Now(),
	}

	require.NoError(t, svc.UpsertInterface(iface))

	got, err := svc.GetInterface("if1")
	require.NoError(t, err)
	assert.Equal(t, "ether1", got.Name)
	assert.Equal(t, models.InterfaceEthernet, got.Kind)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", got.HWAddress)
}

func TestGetUserNotFound(t *testing.T) {
	svc := newTestDB(t)

	_, err := svc.GetUser("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserSnapshotOnePerDay(t *testing.T) {
	svc := newTestDB(t)

	require.NoError(t, svc.UpsertUser(&models.User{
		ID: "u1", Name: "alice", Status: models.UserEnabled, UpdatedAt: time.Now(),
	}))

	day := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	require.NoError(t, svc.UpsertUserSnapshot(&models.UserSnapshot{
		UserID:       "u1",
		SnapshotDate: day,
		DataCredit:   5_000_000_000,
	}))

	// Second sync the same day updates the row in place; last write wins.
	require.NoError(t, svc.UpsertUserSnapshot(&models.UserSnapshot{
		UserID:       "u1",
		SnapshotDate: day.Add(6 * time.Hour),
		DataCredit:   4_500_000_000,
	}))

	snaps, err := svc.GetUserSnapshots("u1",
		day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, int64(4_500_000_000), snaps[0].DataCredit)

	// The next day gets its own row.
	require.NoError(t, svc.UpsertUserSnapshot(&models.UserSnapshot{
		UserID:       "u1",
		SnapshotDate: day.AddDate(0, 0, 1),
		DataCredit:   4_000_000_000,
	}))

	snaps, err = svc.GetUserSnapshots("u1",
		day.AddDate(0, 0, -1), day.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Len(t, snaps, 2)
}

func TestGetUserSnapshotsOrdering(t *testing.T) {
	svc := newTestDB(t)

	require.NoError(t, svc.UpsertUser(&models.User{
		ID: "u1", Name: "alice", Status: models.UserEnabled, UpdatedAt: time.Now(),
	}))

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// Insert out of order.
	for _, offset := range []int{3, 0, 7} {
		require.NoError(t, svc.UpsertUserSnapshot(&models.UserSnapshot{
			UserID:       "u1",
			SnapshotDate: base.AddDate(0, 0, offset),
			DataCredit:   int64(offset),
		}))
	}

	snaps, err := svc.GetUserSnapshots("u1", base.AddDate(0, 0, -1), base.AddDate(0, 0, 8))
	require.NoError(t, err)
	require.Len(t, snaps, 3)
	assert.True(t, snaps[0].SnapshotDate.Before(snaps[1].SnapshotDate))
	assert.True(t, snaps[1].SnapshotDate.Before(snaps[2].SnapshotDate))
}

func TestLanSnapshotKeepsWanReference(t *testing.T) {
	svc := newTestDB(t)

	require.NoError(t, svc.UpsertLan(&models.Lan{
		ID: "lan1", Name: "office", DHCP: models.DHCPServer, UpdatedAt: time.Now(),
	}))

	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	require.NoError(t, svc.UpsertLanSnapshot(&models.LanSnapshot{
		LanID: "lan1", WanID: "wan1", SnapshotDate: day1, Bytes: 100,
	}))
	// The LAN was reattributed to a different WAN between snapshots.
	require.NoError(t, svc.UpsertLanSnapshot(&models.LanSnapshot{
		LanID: "lan1", WanID: "wan2", SnapshotDate: day2, Bytes: 250,
	}))

	snaps, err := svc.GetLanSnapshots("lan1", day1, day2)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "wan1", snaps[0].WanID)
	assert.Equal(t, "wan2", snaps[1].WanID)
}

func TestCleanOldSnapshots(t *testing.T) {
	svc := newTestDB(t)

	require.NoError(t, svc.UpsertWan(&models.Wan{
		ID: "wan1", Name: "uplink", Status: models.WanUp, UpdatedAt: time.Now(),
	}))

	old := time.Now().AddDate(0, 0, -30)
	recent := time.Now()

	require.NoError(t, svc.UpsertWanSnapshot(&models.WanSnapshot{
		WanID: "wan1", SnapshotDate: old, Bytes: 1,
	}))
	require.NoError(t, svc.UpsertWanSnapshot(&models.WanSnapshot{
		WanID: "wan1", SnapshotDate: recent, Bytes: 2,
	}))

	require.NoError(t, svc.CleanOldSnapshots(7*24*time.Hour))

	snaps, err := svc.GetWanSnapshots("wan1", old.AddDate(0, 0, -1), recent.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, int64(2), snaps[0].Bytes)
}
