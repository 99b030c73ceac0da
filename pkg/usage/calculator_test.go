package usage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/linkmirror/linkmirror/pkg/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func window(start, end time.Time) Window {
	return Window{Start: start, End: end}
}

func TestCreditDeltaSameMonth(t *testing.T) {
	points := []Point{
		{Date: day(2025, time.March, 1), Value: 5_000_000_000},
		{Date: day(2025, time.March, 8), Value: 3_000_000_000},
	}

	got := Delta(Credit, points, window(day(2025, time.March, 1), day(2025, time.March, 31)))
	assert.Equal(t, int64(2_000_000_000), got)
}

func TestCreditDeltaRefillClampsToZero(t *testing.T) {
	// The counter increased within one month: a refill, not negative usage.
	points := []Point{
		{Date: day(2025, time.March, 1), Value: 1_000_000_000},
		{Date: day(2025, time.March, 8), Value: 6_000_000_000},
	}

	got := Delta(Credit, points, window(day(2025, time.March, 1), day(2025, time.March, 31)))
	assert.Equal(t, int64(0), got)
}

func TestDebitDeltaSameMonth(t *testing.T) {
	points := []Point{
		{Date: day(2025, time.March, 1), Value: 100},
		{Date: day(2025, time.March, 20), Value: 700},
	}

	got := Delta(Debit, points, window(day(2025, time.March, 1), day(2025, time.March, 31)))
	assert.Equal(t, int64(600), got)
}

func TestDebitDeltaResetClampsToZero(t *testing.T) {
	points := []Point{
		{Date: day(2025, time.March, 1), Value: 700},
		{Date: day(2025, time.March, 20), Value: 100},
	}

	got := Delta(Debit, points, window(day(2025, time.March, 1), day(2025, time.March, 31)))
	assert.Equal(t, int64(0), got)
}

func TestDeltaCrossMonthSplit(t *testing.T) {
	// Debit counter resets on Feb 1. January's own delta plus February's
	// own delta; never 500M - 9B.
	points := []Point{
		{Date: day(2025, time.January, 28), Value: 8_000_000_000},
		{Date: day(2025, time.January, 31), Value: 9_000_000_000},
		{Date: day(2025, time.February, 1), Value: 500_000_000},
		{Date: day(2025, time.February, 3), Value: 900_000_000},
	}

	got := Delta(Debit, points, window(day(2025, time.January, 28), day(2025, time.February, 3)))
	assert.Equal(t, int64(1_000_000_000+400_000_000), got)
	assert.GreaterOrEqual(t, got, int64(0))
}

func TestDeltaCrossMonthCredit(t *testing.T) {
	points := []Point{
		{Date: day(2025, time.January, 25), Value: 5_000_000_000},
		{Date: day(2025, time.January, 31), Value: 4_000_000_000},
		{Date: day(2025, time.February, 1), Value: 10_000_000_000}, // monthly refill
		{Date: day(2025, time.February, 10), Value: 7_000_000_000},
	}

	got := Delta(Credit, points, window(day(2025, time.January, 25), day(2025, time.February, 10)))
	assert.Equal(t, int64(1_000_000_000+3_000_000_000), got)
}

func TestDeltaThreeMonthRange(t *testing.T) {
	// The split generalizes past two months: each month contributes its
	// own intra-month delta.
	points := []Point{
		{Date: day(2025, time.January, 5), Value: 100},
		{Date: day(2025, time.January, 25), Value: 400},
		{Date: day(2025, time.February, 5), Value: 50},
		{Date: day(2025, time.February, 25), Value: 250},
		{Date: day(2025, time.March, 5), Value: 10},
		{Date: day(2025, time.March, 25), Value: 110},
	}

	got := Delta(Debit, points, window(day(2025, time.January, 1), day(2025, time.March, 31)))
	assert.Equal(t, int64(300+200+100), got)
}

func TestDeltaTwoMonthEqualsTwoBucketSplit(t *testing.T) {
	points := []Point{
		{Date: day(2025, time.January, 10), Value: 100},
		{Date: day(2025, time.January, 20), Value: 300},
		{Date: day(2025, time.February, 10), Value: 40},
		{Date: day(2025, time.February, 20), Value: 90},
	}

	w := window(day(2025, time.January, 1), day(2025, time.February, 28))

	january := Delta(Debit, points[:2], window(day(2025, time.January, 1), day(2025, time.January, 31)))
	february := Delta(Debit, points[2:], window(day(2025, time.February, 1), day(2025, time.February, 28)))

	assert.Equal(t, january+february, Delta(Debit, points, w))
}

func TestDeltaInsufficientSnapshots(t *testing.T) {
	w := window(day(2025, time.March, 1), day(2025, time.March, 31))

	assert.Equal(t, int64(0), Delta(Credit, nil, w))
	assert.Equal(t, int64(0), Delta(Credit, []Point{{Date: day(2025, time.March, 5), Value: 123}}, w))

	// Two snapshots, but only one inside the window.
	points := []Point{
		{Date: day(2025, time.February, 5), Value: 900},
		{Date: day(2025, time.March, 5), Value: 500},
	}
	assert.Equal(t, int64(0), Delta(Credit, points, w))
}

func TestDeltaWindowBoundsAreWholeDays(t *testing.T) {
	// A snapshot taken late on the end date is still inside the window.
	points := []Point{
		{Date: time.Date(2025, time.March, 1, 0, 30, 0, 0, time.UTC), Value: 500},
		{Date: time.Date(2025, time.March, 8, 23, 30, 0, 0, time.UTC), Value: 200},
	}

	got := Delta(Credit, points, window(day(2025, time.March, 1), day(2025, time.March, 8)))
	assert.Equal(t, int64(300), got)
}

func TestSeriesTotalDiscardsResets(t *testing.T) {
	points := []Point{
		{Date: day(2025, time.January, 1), Value: 100},
		{Date: day(2025, time.January, 2), Value: 250},
		{Date: day(2025, time.January, 3), Value: 50}, // reset
		{Date: day(2025, time.January, 4), Value: 300},
	}

	assert.Equal(t, int64(150+250), SeriesTotal(Debit, points))
}

func TestSeriesTotalCredit(t *testing.T) {
	points := []Point{
		{Date: day(2025, time.January, 1), Value: 1000},
		{Date: day(2025, time.January, 2), Value: 700},
		{Date: day(2025, time.January, 3), Value: 5000}, // refill, discarded
		{Date: day(2025, time.January, 4), Value: 4400},
	}

	assert.Equal(t, int64(300+600), SeriesTotal(Credit, points))
}

func TestForUserComputesFieldsIndependently(t *testing.T) {
	snaps := []models.UserSnapshot{
		{
			UserID:       "u1",
			SnapshotDate: day(2025, time.March, 1),
			DataCredit:   5_000_000_000,
			TimeCredit:   3600,
			UsageDebit:   100,
			UsageCredit:  10,
			UsageQuota:   10_000_000_000,
		},
		{
			UserID:       "u1",
			SnapshotDate: day(2025, time.March, 8),
			DataCredit:   3_000_000_000,
			TimeCredit:   3000,
			UsageDebit:   900,
			UsageCredit:  60,
			UsageQuota:   10_000_000_000,
		},
	}

	got := ForUser(snaps, window(day(2025, time.March, 1), day(2025, time.March, 31)))

	assert.Equal(t, int64(2_000_000_000), got.DataCredit)
	assert.Equal(t, int64(600), got.TimeCredit)
	assert.Equal(t, int64(800), got.UsageDebit)
	assert.Equal(t, int64(50), got.UsageCredit)
	assert.Equal(t, int64(0), got.UsageQuota)
}

func TestForLanIgnoresWanAttribution(t *testing.T) {
	// The LAN moved from wan1 to wan2 mid-window; byte math is unaffected.
	snaps := []models.LanSnapshot{
		{LanID: "lan1", WanID: "wan1", SnapshotDate: day(2025, time.March, 1), Bytes: 100},
		{LanID: "lan1", WanID: "wan2", SnapshotDate: day(2025, time.March, 10), Bytes: 700},
	}

	got := ForLan(snaps, window(day(2025, time.March, 1), day(2025, time.March, 31)))
	assert.Equal(t, int64(600), got.Bytes)
}

func TestMonthWindow(t *testing.T) {
	now := day(2025, time.March, 15)
	w := MonthWindow(now)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, now, w.End)
}
