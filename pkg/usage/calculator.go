// Package usage derives billing usage figures from dated counter
// snapshots. The whole package is pure: no I/O, no clock, nothing but the
// inputs.
//
// Two counter shapes exist on the appliance. Credit-style counters start
// high and are decremented by consumption; debit-style counters start low
// and are incremented. Both reset at the start of each calendar month, so
// a window that crosses month boundaries is split per month and the
// per-month deltas are summed.
package usage

import (
	"time"

	"github.com/linkmirror/linkmirror/pkg/models"
)

// Kind selects the tie-break rule for one counter.
type Kind int

const (
	// Credit counters decrease as they are consumed. An increase within
	// one month is a refill outside the model's knowledge, reported as 0.
	Credit Kind = iota
	// Debit counters increase as they are consumed. A decrease within one
	// month is a reset, reported as 0.
	Debit
)

// Point is one dated counter reading.
type Point struct {
	Date  time.Time
	Value int64
}

// Window is the requested reporting period. Both bounds are inclusive and
// are widened to whole days before filtering.
type Window struct {
	Start time.Time
	End   time.Time
}

// MonthWindow is the window from the first of t's month through t.
func MonthWindow(t time.Time) Window {
	return Window{
		Start: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()),
		End:   t,
	}
}

// DayBounds returns the window widened to whole days, the same bounds
// Delta filters with. Callers querying storage should use these so no
// snapshot inside the window is missed.
func (w Window) DayBounds() (start, end time.Time) {
	return startOfDay(w.Start), endOfDay(w.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func sameMonthDelta(kind Kind, first, last int64) int64 {
	var delta int64

	switch kind {
	case Credit:
		delta = first - last
	case Debit:
		delta = last - first
	}

	if delta < 0 {
		return 0
	}

	return delta
}

// Delta computes the usage consumed over the window from a chronological
// snapshot series for one entity. Fewer than two snapshots inside the
// window means zero usage, never an error. Windows
// crossing month boundaries are computed per calendar month and summed,
// since the counters reset at month start; this generalizes to any number
// of months.
func Delta(kind Kind, points []Point, w Window) int64 {
	filtered := filter(points, w)
	if len(filtered) < 2 {
		return 0
	}

	var total int64

	i := 0
	for i < len(filtered) {
		j := i
		for j+1 < len(filtered) && sameMonth(filtered[j+1].Date, filtered[i].Date) {
			j++
		}

		total += sameMonthDelta(kind, filtered[i].Value, filtered[j].Value)
		i = j + 1
	}

	return total
}

// SeriesTotal sums the positive period-over-period deltas of a
// fine-grained chronological series, discarding negative deltas (counter
// resets). This is the right aggregation when the series has many points
// rather than just two endpoints.
func SeriesTotal(kind Kind, points []Point) int64 {
	var total int64

	for i := 1; i < len(points); i++ {
		delta := sameMonthDelta(kind, points[i-1].Value, points[i].Value)
		total += delta
	}

	return total
}

func filter(points []Point, w Window) []Point {
	lo := startOfDay(w.Start)
	hi := endOfDay(w.End)

	filtered := make([]Point, 0, len(points))

	for _, p := range points {
		if p.Date.Before(lo) || p.Date.After(hi) {
			continue
		}

		filtered = append(filtered, p)
	}

	return filtered
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// UserUsage holds the six per-user quantities, each computed independently
// over the same window.
type UserUsage struct {
	DataCredit      int64 `json:"data_credit"`
	TimeCredit      int64 `json:"time_credit"`
	AutocreditValue int64 `json:"autocredit_value"`
	UsageDebit      int64 `json:"usage_debit"`
	UsageCredit     int64 `json:"usage_credit"`
	UsageQuota      int64 `json:"usage_quota"`
}

// WanUsage is the derived byte consumption for one WAN link.
type WanUsage struct {
	Bytes    int64 `json:"bytes"`
	MaxBytes int64 `json:"max_bytes"`
}

// LanUsage is the derived byte consumption for one LAN segment. The WAN
// attribution can change between snapshots, so no single WAN is reported.
type LanUsage struct {
	Bytes int64 `json:"bytes"`
}

// ForUser computes all six user quantities over the window.
func ForUser(snaps []models.UserSnapshot, w Window) UserUsage {
	return UserUsage{
		DataCredit:      Delta(Credit, userPoints(snaps, func(s models.UserSnapshot) int64 { return s.DataCredit }), w),
		TimeCredit:      Delta(Credit, userPoints(snaps, func(s models.UserSnapshot) int64 { return s.TimeCredit }), w),
		AutocreditValue: Delta(Credit, userPoints(snaps, func(s models.UserSnapshot) int64 { return s.AutocreditValue }), w),
		UsageDebit:      Delta(Debit, userPoints(snaps, func(s models.UserSnapshot) int64 { return s.UsageDebit }), w),
		UsageCredit:     Delta(Debit, userPoints(snaps, func(s models.UserSnapshot) int64 { return s.UsageCredit }), w),
		UsageQuota:      Delta(Credit, userPoints(snaps, func(s models.UserSnapshot) int64 { return s.UsageQuota }), w),
	}
}

// ForWan computes a WAN's byte consumption over the window. Both byte
// counters accumulate, so both are debit-style.
func ForWan(snaps []models.WanSnapshot, w Window) WanUsage {
	bytePoints := make([]Point, 0, len(snaps))
	maxPoints := make([]Point, 0, len(snaps))

	for _, s := range snaps {
		bytePoints = append(bytePoints, Point{Date: s.SnapshotDate, Value: s.Bytes})
		maxPoints = append(maxPoints, Point{Date: s.SnapshotDate, Value: s.MaxBytes})
	}

	return WanUsage{
		Bytes:    Delta(Debit, bytePoints, w),
		MaxBytes: Delta(Debit, maxPoints, w),
	}
}

// ForLan computes a LAN's byte consumption over the window.
func ForLan(snaps []models.LanSnapshot, w Window) LanUsage {
	points := make([]Point, 0, len(snaps))

	for _, s := range snaps {
		points = append(points, Point{Date: s.SnapshotDate, Value: s.Bytes})
	}

	return LanUsage{Bytes: Delta(Debit, points, w)}
}

func userPoints(snaps []models.UserSnapshot, value func(models.UserSnapshot) int64) []Point {
	points := make([]Point, 0, len(snaps))

	for _, s := range snaps {
		points = append(points, Point{Date: s.SnapshotDate, Value: value(s)})
	}

	return points
}
