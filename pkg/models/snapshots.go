// Package models pkg/models/snapshots.go
package models

import "time"

// UserSnapshot is one per-day copy of a user's counters. At most one row
// exists per (user, calendar day); a second sync on the same day updates
// the existing row.
type UserSnapshot struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"user_id"`
	SnapshotDate    time.Time `json:"snapshot_date"`
	DataCredit      int64     `json:"data_credit"`
	TimeCredit      int64     `json:"time_credit"`
	AutocreditValue int64     `json:"autocredit_value"`
	UsageDebit      int64     `json:"usage_debit"`
	UsageCredit     int64     `json:"usage_credit"`
	UsageQuota      int64     `json:"usage_quota"`
}

// WanSnapshot is one per-day copy of a WAN's byte counters.
type WanSnapshot struct {
	ID           int64     `json:"id"`
	WanID        string    `json:"wan_id"`
	SnapshotDate time.Time `json:"snapshot_date"`
	Bytes        int64     `json:"bytes"`
	MaxBytes     int64     `json:"max_bytes"`
}

// LanSnapshot is one per-day copy of a LAN's byte counter. WanID records
// which WAN the segment was routed through when the snapshot was taken;
// consumers must not assume it is stable across a date range.
type LanSnapshot struct {
	ID           int64     `json:"id"`
	LanID        string    `json:"lan_id"`
	WanID        string    `json:"wan_id"`
	SnapshotDate time.Time `json:"snapshot_date"`
	Bytes        int64     `json:"bytes"`
}

// SyncEvent is published after every sync cycle, successful or not.
type SyncEvent struct {
	Resource ResourceType `json:"resource"`
	Count    int          `json:"count"`
	Error    string       `json:"error,omitempty"`
	At       time.Time    `json:"at"`
}
