// Package db pkg/db/snapshots.go daily counter snapshot storage.
//
// Each Upsert*Snapshot realizes the one-snapshot-per-day invariant: if a
// row already exists for the resource within the snapshot's calendar day,
// it is updated in place; otherwise a new row is inserted.
package db

import (
	"fmt"
	"time"

	"github.com/linkmirror/linkmirror/pkg/models"
)

func dayBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	return start, start.AddDate(0, 0, 1)
}

func (db *DB) UpsertUserSnapshot(snap *models.UserSnapshot) error {
	dayStart, dayEnd := dayBounds(snap.SnapshotDate)

	result, err := db.Exec(`
        UPDATE user_snapshots
        SET snapshot_date = ?, data_credit = ?, time_credit = ?,
            autocredit_value = ?, usage_debit = ?, usage_credit = ?, usage_quota = ?
        WHERE user_id = ? AND snapshot_date >= ? AND snapshot_date < ?
    `, snap.SnapshotDate, snap.DataCredit, snap.TimeCredit,
		snap.AutocreditValue, snap.UsageDebit, snap.UsageCredit, snap.UsageQuota,
		snap.UserID, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("%w user snapshot: %w", ErrFailedToUpdate, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected > 0 {
		return nil
	}

	_, err = db.Exec(`
        INSERT INTO user_snapshots (user_id, snapshot_date, data_credit,
            time_credit, autocredit_value, usage_debit, usage_credit, usage_quota)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, snap.UserID, snap.SnapshotDate, snap.DataCredit, snap.TimeCredit,
		snap.AutocreditValue, snap.UsageDebit, snap.UsageCredit, snap.UsageQuota)
	if err != nil {
		return fmt.Errorf("%w user snapshot: %w", ErrFailedToInsert, err)
	}

	return nil
}

func (db *DB) UpsertWanSnapshot(snap *models.WanSnapshot) error {
	dayStart, dayEnd := dayBounds(snap.SnapshotDate)

	result, err := db.Exec(`
        UPDATE wan_snapshots
        SET snapshot_date = ?, bytes = ?, max_bytes = ?
        WHERE wan_id = ? AND snapshot_date >= ? AND snapshot_date < ?
    `, snap.SnapshotDate, snap.Bytes, snap.MaxBytes,
		snap.WanID, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("%w wan snapshot: %w", ErrFailedToUpdate, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected > 0 {
		return nil
	}

	_, err = db.Exec(`
        INSERT INTO wan_snapshots (wan_id, snapshot_date, bytes, max_bytes)
        VALUES (?, ?, ?, ?)
    `, snap.WanID, snap.SnapshotDate, snap.Bytes, snap.MaxBytes)
	if err != nil {
		return fmt.Errorf("%w wan snapshot: %w", ErrFailedToInsert, err)
	}

	return nil
}

func (db *DB) UpsertLanSnapshot(snap *models.LanSnapshot) error {
	dayStart, dayEnd := dayBounds(snap.SnapshotDate)

	result, err := db.Exec(`
        UPDATE lan_snapshots
        SET snapshot_date = ?, wan_id = ?, bytes = ?
        WHERE lan_id = ? AND snapshot_date >= ? AND snapshot_date < ?
    `, snap.SnapshotDate, nullableID(snap.WanID), snap.Bytes,
		snap.LanID, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("%w lan snapshot: %w", ErrFailedToUpdate, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected > 0 {
		return nil
	}

	_, err = db.Exec(`
        INSERT INTO lan_snapshots (lan_id, wan_id, snapshot_date, bytes)
        VALUES (?, ?, ?, ?)
    `, snap.LanID, nullableID(snap.WanID), snap.SnapshotDate, snap.Bytes)
	if err != nil {
		return fmt.Errorf("%w lan snapshot: %w", ErrFailedToInsert, err)
	}

	return nil
}

// GetUserSnapshots returns a user's snapshots inside [from, to], ordered
// by snapshot date ascending.
func (db *DB) GetUserSnapshots(userID string, from, to time.Time) ([]models.UserSnapshot, error) {
	const querySQL = `
        SELECT id, user_id, snapshot_date, data_credit, time_credit,
               autocredit_value, usage_debit, usage_credit, usage_quota
        FROM user_snapshots
        WHERE user_id = ? AND snapshot_date >= ? AND snapshot_date <= ?
        ORDER BY snapshot_date ASC
    `

	rows, err := db.Query(querySQL, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w user snapshots: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	var snaps []models.UserSnapshot

	for rows.Next() {
		var s models.UserSnapshot

		if err := rows.Scan(&s.ID, &s.UserID, &s.SnapshotDate, &s.DataCredit,
			&s.TimeCredit, &s.AutocreditValue, &s.UsageDebit, &s.UsageCredit,
			&s.UsageQuota); err != nil {
			return nil, fmt.Errorf("%w user snapshot row: %w", ErrFailedToScan, err)
		}

		snaps = append(snaps, s)
	}

	return snaps, nil
}

// GetWanSnapshots returns a WAN's snapshots inside [from, to], ordered by
// snapshot date ascending.
func (db *DB) GetWanSnapshots(wanID string, from, to time.Time) ([]models.WanSnapshot, error) {
	const querySQL = `
        SELECT id, wan_id, snapshot_date, bytes, max_bytes
        FROM wan_snapshots
        WHERE wan_id = ? AND snapshot_date >= ? AND snapshot_date <= ?
        ORDER BY snapshot_date ASC
    `

	rows, err := db.Query(querySQL, wanID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w wan snapshots: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	var snaps []models.WanSnapshot

	for rows.Next() {
		var s models.WanSnapshot

		if err := rows.Scan(&s.ID, &s.WanID, &s.SnapshotDate, &s.Bytes, &s.MaxBytes); err != nil {
			return nil, fmt.Errorf("%w wan snapshot row: %w", ErrFailedToScan, err)
		}

		snaps = append(snaps, s)
	}

	return snaps, nil
}

// GetLanSnapshots returns a LAN's snapshots inside [from, to], ordered by
// snapshot date ascending. The WAN reference is per-snapshot.
func (db *DB) GetLanSnapshots(lanID string, from, to time.Time) ([]models.LanSnapshot, error) {
	const querySQL = `
        SELECT id, lan_id, COALESCE(wan_id, ''), snapshot_date, bytes
        FROM lan_snapshots
        WHERE lan_id = ? AND snapshot_date >= ? AND snapshot_date <= ?
        ORDER BY snapshot_date ASC
    `

	rows, err := db.Query(querySQL, lanID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w lan snapshots: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	var snaps []models.LanSnapshot

	for rows.Next() {
		var s models.LanSnapshot

		if err := rows.Scan(&s.ID, &s.LanID, &s.WanID, &s.SnapshotDate, &s.Bytes); err != nil {
			return nil, fmt.Errorf("%w lan snapshot row: %w", ErrFailedToScan, err)
		}

		snaps = append(snaps, s)
	}

	return snaps, nil
}
