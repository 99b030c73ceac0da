// Package db pkg/db/db.go provides SQLite storage for the appliance mirror.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/linkmirror/linkmirror/pkg/models"
)

const (
	// SQL statements for database initialization.
	createTablesSQL = `
	-- Appliance network interfaces
	CREATE TABLE IF NOT EXISTS interfaces (
		interface_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		hw_address TEXT,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- WAN links
	CREATE TABLE IF NOT EXISTS wans (
		wan_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		status TEXT NOT NULL,
		bytes INTEGER NOT NULL DEFAULT 0,
		max_bytes INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- LAN segments; interface_id may be NULL until the referenced
	-- interface has been mirrored
	CREATE TABLE IF NOT EXISTS lans (
		lan_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		interface_id TEXT REFERENCES interfaces(interface_id),
		wan_id TEXT REFERENCES wans(wan_id),
		dhcp TEXT NOT NULL,
		bytes INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Appliance users
	CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		status TEXT NOT NULL,
		data_credit INTEGER NOT NULL DEFAULT 0,
		time_credit INTEGER NOT NULL DEFAULT 0,
		autocredit_value INTEGER NOT NULL DEFAULT 0,
		autocredit_interval TEXT NOT NULL DEFAULT 'monthly',
		autocredit_type TEXT NOT NULL DEFAULT 'data',
		autocredit_enabled BOOLEAN NOT NULL DEFAULT 0,
		usage_debit INTEGER NOT NULL DEFAULT 0,
		usage_credit INTEGER NOT NULL DEFAULT 0,
		usage_quota INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Daily counter snapshots, one row per (resource, calendar day)
	CREATE TABLE IF NOT EXISTS user_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		snapshot_date TIMESTAMP NOT NULL,
		data_credit INTEGER NOT NULL DEFAULT 0,
		time_credit INTEGER NOT NULL DEFAULT 0,
		autocredit_value INTEGER NOT NULL DEFAULT 0,
		usage_debit INTEGER NOT NULL DEFAULT 0,
		usage_credit INTEGER NOT NULL DEFAULT 0,
		usage_quota INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS wan_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		wan_id TEXT NOT NULL,
		snapshot_date TIMESTAMP NOT NULL,
		bytes INTEGER NOT NULL DEFAULT 0,
		max_bytes INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (wan_id) REFERENCES wans(wan_id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS lan_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lan_id TEXT NOT NULL,
		wan_id TEXT,
		snapshot_date TIMESTAMP NOT NULL,
		bytes INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (lan_id) REFERENCES lans(lan_id) ON DELETE CASCADE
	);

	-- Indexes for ranged snapshot queries
	CREATE INDEX IF NOT EXISTS idx_user_snapshots_user_date
		ON user_snapshots(user_id, snapshot_date);
	CREATE INDEX IF NOT EXISTS idx_wan_snapshots_wan_date
		ON wan_snapshots(wan_id, snapshot_date);
	CREATE INDEX IF NOT EXISTS idx_lan_snapshots_lan_date
		ON lan_snapshots(lan_id, snapshot_date);

	PRAGMA journal_mode=WAL;
	PRAGMA foreign_keys=ON;
	`
)

// DB represents the database connection and operations.
type DB struct {
	*sql.DB
}

// New creates a new database connection and initializes the schema.
func New(dbPath string) (Service, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToEnableWAL, err)
	}

	db := &DB{sqlDB}
	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	return db, nil
}

// initSchema creates the database tables if they don't exist.
func (db *DB) initSchema() error {
	_, err := db.DB.Exec(createTablesSQL)

	return err
}

// Begin starts a new transaction.
func (db *DB) Begin() (Transaction, error) {
	tx, err := db.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToBeginTx, err)
	}

	return ToTransaction(tx), nil
}

// Exec executes a query without returning any rows.
func (db *DB) Exec(query string, args ...interface{}) (Result, error) {
	result, err := db.DB.Exec(query, args...)
	if err != nil {
		return nil, err
	}

	return &SQLResult{result}, nil
}

// Query executes a query that returns rows.
func (db *DB) Query(query string, args ...interface{}) (Rows, error) {
	rows, err := db.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &SQLRows{rows}, nil
}

// QueryRow executes a query that returns at most one row.
func (db *DB) QueryRow(query string, args ...interface{}) Row {
	return &SQLRow{db.DB.QueryRow(query, args...)}
}

func rollbackOnError(tx Transaction, err error) {
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("Error rolling back transaction: %v", rbErr)
		}
	}
}

// UpsertUser inserts or updates the current-state row for a user. The
// autocredit columns are owned by UpdateUserAutocredit and are left
// untouched here so the two writers cannot clobber each other.
func (db *DB) UpsertUser(user *models.User) error {
	result, err := db.Exec(`
        UPDATE users
        SET name = ?, status = ?, data_credit = ?, time_credit = ?,
            usage_debit = ?, usage_credit = ?, usage_quota = ?, updated_at = ?
        WHERE user_id = ?
    `, user.Name, user.Status, user.DataCredit, user.TimeCredit,
		user.UsageDebit, user.UsageCredit, user.UsageQuota, user.UpdatedAt, user.ID)
	if err != nil {
		return fmt.Errorf("%w user: %w", ErrFailedToUpdate, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected > 0 {
		return nil
	}

	_, err = db.Exec(`
        INSERT INTO users (user_id, name, status, data_credit, time_credit,
            usage_debit, usage_credit, usage_quota, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, user.ID, user.Name, user.Status, user.DataCredit, user.TimeCredit,
		user.UsageDebit, user.UsageCredit, user.UsageQuota, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w user: %w", ErrFailedToInsert, err)
	}

	return nil
}

// UpdateUserAutocredit updates only the autocredit columns of an existing
// user row. Returns ErrNotFound when the user has not been mirrored yet.
func (db *DB) UpdateUserAutocredit(userID string, value int64,
	interval models.AutocreditInterval, acType models.AutocreditType, enabled bool) error {
	result, err := db.Exec(`
        UPDATE users
        SET autocredit_value = ?, autocredit_interval = ?, autocredit_type = ?,
            autocredit_enabled = ?
        WHERE user_id = ?
    `, value, interval, acType, enabled, userID)
	if err != nil {
		return fmt.Errorf("%w user autocredit: %w", ErrFailedToUpdate, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	return nil
}

// UpsertWan inserts or updates the current-state row for a WAN link.
func (db *DB) UpsertWan(wan *models.Wan) error {
	result, err := db.Exec(`
        UPDATE wans
        SET name = ?, status = ?, bytes = ?, max_bytes = ?, updated_at = ?
        WHERE wan_id = ?
    `, wan.Name, wan.Status, wan.Bytes, wan.MaxBytes, wan.UpdatedAt, wan.ID)
	if err != nil {
		return fmt.Errorf("%w wan: %w", ErrFailedToUpdate, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected > 0 {
		return nil
	}

	_, err = db.Exec(`
        INSERT INTO wans (wan_id, name, status, bytes, max_bytes, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, wan.ID, wan.Name, wan.Status, wan.Bytes, wan.MaxBytes, wan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w wan: %w", ErrFailedToInsert, err)
	}

	return nil
}

// UpsertLan inserts or updates the current-state row for a LAN segment.
// An empty InterfaceID or WanID is stored as NULL so the foreign key
// stays satisfiable while the referenced resource is still unsynced.
func (db *DB) UpsertLan(lan *models.Lan) error {
	result, err := db.Exec(`
        UPDATE lans
        SET name = ?, interface_id = ?, wan_id = ?, dhcp = ?, bytes = ?, updated_at = ?
        WHERE lan_id = ?
    `, lan.Name, nullableID(lan.InterfaceID), nullableID(lan.WanID),
		lan.DHCP, lan.Bytes, lan.UpdatedAt, lan.ID)
	if err != nil {
		return fmt.Errorf("%w lan: %w", ErrFailedToUpdate, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected > 0 {
		return nil
	}

	_, err = db.Exec(`
        INSERT INTO lans (lan_id, name, interface_id, wan_id, dhcp, bytes, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `, lan.ID, lan.Name, nullableID(lan.InterfaceID), nullableID(lan.WanID),
		lan.DHCP, lan.Bytes, lan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w lan: %w", ErrFailedToInsert, err)
	}

	return nil
}

// UpsertInterface inserts or updates the current-state row for an interface.
func (db *DB) UpsertInterface(iface *models.NetworkInterface) error {
	result, err := db.Exec(`
        UPDATE interfaces
        SET name = ?, kind = ?, hw_address = ?, updated_at = ?
        WHERE interface_id = ?
    `, iface.Name, iface.Kind, iface.HWAddress, iface.UpdatedAt, iface.ID)
	if err != nil {
		return fmt.Errorf("%w interface: %w", ErrFailedToUpdate, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected > 0 {
		return nil
	}

	_, err = db.Exec(`
        INSERT INTO interfaces (interface_id, name, kind, hw_address, updated_at)
        VALUES (?, ?, ?, ?, ?)
    `, iface.ID, iface.Name, iface.Kind, iface.HWAddress, iface.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w interface: %w", ErrFailedToInsert, err)
	}

	return nil
}

func nullableID(id string) interface{} {
	if id == "" {
		return nil
	}

	return id
}

// CleanOldSnapshots removes snapshot rows older than the retention period.
// Current-state resource rows are never cleaned.
func (db *DB) CleanOldSnapshots(retentionPeriod time.Duration) error {
	cutoff := time.Now().Add(-retentionPeriod)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToBeginTx, err)
	}

	defer func() {
		if err != nil {
			rollbackOnError(tx, err)
			return
		}
		err = tx.Commit()
	}()

	for _, table := range []string{"user_snapshots", "wan_snapshots", "lan_snapshots"} {
		if _, err = tx.Exec(
			"DELETE FROM "+table+" WHERE snapshot_date < ?",
			cutoff,
		); err != nil {
			return fmt.Errorf("%w %s: %w", ErrFailedToClean, table, err)
		}
	}

	return nil
}

// scanErr normalizes sql.ErrNoRows into ErrNotFound.
func scanErr(what string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}

	return fmt.Errorf("%w %s: %w", ErrFailedToQuery, what, err)
}
