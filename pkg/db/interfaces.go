// Package db pkg/db/interfaces.go
package db

import (
	"time"

	"github.com/linkmirror/linkmirror/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/linkmirror/linkmirror/pkg/db Row,Result,Rows,Transaction,Service

// Row represents a database row.
type Row interface {
	Scan(dest ...interface{}) error
}

// Result represents the result of a database operation.
type Result interface {
	LastInsertId() (int64, error)
	RowsAffected() (int64, error)
}

// Rows represents multiple database rows.
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Close() error
	Err() error
}

// Transaction represents operations that can be performed within a database transaction.
type Transaction interface {
	Exec(query string, args ...interface{}) (Result, error)
	Query(query string, args ...interface{}) (Rows, error)
	QueryRow(query string, args ...interface{}) Row
	Commit() error
	Rollback() error
}

// Service represents all mirror-store operations.
type Service interface {
	// Core database operations.

	Begin() (Transaction, error)
	Close() error
	Exec(query string, args ...interface{}) (Result, error)
	Query(query string, args ...interface{}) (Rows, error)
	QueryRow(query string, args ...interface{}) Row

	// Resource upserts, keyed by the upstream identifier.

	UpsertUser(user *models.User) error
	UpdateUserAutocredit(userID string, value int64, interval models.AutocreditInterval, acType models.AutocreditType, enabled bool) error
	UpsertWan(wan *models.Wan) error
	UpsertLan(lan *models.Lan) error
	UpsertInterface(iface *models.NetworkInterface) error

	// Resource reads.

	GetUser(id string) (*models.User, error)
	GetWan(id string) (*models.Wan, error)
	GetLan(id string) (*models.Lan, error)
	GetInterface(id string) (*models.NetworkInterface, error)
	ListUsers() ([]models.User, error)
	ListWans() ([]models.Wan, error)
	ListLans() ([]models.Lan, error)
	ListInterfaces() ([]models.NetworkInterface, error)
	UserExists(id string) (bool, error)
	WanExists(id string) (bool, error)
	LanExists(id string) (bool, error)
	InterfaceExists(id string) (bool, error)

	// Snapshot operations. Upserts keep at most one row per
	// (resource, calendar day).

	UpsertUserSnapshot(snap *models.UserSnapshot) error
	UpsertWanSnapshot(snap *models.WanSnapshot) error
	UpsertLanSnapshot(snap *models.LanSnapshot) error
	GetUserSnapshots(userID string, from, to time.Time) ([]models.UserSnapshot, error)
	GetWanSnapshots(wanID string, from, to time.Time) ([]models.WanSnapshot, error)
	GetLanSnapshots(lanID string, from, to time.Time) ([]models.LanSnapshot, error)

	// Maintenance operations.

	CleanOldSnapshots(retentionPeriod time.Duration) error
}
