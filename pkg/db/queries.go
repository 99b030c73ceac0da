// Package db pkg/db/queries.go read-side queries for mirrored resources.
package db

import (
	"fmt"

	"github.com/linkmirror/linkmirror/pkg/models"
)

func (db *DB) GetUser(id string) (*models.User, error) {
	const query = `
        SELECT user_id, name, status, data_credit, time_credit,
               autocredit_value, autocredit_interval, autocredit_type,
               autocredit_enabled, usage_debit, usage_credit, usage_quota, updated_at
        FROM users
        WHERE user_id = ?
    `

	var user models.User

	err := db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Status,
		&user.DataCredit,
		&user.TimeCredit,
		&user.AutocreditValue,
		&user.AutocreditInterval,
		&user.AutocreditType,
		&user.AutocreditEnabled,
		&user.UsageDebit,
		&user.UsageCredit,
		&user.UsageQuota,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, scanErr("user", err)
	}

	return &user, nil
}

func (db *DB) GetWan(id string) (*models.Wan, error) {
	const query = `
        SELECT wan_id, name, status, bytes, max_bytes, updated_at
        FROM wans
        WHERE wan_id = ?
    `

	var wan models.Wan

	err := db.QueryRow(query, id).Scan(
		&wan.ID,
		&wan.Name,
		&wan.Status,
		&wan.Bytes,
		&wan.MaxBytes,
		&wan.UpdatedAt,
	)
	if err != nil {
		return nil, scanErr("wan", err)
	}

	return &wan, nil
}

func (db *DB) GetLan(id string) (*models.Lan, error) {
	const query = `
        SELECT lan_id, name, COALESCE(interface_id, ''), COALESCE(wan_id, ''),
               dhcp, bytes, updated_at
        FROM lans
        WHERE lan_id = ?
    `

	var lan models.Lan

	err := db.QueryRow(query, id).Scan(
		&lan.ID,
		&lan.Name,
		&lan.InterfaceID,
		&lan.WanID,
		&lan.DHCP,
		&lan.Bytes,
		&lan.UpdatedAt,
	)
	if err != nil {
		return nil, scanErr("lan", err)
	}

	return &lan, nil
}

func (db *DB) GetInterface(id string) (*models.NetworkInterface, error) {
	const query = `
        SELECT interface_id, name, kind, COALESCE(hw_address, ''), updated_at
        FROM interfaces
        WHERE interface_id = ?
    `

	var iface models.NetworkInterface

	err := db.QueryRow(query, id).Scan(
		&iface.ID,
		&iface.Name,
		&iface.Kind,
		&iface.HWAddress,
		&iface.UpdatedAt,
	)
	if err != nil {
		return nil, scanErr("interface", err)
	}

	return &iface, nil
}

func (db *DB) ListUsers() ([]models.User, error) {
	const querySQL = `
        SELECT user_id, name, status, data_credit, time_credit,
               autocredit_value, autocredit_interval, autocredit_type,
               autocredit_enabled, usage_debit, usage_credit, usage_quota, updated_at
        FROM users
        ORDER BY name
    `

	rows, err := db.Query(querySQL)
	if err != nil {
		return nil, fmt.Errorf("%w users: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	var users []models.User

	for rows.Next() {
		var u models.User

		if err := rows.Scan(&u.ID, &u.Name, &u.Status, &u.DataCredit,
			&u.TimeCredit, &u.AutocreditValue, &u.AutocreditInterval,
			&u.AutocreditType, &u.AutocreditEnabled, &u.UsageDebit,
			&u.UsageCredit, &u.UsageQuota, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w user row: %w", ErrFailedToScan, err)
		}

		users = append(users, u)
	}

	return users, nil
}

func (db *DB) ListWans() ([]models.Wan, error) {
	const querySQL = `
        SELECT wan_id, name, status, bytes, max_bytes, updated_at
        FROM wans
        ORDER BY name
    `

	rows, err := db.Query(querySQL)
	if err != nil {
		return nil, fmt.Errorf("%w wans: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	var wans []models.Wan

	for rows.Next() {
		var w models.Wan

		if err := rows.Scan(&w.ID, &w.Name, &w.Status, &w.Bytes, &w.MaxBytes, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w wan row: %w", ErrFailedToScan, err)
		}

		wans = append(wans, w)
	}

	return wans, nil
}

func (db *DB) ListLans() ([]models.Lan, error) {
	const querySQL = `
        SELECT lan_id, name, COALESCE(interface_id, ''), COALESCE(wan_id, ''),
               dhcp, bytes, updated_at
        FROM lans
        ORDER BY name
    `

	rows, err := db.Query(querySQL)
	if err != nil {
		return nil, fmt.Errorf("%w lans: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	var lans []models.Lan

	for rows.Next() {
		var l models.Lan

		if err := rows.Scan(&l.ID, &l.Name, &l.InterfaceID, &l.WanID, &l.DHCP, &l.Bytes, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w lan row: %w", ErrFailedToScan, err)
		}

		lans = append(lans, l)
	}

	return lans, nil
}

func (db *DB) ListInterfaces() ([]models.NetworkInterface, error) {
	const querySQL = `
        SELECT interface_id, name, kind, COALESCE(hw_address, ''), updated_at
        FROM interfaces
        ORDER BY name
    `

	rows, err := db.Query(querySQL)
	if err != nil {
		return nil, fmt.Errorf("%w interfaces: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	var ifaces []models.NetworkInterface

	for rows.Next() {
		var i models.NetworkInterface

		if err := rows.Scan(&i.ID, &i.Name, &i.Kind, &i.HWAddress, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w interface row: %w", ErrFailedToScan, err)
		}

		ifaces = append(ifaces, i)
	}

	return ifaces, nil
}

func (db *DB) UserExists(id string) (bool, error) {
	return db.exists("users", "user_id", id)
}

func (db *DB) WanExists(id string) (bool, error) {
	return db.exists("wans", "wan_id", id)
}

func (db *DB) LanExists(id string) (bool, error) {
	return db.exists("lans", "lan_id", id)
}

func (db *DB) InterfaceExists(id string) (bool, error) {
	return db.exists("interfaces", "interface_id", id)
}

func (db *DB) exists(table, column, id string) (bool, error) {
	var count int

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", table, column)

	if err := db.QueryRow(query, id).Scan(&count); err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrFailedToQuery, table, err)
	}

	return count > 0, nil
}
