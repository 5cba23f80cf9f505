package db

import (
	"database/sql"
	"fmt"
)

// IPInventoryRow is an IP address joined with its owning device and the
// client currently holding it, if any. ClientID being non-nil is what marks
// the address as assigned.
type IPInventoryRow struct {
	IPAddress
	DeviceName *string
	DeviceType *string
	ClientID   *int64
	ClientName *string
}

func GetIPInventory() ([]IPInventoryRow, error) {
	query := `
		SELECT
			i.id, i.ip_address, i.device_id, i.description,
			d.device_name, d.device_type,
			c.id AS client_id, c.name AS client_name
		FROM ip_addresses i
		LEFT JOIN devices d ON i.device_id = d.id
		LEFT JOIN clients c ON i.id = c.ip_id
		ORDER BY i.ip_address
	`

	rows, err := DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ip inventory: %w", err)
	}
	defer rows.Close()

	ips := []IPInventoryRow{}
	for rows.Next() {
		var row IPInventoryRow
		err := rows.Scan(
			&row.ID,
			&row.IPAddress.IPAddress,
			&row.DeviceID,
			&row.Description,
			&row.DeviceName,
			&row.DeviceType,
			&row.ClientID,
			&row.ClientName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ip row: %w", err)
		}
		ips = append(ips, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ip inventory: %w", err)
	}

	return ips, nil
}

func CreateIP(ip *IPAddress) (int64, error) {
	var id int64
	err := DB.QueryRow(
		"INSERT INTO ip_addresses (ip_address, device_id, description) VALUES ($1, $2, $3) RETURNING id",
		ip.IPAddress, ip.DeviceID, ip.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create ip address: %w", err)
	}
	return id, nil
}

// BulkCreateIPs inserts the whole batch in one transaction so a duplicate
// anywhere rolls back the lot, matching single-statement bulk insert
// semantics.
func BulkCreateIPs(ips []IPAddress) error {
	tx, err := DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, ip := range ips {
		if _, err = tx.Exec(
			"INSERT INTO ip_addresses (ip_address, device_id, description) VALUES ($1, $2, $3)",
			ip.IPAddress, ip.DeviceID, ip.Description,
		); err != nil {
			return fmt.Errorf("failed to insert ip address %s: %w", ip.IPAddress, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ip batch: %w", err)
	}

	return nil
}

func UpdateIP(ip *IPAddress) error {
	result, err := DB.Exec(
		"UPDATE ip_addresses SET ip_address = $1, device_id = $2, description = $3 WHERE id = $4",
		ip.IPAddress, ip.DeviceID, ip.Description, ip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ip address: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func DeleteIP(id int64) error {
	if _, err := DB.Exec("DELETE FROM ip_addresses WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete ip address: %w", err)
	}
	return nil
}
