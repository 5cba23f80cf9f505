package db

import (
	"database/sql"
	"fmt"
)

type DeviceListRow struct {
	Device
	LocationName    *string
	AssignedIPCount int
}

func GetDevices() ([]DeviceListRow, error) {
	query := `
		SELECT
			d.id, d.device_name, d.device_type, d.mac_address, d.management_ip,
			d.location_id, d.description,
			l.name AS location_name,
			(SELECT COUNT(*) FROM ip_addresses ip WHERE ip.device_id = d.id) AS assigned_ips_count
		FROM devices d
		LEFT JOIN locations l ON d.location_id = l.id
		ORDER BY d.device_name
	`

	rows, err := DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer rows.Close()

	devices := []DeviceListRow{}
	for rows.Next() {
		var d DeviceListRow
		err := rows.Scan(
			&d.ID,
			&d.DeviceName,
			&d.DeviceType,
			&d.MACAddress,
			&d.ManagementIP,
			&d.LocationID,
			&d.Description,
			&d.LocationName,
			&d.AssignedIPCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating devices: %w", err)
	}

	return devices, nil
}

func CreateDevice(d *Device) (int64, error) {
	var id int64
	err := DB.QueryRow(`
		INSERT INTO devices (device_name, device_type, mac_address, management_ip, location_id, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, d.DeviceName, d.DeviceType, d.MACAddress, d.ManagementIP, d.LocationID, d.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create device: %w", err)
	}
	return id, nil
}

func UpdateDevice(d *Device) error {
	result, err := DB.Exec(`
		UPDATE devices
		SET device_name = $1, device_type = $2, mac_address = $3,
		    management_ip = $4, location_id = $5, description = $6
		WHERE id = $7
	`, d.DeviceName, d.DeviceType, d.MACAddress, d.ManagementIP, d.LocationID, d.Description, d.ID)
	if err != nil {
		return fmt.Errorf("failed to update device: %w", err)
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

func DeleteDevice(id int64) error {
	if _, err := DB.Exec("DELETE FROM devices WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	return nil
}
