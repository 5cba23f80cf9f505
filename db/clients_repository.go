package db

import (
	"database/sql"
	"fmt"
)

type ClientDetailRow struct {
	Client
	DeviceName   *string
	DeviceType   *string
	MACAddress   *string
	IPAddressStr *string
	LocationID   *int64
	LocationName *string
}

type AreaClient struct {
	ID          int64
	Name        string
	ContactInfo *string
	DeviceName  *string
	DeviceType  *string
	IPAddress   *string
}

type AreaGroup struct {
	LocationID   int64
	LocationName string
	Clients      []AreaClient
}

func GetClients() ([]ClientDetailRow, error) {
	query := `
		SELECT
			c.id, c.name, c.contact_info, c.device_id, c.ip_id, c.description,
			d.device_name, d.device_type, d.mac_address,
			i.ip_address,
			l.id AS location_id, l.name AS location_name
		FROM clients c
		LEFT JOIN devices d ON c.device_id = d.id
		LEFT JOIN ip_addresses i ON c.ip_id = i.id
		LEFT JOIN locations l ON d.location_id = l.id
		ORDER BY c.name
	`

	rows, err := DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []ClientDetailRow{}
	for rows.Next() {
		var c ClientDetailRow
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.ContactInfo,
			&c.DeviceID,
			&c.IPID,
			&c.Description,
			&c.DeviceName,
			&c.DeviceType,
			&c.MACAddress,
			&c.IPAddressStr,
			&c.LocationID,
			&c.LocationName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}

func GetClientByID(id int64) (*ClientDetailRow, error) {
	query := `
		SELECT
			c.id, c.name, c.contact_info, c.device_id, c.ip_id, c.description,
			d.device_name, d.device_type, d.mac_address,
			i.ip_address,
			l.id AS location_id, l.name AS location_name
		FROM clients c
		LEFT JOIN devices d ON c.device_id = d.id
		LEFT JOIN ip_addresses i ON c.ip_id = i.id
		LEFT JOIN locations l ON d.location_id = l.id
		WHERE c.id = $1
	`

	var c ClientDetailRow
	err := DB.QueryRow(query, id).Scan(
		&c.ID,
		&c.Name,
		&c.ContactInfo,
		&c.DeviceID,
		&c.IPID,
		&c.Description,
		&c.DeviceName,
		&c.DeviceType,
		&c.MACAddress,
		&c.IPAddressStr,
		&c.LocationID,
		&c.LocationName,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &c, nil
}

// GetClientsByArea groups clients under the location their device belongs
// to. Grouping happens here rather than in SQL so both drivers share one
// query.
func GetClientsByArea() ([]AreaGroup, error) {
	query := `
		SELECT
			l.id AS location_id, l.name AS location_name,
			c.id, c.name, c.contact_info,
			d.device_name, d.device_type,
			i.ip_address
		FROM locations l
		LEFT JOIN devices d ON d.location_id = l.id
		LEFT JOIN clients c ON c.device_id = d.id
		LEFT JOIN ip_addresses i ON c.ip_id = i.id
		ORDER BY l.name, c.name
	`

	rows, err := DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients by area: %w", err)
	}
	defer rows.Close()

	groups := []AreaGroup{}
	index := map[int64]int{}

	for rows.Next() {
		var locationID int64
		var locationName string
		var clientID sql.NullInt64
		var clientName, contactInfo, deviceName, deviceType, ipAddress sql.NullString

		err := rows.Scan(
			&locationID,
			&locationName,
			&clientID,
			&clientName,
			&contactInfo,
			&deviceName,
			&deviceType,
			&ipAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area row: %w", err)
		}

		pos, ok := index[locationID]
		if !ok {
			pos = len(groups)
			index[locationID] = pos
			groups = append(groups, AreaGroup{
				LocationID:   locationID,
				LocationName: locationName,
				Clients:      []AreaClient{},
			})
		}

		if !clientID.Valid {
			continue
		}

		groups[pos].Clients = append(groups[pos].Clients, AreaClient{
			ID:          clientID.Int64,
			Name:        clientName.String,
			ContactInfo: nullableString(contactInfo),
			DeviceName:  nullableString(deviceName),
			DeviceType:  nullableString(deviceType),
			IPAddress:   nullableString(ipAddress),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating area rows: %w", err)
	}

	return groups, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

// IsIPAssignedToOther reports whether the given IP id is already held by a
// client other than excludeClientID. Pass 0 to check against all clients.
func IsIPAssignedToOther(ipID int64, excludeClientID int64) (bool, error) {
	var count int
	err := DB.QueryRow(
		"SELECT COUNT(*) FROM clients WHERE ip_id = $1 AND id != $2",
		ipID, excludeClientID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check ip assignment: %w", err)
	}
	return count > 0, nil
}

func CreateClient(c *Client) (int64, error) {
	var id int64
	err := DB.QueryRow(`
		INSERT INTO clients (name, contact_info, device_id, ip_id, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, c.Name, c.ContactInfo, c.DeviceID, c.IPID, c.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create client: %w", err)
	}
	return id, nil
}

func UpdateClient(c *Client) error {
	result, err := DB.Exec(`
		UPDATE clients
		SET name = $1, contact_info = $2, device_id = $3, ip_id = $4, description = $5
		WHERE id = $6
	`, c.Name, c.ContactInfo, c.DeviceID, c.IPID, c.Description, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
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

func DeleteClient(id int64) error {
	if _, err := DB.Exec("DELETE FROM clients WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
