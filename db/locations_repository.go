package db

import (
	"database/sql"
	"fmt"
)

func GetLocations() ([]Location, error) {
	rows, err := DB.Query("SELECT id, name, description FROM locations ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	locations := []Location{}
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Description); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}

	return locations, nil
}

func GetLocationByID(id int64) (*Location, error) {
	var l Location
	err := DB.QueryRow("SELECT id, name, description FROM locations WHERE id = $1", id).
		Scan(&l.ID, &l.Name, &l.Description)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return &l, nil
}

func CreateLocation(name string, description *string) (int64, error) {
	var id int64
	err := DB.QueryRow(
		"INSERT INTO locations (name, description) VALUES ($1, $2) RETURNING id",
		name, description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create location: %w", err)
	}
	return id, nil
}

func UpdateLocation(id int64, name string, description *string) error {
	result, err := DB.Exec(
		"UPDATE locations SET name = $1, description = $2 WHERE id = $3",
		name, description, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
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

func CountDevicesAtLocation(id int64) (int, error) {
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM devices WHERE location_id = $1", id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count devices at location: %w", err)
	}
	return count, nil
}

func DeleteLocation(id int64) error {
	if _, err := DB.Exec("DELETE FROM locations WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}
