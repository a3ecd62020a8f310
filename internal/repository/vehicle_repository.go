package repository

import (
	"database/sql"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateVehicle creates a new vehicle in the database
func (r *Repository) CreateVehicle(v *models.Vehicle) error {
	query := `
		INSERT INTO books.vehicles (vehicle_no, driver_name, driver_number, owner_name, firm_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRow(query, v.VehicleNo, v.DriverName, v.DriverNumber,
		v.OwnerName, v.FirmID).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// ListVehicles retrieves all vehicles, optionally filtered by firm
func (r *Repository) ListVehicles(firmID int64) ([]models.Vehicle, error) {
	query := `
		SELECT id, vehicle_no, driver_name, driver_number, owner_name, firm_id
		FROM books.vehicles
		WHERE ($1 = 0 OR firm_id = $1)
		ORDER BY vehicle_no`
	rows, err := r.db.Query(query, firmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.VehicleNo, &v.DriverName, &v.DriverNumber,
			&v.OwnerName, &v.FirmID); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// FindVehicleByID retrieves a vehicle by id
func (r *Repository) FindVehicleByID(id int64) (*models.Vehicle, error) {
	v := &models.Vehicle{}
	query := `
		SELECT id, vehicle_no, driver_name, driver_number, owner_name, firm_id
		FROM books.vehicles
		WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&v.ID, &v.VehicleNo, &v.DriverName,
		&v.DriverNumber, &v.OwnerName, &v.FirmID)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return v, nil
}

// UpdateVehicle updates an existing vehicle
func (r *Repository) UpdateVehicle(v *models.Vehicle) error {
	query := `
		UPDATE books.vehicles
		SET vehicle_no = $1, driver_name = $2, driver_number = $3,
		    owner_name = $4, firm_id = $5
		WHERE id = $6`
	res, err := r.db.Exec(query, v.VehicleNo, v.DriverName, v.DriverNumber,
		v.OwnerName, v.FirmID, v.ID)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return requireRowAffected(res)
}

// DeleteVehicle removes a vehicle by id
func (r *Repository) DeleteVehicle(id int64) error {
	res, err := r.db.Exec(`DELETE FROM books.vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return requireRowAffected(res)
}
