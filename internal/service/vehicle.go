package service

import (
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateVehicle validates and creates a new vehicle
func (s *Service) CreateVehicle(v *models.Vehicle) error {
	if v.VehicleNo == "" || v.OwnerName == "" || v.DriverNumber == "" {
		return fmt.Errorf("%w: vehicle number, owner name and driver number are required", models.ErrValidation)
	}
	// The firm must exist before a vehicle can reference it.
	if _, err := s.repo.FindFirmByID(v.FirmID); err != nil {
		return err
	}
	if err := s.repo.CreateVehicle(v); err != nil {
		return err
	}
	s.log.Infof("Vehicle created: %s (firm %d)", v.VehicleNo, v.FirmID)
	return nil
}

// ListVehicles returns vehicles, optionally filtered by firm (0 = all)
func (s *Service) ListVehicles(firmID int64) ([]models.Vehicle, error) {
	return s.repo.ListVehicles(firmID)
}

// GetVehicle returns a vehicle by id
func (s *Service) GetVehicle(id int64) (*models.Vehicle, error) {
	return s.repo.FindVehicleByID(id)
}

// UpdateVehicle validates and updates a vehicle
func (s *Service) UpdateVehicle(v *models.Vehicle) error {
	if v.VehicleNo == "" || v.OwnerName == "" || v.DriverNumber == "" {
		return fmt.Errorf("%w: vehicle number, owner name and driver number are required", models.ErrValidation)
	}
	return s.repo.UpdateVehicle(v)
}

// DeleteVehicle removes a vehicle by id
func (s *Service) DeleteVehicle(id int64) error {
	return s.repo.DeleteVehicle(id)
}
