package models

// Vehicle represents a truck registered against a firm
type Vehicle struct {
	ID           int64  `json:"id"`
	VehicleNo    string `json:"vehicle_no"`
	DriverName   string `json:"driver_name"`
	DriverNumber string `json:"driver_number"`
	OwnerName    string `json:"owner_name"`
	FirmID       int64  `json:"firm_id"`
}
