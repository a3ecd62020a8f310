package models

import "time"

// Transaction represents a ton-based transaction between a firm and a vehicle
type Transaction struct {
	ID              int64     `json:"id"`
	FirmID          int64     `json:"firm_id"`
	VehicleID       int64     `json:"vehicle_id"`
	RoNumber        string    `json:"ro_number"`
	RoTon           float64   `json:"ro_ton"`
	TotalTon        float64   `json:"total_ton"`
	OpenTon         float64   `json:"open_ton"`
	RoPrice         float64   `json:"ro_price"`
	OpenPrice       float64   `json:"open_price"`
	TotalPrice      float64   `json:"total_price"`
	TransactionDate time.Time `json:"transaction_date"`
}
