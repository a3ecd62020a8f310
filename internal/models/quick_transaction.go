package models

import "time"

// QuickTransaction represents an ad-hoc transaction recorded without
// a registered firm or vehicle
type QuickTransaction struct {
	ID                   int64     `json:"id"`
	VehicleNo            string    `json:"vehicle_no,omitempty"`
	DriverName           string    `json:"driver_name,omitempty"`
	DriverNumber         string    `json:"driver_number,omitempty"`
	RoTon                float64   `json:"ro_ton"`
	OpenTon              float64   `json:"open_ton"`
	TotalTon             float64   `json:"total_ton"`
	RoTonPrice           float64   `json:"ro_ton_price"`
	OpenTonPrice         float64   `json:"open_ton_price"`
	RoAmount             float64   `json:"ro_amount"`
	OpenAmount           float64   `json:"open_amount"`
	TotalAmount          float64   `json:"total_amount"`
	CashAmount           float64   `json:"cash_amount"`
	OnlineAmount         float64   `json:"online_amount"`
	OnlinePaymentDetails string    `json:"online_payment_details,omitempty"`
	TransactionDate      time.Time `json:"transaction_date"`
	Remarks              string    `json:"remarks,omitempty"`
}
