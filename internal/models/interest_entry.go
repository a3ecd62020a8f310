package models

import "time"

// Repayment is a single principal repayment against an interest entry
type Repayment struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Note   string    `json:"note,omitempty"`
}

// InterestEntry represents an interest-bearing loan taken from a lender
type InterestEntry struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"user_id"`
	LenderName    string      `json:"lender_name"`
	BorrowAmount  float64     `json:"borrow_amount"`
	MonthlyRate   float64     `json:"monthly_rate"`
	BorrowDate    time.Time   `json:"borrow_date"`
	CycleDay      int         `json:"cycle_day"`
	PaymentMode   string      `json:"payment_mode"`
	ChequeName    string      `json:"cheque_name,omitempty"`
	ChequeNumber  string      `json:"cheque_number,omitempty"`
	BankName      string      `json:"bank_name,omitempty"`
	TransactionID string      `json:"transaction_id,omitempty"`
	Repayments    []Repayment `json:"repayments"`
	PaidMonths    []int       `json:"paid_months"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
