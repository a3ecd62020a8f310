package models

import "time"

// LoanParameters holds the stored inputs of a tracked loan. EMI is supplied
// by the caller, not recomputed server-side; EmiDate anchors the monthly
// due-date cycle.
type LoanParameters struct {
	Loan             float64   `json:"loan"`
	Rate             float64   `json:"rate"`
	Months           int       `json:"months"`
	Emi              float64   `json:"emi"`
	DisbDate         time.Time `json:"disb_date"`
	EmiDate          time.Time `json:"emi_date"`
	FirstMonthMethod string    `json:"first_month_method"`
	IsRoundingOn     bool      `json:"is_rounding_on"`
	ManualPrincAdj   float64   `json:"manual_princ_adj"`
}

// LoanAudit represents one tracked loan profile owned by a user
type LoanAudit struct {
	ID            int64          `json:"id"`
	UserID        int64          `json:"user_id"`
	ClientName    string         `json:"client_name"`
	LoanType      string         `json:"loan_type"`
	LoanName      string         `json:"loan_name"`
	DeductionBank string         `json:"deduction_bank,omitempty"`
	Parameters    LoanParameters `json:"parameters"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ReminderResult is the outcome of one reminder job run. TargetDate is nil
// when the run was skipped because mail was not configured.
type ReminderResult struct {
	Matched    int     `json:"matched"`
	Sent       int     `json:"sent"`
	TargetDate *string `json:"target_date"`
}
