package models

// TonStats aggregates transaction tonnage over a reporting window
type TonStats struct {
	TotalTon float64 `json:"total_ton"`
	RoTon    float64 `json:"ro_ton"`
	OpenTon  float64 `json:"open_ton"`
	Count    int64   `json:"transaction_count"`
}

// AmountStats aggregates transaction money over a reporting window
type AmountStats struct {
	TotalAmount float64 `json:"total_amount"`
	RoAmount    float64 `json:"ro_amount"`
	OpenAmount  float64 `json:"open_amount"`
	Count       int64   `json:"transaction_count"`
}

// QuickTotals aggregates ad-hoc transactions over a reporting window
type QuickTotals struct {
	TotalTon     float64 `json:"total_ton"`
	RoTon        float64 `json:"ro_ton"`
	OpenTon      float64 `json:"open_ton"`
	TotalAmount  float64 `json:"total_amount"`
	RoAmount     float64 `json:"ro_amount"`
	OpenAmount   float64 `json:"open_amount"`
	CashAmount   float64 `json:"cash_amount"`
	OnlineAmount float64 `json:"online_amount"`
	Count        int64   `json:"transaction_count"`
}

// PaymentMethodTotal is one line of the online payment breakdown,
// grouped by the free-text payment details
type PaymentMethodTotal struct {
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
	Count         int64   `json:"count"`
}

// PaymentSummary is the cash-versus-online breakdown of ad-hoc
// transactions over an optional date range
type PaymentSummary struct {
	TotalAmount     float64              `json:"total_amount"`
	CashAmount      float64              `json:"cash_amount"`
	OnlineAmount    float64              `json:"online_amount"`
	CashPercent     float64              `json:"cash_percent"`
	OnlinePercent   float64              `json:"online_percent"`
	Count           int64                `json:"transaction_count"`
	OnlineBreakdown []PaymentMethodTotal `json:"online_breakdown"`
}

// FirmTodayStats summarizes today's transaction volume for the dashboard
type FirmTodayStats struct {
	TotalTon    float64 `json:"total_ton"`
	TotalAmount float64 `json:"total_amount"`
}
