package models

import "time"

// LandTransaction is a payment made or received against a land deal
type LandTransaction struct {
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Mode    string    `json:"mode,omitempty"`
	Remarks string    `json:"remarks,omitempty"`
}

// LandCredit is an incoming credit recorded against a land deal
type LandCredit struct {
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Source  string    `json:"source,omitempty"`
	Remarks string    `json:"remarks,omitempty"`
}

// ConstructionExpense is an expense on a construction-type land deal
type ConstructionExpense struct {
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
}

// LandEntry represents a land deal owned by a user
type LandEntry struct {
	ID                   int64                 `json:"id"`
	UserID               int64                 `json:"user_id"`
	Name                 string                `json:"name"`
	SurveyNumber         string                `json:"survey_number,omitempty"`
	Location             string                `json:"location,omitempty"`
	RateOfLand           float64               `json:"rate_of_land"`
	TotalLandArea        string                `json:"total_land_area,omitempty"`
	FP                   string                `json:"fp,omitempty"`
	TP                   string                `json:"tp,omitempty"`
	MyParticipation      float64               `json:"my_participation"`
	FirmName             string                `json:"firm_name,omitempty"`
	LandType             string                `json:"land_type"`
	SchemeName           string                `json:"scheme_name,omitempty"`
	Transactions         []LandTransaction     `json:"transactions"`
	Credits              []LandCredit          `json:"credits"`
	ConstructionExpenses []ConstructionExpense `json:"construction_expenses"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
}
