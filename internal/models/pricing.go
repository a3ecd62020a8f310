package models

import "time"

// Pricing represents per-firm ton prices effective from a given date
type Pricing struct {
	ID            int64     `json:"id"`
	FirmID        int64     `json:"firm_id"`
	RoTonPrice    float64   `json:"ro_ton_price"`
	OpenTonPrice  float64   `json:"open_ton_price"`
	EffectiveDate time.Time `json:"effective_date"`
}
