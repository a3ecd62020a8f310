package models

// Firm represents a trading firm the business deals with
type Firm struct {
	ID            int64  `json:"id"`
	FirmName      string `json:"firm_name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email,omitempty"`
}
