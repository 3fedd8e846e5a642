package models

import "time"

// Vendor represents a supplier the shop buys from on credit.
type Vendor struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Phone             *string   `json:"phone"`
	Email             *string   `json:"email"`
	Address           *string   `json:"address"`
	DefaultCreditDays int       `json:"default_credit_days"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	// Computed fields
	OpenBills    int   `json:"open_bills"`    // purchases with an outstanding balance
	TotalPending Money `json:"total_pending"` // sum of outstanding balances
}

// VendorInput is used for creating/updating vendors.
type VendorInput struct {
	Name              string  `json:"name"`
	Phone             *string `json:"phone"`
	Email             *string `json:"email"`
	Address           *string `json:"address"`
	DefaultCreditDays int     `json:"default_credit_days"`
}

func (v *VendorInput) Validate() string {
	if v.Name == "" {
		return "name is required"
	}
	if v.DefaultCreditDays < 0 {
		return "default_credit_days must be non-negative"
	}
	if v.DefaultCreditDays == 0 {
		v.DefaultCreditDays = 30
	}
	return ""
}
