package models

import "time"

// Check issuance statuses. Transitions are manual; nothing is derived.
const (
	CheckPending   = "Pending"
	CheckCleared   = "Cleared"
	CheckBounced   = "Bounced"
	CheckCancelled = "Cancelled"
)

// Check represents a post-dated check issued to a vendor. Checks form an
// independent ledger and are not tied to any particular purchase.
type Check struct {
	ID          int       `json:"id"`
	VendorID    int       `json:"vendor_id"`
	CheckNumber string    `json:"check_number"`
	CheckDate   string    `json:"check_date"`
	Remarks     *string   `json:"remarks"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// Computed fields
	VendorName  *string `json:"vendor_name,omitempty"`
	VendorPhone *string `json:"vendor_phone,omitempty"`
}

// CheckInput is used for creating check issuances.
type CheckInput struct {
	VendorID    int     `json:"vendor_id"`
	CheckNumber string  `json:"check_number"`
	CheckDate   string  `json:"check_date"`
	Remarks     *string `json:"remarks"`
	Status      string  `json:"status"`
}

func (c *CheckInput) Validate() string {
	if c.VendorID <= 0 {
		return "vendor_id is required"
	}
	if c.CheckNumber == "" {
		return "check_number is required"
	}
	if !ValidDate(c.CheckDate) {
		return "check_date must be a valid YYYY-MM-DD date"
	}
	if c.Status == "" {
		c.Status = CheckPending
	}
	return validCheckStatus(c.Status)
}

// CheckStatusInput is used for manual status transitions on a check.
type CheckStatusInput struct {
	Status  string  `json:"status"`
	Remarks *string `json:"remarks"`
}

func (c *CheckStatusInput) Validate() string {
	return validCheckStatus(c.Status)
}

func validCheckStatus(s string) string {
	switch s {
	case CheckPending, CheckCleared, CheckBounced, CheckCancelled:
		return ""
	}
	return "status must be one of: Pending, Cleared, Bounced, Cancelled"
}
