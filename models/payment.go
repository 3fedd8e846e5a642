package models

import "time"

// Payment represents a single payment made against a purchase bill.
type Payment struct {
	ID         int       `json:"id"`
	PurchaseID int       `json:"purchase_id"`
	PaidAmount Money     `json:"paid_amount"`
	PaidDate   string    `json:"paid_date"`
	Method     string    `json:"method"`
	Note       *string   `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

// PaymentInput is used for creating/updating payments. An empty paid_date
// is filled with today by the handler.
type PaymentInput struct {
	PaidAmount Money   `json:"paid_amount"`
	PaidDate   string  `json:"paid_date"`
	Method     string  `json:"method"`
	Note       *string `json:"note"`
}

func (p *PaymentInput) Validate() string {
	if p.PaidAmount <= 0 {
		return "paid_amount must be positive"
	}
	if p.PaidDate != "" && !ValidDate(p.PaidDate) {
		return "paid_date must be a valid YYYY-MM-DD date"
	}
	if p.Method == "" {
		p.Method = "Cash"
	}
	return ""
}

// ValidDate reports whether s is a well-formed ISO-8601 calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
