package models

import "time"

// Purchase statuses. The stored status is derived from the bill amount,
// accumulated payments and due date; it is rewritten on every payment
// mutation and recomputed fresh for display.
const (
	StatusPaid     = "Paid"
	StatusOverdue  = "Overdue"
	StatusDueToday = "Due Today"
	StatusPending  = "Pending"
)

// Payment types for a purchase.
const (
	PaymentTypeCredit = "Credit"
	PaymentTypeCash   = "Cash"
)

// Purchase represents a wholesale bill owed to a vendor.
type Purchase struct {
	ID          int       `json:"id"`
	VendorID    int       `json:"vendor_id"`
	BillNo      string    `json:"bill_no"`
	BillDate    string    `json:"bill_date"`
	CreditDays  int       `json:"credit_days"`
	BillAmount  Money     `json:"bill_amount"`
	AdvancePaid Money     `json:"advance_paid"` // cumulative amount paid so far
	DueDate     string    `json:"due_date"`
	Status      string    `json:"status"`
	PaymentType string    `json:"payment_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// Computed fields
	VendorName    *string `json:"vendor_name,omitempty"`
	VendorPhone   *string `json:"vendor_phone,omitempty"`
	PendingAmount Money   `json:"pending_amount"`
	DaysRemaining int     `json:"days_remaining"`
	StatusColor   string  `json:"status_color,omitempty"`
}

// PurchaseInput is used for creating purchases. The due date is set
// explicitly; credit days are derived from it for display.
type PurchaseInput struct {
	VendorID    int    `json:"vendor_id"`
	BillNo      string `json:"bill_no"`
	BillDate    string `json:"bill_date"`
	DueDate     string `json:"due_date"`
	BillAmount  Money  `json:"bill_amount"`
	AdvancePaid Money  `json:"advance_paid"`
	PaymentType string `json:"payment_type"`
}

func (p *PurchaseInput) Validate() string {
	if p.VendorID <= 0 {
		return "vendor_id is required"
	}
	if p.BillNo == "" {
		return "bill_no is required"
	}
	if !ValidDate(p.BillDate) {
		return "bill_date must be a valid YYYY-MM-DD date"
	}
	if !ValidDate(p.DueDate) {
		return "due_date must be a valid YYYY-MM-DD date"
	}
	if p.BillAmount <= 0 {
		return "bill_amount must be positive"
	}
	if p.AdvancePaid < 0 {
		return "advance_paid must be non-negative"
	}
	switch p.PaymentType {
	case "":
		p.PaymentType = PaymentTypeCredit
	case PaymentTypeCredit, PaymentTypeCash:
	default:
		return "payment_type must be one of: Credit, Cash"
	}
	return ""
}
