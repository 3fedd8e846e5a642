// Package ledger holds the payables core: deriving a purchase's payment
// status from its bill facts, keeping the derived state consistent as
// payments are added, edited or deleted, and bucketing bills for the
// reminder dashboard. All computations take today as an explicit argument;
// the package never reads the clock.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopkeeper/payables/models"
)

// Facts are the stored purchase fields the status derivation reads.
type Facts struct {
	BillDate    string
	DueDate     string
	BillAmount  models.Money
	AdvancePaid models.Money
}

// Derived is the status computation result. DueDate is echoed back in ISO
// form and written idempotently; it is fixed at purchase creation and never
// recomputed from credit days.
type Derived struct {
	DueDate       string
	Status        string
	DaysRemaining int
	Pending       models.Money
}

// Derive computes the due-date urgency and payment status for a bill.
func Derive(f Facts, today time.Time) (Derived, error) {
	due, err := time.Parse(time.DateOnly, f.DueDate)
	if err != nil {
		return Derived{}, fmt.Errorf("parsing due date %q: %w", f.DueDate, err)
	}

	pending := f.BillAmount - f.AdvancePaid
	days := daysBetween(due, today)

	var status string
	switch {
	case pending <= 0:
		status = models.StatusPaid
	case days < 0:
		status = models.StatusOverdue
	case days == 0:
		status = models.StatusDueToday
	default:
		status = models.StatusPending
	}

	return Derived{
		DueDate:       due.Format(time.DateOnly),
		Status:        status,
		DaysRemaining: days,
		Pending:       pending,
	}, nil
}

// StatusColor maps a status and days-remaining to a display urgency tier.
// It is recomputed on every read and never persisted.
func StatusColor(status string, daysRemaining int) string {
	switch {
	case status == models.StatusPaid:
		return "success"
	case status == models.StatusOverdue:
		return "danger"
	case status == models.StatusDueToday:
		return "warning"
	case daysRemaining <= 7:
		return "warning"
	default:
		return "info"
	}
}

// daysBetween returns the whole calendar days from today until due, negative
// when due is in the past. Both instants are truncated to their civil date
// so time-of-day and DST offsets cannot skew the count.
func daysBetween(due, today time.Time) int {
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}

// CreditDays returns the display-only day count between bill date and due
// date, recorded once at purchase creation.
func CreditDays(billDate, dueDate string) (int, error) {
	bill, err := time.Parse(time.DateOnly, billDate)
	if err != nil {
		return 0, fmt.Errorf("parsing bill date %q: %w", billDate, err)
	}
	due, err := time.Parse(time.DateOnly, dueDate)
	if err != nil {
		return 0, fmt.Errorf("parsing due date %q: %w", dueDate, err)
	}
	return daysBetween(due, bill), nil
}
