package ledger

import (
	"sort"
	"time"

	"github.com/shopkeeper/payables/models"
)

// Summary is the reminder dashboard: purchases bucketed by urgency with
// per-bucket totals and a vendor-wise view of everything still owed.
type Summary struct {
	Overdue  []models.Purchase `json:"overdue"`
	DueToday []models.Purchase `json:"due_today"`
	DueSoon  []models.Purchase `json:"due_soon"`
	Paid     []models.Purchase `json:"paid"`

	OverdueTotal  models.Money `json:"overdue_total"`
	DueTodayTotal models.Money `json:"due_today_total"`
	DueSoonTotal  models.Money `json:"due_soon_total"`
	PaidTotal     models.Money `json:"paid_total"` // bill amounts, not pending

	Vendors []VendorSummary `json:"vendor_summary"`
}

// VendorSummary aggregates outstanding bills per vendor.
type VendorSummary struct {
	Name         string       `json:"name"`
	Phone        *string      `json:"phone"`
	Bills        int          `json:"bills"`
	TotalPending models.Money `json:"total_pending"`
}

// Summarize buckets purchases into overdue, due-today, due-soon (within
// reminderDays) and paid. Pending and days-remaining are re-derived from the
// raw bill facts rather than read from the stored status column, which is
// only a cache and may be stale between writes. Unpaid bills due beyond the
// reminder window fall into no bucket; they appear only in the full listing.
// An empty or "all" paymentType applies no filter.
func Summarize(purchases []models.Purchase, reminderDays int, paymentType string, today time.Time) (Summary, error) {
	s := Summary{
		Overdue:  []models.Purchase{},
		DueToday: []models.Purchase{},
		DueSoon:  []models.Purchase{},
		Paid:     []models.Purchase{},
		Vendors:  []VendorSummary{},
	}

	byVendor := make(map[string]*VendorSummary)

	for _, p := range purchases {
		if paymentType != "" && paymentType != "all" && p.PaymentType != paymentType {
			continue
		}

		d, err := Derive(Facts{
			BillDate:    p.BillDate,
			DueDate:     p.DueDate,
			BillAmount:  p.BillAmount,
			AdvancePaid: p.AdvancePaid,
		}, today)
		if err != nil {
			return Summary{}, err
		}

		p.PendingAmount = d.Pending
		p.DaysRemaining = d.DaysRemaining
		p.Status = d.Status
		p.StatusColor = StatusColor(d.Status, d.DaysRemaining)

		switch {
		case d.Pending <= 0:
			s.Paid = append(s.Paid, p)
			s.PaidTotal += p.BillAmount
		case d.DaysRemaining < 0:
			s.Overdue = append(s.Overdue, p)
			s.OverdueTotal += d.Pending
		case d.DaysRemaining == 0:
			s.DueToday = append(s.DueToday, p)
			s.DueTodayTotal += d.Pending
		case d.DaysRemaining <= reminderDays:
			s.DueSoon = append(s.DueSoon, p)
			s.DueSoonTotal += d.Pending
		}

		if d.Pending > 0 && p.VendorName != nil {
			v, ok := byVendor[*p.VendorName]
			if !ok {
				v = &VendorSummary{Name: *p.VendorName, Phone: p.VendorPhone}
				byVendor[*p.VendorName] = v
			}
			v.Bills++
			v.TotalPending += d.Pending
		}
	}

	for _, v := range byVendor {
		s.Vendors = append(s.Vendors, *v)
	}
	sort.Slice(s.Vendors, func(i, j int) bool { return s.Vendors[i].Name < s.Vendors[j].Name })

	return s, nil
}
