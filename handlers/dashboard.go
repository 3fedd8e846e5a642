package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shopkeeper/payables/ledger"
	"github.com/shopkeeper/payables/models"
)

type dashboardData struct {
	ledger.Summary
	ReminderDays int    `json:"reminder_days"`
	PaymentType  string `json:"payment_type"`
}

// GetDashboard retrieves the payment reminder dashboard
// @Summary      Get dashboard
// @Description  Get purchase bills bucketed into overdue, due today, due soon and paid, with per-bucket totals and a vendor-wise pending summary. Status is re-derived from raw bill facts at read time.
// @Tags         dashboard
// @Produce      json
// @Param        days          query     int     false  "Reminder window in days (default from config)"
// @Param        payment_type  query     string  false  "Filter by payment type (Credit, Cash, all)"
// @Success      200           {object}  Response{data=dashboardData}
// @Router       /dashboard [get]
// @Security     BasicAuth
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	reminderDays := DefaultReminderDays
	if d := r.URL.Query().Get("days"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		reminderDays = n
	}
	paymentType := r.URL.Query().Get("payment_type")
	if paymentType == "" {
		paymentType = "all"
	}

	rows, err := DB.Query(purchaseSelectQuery + " ORDER BY p.due_date")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	var purchases []models.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		purchases = append(purchases, p)
	}

	summary, err := ledger.Summarize(purchases, reminderDays, paymentType, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dashboardData{
		Summary:      summary,
		ReminderDays: reminderDays,
		PaymentType:  paymentType,
	})
}
