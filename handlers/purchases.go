package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopkeeper/payables/ledger"
	"github.com/shopkeeper/payables/models"
)

const purchaseSelectQuery = `SELECT p.id, p.vendor_id, p.bill_no, p.bill_date, p.credit_days,
	p.bill_amount, p.advance_paid, p.due_date, p.status, p.payment_type,
	p.created_at, p.updated_at,
	v.name, v.phone
	FROM purchases p
	LEFT JOIN vendors v ON p.vendor_id = v.id`

func scanPurchase(scanner interface{ Scan(...any) error }) (models.Purchase, error) {
	var p models.Purchase
	err := scanner.Scan(&p.ID, &p.VendorID, &p.BillNo, &p.BillDate, &p.CreditDays,
		&p.BillAmount, &p.AdvancePaid, &p.DueDate, &p.Status, &p.PaymentType,
		&p.CreatedAt, &p.UpdatedAt,
		&p.VendorName, &p.VendorPhone)
	return p, err
}

// decoratePurchase refreshes the display fields from the raw bill facts. The
// stored status column is a cache that can go stale overnight; reads derive
// it again.
func decoratePurchase(p *models.Purchase, today time.Time) error {
	d, err := ledger.Derive(ledger.Facts{
		BillDate:    p.BillDate,
		DueDate:     p.DueDate,
		BillAmount:  p.BillAmount,
		AdvancePaid: p.AdvancePaid,
	}, today)
	if err != nil {
		return err
	}
	p.PendingAmount = d.Pending
	p.DaysRemaining = d.DaysRemaining
	p.Status = d.Status
	p.StatusColor = ledger.StatusColor(d.Status, d.DaysRemaining)
	return nil
}

func getPurchaseByID(id int, today time.Time) (models.Purchase, error) {
	p, err := scanPurchase(DB.QueryRow(purchaseSelectQuery+" WHERE p.id = ?", id))
	if err != nil {
		return p, err
	}
	return p, decoratePurchase(&p, today)
}

// ListPurchases lists all purchases
// @Summary      List purchases
// @Description  Get all purchase bills with vendor info, pending amounts and freshly derived status.
// @Tags         purchases
// @Produce      json
// @Param        vendor_id     query     int     false  "Filter by vendor"
// @Param        payment_type  query     string  false  "Filter by payment type (Credit, Cash)"
// @Param        status        query     string  false  "Filter by stored status"
// @Success      200           {object}  Response{data=[]models.Purchase}
// @Router       /purchases [get]
// @Security     BasicAuth
func ListPurchases(w http.ResponseWriter, r *http.Request) {
	query := purchaseSelectQuery
	var conditions []string
	var args []any

	if vid := r.URL.Query().Get("vendor_id"); vid != "" {
		conditions = append(conditions, "p.vendor_id = ?")
		args = append(args, vid)
	}
	if pt := r.URL.Query().Get("payment_type"); pt != "" && pt != "all" {
		conditions = append(conditions, "p.payment_type = ?")
		args = append(args, pt)
	}
	if s := r.URL.Query().Get("status"); s != "" {
		conditions = append(conditions, "p.status = ?")
		args = append(args, s)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.due_date, p.created_at DESC"

	rows, err := DB.Query(query, args...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	today := time.Now()
	var purchases []models.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if err := decoratePurchase(&p, today); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		purchases = append(purchases, p)
	}
	if purchases == nil {
		purchases = []models.Purchase{}
	}
	writeJSON(w, http.StatusOK, purchases)
}

// GetPurchase retrieves a single purchase by ID
// @Summary      Get purchase
// @Description  Get details of a specific purchase bill.
// @Tags         purchases
// @Produce      json
// @Param        id   path      int  true  "Purchase ID"
// @Success      200  {object}  Response{data=models.Purchase}
// @Failure      404  {object}  Response{error=string}
// @Router       /purchases/{id} [get]
// @Security     BasicAuth
func GetPurchase(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	p, err := getPurchaseByID(id, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "purchase not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreatePurchase creates a new purchase
// @Summary      Create purchase
// @Description  Create a new purchase bill. The due date is explicit; credit days and initial status are derived from it.
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        purchase  body      models.PurchaseInput  true  "Purchase contents"
// @Success      201       {object}  Response{data=models.Purchase}
// @Failure      400       {object}  Response{error=string}
// @Router       /purchases [post]
// @Security     BasicAuth
func CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var input models.PurchaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	d, err := ledger.Derive(ledger.Facts{
		BillDate:    input.BillDate,
		DueDate:     input.DueDate,
		BillAmount:  input.BillAmount,
		AdvancePaid: input.AdvancePaid,
	}, time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	creditDays, err := ledger.CreditDays(input.BillDate, input.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var id int
	err = DB.QueryRow(`INSERT INTO purchases (vendor_id, bill_no, bill_date, credit_days, bill_amount, advance_paid, due_date, status, payment_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		input.VendorID, input.BillNo, input.BillDate, creditDays,
		input.BillAmount, input.AdvancePaid, d.DueDate, d.Status, input.PaymentType).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusBadRequest, "vendor_id does not exist")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	p, err := getPurchaseByID(id, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch created purchase: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}
