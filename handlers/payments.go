package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopkeeper/payables/ledger"
	"github.com/shopkeeper/payables/models"
)

const paymentSelectQuery = `SELECT id, purchase_id, paid_amount, paid_date, method, note, created_at FROM payments`

func scanPayment(scanner interface{ Scan(...any) error }) (models.Payment, error) {
	var p models.Payment
	err := scanner.Scan(&p.ID, &p.PurchaseID, &p.PaidAmount, &p.PaidDate, &p.Method, &p.Note, &p.CreatedAt)
	return p, err
}

func getPaymentByID(id int) (models.Payment, error) {
	return scanPayment(DB.QueryRow(paymentSelectQuery+" WHERE id = ?", id))
}

// txLedgerStore adapts a scoped transaction to the ledger's store interface
// so the purchase recompute commits or rolls back together with the payment
// row mutation.
type txLedgerStore struct {
	tx *sql.Tx
}

func (s txLedgerStore) PurchaseFacts(ctx context.Context, purchaseID int) (ledger.Facts, error) {
	var f ledger.Facts
	err := s.tx.QueryRowContext(ctx,
		"SELECT bill_date, due_date, bill_amount, advance_paid FROM purchases WHERE id = ?", purchaseID).
		Scan(&f.BillDate, &f.DueDate, &f.BillAmount, &f.AdvancePaid)
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.Facts{}, ledger.ErrPurchaseNotFound
	}
	return f, err
}

func (s txLedgerStore) SavePurchaseLedger(ctx context.Context, purchaseID int, u ledger.Update) error {
	_, err := s.tx.ExecContext(ctx,
		"UPDATE purchases SET advance_paid = ?, due_date = ?, status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		u.AdvancePaid, u.DueDate, u.Status, purchaseID)
	return err
}

// ListPurchasePayments lists payments recorded against a purchase
// @Summary      List payments for a purchase
// @Description  Get all payments recorded against a purchase, newest paid date first.
// @Tags         payments
// @Produce      json
// @Param        id   path      int  true  "Purchase ID"
// @Success      200  {object}  Response{data=[]models.Payment}
// @Failure      404  {object}  Response{error=string}
// @Router       /purchases/{id}/payments [get]
// @Security     BasicAuth
func ListPurchasePayments(w http.ResponseWriter, r *http.Request) {
	purchaseID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var exists int
	if err := DB.QueryRow("SELECT 1 FROM purchases WHERE id = ?", purchaseID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "purchase not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	rows, err := DB.Query(paymentSelectQuery+" WHERE purchase_id = ? ORDER BY paid_date DESC, id DESC", purchaseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		payments = append(payments, p)
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

// GetPayment retrieves a single payment by ID
// @Summary      Get payment
// @Description  Get details of a specific payment.
// @Tags         payments
// @Produce      json
// @Param        id   path      int  true  "Payment ID"
// @Success      200  {object}  Response{data=models.Payment}
// @Failure      404  {object}  Response{error=string}
// @Router       /payments/{id} [get]
// @Security     BasicAuth
func GetPayment(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	p, err := getPaymentByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "payment not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreatePayment records a payment against a purchase
// @Summary      Record payment
// @Description  Record a payment against a purchase. The purchase's cumulative paid amount and status are recomputed in the same transaction.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Purchase ID"
// @Param        payment  body      models.PaymentInput  true  "Payment contents"
// @Success      201      {object}  Response{data=models.Payment}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /purchases/{id}/payments [post]
// @Security     BasicAuth
func CreatePayment(w http.ResponseWriter, r *http.Request) {
	purchaseID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var input models.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if input.PaidDate == "" {
		input.PaidDate = time.Now().Format(time.DateOnly)
	}

	tx, err := DB.Begin()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer tx.Rollback()

	var id int
	err = tx.QueryRow(`INSERT INTO payments (purchase_id, paid_amount, paid_date, method, note)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		purchaseID, input.PaidAmount, input.PaidDate, input.Method, input.Note).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusNotFound, "purchase not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	_, err = ledger.ApplyPayment(r.Context(), txLedgerStore{tx}, purchaseID,
		ledger.OpCreate, input.PaidAmount, 0, time.Now())
	if err != nil {
		if errors.Is(err, ledger.ErrPurchaseNotFound) {
			writeError(w, http.StatusNotFound, "purchase not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := tx.Commit(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	p, err := getPaymentByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch created payment: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdatePayment edits a payment
// @Summary      Update payment
// @Description  Edit a payment. The purchase ledger is adjusted by the amount delta in the same transaction.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Payment ID"
// @Param        payment  body      models.PaymentInput  true  "Updated payment contents"
// @Success      200      {object}  Response{data=models.Payment}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /payments/{id} [put]
// @Security     BasicAuth
func UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var input models.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if input.PaidDate == "" {
		input.PaidDate = time.Now().Format(time.DateOnly)
	}

	tx, err := DB.Begin()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer tx.Rollback()

	var oldAmount models.Money
	var purchaseID int
	err = tx.QueryRow("SELECT paid_amount, purchase_id FROM payments WHERE id = ?", id).Scan(&oldAmount, &purchaseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "payment not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	_, err = tx.Exec("UPDATE payments SET paid_amount = ?, paid_date = ?, method = ?, note = ? WHERE id = ?",
		input.PaidAmount, input.PaidDate, input.Method, input.Note, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	_, err = ledger.ApplyPayment(r.Context(), txLedgerStore{tx}, purchaseID,
		ledger.OpEdit, input.PaidAmount, oldAmount, time.Now())
	if err != nil {
		if errors.Is(err, ledger.ErrPurchaseNotFound) {
			writeError(w, http.StatusNotFound, "purchase not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := tx.Commit(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	p, err := getPaymentByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch updated payment: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePayment deletes a payment
// @Summary      Delete payment
// @Description  Delete a payment. The purchase's cumulative paid amount and status are recomputed in the same transaction.
// @Tags         payments
// @Produce      json
// @Param        id   path      int  true  "Payment ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /payments/{id} [delete]
// @Security     BasicAuth
func DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	tx, err := DB.Begin()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer tx.Rollback()

	var amount models.Money
	var purchaseID int
	err = tx.QueryRow("SELECT paid_amount, purchase_id FROM payments WHERE id = ?", id).Scan(&amount, &purchaseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "payment not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if _, err := tx.Exec("DELETE FROM payments WHERE id = ?", id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	_, err = ledger.ApplyPayment(r.Context(), txLedgerStore{tx}, purchaseID,
		ledger.OpDelete, amount, 0, time.Now())
	if err != nil {
		if errors.Is(err, ledger.ErrPurchaseNotFound) {
			writeError(w, http.StatusNotFound, "purchase not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := tx.Commit(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
