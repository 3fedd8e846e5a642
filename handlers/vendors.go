package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopkeeper/payables/models"
)

const vendorSelectQuery = `SELECT id, name, phone, email, address, default_credit_days, created_at, updated_at,
	COALESCE((SELECT COUNT(*) FROM purchases p WHERE p.vendor_id = vendors.id AND p.bill_amount - p.advance_paid > 0), 0),
	COALESCE((SELECT SUM(p.bill_amount - p.advance_paid) FROM purchases p WHERE p.vendor_id = vendors.id AND p.bill_amount - p.advance_paid > 0), 0)
	FROM vendors`

func scanVendor(scanner interface{ Scan(...any) error }) (models.Vendor, error) {
	var v models.Vendor
	err := scanner.Scan(&v.ID, &v.Name, &v.Phone, &v.Email, &v.Address, &v.DefaultCreditDays,
		&v.CreatedAt, &v.UpdatedAt, &v.OpenBills, &v.TotalPending)
	return v, err
}

func getVendorByID(id int) (models.Vendor, error) {
	return scanVendor(DB.QueryRow(vendorSelectQuery+" WHERE id = ?", id))
}

// ListVendors lists all vendors
// @Summary      List vendors
// @Description  Get all vendors with their open bill count and total pending amount.
// @Tags         vendors
// @Produce      json
// @Param        search  query     string  false  "Search by name, phone, or email"
// @Success      200     {object}  Response{data=[]models.Vendor}
// @Router       /vendors [get]
// @Security     BasicAuth
func ListVendors(w http.ResponseWriter, r *http.Request) {
	query := vendorSelectQuery
	var conditions []string
	var args []any

	if search := r.URL.Query().Get("search"); search != "" {
		conditions = append(conditions, "(name LIKE ? OR phone LIKE ? OR email LIKE ?)")
		s := "%" + search + "%"
		args = append(args, s, s, s)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name"

	rows, err := DB.Query(query, args...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	var vendors []models.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		vendors = append(vendors, v)
	}
	if vendors == nil {
		vendors = []models.Vendor{}
	}
	writeJSON(w, http.StatusOK, vendors)
}

// GetVendor retrieves a single vendor by ID
// @Summary      Get vendor
// @Description  Get details and outstanding totals of a specific vendor.
// @Tags         vendors
// @Produce      json
// @Param        id   path      int  true  "Vendor ID"
// @Success      200  {object}  Response{data=models.Vendor}
// @Failure      404  {object}  Response{error=string}
// @Router       /vendors/{id} [get]
// @Security     BasicAuth
func GetVendor(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	v, err := getVendorByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "vendor not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// CreateVendor creates a new vendor
// @Summary      Create vendor
// @Description  Create a new vendor. Vendor names are unique.
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        vendor  body      models.VendorInput  true  "Vendor contents"
// @Success      201     {object}  Response{data=models.Vendor}
// @Failure      400     {object}  Response{error=string}
// @Failure      409     {object}  Response{error=string}
// @Router       /vendors [post]
// @Security     BasicAuth
func CreateVendor(w http.ResponseWriter, r *http.Request) {
	var input models.VendorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var id int
	err := DB.QueryRow(`INSERT INTO vendors (name, phone, email, address, default_credit_days)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		input.Name, input.Phone, input.Email, input.Address, input.DefaultCreditDays).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "vendor with this name already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	v, err := getVendorByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch created vendor: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// UpdateVendor updates an existing vendor
// @Summary      Update vendor
// @Description  Update details of an existing vendor.
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        id      path      int                 true  "Vendor ID"
// @Param        vendor  body      models.VendorInput  true  "Updated vendor contents"
// @Success      200     {object}  Response{data=models.Vendor}
// @Failure      400     {object}  Response{error=string}
// @Failure      404     {object}  Response{error=string}
// @Failure      409     {object}  Response{error=string}
// @Router       /vendors/{id} [put]
// @Security     BasicAuth
func UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var input models.VendorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	res, err := DB.Exec(`UPDATE vendors SET name = ?, phone = ?, email = ?, address = ?,
		default_credit_days = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		input.Name, input.Phone, input.Email, input.Address, input.DefaultCreditDays, id)
	if err != nil {
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "vendor with this name already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		writeError(w, http.StatusNotFound, "vendor not found")
		return
	}

	v, err := getVendorByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch updated vendor: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}
