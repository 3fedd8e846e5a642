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

const checkSelectQuery = `SELECT c.id, c.vendor_id, c.check_number, c.check_date, c.remarks, c.status,
	c.created_at, c.updated_at,
	v.name, v.phone
	FROM checks c
	LEFT JOIN vendors v ON c.vendor_id = v.id`

func scanCheck(scanner interface{ Scan(...any) error }) (models.Check, error) {
	var c models.Check
	err := scanner.Scan(&c.ID, &c.VendorID, &c.CheckNumber, &c.CheckDate, &c.Remarks, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
		&c.VendorName, &c.VendorPhone)
	return c, err
}

func getCheckByID(id int) (models.Check, error) {
	return scanCheck(DB.QueryRow(checkSelectQuery+" WHERE c.id = ?", id))
}

// ListChecks lists all issued checks
// @Summary      List checks
// @Description  Get all post-dated checks issued to vendors.
// @Tags         checks
// @Produce      json
// @Param        vendor_id  query     int     false  "Filter by vendor"
// @Param        status     query     string  false  "Filter by status (Pending, Cleared, Bounced, Cancelled)"
// @Success      200        {object}  Response{data=[]models.Check}
// @Router       /checks [get]
// @Security     BasicAuth
func ListChecks(w http.ResponseWriter, r *http.Request) {
	query := checkSelectQuery
	var conditions []string
	var args []any

	if vid := r.URL.Query().Get("vendor_id"); vid != "" {
		conditions = append(conditions, "c.vendor_id = ?")
		args = append(args, vid)
	}
	if s := r.URL.Query().Get("status"); s != "" {
		conditions = append(conditions, "c.status = ?")
		args = append(args, s)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY c.created_at DESC"

	rows, err := DB.Query(query, args...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	var checks []models.Check
	for rows.Next() {
		c, err := scanCheck(rows)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		checks = append(checks, c)
	}
	if checks == nil {
		checks = []models.Check{}
	}
	writeJSON(w, http.StatusOK, checks)
}

// GetCheck retrieves a single check by ID
// @Summary      Get check
// @Description  Get details of a specific check issuance.
// @Tags         checks
// @Produce      json
// @Param        id   path      int  true  "Check ID"
// @Success      200  {object}  Response{data=models.Check}
// @Failure      404  {object}  Response{error=string}
// @Router       /checks/{id} [get]
// @Security     BasicAuth
func GetCheck(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	c, err := getCheckByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "check not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateCheck records a new check issuance
// @Summary      Create check
// @Description  Record a post-dated check issued to a vendor.
// @Tags         checks
// @Accept       json
// @Produce      json
// @Param        check  body      models.CheckInput  true  "Check contents"
// @Success      201    {object}  Response{data=models.Check}
// @Failure      400    {object}  Response{error=string}
// @Router       /checks [post]
// @Security     BasicAuth
func CreateCheck(w http.ResponseWriter, r *http.Request) {
	var input models.CheckInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var id int
	err := DB.QueryRow(`INSERT INTO checks (vendor_id, check_number, check_date, remarks, status)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		input.VendorID, input.CheckNumber, input.CheckDate, input.Remarks, input.Status).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusBadRequest, "vendor_id does not exist")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	c, err := getCheckByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch created check: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateCheckStatus transitions a check's status
// @Summary      Update check status
// @Description  Manually transition a check's status and update its remarks.
// @Tags         checks
// @Accept       json
// @Produce      json
// @Param        id      path      int                      true  "Check ID"
// @Param        status  body      models.CheckStatusInput  true  "New status and remarks"
// @Success      200     {object}  Response{data=models.Check}
// @Failure      400     {object}  Response{error=string}
// @Failure      404     {object}  Response{error=string}
// @Router       /checks/{id}/status [put]
// @Security     BasicAuth
func UpdateCheckStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var input models.CheckStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	res, err := DB.Exec("UPDATE checks SET status = ?, remarks = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		input.Status, input.Remarks, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		writeError(w, http.StatusNotFound, "check not found")
		return
	}

	c, err := getCheckByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch updated check: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteCheck deletes a check issuance
// @Summary      Delete check
// @Description  Remove a check issuance record.
// @Tags         checks
// @Produce      json
// @Param        id   path      int  true  "Check ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /checks/{id} [delete]
// @Security     BasicAuth
func DeleteCheck(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	res, err := DB.Exec("DELETE FROM checks WHERE id = ?", id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		writeError(w, http.StatusNotFound, "check not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
