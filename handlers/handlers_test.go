package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkeeper/payables/db"
	"github.com/shopkeeper/payables/ledger"
	"github.com/shopkeeper/payables/models"
)

// setupDB opens a fresh migrated database for a test and points the shared
// handle at it.
func setupDB(t *testing.T) {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	DB = database
	t.Cleanup(func() { database.Close() })
}

// newRouter mirrors the API routes from main, without auth.
func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/vendors", ListVendors)
		r.Post("/vendors", CreateVendor)
		r.Get("/vendors/{id}", GetVendor)
		r.Put("/vendors/{id}", UpdateVendor)

		r.Get("/purchases", ListPurchases)
		r.Post("/purchases", CreatePurchase)
		r.Get("/purchases/{id}", GetPurchase)
		r.Get("/purchases/{id}/payments", ListPurchasePayments)
		r.Post("/purchases/{id}/payments", CreatePayment)

		r.Get("/payments/{id}", GetPayment)
		r.Put("/payments/{id}", UpdatePayment)
		r.Delete("/payments/{id}", DeletePayment)

		r.Get("/checks", ListChecks)
		r.Post("/checks", CreateCheck)
		r.Get("/checks/{id}", GetCheck)
		r.Put("/checks/{id}/status", UpdateCheckStatus)
		r.Delete("/checks/{id}", DeleteCheck)

		r.Get("/dashboard", GetDashboard)
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of the response envelope into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var env struct {
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Empty(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func errorMsg(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Error
}

// day returns today shifted by offset days, as an ISO date. Handlers derive
// status against the real clock, so fixtures are built relative to it.
func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format(time.DateOnly)
}

func strptr(s string) *string { return &s }

func createVendor(t *testing.T, h http.Handler, input models.VendorInput) models.Vendor {
	t.Helper()
	w := doRequest(t, h, http.MethodPost, "/api/v1/vendors", input)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var v models.Vendor
	decodeData(t, w, &v)
	return v
}

func createPurchase(t *testing.T, h http.Handler, input models.PurchaseInput) models.Purchase {
	t.Helper()
	w := doRequest(t, h, http.MethodPost, "/api/v1/purchases", input)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p models.Purchase
	decodeData(t, w, &p)
	return p
}

func getPurchase(t *testing.T, h http.Handler, id int) models.Purchase {
	t.Helper()
	w := doRequest(t, h, http.MethodGet, fmt.Sprintf("/api/v1/purchases/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var p models.Purchase
	decodeData(t, w, &p)
	return p
}

func TestVendorLifecycle(t *testing.T) {
	setupDB(t)
	h := newRouter()

	v := createVendor(t, h, models.VendorInput{Name: "Anand Wholesale", Phone: strptr("9876543210")})
	assert.Equal(t, "Anand Wholesale", v.Name)
	assert.Equal(t, 30, v.DefaultCreditDays) // defaulted
	assert.Equal(t, 0, v.OpenBills)

	// duplicate name
	w := doRequest(t, h, http.MethodPost, "/api/v1/vendors", models.VendorInput{Name: "Anand Wholesale"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, errorMsg(t, w), "already exists")

	// update
	w = doRequest(t, h, http.MethodPut, fmt.Sprintf("/api/v1/vendors/%d", v.ID),
		models.VendorInput{Name: "Anand Traders", DefaultCreditDays: 15})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Vendor
	decodeData(t, w, &updated)
	assert.Equal(t, "Anand Traders", updated.Name)
	assert.Equal(t, 15, updated.DefaultCreditDays)

	// update of a missing vendor
	w = doRequest(t, h, http.MethodPut, "/api/v1/vendors/999", models.VendorInput{Name: "Nobody"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// get missing
	w = doRequest(t, h, http.MethodGet, "/api/v1/vendors/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// list with search
	createVendor(t, h, models.VendorInput{Name: "Bharat Stores"})
	w = doRequest(t, h, http.MethodGet, "/api/v1/vendors?search=Traders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var vendors []models.Vendor
	decodeData(t, w, &vendors)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Anand Traders", vendors[0].Name)
}

func TestVendorValidation(t *testing.T) {
	setupDB(t)
	h := newRouter()

	w := doRequest(t, h, http.MethodPost, "/api/v1/vendors", models.VendorInput{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name is required", errorMsg(t, w))

	w = doRequest(t, h, http.MethodPost, "/api/v1/vendors",
		map[string]any{"name": "X", "default_credit_days": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPurchaseCreateDerivesStatus(t *testing.T) {
	setupDB(t)
	h := newRouter()
	v := createVendor(t, h, models.VendorInput{Name: "Anand Wholesale"})

	p := createPurchase(t, h, models.PurchaseInput{
		VendorID:    v.ID,
		BillNo:      "INV-001",
		BillDate:    day(-10),
		DueDate:     day(5),
		BillAmount:  100000,
		AdvancePaid: 30000,
	})
	assert.Equal(t, models.StatusPending, p.Status)
	assert.Equal(t, models.Money(70000), p.PendingAmount)
	assert.Equal(t, 5, p.DaysRemaining)
	assert.Equal(t, 15, p.CreditDays)
	assert.Equal(t, models.PaymentTypeCredit, p.PaymentType)
	require.NotNil(t, p.VendorName)
	assert.Equal(t, "Anand Wholesale", *p.VendorName)

	overdue := createPurchase(t, h, models.PurchaseInput{
		VendorID: v.ID, BillNo: "INV-002", BillDate: day(-30), DueDate: day(-3), BillAmount: 50000,
	})
	assert.Equal(t, models.StatusOverdue, overdue.Status)
	assert.Equal(t, -3, overdue.DaysRemaining)

	// vendor totals reflect the open bills
	w := doRequest(t, h, http.MethodGet, fmt.Sprintf("/api/v1/vendors/%d", v.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Vendor
	decodeData(t, w, &got)
	assert.Equal(t, 2, got.OpenBills)
	assert.Equal(t, models.Money(120000), got.TotalPending)

	// unknown vendor
	w = doRequest(t, h, http.MethodPost, "/api/v1/purchases", models.PurchaseInput{
		VendorID: 999, BillNo: "INV-003", BillDate: day(0), DueDate: day(10), BillAmount: 1000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMsg(t, w), "vendor_id")

	// malformed date
	w = doRequest(t, h, http.MethodPost, "/api/v1/purchases", models.PurchaseInput{
		VendorID: v.ID, BillNo: "INV-004", BillDate: "02-01-2025", DueDate: day(10), BillAmount: 1000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPurchasesFilters(t *testing.T) {
	setupDB(t)
	h := newRouter()
	a := createVendor(t, h, models.VendorInput{Name: "Alpha"})
	b := createVendor(t, h, models.VendorInput{Name: "Bravo"})

	createPurchase(t, h, models.PurchaseInput{
		VendorID: a.ID, BillNo: "A-1", BillDate: day(-5), DueDate: day(10), BillAmount: 1000,
	})
	createPurchase(t, h, models.PurchaseInput{
		VendorID: b.ID, BillNo: "B-1", BillDate: day(-5), DueDate: day(10), BillAmount: 2000,
		PaymentType: models.PaymentTypeCash,
	})

	w := doRequest(t, h, http.MethodGet, fmt.Sprintf("/api/v1/purchases?vendor_id=%d", a.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var purchases []models.Purchase
	decodeData(t, w, &purchases)
	require.Len(t, purchases, 1)
	assert.Equal(t, "A-1", purchases[0].BillNo)

	w = doRequest(t, h, http.MethodGet, "/api/v1/purchases?payment_type=Cash", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &purchases)
	require.Len(t, purchases, 1)
	assert.Equal(t, "B-1", purchases[0].BillNo)

	w = doRequest(t, h, http.MethodGet, "/api/v1/purchases?payment_type=all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &purchases)
	assert.Len(t, purchases, 2)
}

func TestPaymentFlow(t *testing.T) {
	setupDB(t)
	h := newRouter()
	v := createVendor(t, h, models.VendorInput{Name: "Anand Wholesale"})
	p := createPurchase(t, h, models.PurchaseInput{
		VendorID: v.ID, BillNo: "INV-001", BillDate: day(-30), DueDate: day(-3), BillAmount: 50000,
	})
	require.Equal(t, models.StatusOverdue, p.Status)

	// first payment leaves a balance
	w := doRequest(t, h, http.MethodPost, fmt.Sprintf("/api/v1/purchases/%d/payments", p.ID),
		models.PaymentInput{PaidAmount: 20000, Method: "UPI"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pay models.Payment
	decodeData(t, w, &pay)
	assert.Equal(t, models.Money(20000), pay.PaidAmount)
	assert.Equal(t, "UPI", pay.Method)
	assert.Equal(t, day(0), pay.PaidDate) // defaulted to today

	got := getPurchase(t, h, p.ID)
	assert.Equal(t, models.Money(20000), got.AdvancePaid)
	assert.Equal(t, models.Money(30000), got.PendingAmount)
	assert.Equal(t, models.StatusOverdue, got.Status)

	// second payment settles the bill
	w = doRequest(t, h, http.MethodPost, fmt.Sprintf("/api/v1/purchases/%d/payments", p.ID),
		models.PaymentInput{PaidAmount: 30000, PaidDate: day(0)})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	got = getPurchase(t, h, p.ID)
	assert.Equal(t, models.StatusPaid, got.Status)
	assert.Equal(t, models.Money(0), got.PendingAmount)

	// both payments listed
	w = doRequest(t, h, http.MethodGet, fmt.Sprintf("/api/v1/purchases/%d/payments", p.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var payments []models.Payment
	decodeData(t, w, &payments)
	assert.Len(t, payments, 2)

	// payment against a missing purchase is rejected, not skipped
	w = doRequest(t, h, http.MethodPost, "/api/v1/purchases/999/payments",
		models.PaymentInput{PaidAmount: 100})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "purchase not found", errorMsg(t, w))

	w = doRequest(t, h, http.MethodGet, "/api/v1/purchases/999/payments", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentEditAdjustsLedgerByDelta(t *testing.T) {
	setupDB(t)
	h := newRouter()
	v := createVendor(t, h, models.VendorInput{Name: "Anand Wholesale"})
	p := createPurchase(t, h, models.PurchaseInput{
		VendorID: v.ID, BillNo: "INV-001", BillDate: day(-30), DueDate: day(-3), BillAmount: 50000,
	})

	w := doRequest(t, h, http.MethodPost, fmt.Sprintf("/api/v1/purchases/%d/payments", p.ID),
		models.PaymentInput{PaidAmount: 50000})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pay models.Payment
	decodeData(t, w, &pay)
	require.Equal(t, models.StatusPaid, getPurchase(t, h, p.ID).Status)

	// shrinking the payment reopens the bill
	w = doRequest(t, h, http.MethodPut, fmt.Sprintf("/api/v1/payments/%d", pay.ID),
		models.PaymentInput{PaidAmount: 20000, PaidDate: pay.PaidDate})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got := getPurchase(t, h, p.ID)
	assert.Equal(t, models.Money(20000), got.AdvancePaid)
	assert.Equal(t, models.StatusOverdue, got.Status)

	// editing a missing payment
	w = doRequest(t, h, http.MethodPut, "/api/v1/payments/999",
		models.PaymentInput{PaidAmount: 100})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentDeleteRestoresLedger(t *testing.T) {
	setupDB(t)
	h := newRouter()
	v := createVendor(t, h, models.VendorInput{Name: "Anand Wholesale"})
	p := createPurchase(t, h, models.PurchaseInput{
		VendorID: v.ID, BillNo: "INV-001", BillDate: day(-30), DueDate: day(-3),
		BillAmount: 50000, AdvancePaid: 10000,
	})

	w := doRequest(t, h, http.MethodPost, fmt.Sprintf("/api/v1/purchases/%d/payments", p.ID),
		models.PaymentInput{PaidAmount: 40000})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pay models.Payment
	decodeData(t, w, &pay)
	require.Equal(t, models.StatusPaid, getPurchase(t, h, p.ID).Status)

	w = doRequest(t, h, http.MethodDelete, fmt.Sprintf("/api/v1/payments/%d", pay.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// back to exactly the pre-payment state
	got := getPurchase(t, h, p.ID)
	assert.Equal(t, models.Money(10000), got.AdvancePaid)
	assert.Equal(t, models.Money(40000), got.PendingAmount)
	assert.Equal(t, models.StatusOverdue, got.Status)

	w = doRequest(t, h, http.MethodGet, fmt.Sprintf("/api/v1/payments/%d", pay.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, h, http.MethodDelete, "/api/v1/payments/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentValidation(t *testing.T) {
	setupDB(t)
	h := newRouter()
	v := createVendor(t, h, models.VendorInput{Name: "Anand Wholesale"})
	p := createPurchase(t, h, models.PurchaseInput{
		VendorID: v.ID, BillNo: "INV-001", BillDate: day(0), DueDate: day(10), BillAmount: 1000,
	})

	w := doRequest(t, h, http.MethodPost, fmt.Sprintf("/api/v1/purchases/%d/payments", p.ID),
		models.PaymentInput{PaidAmount: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "paid_amount must be positive", errorMsg(t, w))

	w = doRequest(t, h, http.MethodPost, fmt.Sprintf("/api/v1/purchases/%d/payments", p.ID),
		models.PaymentInput{PaidAmount: 100, PaidDate: "tomorrow"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckLifecycle(t *testing.T) {
	setupDB(t)
	h := newRouter()
	v := createVendor(t, h, models.VendorInput{Name: "Anand Wholesale"})

	w := doRequest(t, h, http.MethodPost, "/api/v1/checks", models.CheckInput{
		VendorID: v.ID, CheckNumber: "000123", CheckDate: day(15), Remarks: strptr("rent advance"),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var c models.Check
	decodeData(t, w, &c)
	assert.Equal(t, models.CheckPending, c.Status) // defaulted
	require.NotNil(t, c.VendorName)
	assert.Equal(t, "Anand Wholesale", *c.VendorName)

	// manual status transition
	w = doRequest(t, h, http.MethodPut, fmt.Sprintf("/api/v1/checks/%d/status", c.ID),
		models.CheckStatusInput{Status: models.CheckCleared})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Check
	decodeData(t, w, &updated)
	assert.Equal(t, models.CheckCleared, updated.Status)

	// invalid status
	w = doRequest(t, h, http.MethodPut, fmt.Sprintf("/api/v1/checks/%d/status", c.ID),
		models.CheckStatusInput{Status: "Shredded"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// filter by status
	doRequest(t, h, http.MethodPost, "/api/v1/checks", models.CheckInput{
		VendorID: v.ID, CheckNumber: "000124", CheckDate: day(30),
	})
	w = doRequest(t, h, http.MethodGet, "/api/v1/checks?status=Pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var checks []models.Check
	decodeData(t, w, &checks)
	require.Len(t, checks, 1)
	assert.Equal(t, "000124", checks[0].CheckNumber)

	// unknown vendor
	w = doRequest(t, h, http.MethodPost, "/api/v1/checks", models.CheckInput{
		VendorID: 999, CheckNumber: "000125", CheckDate: day(1),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// delete
	w = doRequest(t, h, http.MethodDelete, fmt.Sprintf("/api/v1/checks/%d", c.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, h, http.MethodGet, fmt.Sprintf("/api/v1/checks/%d", c.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type dashboardResponse struct {
	Overdue       []models.Purchase      `json:"overdue"`
	DueToday      []models.Purchase      `json:"due_today"`
	DueSoon       []models.Purchase      `json:"due_soon"`
	Paid          []models.Purchase      `json:"paid"`
	OverdueTotal  models.Money           `json:"overdue_total"`
	DueTodayTotal models.Money           `json:"due_today_total"`
	DueSoonTotal  models.Money           `json:"due_soon_total"`
	PaidTotal     models.Money           `json:"paid_total"`
	Vendors       []ledger.VendorSummary `json:"vendor_summary"`
	ReminderDays  int                    `json:"reminder_days"`
	PaymentType   string                 `json:"payment_type"`
}

func TestDashboard(t *testing.T) {
	setupDB(t)
	h := newRouter()
	alpha := createVendor(t, h, models.VendorInput{Name: "Alpha Traders", Phone: strptr("111")})
	bravo := createVendor(t, h, models.VendorInput{Name: "Bravo Stores"})

	createPurchase(t, h, models.PurchaseInput{ // overdue
		VendorID: alpha.ID, BillNo: "A-1", BillDate: day(-30), DueDate: day(-2), BillAmount: 50000,
	})
	createPurchase(t, h, models.PurchaseInput{ // due soon, partially paid
		VendorID: alpha.ID, BillNo: "A-2", BillDate: day(-10), DueDate: day(3),
		BillAmount: 30000, AdvancePaid: 10000,
	})
	createPurchase(t, h, models.PurchaseInput{ // due today, cash
		VendorID: bravo.ID, BillNo: "B-1", BillDate: day(-7), DueDate: day(0),
		BillAmount: 15000, PaymentType: models.PaymentTypeCash,
	})
	createPurchase(t, h, models.PurchaseInput{ // beyond the reminder window
		VendorID: bravo.ID, BillNo: "B-2", BillDate: day(0), DueDate: day(30), BillAmount: 40000,
	})
	createPurchase(t, h, models.PurchaseInput{ // settled
		VendorID: bravo.ID, BillNo: "B-3", BillDate: day(-40), DueDate: day(-10),
		BillAmount: 25000, AdvancePaid: 25000,
	})

	w := doRequest(t, h, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var d dashboardResponse
	decodeData(t, w, &d)

	assert.Equal(t, 7, d.ReminderDays)
	assert.Equal(t, "all", d.PaymentType)

	require.Len(t, d.Overdue, 1)
	assert.Equal(t, "A-1", d.Overdue[0].BillNo)
	assert.Equal(t, models.Money(50000), d.OverdueTotal)

	require.Len(t, d.DueToday, 1)
	assert.Equal(t, "B-1", d.DueToday[0].BillNo)
	assert.Equal(t, models.Money(15000), d.DueTodayTotal)

	require.Len(t, d.DueSoon, 1)
	assert.Equal(t, "A-2", d.DueSoon[0].BillNo)
	assert.Equal(t, models.Money(20000), d.DueSoonTotal) // pending, not bill amount

	require.Len(t, d.Paid, 1)
	assert.Equal(t, "B-3", d.Paid[0].BillNo)
	assert.Equal(t, models.Money(25000), d.PaidTotal)

	// vendor summary counts every open bill, windowed or not
	require.Len(t, d.Vendors, 2)
	assert.Equal(t, ledger.VendorSummary{Name: "Alpha Traders", Phone: strptr("111"), Bills: 2, TotalPending: 70000}, d.Vendors[0])
	assert.Equal(t, "Bravo Stores", d.Vendors[1].Name)
	assert.Equal(t, 2, d.Vendors[1].Bills)
	assert.Equal(t, models.Money(55000), d.Vendors[1].TotalPending)

	// widening the window pulls B-2 in
	w = doRequest(t, h, http.MethodGet, "/api/v1/dashboard?days=45", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &d)
	assert.Len(t, d.DueSoon, 2)
	assert.Equal(t, models.Money(60000), d.DueSoonTotal)
	assert.Equal(t, 45, d.ReminderDays)

	// payment type filter
	w = doRequest(t, h, http.MethodGet, "/api/v1/dashboard?payment_type=Cash", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &d)
	assert.Empty(t, d.Overdue)
	require.Len(t, d.DueToday, 1)
	require.Len(t, d.Vendors, 1)
	assert.Equal(t, "Bravo Stores", d.Vendors[0].Name)
	assert.Equal(t, 1, d.Vendors[0].Bills)

	// invalid window
	w = doRequest(t, h, http.MethodGet, "/api/v1/dashboard?days=soon", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doRequest(t, h, http.MethodGet, "/api/v1/dashboard?days=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBasicAuth(t *testing.T) {
	setupDB(t)
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(BasicAuth("admin", "secret"))
		r.Get("/vendors", ListVendors)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendors", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `Basic realm="payables"`, w.Header().Get("WWW-Authenticate"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/vendors", nil)
	req.SetBasicAuth("admin", "wrong")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/vendors", nil)
	req.SetBasicAuth("admin", "secret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
