package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVendorInputValidate(t *testing.T) {
	v := VendorInput{}
	assert.Equal(t, "name is required", v.Validate())

	v = VendorInput{Name: "Anand Wholesale"}
	assert.Empty(t, v.Validate())
	assert.Equal(t, 30, v.DefaultCreditDays)

	v = VendorInput{Name: "Anand Wholesale", DefaultCreditDays: -1}
	assert.NotEmpty(t, v.Validate())
}

func TestPurchaseInputValidate(t *testing.T) {
	valid := PurchaseInput{
		VendorID: 1, BillNo: "INV-001", BillDate: "2025-06-01", DueDate: "2025-07-01", BillAmount: 1000,
	}

	p := valid
	assert.Empty(t, p.Validate())
	assert.Equal(t, PaymentTypeCredit, p.PaymentType)

	p = valid
	p.BillDate = "01-06-2025"
	assert.Equal(t, "bill_date must be a valid YYYY-MM-DD date", p.Validate())

	p = valid
	p.BillAmount = 0
	assert.NotEmpty(t, p.Validate())

	p = valid
	p.AdvancePaid = -1
	assert.NotEmpty(t, p.Validate())

	p = valid
	p.PaymentType = "Barter"
	assert.NotEmpty(t, p.Validate())
}

func TestPaymentInputValidate(t *testing.T) {
	p := PaymentInput{PaidAmount: 100}
	assert.Empty(t, p.Validate())
	assert.Equal(t, "Cash", p.Method)

	p = PaymentInput{PaidAmount: 0}
	assert.NotEmpty(t, p.Validate())

	p = PaymentInput{PaidAmount: 100, PaidDate: "2025-13-40"}
	assert.NotEmpty(t, p.Validate())
}

func TestCheckInputValidate(t *testing.T) {
	c := CheckInput{VendorID: 1, CheckNumber: "000123", CheckDate: "2025-06-01"}
	assert.Empty(t, c.Validate())
	assert.Equal(t, CheckPending, c.Status)

	c = CheckInput{VendorID: 1, CheckNumber: "000123", CheckDate: "2025-06-01", Status: "Lost"}
	assert.NotEmpty(t, c.Validate())

	s := CheckStatusInput{Status: CheckBounced}
	assert.Empty(t, s.Validate())
}
