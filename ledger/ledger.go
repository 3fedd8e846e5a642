package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopkeeper/payables/models"
)

// ErrPurchaseNotFound is returned when a payment mutation references a
// purchase that does not exist. The whole mutation must abort: committing
// the payment row without the recompute would desync the ledger.
var ErrPurchaseNotFound = errors.New("purchase not found")

// Op is a payment mutation kind.
type Op string

const (
	OpCreate Op = "create"
	OpEdit   Op = "edit"
	OpDelete Op = "delete"
)

// Store is the persistence handle a ledger pass works against. Callers hand
// in a transaction-scoped implementation so the purchase update commits or
// rolls back together with the payment row mutation.
type Store interface {
	// PurchaseFacts loads the stored bill facts for a purchase, or
	// ErrPurchaseNotFound.
	PurchaseFacts(ctx context.Context, purchaseID int) (Facts, error)
	// SavePurchaseLedger writes the recomputed ledger fields back to the
	// purchase row.
	SavePurchaseLedger(ctx context.Context, purchaseID int, u Update) error
}

// Update holds the recomputed purchase fields a ledger pass persists.
type Update struct {
	AdvancePaid   models.Money
	DueDate       string
	Status        string
	DaysRemaining int
}

// ApplyPayment recomputes a purchase's cumulative paid amount after a payment
// mutation and re-derives its status. The new advance_paid is a delta
// adjustment against the stored value: created payments add their amount,
// deletions subtract it, and edits apply the difference from prevAmount.
func ApplyPayment(ctx context.Context, store Store, purchaseID int, op Op, amount, prevAmount models.Money, today time.Time) (Update, error) {
	facts, err := store.PurchaseFacts(ctx, purchaseID)
	if err != nil {
		return Update{}, err
	}

	switch op {
	case OpCreate:
		facts.AdvancePaid += amount
	case OpEdit:
		facts.AdvancePaid += amount - prevAmount
	case OpDelete:
		facts.AdvancePaid -= amount
	default:
		return Update{}, fmt.Errorf("unknown payment operation %q", op)
	}

	derived, err := Derive(facts, today)
	if err != nil {
		return Update{}, err
	}

	u := Update{
		AdvancePaid:   facts.AdvancePaid,
		DueDate:       derived.DueDate,
		Status:        derived.Status,
		DaysRemaining: derived.DaysRemaining,
	}
	if err := store.SavePurchaseLedger(ctx, purchaseID, u); err != nil {
		return Update{}, err
	}
	return u, nil
}
