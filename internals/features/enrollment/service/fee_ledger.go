// file: internals/features/enrollment/service/fee_ledger.go
package service

import (
	"github.com/shopspring/decimal"

	"lembagaku_backend/internals/helpers/errs"
)

// ComputeLedger derives the admission financial summary from its three
// independent inputs. total and balance are derived values only; callers must
// re-derive whenever fees, discount or feePaid changes.
func ComputeLedger(fees, discount, feePaid decimal.Decimal) (total, balance decimal.Decimal) {
	total = fees.Sub(discount).Round(2)
	balance = total.Sub(feePaid).Round(2)
	return total, balance
}

// ValidateLedger enforces the submission-time value invariants:
// all inputs non-negative, discount <= fees and feePaid <= total.
// Equality at either bound is accepted.
func ValidateLedger(fees, discount, feePaid decimal.Decimal) error {
	if fees.IsNegative() {
		return errs.NewValidation("fees", "must not be negative")
	}
	if discount.IsNegative() {
		return errs.NewValidation("discount", "must not be negative")
	}
	if feePaid.IsNegative() {
		return errs.NewValidation("fee_paid", "must not be negative")
	}
	if discount.GreaterThan(fees) {
		return errs.NewValidation("discount", "must not exceed fees")
	}
	total := fees.Sub(discount)
	if feePaid.GreaterThan(total) {
		return errs.NewValidation("fee_paid", "must not exceed total (fees - discount)")
	}
	return nil
}
