// file: internals/features/enrollment/service/fee_ledger_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lembagaku_backend/internals/helpers/errs"
)

func TestComputeLedger(t *testing.T) {
	tests := []struct {
		name                          string
		fees, discount, feePaid       string
		wantTotal, wantBalance        string
	}{
		{"plain", "10000.00", "1000.00", "3000.00", "9000.00", "6000.00"},
		{"no discount", "5000.00", "0", "0", "5000.00", "5000.00"},
		{"fully paid", "2500.00", "500.00", "2000.00", "2000.00", "0"},
		{"full discount", "1200.00", "1200.00", "0", "0", "0"},
		{"fractional", "999.99", "0.33", "100.33", "999.66", "899.33"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, balance := ComputeLedger(d(tt.fees), d(tt.discount), d(tt.feePaid))
			assert.True(t, total.Equal(d(tt.wantTotal)), "total = %s, want %s", total, tt.wantTotal)
			assert.True(t, balance.Equal(d(tt.wantBalance)), "balance = %s, want %s", balance, tt.wantBalance)
		})
	}
}

func TestValidateLedger(t *testing.T) {
	tests := []struct {
		name                    string
		fees, discount, feePaid string
		wantField               string
	}{
		{"ok", "10000", "1000", "3000", ""},
		{"all zero", "0", "0", "0", ""},
		{"discount equals fees", "1000", "1000", "0", ""},
		{"paid equals total", "1000", "200", "800", ""},
		{"negative fees", "-1", "0", "0", "fees"},
		{"negative discount", "100", "-5", "0", "discount"},
		{"negative fee paid", "100", "0", "-5", "fee_paid"},
		{"discount exceeds fees", "100", "101", "0", "discount"},
		{"paid exceeds total", "1000", "200", "801", "fee_paid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLedger(d(tt.fees), d(tt.discount), d(tt.feePaid))
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *errs.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

// Overpayment relative to the post-discount total must be rejected even when
// it would fit the gross fees.
func TestValidateLedger_OverpaymentAgainstDiscountedTotal(t *testing.T) {
	err := ValidateLedger(d("5000"), d("4000"), d("1500"))
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "fee_paid", ve.Field)
}
