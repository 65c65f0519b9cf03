// file: internals/features/finance/journal/service/poster_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lembagaku_backend/internals/features/finance/journal/model"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

type memJournal struct {
	posted []model.Transaction
}

func (s *memJournal) Post(_ context.Context, tx *model.Transaction) error {
	tx.TransactionID = uuid.New()
	s.posted = append(s.posted, *tx)
	return nil
}

func posting() AdmissionPosting {
	return AdmissionPosting{
		SchoolID:            uuid.New(),
		Date:                time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		StudentAccountID:    uuid.New(),
		PaymentAccountID:    uuid.New(),
		ReceivableAccountID: uuid.New(),
		FeePaid:             d("3000.00"),
		Fees:                d("10000.00"),
		Discount:            d("1000.00"),
	}
}

func TestPostAdmissionLedger_BothPostings(t *testing.T) {
	store := &memJournal{}
	p := &Poster{Store: store}
	in := posting()

	posted, warnings, err := p.PostAdmissionLedger(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, posted, 2)

	receipt := posted[0]
	require.Len(t, receipt.TransactionEntries, 2)
	assert.Equal(t, in.StudentAccountID, receipt.TransactionEntries[0].JournalEntryAccountID)
	assert.Equal(t, model.EntryTypeDebit, receipt.TransactionEntries[0].JournalEntryType)
	assert.Equal(t, in.PaymentAccountID, receipt.TransactionEntries[1].JournalEntryAccountID)
	assert.Equal(t, model.EntryTypeCredit, receipt.TransactionEntries[1].JournalEntryType)
	assert.True(t, receipt.DebitTotal().Equal(d("3000.00")))
	assert.True(t, IsBalanced(&receipt))

	receivable := posted[1]
	assert.Equal(t, in.ReceivableAccountID, receivable.TransactionEntries[0].JournalEntryAccountID)
	assert.Equal(t, in.StudentAccountID, receivable.TransactionEntries[1].JournalEntryAccountID)
	assert.True(t, receivable.DebitTotal().Equal(d("9000.00")))
	assert.True(t, IsBalanced(&receivable))

	assert.Len(t, store.posted, 2)
}

func TestPostAdmissionLedger_NoPaymentSkipsReceipt(t *testing.T) {
	p := &Poster{Store: &memJournal{}}

	in := posting()
	in.FeePaid = decimal.Zero
	posted, warnings, err := p.PostAdmissionLedger(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, posted, 1)
	assert.True(t, posted[0].DebitTotal().Equal(d("9000.00")))

	in = posting()
	in.PaymentAccountID = uuid.Nil // amount paid but no mode selected
	posted, _, err = p.PostAdmissionLedger(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, posted, 1)
	assert.True(t, posted[0].DebitTotal().Equal(d("9000.00")))
}

func TestPostAdmissionLedger_FullDiscountSkipsReceivable(t *testing.T) {
	p := &Poster{Store: &memJournal{}}
	in := posting()
	in.Fees = d("1000.00")
	in.Discount = d("1000.00")
	in.FeePaid = decimal.Zero

	posted, warnings, err := p.PostAdmissionLedger(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Empty(t, posted)
}

func TestPostAdmissionLedger_MissingReceivableWarns(t *testing.T) {
	store := &memJournal{}
	p := &Poster{Store: store}
	in := posting()
	in.ReceivableAccountID = uuid.Nil

	posted, warnings, err := p.PostAdmissionLedger(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, posted, 1)
	assert.True(t, posted[0].DebitTotal().Equal(d("3000.00")))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "receivable")
	assert.Len(t, store.posted, 1)
}

func TestPost_RefusesUnbalanced(t *testing.T) {
	store := &memJournal{}
	p := &Poster{Store: store}

	tx := &model.Transaction{
		TransactionSchoolID: uuid.New(),
		TransactionDate:     time.Now(),
		TransactionEntries: []model.JournalEntry{
			{JournalEntryAccountID: uuid.New(), JournalEntryType: model.EntryTypeDebit, JournalEntryAmount: d("100.00")},
			{JournalEntryAccountID: uuid.New(), JournalEntryType: model.EntryTypeCredit, JournalEntryAmount: d("99.00")},
		},
	}

	err := p.post(context.Background(), tx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbalanced")
	assert.Empty(t, store.posted)
}

func TestIsBalanced(t *testing.T) {
	balanced := BuildReceiptTransaction(uuid.New(), time.Now(), uuid.New(), uuid.New(), d("250.00"), nil)
	assert.True(t, IsBalanced(balanced))

	balanced.TransactionEntries[0].JournalEntryAmount = d("250.01")
	assert.False(t, IsBalanced(balanced))
}
