// file: internals/features/finance/journal/service/poster.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lembagaku_backend/internals/features/finance/journal/model"
)

// Store persists a balanced entry set.
type Store interface {
	Post(ctx context.Context, tx *model.Transaction) error
}

// AdmissionPosting carries everything the poster needs to book one admission.
// A uuid.Nil PaymentAccountID means no payment mode was selected; a uuid.Nil
// ReceivableAccountID means the receivable account is missing and that
// posting degrades to a warning.
type AdmissionPosting struct {
	SchoolID            uuid.UUID
	Date                time.Time
	StudentAccountID    uuid.UUID
	PaymentAccountID    uuid.UUID
	ReceivableAccountID uuid.UUID
	FeePaid             decimal.Decimal
	Fees                decimal.Decimal
	Discount            decimal.Decimal
	Note                *string
}

// Poster builds and persists the double-entry records of an admission.
type Poster struct {
	Store Store
}

// PostAdmissionLedger books the receipt (student debit / payment credit, for
// the amount collected now) and the receivable (receivable debit / student
// credit, for fees minus discount). Either posting is skipped when its
// preconditions do not hold; a missing receivable account downgrades that
// posting to a warning and the admission is still reported saved.
func (p *Poster) PostAdmissionLedger(ctx context.Context, in AdmissionPosting) ([]model.Transaction, []string, error) {
	var (
		posted   []model.Transaction
		warnings []string
	)

	if in.FeePaid.IsPositive() && in.PaymentAccountID != uuid.Nil {
		receipt := BuildReceiptTransaction(in.SchoolID, in.Date, in.StudentAccountID, in.PaymentAccountID, in.FeePaid, in.Note)
		if err := p.post(ctx, receipt); err != nil {
			return posted, warnings, err
		}
		posted = append(posted, *receipt)
	}

	receivable := in.Fees.Sub(in.Discount)
	if receivable.IsPositive() {
		if in.ReceivableAccountID == uuid.Nil {
			warnings = append(warnings, "receivable account missing; receivable posting skipped")
		} else {
			tx := BuildReceivableTransaction(in.SchoolID, in.Date, in.ReceivableAccountID, in.StudentAccountID, receivable, in.Note)
			if err := p.post(ctx, tx); err != nil {
				return posted, warnings, err
			}
			posted = append(posted, *tx)
		}
	}

	return posted, warnings, nil
}

func (p *Poster) post(ctx context.Context, tx *model.Transaction) error {
	if !IsBalanced(tx) {
		return fmt.Errorf("unbalanced transaction: debit %s != credit %s", tx.DebitTotal(), tx.CreditTotal())
	}
	return p.Store.Post(ctx, tx)
}

// BuildReceiptTransaction books the amount collected at admission time:
// Debit student account / Credit payment account.
func BuildReceiptTransaction(schoolID uuid.UUID, date time.Time, studentAccountID, paymentAccountID uuid.UUID, amount decimal.Decimal, note *string) *model.Transaction {
	return &model.Transaction{
		TransactionSchoolID: schoolID,
		TransactionDate:     date,
		TransactionNote:     note,
		TransactionEntries: []model.JournalEntry{
			{JournalEntryAccountID: studentAccountID, JournalEntryType: model.EntryTypeDebit, JournalEntryAmount: amount},
			{JournalEntryAccountID: paymentAccountID, JournalEntryType: model.EntryTypeCredit, JournalEntryAmount: amount},
		},
	}
}

// BuildReceivableTransaction books the fees owed after discount:
// Debit receivable account / Credit student account.
func BuildReceivableTransaction(schoolID uuid.UUID, date time.Time, receivableAccountID, studentAccountID uuid.UUID, amount decimal.Decimal, note *string) *model.Transaction {
	return &model.Transaction{
		TransactionSchoolID: schoolID,
		TransactionDate:     date,
		TransactionNote:     note,
		TransactionEntries: []model.JournalEntry{
			{JournalEntryAccountID: receivableAccountID, JournalEntryType: model.EntryTypeDebit, JournalEntryAmount: amount},
			{JournalEntryAccountID: studentAccountID, JournalEntryType: model.EntryTypeCredit, JournalEntryAmount: amount},
		},
	}
}

// IsBalanced reports whether debits equal credits across the entry set.
func IsBalanced(tx *model.Transaction) bool {
	return tx.DebitTotal().Equal(tx.CreditTotal())
}
