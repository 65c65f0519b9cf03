// file: internals/features/finance/journal/model/transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUM: entry type
// =========================================================

type EntryType string

const (
	EntryTypeDebit  EntryType = "debit"
	EntryTypeCredit EntryType = "credit"
)

// =========================================================
// MODEL: append-only journal
// =========================================================

// Transaction is an immutable set of journal entries. Within one transaction
// sum(debit amounts) == sum(credit amounts); the poster refuses to persist
// anything that breaks that. No update or delete path exists.
type Transaction struct {
	// PK
	TransactionID uuid.UUID `gorm:"column:transaction_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"transaction_id"`

	// Scope
	TransactionSchoolID uuid.UUID `gorm:"column:transaction_school_id;type:uuid;not null;index:ix_transaction_school" json:"transaction_school_id"`

	TransactionDate time.Time `gorm:"column:transaction_date;type:date;not null;index:ix_transaction_date" json:"transaction_date"`
	TransactionNote *string   `gorm:"column:transaction_note;type:text" json:"transaction_note,omitempty"`

	TransactionEntries []JournalEntry `gorm:"foreignKey:JournalEntryTransactionID;references:TransactionID" json:"transaction_entries"`

	TransactionCreatedAt time.Time `gorm:"column:transaction_created_at;not null;default:now()" json:"transaction_created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// JournalEntry is one debit or credit line referencing an account.
type JournalEntry struct {
	// PK
	JournalEntryID uuid.UUID `gorm:"column:journal_entry_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"journal_entry_id"`

	// FK → transactions(transaction_id), accounts(account_id)
	JournalEntryTransactionID uuid.UUID `gorm:"column:journal_entry_transaction_id;type:uuid;not null;index:ix_journal_entry_transaction" json:"journal_entry_transaction_id"`
	JournalEntryAccountID     uuid.UUID `gorm:"column:journal_entry_account_id;type:uuid;not null;index:ix_journal_entry_account" json:"journal_entry_account_id"`

	JournalEntryType   EntryType       `gorm:"column:journal_entry_type;type:varchar(6);not null" json:"journal_entry_type"`
	JournalEntryAmount decimal.Decimal `gorm:"column:journal_entry_amount;type:numeric(14,2);not null;check:journal_entry_amount>=0" json:"journal_entry_amount"`

	JournalEntryCreatedAt time.Time `gorm:"column:journal_entry_created_at;not null;default:now()" json:"journal_entry_created_at"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// =========================================================
// HOOKS
// =========================================================

func (m *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if m.TransactionCreatedAt.IsZero() {
		m.TransactionCreatedAt = time.Now()
	}
	return nil
}

func (m *JournalEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if m.JournalEntryCreatedAt.IsZero() {
		m.JournalEntryCreatedAt = time.Now()
	}
	return nil
}

// DebitTotal sums the debit side of the transaction.
func (m *Transaction) DebitTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range m.TransactionEntries {
		if e.JournalEntryType == EntryTypeDebit {
			sum = sum.Add(e.JournalEntryAmount)
		}
	}
	return sum
}

// CreditTotal sums the credit side of the transaction.
func (m *Transaction) CreditTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range m.TransactionEntries {
		if e.JournalEntryType == EntryTypeCredit {
			sum = sum.Add(e.JournalEntryAmount)
		}
	}
	return sum
}
