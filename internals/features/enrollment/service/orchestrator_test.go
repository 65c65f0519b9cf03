// file: internals/features/enrollment/service/orchestrator_test.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lembagaku_backend/internals/constants"
	accountModel "lembagaku_backend/internals/features/finance/accounts/model"
	accountService "lembagaku_backend/internals/features/finance/accounts/service"
	feeModel "lembagaku_backend/internals/features/finance/fees/model"
	journalModel "lembagaku_backend/internals/features/finance/journal/model"
	journalService "lembagaku_backend/internals/features/finance/journal/service"
	admissionModel "lembagaku_backend/internals/features/school/admissions/model"
	leadModel "lembagaku_backend/internals/features/school/leads/model"
	studentModel "lembagaku_backend/internals/features/school/students/model"
	"lembagaku_backend/internals/helpers/errs"
	"lembagaku_backend/internals/helpers/scope"
)

// =========================================================
// IN-MEMORY STORE FAKES
// =========================================================

type fakeStudentStore struct {
	rows      []*studentModel.Student
	creates   int
	updates   int
	createErr error
}

func (s *fakeStudentStore) FindByMobile(_ context.Context, schoolID uuid.UUID, mobile string) (*studentModel.Student, error) {
	for _, m := range s.rows {
		if m.StudentSchoolID == schoolID && m.StudentMobile == mobile {
			return m, nil
		}
	}
	return nil, nil
}

func (s *fakeStudentStore) FindByID(_ context.Context, schoolID, id uuid.UUID) (*studentModel.Student, error) {
	for _, m := range s.rows {
		if m.StudentSchoolID == schoolID && m.StudentID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (s *fakeStudentStore) Create(_ context.Context, m *studentModel.Student) error {
	if s.createErr != nil {
		return s.createErr
	}
	m.StudentID = uuid.New()
	s.rows = append(s.rows, m)
	s.creates++
	return nil
}

func (s *fakeStudentStore) Update(_ context.Context, m *studentModel.Student) error {
	s.updates++
	return nil
}

type fakeAdmissionStore struct {
	rows      []*admissionModel.Admission
	creates   int
	updates   int
	createErr error
}

func (s *fakeAdmissionStore) FindByID(_ context.Context, schoolID, id uuid.UUID) (*admissionModel.Admission, error) {
	for _, m := range s.rows {
		if m.AdmissionSchoolID == schoolID && m.AdmissionID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (s *fakeAdmissionStore) Create(_ context.Context, m *admissionModel.Admission) error {
	if s.createErr != nil {
		return s.createErr
	}
	m.AdmissionID = uuid.New()
	s.rows = append(s.rows, m)
	s.creates++
	return nil
}

func (s *fakeAdmissionStore) Update(_ context.Context, m *admissionModel.Admission) error {
	s.updates++
	return nil
}

type fakeFeeStore struct {
	live       map[uuid.UUID]*feeModel.FeeRecord
	replaces   int
	replaceErr error
}

func (s *fakeFeeStore) Replace(_ context.Context, m *feeModel.FeeRecord) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	if s.live == nil {
		s.live = map[uuid.UUID]*feeModel.FeeRecord{}
	}
	m.FeeRecordID = uuid.New()
	s.live[m.FeeRecordAdmissionID] = m
	s.replaces++
	return nil
}

func (s *fakeFeeStore) FindByAdmission(_ context.Context, _ uuid.UUID, admissionID uuid.UUID) (*feeModel.FeeRecord, error) {
	return s.live[admissionID], nil
}

type fakeLeadStore struct {
	rows      []*leadModel.Lead
	createErr error
}

func (s *fakeLeadStore) Create(_ context.Context, m *leadModel.Lead) error {
	if s.createErr != nil {
		return s.createErr
	}
	m.LeadID = uuid.New()
	s.rows = append(s.rows, m)
	return nil
}

type fakeAccountStore struct {
	groups   map[string]uuid.UUID
	accounts []accountModel.Account
}

func (s *fakeAccountStore) GroupIDByName(_ context.Context, _ uuid.UUID, name string) (uuid.UUID, error) {
	return s.groups[name], nil
}

func (s *fakeAccountStore) FindInGroup(_ context.Context, _ uuid.UUID, groupID uuid.UUID, name, mobile string) (uuid.UUID, error) {
	for _, a := range s.accounts {
		if a.AccountGroupID == groupID && strings.EqualFold(a.AccountName, name) &&
			a.AccountMobile != nil && *a.AccountMobile == mobile {
			return a.AccountID, nil
		}
	}
	return uuid.Nil, nil
}

func (s *fakeAccountStore) FindByGroupAndName(_ context.Context, _ uuid.UUID, groupName, accountName string) (uuid.UUID, error) {
	gid := s.groups[groupName]
	for _, a := range s.accounts {
		if a.AccountGroupID == gid && strings.EqualFold(a.AccountName, accountName) {
			return a.AccountID, nil
		}
	}
	return uuid.Nil, nil
}

func (s *fakeAccountStore) Create(_ context.Context, acc *accountModel.Account) error {
	acc.AccountID = uuid.New()
	s.accounts = append(s.accounts, *acc)
	return nil
}

func (s *fakeAccountStore) addGroup(name string) uuid.UUID {
	if s.groups == nil {
		s.groups = map[string]uuid.UUID{}
	}
	id := uuid.New()
	s.groups[name] = id
	return id
}

func (s *fakeAccountStore) addAccount(groupID uuid.UUID, name string) uuid.UUID {
	id := uuid.New()
	s.accounts = append(s.accounts, accountModel.Account{
		AccountID:      id,
		AccountGroupID: groupID,
		AccountName:    name,
	})
	return id
}

type fakeJournalStore struct {
	posted  []journalModel.Transaction
	postErr error
}

func (s *fakeJournalStore) Post(_ context.Context, tx *journalModel.Transaction) error {
	if s.postErr != nil {
		return s.postErr
	}
	tx.TransactionID = uuid.New()
	s.posted = append(s.posted, *tx)
	return nil
}

// =========================================================
// FIXTURE
// =========================================================

type fixture struct {
	sc scope.Scope

	students   *fakeStudentStore
	admissions *fakeAdmissionStore
	fees       *fakeFeeStore
	leads      *fakeLeadStore
	accounts   *fakeAccountStore
	journal    *fakeJournalStore

	cashAccountID       uuid.UUID
	bankAccountID       uuid.UUID
	receivableAccountID uuid.UUID

	orch *Orchestrator
}

// newFixture provisions the fixed chart of accounts every school starts with.
func newFixture() *fixture {
	f := &fixture{
		sc:         scope.Scope{SchoolID: uuid.New(), UserID: uuid.New()},
		students:   &fakeStudentStore{},
		admissions: &fakeAdmissionStore{},
		fees:       &fakeFeeStore{},
		leads:      &fakeLeadStore{},
		accounts:   &fakeAccountStore{},
		journal:    &fakeJournalStore{},
	}

	f.accounts.addGroup(constants.AccountGroupStudent)
	paymentGroup := f.accounts.addGroup(constants.AccountGroupPayment)
	receivableGroup := f.accounts.addGroup(constants.AccountGroupReceivable)

	f.cashAccountID = f.accounts.addAccount(paymentGroup, constants.AccountNameCash)
	f.bankAccountID = f.accounts.addAccount(paymentGroup, constants.AccountNameBank)
	f.receivableAccountID = f.accounts.addAccount(receivableGroup, constants.AccountNameFeesReceivable)

	f.orch = &Orchestrator{
		Students:   f.students,
		Admissions: f.admissions,
		Fees:       f.fees,
		Leads:      f.leads,
		Accounts:   &accountService.Resolver{Store: f.accounts},
		Journal:    &journalService.Poster{Store: f.journal},
	}
	return f
}

func (f *fixture) input() Input {
	return Input{
		Scope:            f.sc,
		FirstName:        "Asha",
		Mobile:           "9876543210",
		CourseID:         uuid.New(),
		AdmissionDate:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Fees:             d("10000.00"),
		Discount:         d("1000.00"),
		FeePaid:          d("3000.00"),
		InstallmentCount: 6,
		PaymentMode:      constants.PaymentModeCash,
	}
}

// =========================================================
// TESTS
// =========================================================

func TestSubmit_CreateHappyPath(t *testing.T) {
	f := newFixture()

	res, err := f.orch.Submit(context.Background(), f.input())
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	require.Equal(t, []Step{
		StepValidatingInput,
		StepPersistingStudent,
		StepPersistingAdmission,
		StepPersistingFeeSchedule,
		StepConvertingLead,
		StepResolvingAccounts,
		StepPostingLedger,
		StepDone,
	}, res.Completed)

	// Student + admission ledger values
	require.NotNil(t, res.Student)
	require.NotNil(t, res.Admission)
	assert.Equal(t, res.Student.StudentID, res.Admission.AdmissionStudentID)
	assert.True(t, res.Admission.AdmissionTotal.Equal(d("9000.00")))
	assert.True(t, res.Admission.AdmissionBalance.Equal(d("6000.00")))

	// Fee schedule: 6 x 1000 from the 6000 balance
	require.NotNil(t, res.FeeRecord)
	assert.True(t, res.FeeRecord.FeeRecordEMI.Equal(d("1000.00")))
	var plan InstallmentPlan
	require.NoError(t, json.Unmarshal(res.FeeRecord.FeeRecordPlan, &plan))
	require.Len(t, plan, 6)
	assert.True(t, plan.Sum().Equal(d("6000.00")))

	// Lead opened (not from an enquiry)
	require.NotNil(t, res.Lead)
	var followups []leadModel.Followup
	require.NoError(t, json.Unmarshal(res.Lead.LeadFollowups, &followups))
	require.Len(t, followups, 1)
	assert.Equal(t, leadModel.FollowupStatusOpen, followups[0].Status)

	// Ledger: receipt (3000) then receivable (9000), both balanced
	require.Len(t, res.Transactions, 2)
	receipt, receivable := res.Transactions[0], res.Transactions[1]
	assert.True(t, receipt.DebitTotal().Equal(d("3000.00")))
	assert.True(t, receipt.DebitTotal().Equal(receipt.CreditTotal()))
	assert.True(t, receivable.DebitTotal().Equal(d("9000.00")))
	assert.True(t, receivable.DebitTotal().Equal(receivable.CreditTotal()))

	// Student party account was auto-created in the ACCOUNT group
	studentAccountID, err := f.accounts.FindInGroup(context.Background(), f.sc.SchoolID,
		f.accounts.groups[constants.AccountGroupStudent], "Asha", "9876543210")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, studentAccountID)
	assert.Equal(t, studentAccountID, receipt.TransactionEntries[0].JournalEntryAccountID)
	assert.Equal(t, f.cashAccountID, receipt.TransactionEntries[1].JournalEntryAccountID)
	assert.Equal(t, f.receivableAccountID, receivable.TransactionEntries[0].JournalEntryAccountID)
}

func TestSubmit_InvalidMobileWritesNothing(t *testing.T) {
	f := newFixture()
	in := f.input()
	in.Mobile = "12345"

	res, err := f.orch.Submit(context.Background(), in)

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "student_mobile", ve.Field)

	var se *errs.StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, string(StepValidatingInput), se.Step)

	assert.Empty(t, res.Completed)
	assert.Zero(t, f.students.creates)
	assert.Zero(t, f.admissions.creates)
	assert.Zero(t, f.fees.replaces)
	assert.Empty(t, f.leads.rows)
	assert.Empty(t, f.journal.posted)
}

func TestSubmit_DuplicateMobileRejected(t *testing.T) {
	f := newFixture()
	f.students.rows = append(f.students.rows, &studentModel.Student{
		StudentID:        uuid.New(),
		StudentSchoolID:  f.sc.SchoolID,
		StudentFirstName: "Existing",
		StudentMobile:    "9876543210",
	})

	_, err := f.orch.Submit(context.Background(), f.input())

	var de *errs.DuplicateMobileError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "9876543210", de.Mobile)
	assert.Zero(t, f.students.creates)
	assert.Zero(t, f.admissions.creates)
}

func TestSubmit_OverpaymentRejected(t *testing.T) {
	f := newFixture()
	in := f.input()
	in.Fees = d("5000")
	in.Discount = d("4000")
	in.FeePaid = d("1500") // fits fees but not fees-discount

	_, err := f.orch.Submit(context.Background(), in)

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "fee_paid", ve.Field)
	assert.Zero(t, f.students.creates)
}

func TestSubmit_MidPipelineFailureKeepsEarlierWrites(t *testing.T) {
	f := newFixture()
	f.admissions.createErr = errors.New("admissions collection unavailable")

	res, err := f.orch.Submit(context.Background(), f.input())

	var se *errs.StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, string(StepPersistingAdmission), se.Step)

	// The student write is not rolled back; the markers show how far we got.
	assert.Equal(t, 1, f.students.creates)
	assert.NotNil(t, res.Student)
	assert.Equal(t, []Step{StepValidatingInput, StepPersistingStudent}, res.Completed)
	assert.Empty(t, f.journal.posted)
}

func TestSubmit_MissingPaymentAccountIsFatal(t *testing.T) {
	f := newFixture()
	// Drop the Cash account: payment-mode accounts are provisioned, never created.
	kept := f.accounts.accounts[:0]
	for _, a := range f.accounts.accounts {
		if a.AccountID != f.cashAccountID {
			kept = append(kept, a)
		}
	}
	f.accounts.accounts = kept

	res, err := f.orch.Submit(context.Background(), f.input())

	var nf *errs.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "payment account", nf.Resource)

	var se *errs.StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, string(StepResolvingAccounts), se.Step)

	// Everything before the account step is saved; nothing reached the journal.
	assert.Equal(t, 1, f.admissions.creates)
	assert.Equal(t, 1, f.fees.replaces)
	assert.NotContains(t, res.Completed, StepPostingLedger)
	assert.Empty(t, f.journal.posted)
}

func TestSubmit_MissingReceivableDegradesToWarning(t *testing.T) {
	f := newFixture()
	kept := f.accounts.accounts[:0]
	for _, a := range f.accounts.accounts {
		if a.AccountID != f.receivableAccountID {
			kept = append(kept, a)
		}
	}
	f.accounts.accounts = kept

	res, err := f.orch.Submit(context.Background(), f.input())
	require.NoError(t, err)

	// Receipt still booked; the receivable posting is skipped, not failed.
	require.Len(t, res.Transactions, 1)
	assert.True(t, res.Transactions[0].DebitTotal().Equal(d("3000.00")))
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "receivable")
	assert.Contains(t, res.Completed, StepDone)
}

func TestSubmit_NoPaymentModeSkipsReceipt(t *testing.T) {
	f := newFixture()
	in := f.input()
	in.FeePaid = decimal.Zero
	in.PaymentMode = ""

	res, err := f.orch.Submit(context.Background(), in)
	require.NoError(t, err)

	// Only the receivable is booked.
	require.Len(t, res.Transactions, 1)
	assert.True(t, res.Transactions[0].DebitTotal().Equal(d("9000.00")))
	assert.True(t, res.Admission.AdmissionBalance.Equal(d("9000.00")))
}

func TestSubmit_ZeroBalanceEmptyPlan(t *testing.T) {
	f := newFixture()
	in := f.input()
	in.Fees = d("2000")
	in.Discount = decimal.Zero
	in.FeePaid = d("2000")
	in.InstallmentCount = 4
	in.PaymentMode = constants.PaymentModeBank

	res, err := f.orch.Submit(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, res.Admission.AdmissionBalance.IsZero())
	assert.True(t, res.FeeRecord.FeeRecordEMI.IsZero())
	var plan InstallmentPlan
	require.NoError(t, json.Unmarshal(res.FeeRecord.FeeRecordPlan, &plan))
	assert.Empty(t, plan)

	// Receipt through the bank account, plus the full receivable.
	require.Len(t, res.Transactions, 2)
	assert.Equal(t, f.bankAccountID, res.Transactions[0].TransactionEntries[1].JournalEntryAccountID)
}

func TestSubmit_EnquiryLeadConverted(t *testing.T) {
	f := newFixture()
	in := f.input()
	in.FromEnquiry = true

	res, err := f.orch.Submit(context.Background(), in)
	require.NoError(t, err)

	var followups []leadModel.Followup
	require.NoError(t, json.Unmarshal(res.Lead.LeadFollowups, &followups))
	require.Len(t, followups, 1)
	assert.Equal(t, leadModel.FollowupStatusConverted, followups[0].Status)
}

func TestSubmit_EditUpdatesInPlace(t *testing.T) {
	f := newFixture()

	first, err := f.orch.Submit(context.Background(), f.input())
	require.NoError(t, err)

	in := f.input()
	in.AdmissionID = first.Admission.AdmissionID
	in.Discount = d("2000.00")
	in.InstallmentCount = 4

	accountsBefore := len(f.accounts.accounts)

	second, err := f.orch.Submit(context.Background(), in)
	require.NoError(t, err)

	// Same student and admission rows, updated not duplicated.
	assert.Equal(t, first.Student.StudentID, second.Student.StudentID)
	assert.Equal(t, first.Admission.AdmissionID, second.Admission.AdmissionID)
	assert.Equal(t, 1, f.students.creates)
	assert.Equal(t, 1, f.students.updates)
	assert.Equal(t, 1, f.admissions.creates)
	assert.Equal(t, 1, f.admissions.updates)

	// Re-derived ledger and superseded fee schedule.
	assert.True(t, second.Admission.AdmissionTotal.Equal(d("8000.00")))
	assert.True(t, second.Admission.AdmissionBalance.Equal(d("5000.00")))
	assert.Equal(t, 2, f.fees.replaces)
	assert.True(t, second.FeeRecord.FeeRecordEMI.Equal(d("1250.00")))

	// Edits do not reopen lead history.
	assert.Nil(t, second.Lead)
	assert.Len(t, f.leads.rows, 1)

	// Account resolution is idempotent: no second party account.
	assert.Equal(t, accountsBefore, len(f.accounts.accounts))

	// The journal is append-only; the edit appends its own postings.
	assert.Len(t, f.journal.posted, 4)
}

func TestSubmit_EditOfUnknownAdmission(t *testing.T) {
	f := newFixture()
	in := f.input()
	in.AdmissionID = uuid.New()

	_, err := f.orch.Submit(context.Background(), in)

	var nf *errs.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "admission", nf.Resource)
	assert.Zero(t, f.students.creates)
}
