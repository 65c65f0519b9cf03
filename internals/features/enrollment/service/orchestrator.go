// file: internals/features/enrollment/service/orchestrator.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lembagaku_backend/internals/constants"
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
// STEPS
// =========================================================

type Step string

const (
	StepValidatingInput       Step = "validating_input"
	StepPersistingStudent     Step = "persisting_student"
	StepPersistingAdmission   Step = "persisting_admission"
	StepPersistingFeeSchedule Step = "persisting_fee_schedule"
	StepConvertingLead        Step = "converting_lead"
	StepResolvingAccounts     Step = "resolving_accounts"
	StepPostingLedger         Step = "posting_ledger"
	StepDone                  Step = "done"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// =========================================================
// INPUT / RESULT
// =========================================================

// Input is the normalized enrollment submission. StudentID/AdmissionID are
// uuid.Nil on the create path and set on the edit path.
type Input struct {
	Scope scope.Scope

	StudentID   uuid.UUID
	AdmissionID uuid.UUID

	FirstName    string
	LastName     *string
	DOB          *time.Time
	Gender       *string
	Mobile       string
	ParentMobile *string
	Address      *string

	CourseID uuid.UUID
	BatchID  *uuid.UUID
	ExamID   *uuid.UUID

	AdmissionDate    time.Time
	Fees             decimal.Decimal
	Discount         decimal.Decimal
	FeePaid          decimal.Decimal
	InstallmentCount int
	PaymentMode      string // ""|cash|bank

	FromEnquiry bool
	Note        *string
}

func (in *Input) isEdit() bool { return in.AdmissionID != uuid.Nil }

// Result reports what one submission persisted. Completed lists the steps
// that committed, in order; these are the saga markers a future
// compensation layer would walk backward; nothing is rolled back today.
type Result struct {
	Student      *studentModel.Student         `json:"student"`
	Admission    *admissionModel.Admission     `json:"admission"`
	FeeRecord    *feeModel.FeeRecord           `json:"fee_record"`
	Lead         *leadModel.Lead               `json:"lead,omitempty"`
	Transactions []journalModel.Transaction    `json:"transactions"`
	Warnings     []string                      `json:"warnings,omitempty"`
	Completed    []Step                        `json:"completed_steps"`
}

// =========================================================
// ORCHESTRATOR
// =========================================================

// Orchestrator runs one enrollment submission as a strictly sequential
// pipeline over independent store collaborators. No step retries; a failure
// aborts the remaining steps and leaves earlier writes in place.
type Orchestrator struct {
	Students   StudentStore
	Admissions AdmissionStore
	Fees       FeeStore
	Leads      LeadStore
	Accounts   *accountService.Resolver
	Journal    *journalService.Poster
}

// Submit runs the pipeline:
// validate → student → admission → fee schedule → lead → accounts → ledger.
func (o *Orchestrator) Submit(ctx context.Context, in Input) (*Result, error) {
	res := &Result{}
	mark := func(s Step) { res.Completed = append(res.Completed, s) }

	// ---- ValidatingInput: nothing is written before this passes
	if err := o.validate(ctx, &in); err != nil {
		return res, errs.AtStep(string(StepValidatingInput), err)
	}
	mark(StepValidatingInput)

	total, balance := ComputeLedger(in.Fees, in.Discount, in.FeePaid)

	// ---- PersistingStudent
	student, err := o.persistStudent(ctx, &in)
	if err != nil {
		return res, errs.AtStep(string(StepPersistingStudent), err)
	}
	res.Student = student
	mark(StepPersistingStudent)

	// ---- PersistingAdmission
	admission, err := o.persistAdmission(ctx, &in, student.StudentID, total, balance)
	if err != nil {
		return res, errs.AtStep(string(StepPersistingAdmission), err)
	}
	res.Admission = admission
	mark(StepPersistingAdmission)

	// ---- PersistingFeeSchedule
	feeRecord, err := o.persistFeeSchedule(ctx, &in, admission.AdmissionID, balance)
	if err != nil {
		return res, errs.AtStep(string(StepPersistingFeeSchedule), err)
	}
	res.FeeRecord = feeRecord
	mark(StepPersistingFeeSchedule)

	// ---- ConvertingLead (create path only; an edit keeps its lead history)
	if !in.isEdit() {
		lead, err := o.convertLead(ctx, &in, student.StudentID, admission.AdmissionID)
		if err != nil {
			return res, errs.AtStep(string(StepConvertingLead), err)
		}
		res.Lead = lead
	}
	mark(StepConvertingLead)

	// ---- ResolvingAccounts
	accounts, err := o.resolveAccounts(ctx, &in, student)
	if err != nil {
		return res, errs.AtStep(string(StepResolvingAccounts), err)
	}
	mark(StepResolvingAccounts)

	// ---- PostingLedger
	posted, warnings, err := o.Journal.PostAdmissionLedger(ctx, journalService.AdmissionPosting{
		SchoolID:            in.Scope.SchoolID,
		Date:                in.AdmissionDate,
		StudentAccountID:    accounts.student,
		PaymentAccountID:    accounts.payment,
		ReceivableAccountID: accounts.receivable,
		FeePaid:             in.FeePaid,
		Fees:                in.Fees,
		Discount:            in.Discount,
		Note:                in.Note,
	})
	res.Transactions = append(res.Transactions, posted...)
	res.Warnings = append(res.Warnings, warnings...)
	if err != nil {
		return res, errs.AtStep(string(StepPostingLedger), err)
	}
	mark(StepPostingLedger)

	mark(StepDone)
	return res, nil
}

// =========================================================
// STEP IMPLEMENTATIONS
// =========================================================

func (o *Orchestrator) validate(ctx context.Context, in *Input) error {
	if !mobilePattern.MatchString(in.Mobile) {
		return errs.NewValidation("student_mobile", "must be a 10-digit number")
	}
	if in.ParentMobile != nil && *in.ParentMobile != "" && !mobilePattern.MatchString(*in.ParentMobile) {
		return errs.NewValidation("student_parent_mobile", "must be a 10-digit number")
	}
	if in.InstallmentCount < 0 {
		return errs.NewValidation("installment_count", "must not be negative")
	}
	if err := ValidateLedger(in.Fees, in.Discount, in.FeePaid); err != nil {
		return err
	}

	// Edit path: the admission being edited pins the student identity.
	if in.isEdit() {
		adm, err := o.Admissions.FindByID(ctx, in.Scope.SchoolID, in.AdmissionID)
		if err != nil {
			return err
		}
		if adm == nil {
			return &errs.NotFoundError{Resource: "admission", Name: in.AdmissionID.String()}
		}
		if in.StudentID == uuid.Nil {
			in.StudentID = adm.AdmissionStudentID
		}
	}

	// Duplicate-mobile guard. The store also carries a unique index on
	// (school_id, mobile), so a concurrent create still loses there.
	existing, err := o.Students.FindByMobile(ctx, in.Scope.SchoolID, in.Mobile)
	if err != nil {
		return err
	}
	if existing != nil && existing.StudentID != in.StudentID {
		return &errs.DuplicateMobileError{Mobile: in.Mobile}
	}
	return nil
}

func (o *Orchestrator) persistStudent(ctx context.Context, in *Input) (*studentModel.Student, error) {
	if in.StudentID == uuid.Nil {
		m := &studentModel.Student{
			StudentSchoolID:     in.Scope.SchoolID,
			StudentFirstName:    in.FirstName,
			StudentLastName:     in.LastName,
			StudentDOB:          in.DOB,
			StudentGender:       in.Gender,
			StudentMobile:       in.Mobile,
			StudentParentMobile: in.ParentMobile,
			StudentAddress:      in.Address,
		}
		if err := o.Students.Create(ctx, m); err != nil {
			return nil, err
		}
		return m, nil
	}

	m, err := o.Students.FindByID(ctx, in.Scope.SchoolID, in.StudentID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, &errs.NotFoundError{Resource: "student", Name: in.StudentID.String()}
	}
	m.StudentFirstName = in.FirstName
	m.StudentLastName = in.LastName
	m.StudentDOB = in.DOB
	m.StudentGender = in.Gender
	m.StudentMobile = in.Mobile
	m.StudentParentMobile = in.ParentMobile
	m.StudentAddress = in.Address
	if err := o.Students.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (o *Orchestrator) persistAdmission(ctx context.Context, in *Input, studentID uuid.UUID, total, balance decimal.Decimal) (*admissionModel.Admission, error) {
	var paymentMode *string
	if in.PaymentMode != "" {
		pm := in.PaymentMode
		paymentMode = &pm
	}

	if !in.isEdit() {
		m := &admissionModel.Admission{
			AdmissionSchoolID:         in.Scope.SchoolID,
			AdmissionStudentID:        studentID,
			AdmissionCourseID:         in.CourseID,
			AdmissionBatchID:          in.BatchID,
			AdmissionExamID:           in.ExamID,
			AdmissionDate:             in.AdmissionDate,
			AdmissionFees:             in.Fees,
			AdmissionDiscount:         in.Discount,
			AdmissionTotal:            total,
			AdmissionFeePaid:          in.FeePaid,
			AdmissionBalance:          balance,
			AdmissionInstallmentCount: in.InstallmentCount,
			AdmissionPaymentMode:      paymentMode,
		}
		if err := o.Admissions.Create(ctx, m); err != nil {
			return nil, err
		}
		return m, nil
	}

	m, err := o.Admissions.FindByID(ctx, in.Scope.SchoolID, in.AdmissionID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, &errs.NotFoundError{Resource: "admission", Name: in.AdmissionID.String()}
	}
	m.AdmissionStudentID = studentID
	m.AdmissionCourseID = in.CourseID
	m.AdmissionBatchID = in.BatchID
	m.AdmissionExamID = in.ExamID
	m.AdmissionDate = in.AdmissionDate
	m.AdmissionFees = in.Fees
	m.AdmissionDiscount = in.Discount
	m.AdmissionTotal = total
	m.AdmissionFeePaid = in.FeePaid
	m.AdmissionBalance = balance
	m.AdmissionInstallmentCount = in.InstallmentCount
	m.AdmissionPaymentMode = paymentMode
	if err := o.Admissions.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (o *Orchestrator) persistFeeSchedule(ctx context.Context, in *Input, admissionID uuid.UUID, balance decimal.Decimal) (*feeModel.FeeRecord, error) {
	plan := BuildInstallmentPlan(balance, in.InstallmentCount, in.AdmissionDate)
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}

	m := &feeModel.FeeRecord{
		FeeRecordSchoolID:    in.Scope.SchoolID,
		FeeRecordAdmissionID: admissionID,
		FeeRecordEMI:         plan.EMI(),
		FeeRecordPlan:        planJSON,
	}
	if err := o.Fees.Replace(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (o *Orchestrator) convertLead(ctx context.Context, in *Input, studentID, admissionID uuid.UUID) (*leadModel.Lead, error) {
	status := leadModel.FollowupStatusOpen
	if in.FromEnquiry {
		status = leadModel.FollowupStatusConverted
	}
	followups, err := json.Marshal([]leadModel.Followup{
		{Status: status, Note: in.Note, At: time.Now()},
	})
	if err != nil {
		return nil, err
	}

	m := &leadModel.Lead{
		LeadSchoolID:    in.Scope.SchoolID,
		LeadStudentID:   studentID,
		LeadAdmissionID: admissionID,
		LeadFollowups:   followups,
	}
	if err := o.Leads.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

type resolvedAccounts struct {
	student    uuid.UUID
	payment    uuid.UUID
	receivable uuid.UUID
}

func (o *Orchestrator) resolveAccounts(ctx context.Context, in *Input, student *studentModel.Student) (resolvedAccounts, error) {
	var (
		acc resolvedAccounts
		err error
	)

	acc.student, err = o.Accounts.Resolve(ctx, in.Scope.SchoolID, student.FullName(), student.StudentMobile, constants.AccountGroupStudent)
	if err != nil {
		return acc, err
	}

	if in.PaymentMode != "" {
		acc.payment, err = o.Accounts.PaymentAccount(ctx, in.Scope.SchoolID, in.PaymentMode)
		if err != nil {
			return acc, err
		}
	}

	// A missing receivable account is left as uuid.Nil; the poster turns
	// that into a skip-with-warning instead of a failure.
	recv, err := o.Accounts.ReceivableAccount(ctx, in.Scope.SchoolID)
	if err != nil {
		var nf *errs.NotFoundError
		if !errors.As(err, &nf) {
			return acc, err
		}
	} else {
		acc.receivable = recv
	}

	return acc, nil
}
