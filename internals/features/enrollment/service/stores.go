// file: internals/features/enrollment/service/stores.go
package service

import (
	"context"

	"github.com/google/uuid"

	feeModel "lembagaku_backend/internals/features/finance/fees/model"
	admissionModel "lembagaku_backend/internals/features/school/admissions/model"
	leadModel "lembagaku_backend/internals/features/school/leads/model"
	studentModel "lembagaku_backend/internals/features/school/students/model"
)

// Store collaborators of the enrollment pipeline. Each call is one
// request/response round trip; absence is reported as (nil, nil), failures as
// errors. Implementations live in the repository package.

type StudentStore interface {
	// FindByMobile returns the live student with this mobile in scope, nil
	// when absent.
	FindByMobile(ctx context.Context, schoolID uuid.UUID, mobile string) (*studentModel.Student, error)
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*studentModel.Student, error)
	Create(ctx context.Context, m *studentModel.Student) error
	Update(ctx context.Context, m *studentModel.Student) error
}

type AdmissionStore interface {
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*admissionModel.Admission, error)
	Create(ctx context.Context, m *admissionModel.Admission) error
	Update(ctx context.Context, m *admissionModel.Admission) error
}

type FeeStore interface {
	// Replace supersedes the live fee record of the admission: the previous
	// record is soft-deleted and the new one inserted in one transaction.
	Replace(ctx context.Context, m *feeModel.FeeRecord) error
	FindByAdmission(ctx context.Context, schoolID, admissionID uuid.UUID) (*feeModel.FeeRecord, error)
}

type LeadStore interface {
	Create(ctx context.Context, m *leadModel.Lead) error
}
