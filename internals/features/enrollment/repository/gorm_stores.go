// file: internals/features/enrollment/repository/gorm_stores.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feeModel "lembagaku_backend/internals/features/finance/fees/model"
	admissionModel "lembagaku_backend/internals/features/school/admissions/model"
	leadModel "lembagaku_backend/internals/features/school/leads/model"
	studentModel "lembagaku_backend/internals/features/school/students/model"
	"lembagaku_backend/internals/helpers/errs"
)

// =========================================================
// STUDENT STORE
// =========================================================

type GormStudentStore struct {
	DB *gorm.DB
}

func (s *GormStudentStore) FindByMobile(ctx context.Context, schoolID uuid.UUID, mobile string) (*studentModel.Student, error) {
	var m studentModel.Student
	err := s.DB.WithContext(ctx).
		Where("student_school_id = ? AND student_mobile = ?", schoolID, mobile).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *GormStudentStore) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*studentModel.Student, error) {
	var m studentModel.Student
	err := s.DB.WithContext(ctx).
		Where("student_school_id = ? AND student_id = ?", schoolID, id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *GormStudentStore) Create(ctx context.Context, m *studentModel.Student) error {
	err := s.DB.WithContext(ctx).Create(m).Error
	// The unique index on (school_id, mobile) closes the concurrent
	// duplicate-submission race the pre-check cannot.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &errs.DuplicateMobileError{Mobile: m.StudentMobile}
	}
	return err
}

func (s *GormStudentStore) Update(ctx context.Context, m *studentModel.Student) error {
	err := s.DB.WithContext(ctx).Save(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &errs.DuplicateMobileError{Mobile: m.StudentMobile}
	}
	return err
}

// =========================================================
// ADMISSION STORE
// =========================================================

type GormAdmissionStore struct {
	DB *gorm.DB
}

func (s *GormAdmissionStore) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*admissionModel.Admission, error) {
	var m admissionModel.Admission
	err := s.DB.WithContext(ctx).
		Where("admission_school_id = ? AND admission_id = ?", schoolID, id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *GormAdmissionStore) Create(ctx context.Context, m *admissionModel.Admission) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormAdmissionStore) Update(ctx context.Context, m *admissionModel.Admission) error {
	return s.DB.WithContext(ctx).Save(m).Error
}

// =========================================================
// FEE STORE
// =========================================================

type GormFeeStore struct {
	DB *gorm.DB
}

// Replace supersedes the live record: soft-delete then insert, atomically.
func (s *GormFeeStore) Replace(ctx context.Context, m *feeModel.FeeRecord) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("fee_record_school_id = ? AND fee_record_admission_id = ?", m.FeeRecordSchoolID, m.FeeRecordAdmissionID).
			Delete(&feeModel.FeeRecord{}).Error; err != nil {
			return err
		}
		return tx.Create(m).Error
	})
}

func (s *GormFeeStore) FindByAdmission(ctx context.Context, schoolID, admissionID uuid.UUID) (*feeModel.FeeRecord, error) {
	var m feeModel.FeeRecord
	err := s.DB.WithContext(ctx).
		Where("fee_record_school_id = ? AND fee_record_admission_id = ?", schoolID, admissionID).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// =========================================================
// LEAD STORE
// =========================================================

type GormLeadStore struct {
	DB *gorm.DB
}

func (s *GormLeadStore) Create(ctx context.Context, m *leadModel.Lead) error {
	return s.DB.WithContext(ctx).Create(m).Error
}
