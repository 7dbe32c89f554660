// file: internals/features/school/promotion/service/promoter.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sukuu_backend/internals/features/school/classes/model"
	"sukuu_backend/internals/features/school/promotion/dto"
	transferModel "sukuu_backend/internals/features/school/promotion/model"
	studentModel "sukuu_backend/internals/features/school/students/model"
)

// PromotionStore is what bulk promotion needs from the backing store.
type PromotionStore interface {
	FindStudent(ctx context.Context, id uuid.UUID) (*studentModel.StudentModel, error)
	FindClass(ctx context.Context, id uuid.UUID) (*classModel.ClassModel, error)
	// FindNextClass looks a class up by progression rung, so stores that spell
	// their classes "Primary 3" or "Basic 3" still satisfy a lookup for
	// "Class 3". A class in the given department wins over one outside it:
	// department-segmented schools can share rungs across departments.
	FindNextClass(ctx context.Context, name string, departmentID *uuid.UUID) (*classModel.ClassModel, error)
	UpdateStudent(ctx context.Context, s *studentModel.StudentModel) error
	CreateTransfer(ctx context.Context, t *transferModel.TransferModel) error
}

// Promoter applies the curriculum ladder to a batch of students at year-end.
type Promoter struct {
	Store PromotionStore
}

// PromoteAll walks the selected students sequentially, either advancing each
// to the next class or graduating them, logging an independent result per
// student.
func (p *Promoter) PromoteAll(ctx context.Context, req dto.BulkPromotionRequest) *dto.BulkPromotionReport {
	report := &dto.BulkPromotionReport{Results: []dto.PromotionResult{}}

	for _, studentID := range req.StudentIDs {
		report.TotalProcessed++
		res := p.promoteOne(ctx, studentID, req.Term, req.AcademicYear)
		switch res.Outcome {
		case dto.PromotionOutcomePromoted:
			report.PromotedCount++
		case dto.PromotionOutcomeGraduated:
			report.GraduatedCount++
		default:
			report.FailedCount++
		}
		report.Results = append(report.Results, res)
	}

	report.Finalize()
	return report
}

func (p *Promoter) promoteOne(ctx context.Context, studentID uuid.UUID, term, academicYear string) dto.PromotionResult {
	res := dto.PromotionResult{StudentID: studentID, Outcome: dto.PromotionOutcomeFailed}

	student, err := p.Store.FindStudent(ctx, studentID)
	if err != nil {
		res.Message = notFoundMessage("student", err)
		return res
	}
	res.StudentCode = student.StudentCode

	if student.StudentHasLeft {
		res.Message = "student has already left the school"
		return res
	}
	if student.StudentClassID == nil {
		res.Message = "student has no current class"
		return res
	}

	current, err := p.Store.FindClass(ctx, *student.StudentClassID)
	if err != nil {
		res.Message = notFoundMessage("current class", err)
		return res
	}
	res.FromClass = current.ClassName

	if ShouldGraduate(current.ClassName) {
		return p.graduate(ctx, student, current, term, academicYear, res)
	}

	nextName := NextClassName(current.ClassName)
	if nextName == "" {
		res.Message = fmt.Sprintf("class %q is not in the progression sequence", current.ClassName)
		return res
	}

	next, err := p.Store.FindNextClass(ctx, nextName, current.ClassDepartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.Message = fmt.Sprintf("no class named %q exists to promote into", nextName)
		} else {
			res.Message = fmt.Sprintf("next class lookup failed: %v", err)
		}
		return res
	}

	fromClassID := *student.StudentClassID
	student.StudentClassID = &next.ClassID
	student.StudentUpdatedAt = time.Now()
	if err := p.Store.UpdateStudent(ctx, student); err != nil {
		res.Message = fmt.Sprintf("class update failed: %v", err)
		return res
	}
	if err := p.Store.CreateTransfer(ctx, &transferModel.TransferModel{
		TransferStudentID:    student.StudentID,
		TransferKind:         transferModel.TransferKindPromotion,
		TransferFromClass:    &fromClassID,
		TransferToClass:      &next.ClassID,
		TransferTerm:         term,
		TransferAcademicYear: academicYear,
	}); err != nil {
		res.Message = fmt.Sprintf("transfer record failed: %v", err)
		return res
	}

	res.Outcome = dto.PromotionOutcomePromoted
	res.ToClass = next.ClassName
	res.ToClassID = &next.ClassID
	return res
}

func (p *Promoter) graduate(ctx context.Context, student *studentModel.StudentModel, current *classModel.ClassModel, term, academicYear string, res dto.PromotionResult) dto.PromotionResult {
	fromClassID := current.ClassID
	student.StudentHasLeft = true
	student.StudentUpdatedAt = time.Now()
	if err := p.Store.UpdateStudent(ctx, student); err != nil {
		res.Message = fmt.Sprintf("graduation update failed: %v", err)
		return res
	}
	if err := p.Store.CreateTransfer(ctx, &transferModel.TransferModel{
		TransferStudentID:    student.StudentID,
		TransferKind:         transferModel.TransferKindGraduation,
		TransferFromClass:    &fromClassID,
		TransferTerm:         term,
		TransferAcademicYear: academicYear,
	}); err != nil {
		res.Message = fmt.Sprintf("transfer record failed: %v", err)
		return res
	}
	res.Outcome = dto.PromotionOutcomeGraduated
	return res
}

func notFoundMessage(what string, err error) string {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return what + " not found"
	}
	return fmt.Sprintf("%s lookup failed: %v", what, err)
}

/* ============================================
   GORM-backed store
============================================ */

type GormPromotionStore struct {
	DB *gorm.DB
}

var _ PromotionStore = (*GormPromotionStore)(nil)

func NewGormPromotionStore(db *gorm.DB) *GormPromotionStore {
	return &GormPromotionStore{DB: db}
}

func (s *GormPromotionStore) FindStudent(ctx context.Context, id uuid.UUID) (*studentModel.StudentModel, error) {
	var ent studentModel.StudentModel
	if err := s.DB.WithContext(ctx).Where("student_id = ?", id).First(&ent).Error; err != nil {
		return nil, err
	}
	return &ent, nil
}

func (s *GormPromotionStore) FindClass(ctx context.Context, id uuid.UUID) (*classModel.ClassModel, error) {
	var ent classModel.ClassModel
	if err := s.DB.WithContext(ctx).Where("class_id = ?", id).First(&ent).Error; err != nil {
		return nil, err
	}
	return &ent, nil
}

func (s *GormPromotionStore) FindNextClass(ctx context.Context, name string, departmentID *uuid.UUID) (*classModel.ClassModel, error) {
	target := NormalizeClassName(name)
	if target == "" {
		return nil, gorm.ErrRecordNotFound
	}

	// Rung matching happens in Go, not SQL: the store may spell its classes
	// "Primary 3" or "Basic 3" where the ladder says "Class 3".
	var classes []classModel.ClassModel
	if err := s.DB.WithContext(ctx).
		Where("class_is_active = ?", true).
		Order("class_name ASC").
		Find(&classes).Error; err != nil {
		return nil, err
	}

	var fallback *classModel.ClassModel
	for i := range classes {
		if NormalizeClassName(classes[i].ClassName) != target {
			continue
		}
		if departmentID != nil && classes[i].ClassDepartmentID != nil && *classes[i].ClassDepartmentID == *departmentID {
			return &classes[i], nil
		}
		if fallback == nil {
			fallback = &classes[i]
		}
	}
	if fallback == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return fallback, nil
}

func (s *GormPromotionStore) UpdateStudent(ctx context.Context, ent *studentModel.StudentModel) error {
	return s.DB.WithContext(ctx).Save(ent).Error
}

func (s *GormPromotionStore) CreateTransfer(ctx context.Context, t *transferModel.TransferModel) error {
	return s.DB.WithContext(ctx).Create(t).Error
}
