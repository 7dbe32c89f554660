// file: internals/features/school/imports/service/gorm_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	assessmentModel "sukuu_backend/internals/features/school/assessments/model"
	classModel "sukuu_backend/internals/features/school/classes/model"
	importModel "sukuu_backend/internals/features/school/imports/model"
	"sukuu_backend/internals/features/school/imports/resolve"
	resultModel "sukuu_backend/internals/features/school/results/model"
	studentModel "sukuu_backend/internals/features/school/students/model"
	subjectModel "sukuu_backend/internals/features/school/subjects/model"
)

// GormStore backs both importers with the real database.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

var _ RosterStore = (*GormStore)(nil)
var _ ResultsStore = (*GormStore)(nil)

func (s *GormStore) LoadSnapshot(ctx context.Context) (*resolve.Snapshot, error) {
	var students []studentModel.StudentModel
	if err := s.DB.WithContext(ctx).
		Select("student_id", "student_code", "student_class_id", "student_department_id").
		Find(&students).Error; err != nil {
		return nil, err
	}
	var subjects []subjectModel.SubjectModel
	if err := s.DB.WithContext(ctx).Find(&subjects).Error; err != nil {
		return nil, err
	}
	var classes []classModel.ClassModel
	if err := s.DB.WithContext(ctx).Find(&classes).Error; err != nil {
		return nil, err
	}
	var departments []classModel.DepartmentModel
	if err := s.DB.WithContext(ctx).Find(&departments).Error; err != nil {
		return nil, err
	}

	studentRefs := make([]resolve.StudentRef, 0, len(students))
	for _, st := range students {
		studentRefs = append(studentRefs, resolve.StudentRef{
			ID:           st.StudentID,
			Code:         st.StudentCode,
			ClassID:      st.StudentClassID,
			DepartmentID: st.StudentDepartmentID,
		})
	}
	subjectRefs := make([]resolve.SubjectRef, 0, len(subjects))
	for _, sub := range subjects {
		subjectRefs = append(subjectRefs, resolve.SubjectRef{ID: sub.SubjectID, Name: sub.SubjectName, Code: sub.SubjectCode})
	}
	classRefs := make([]resolve.ClassRef, 0, len(classes))
	for _, c := range classes {
		classRefs = append(classRefs, resolve.ClassRef{ID: c.ClassID, Name: c.ClassName, DepartmentID: c.ClassDepartmentID})
	}
	departmentRefs := make([]resolve.DepartmentRef, 0, len(departments))
	for _, d := range departments {
		departmentRefs = append(departmentRefs, resolve.DepartmentRef{ID: d.DepartmentID, Name: d.DepartmentName})
	}

	return resolve.NewSnapshot(studentRefs, subjectRefs, classRefs, departmentRefs), nil
}

func (s *GormStore) FindStudentByCode(ctx context.Context, code string) (*studentModel.StudentModel, error) {
	var ent studentModel.StudentModel
	err := s.DB.WithContext(ctx).Where("student_code = ?", code).First(&ent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ent, nil
}

func (s *GormStore) CreateStudent(ctx context.Context, ent *studentModel.StudentModel) error {
	return s.DB.WithContext(ctx).Create(ent).Error
}

func (s *GormStore) UpdateStudent(ctx context.Context, ent *studentModel.StudentModel) error {
	return s.DB.WithContext(ctx).Save(ent).Error
}

func (s *GormStore) FindCAType(ctx context.Context, id uuid.UUID) (*assessmentModel.CATypeModel, error) {
	var ent assessmentModel.CATypeModel
	if err := s.DB.WithContext(ctx).Where("ca_type_id = ?", id).First(&ent).Error; err != nil {
		return nil, err
	}
	return &ent, nil
}

func (s *GormStore) LoadGradeBands(ctx context.Context, departmentID *uuid.UUID, term, academicYear string) ([]assessmentModel.GradeBandModel, error) {
	q := s.DB.WithContext(ctx).
		Where("grade_band_term = ? AND grade_band_academic_year = ?", term, academicYear)
	if departmentID != nil {
		q = q.Where("grade_band_department_id = ? OR grade_band_department_id IS NULL", *departmentID)
	} else {
		q = q.Where("grade_band_department_id IS NULL")
	}
	var rows []assessmentModel.GradeBandModel
	if err := q.Order("grade_band_from DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) FindResult(ctx context.Context, studentID uuid.UUID, term, academicYear string) (*resultModel.ResultModel, error) {
	var ent resultModel.ResultModel
	err := s.DB.WithContext(ctx).
		Where("result_student_id = ? AND result_term = ? AND result_academic_year = ?", studentID, term, academicYear).
		First(&ent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ent, nil
}

func (s *GormStore) CreateResult(ctx context.Context, ent *resultModel.ResultModel) error {
	return s.DB.WithContext(ctx).Create(ent).Error
}

// ReplaceSubjectMarks swaps a result's marks wholesale inside one
// transaction so a re-import cannot leave a half-updated result behind.
func (s *GormStore) ReplaceSubjectMarks(ctx context.Context, resultID uuid.UUID, marks []resultModel.SubjectMarkModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_mark_result_id = ?", resultID).
			Delete(&resultModel.SubjectMarkModel{}).Error; err != nil {
			return err
		}
		if len(marks) == 0 {
			return nil
		}
		return tx.Create(&marks).Error
	})
}

func (s *GormStore) SaveImportLog(ctx context.Context, l *importModel.ImportLogModel) error {
	return s.DB.WithContext(ctx).Create(l).Error
}
