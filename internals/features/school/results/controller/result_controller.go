// file: internals/features/school/results/controller/result_controller.go
package controller

import (
	"errors"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assessModel "sukuu_backend/internals/features/school/assessments/model"
	scoring "sukuu_backend/internals/features/school/assessments/service"
	classModel "sukuu_backend/internals/features/school/classes/model"
	"sukuu_backend/internals/features/school/results/dto"
	"sukuu_backend/internals/features/school/results/model"
	studentModel "sukuu_backend/internals/features/school/students/model"
	subjectModel "sukuu_backend/internals/features/school/subjects/model"
	helper "sukuu_backend/internals/helpers"
)

type ResultController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewResultController(db *gorm.DB, v *validator.Validate) *ResultController {
	if v == nil {
		v = validator.New()
	}
	return &ResultController{DB: db, Validator: v}
}

/* ============================================
   GET /results
   Query: ?class_id=  ?student_id=  ?term=  ?academic_year=  ?page=&per_page=
============================================ */

func (ctl *ResultController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.ResultModel{})

	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		tx = tx.Where("result_class_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		tx = tx.Where("result_student_id = ?", id)
	}
	if term := strings.TrimSpace(c.Query("term")); term != "" {
		tx = tx.Where("result_term = ?", term)
	}
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		tx = tx.Where("result_academic_year = ?", year)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count results")
	}

	var rows []model.ResultModel
	if err := tx.Preload("SubjectMarks").
		Order("result_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}
	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ============================================
   GET /results/:id
============================================ */

func (ctl *ResultController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid result id")
	}

	var ent model.ResultModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("SubjectMarks").
		First(&ent, "result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch result")
	}
	return helper.JsonOK(c, "", ent)
}

/* ============================================
   GET /results/:id/report - rendered report card with per-component
   breakdown and the letter grade scale.
============================================ */

func (ctl *ResultController) Report(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid result id")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var ent model.ResultModel
	if err := db.Preload("SubjectMarks").
		First(&ent, "result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch result")
	}

	var student studentModel.StudentModel
	if err := db.First(&student, "student_id = ?", ent.ResultStudentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	var class classModel.ClassModel
	className := ""
	if err := db.First(&class, "class_id = ?", ent.ResultClassID).Error; err == nil {
		className = class.ClassName
	}

	// Weighting scheme, if the import recorded one
	var weights map[string]float64
	if ent.ResultCATypeID != nil {
		var caType assessModel.CATypeModel
		if err := db.First(&caType, "ca_type_id = ?", *ent.ResultCATypeID).Error; err == nil {
			weights = caType.WeightMap()
		}
	}

	// Subject names for the lines
	subjectIDs := make([]uuid.UUID, 0, len(ent.SubjectMarks))
	for _, m := range ent.SubjectMarks {
		subjectIDs = append(subjectIDs, m.SubjectMarkSubjectID)
	}
	var subjects []subjectModel.SubjectModel
	if len(subjectIDs) > 0 {
		if err := db.Where("subject_id IN ?", subjectIDs).Find(&subjects).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
		}
	}
	subjectByID := make(map[uuid.UUID]subjectModel.SubjectModel, len(subjects))
	for _, s := range subjects {
		subjectByID[s.SubjectID] = s
	}

	report := dto.ReportCard{
		ResultID:        ent.ResultID,
		StudentID:       student.StudentID,
		StudentCode:     student.StudentCode,
		StudentFullName: student.StudentFullName,
		ClassName:       className,
		Term:            ent.ResultTerm,
		AcademicYear:    ent.ResultAcademicYear,
		Subjects:        make([]dto.SubjectReportLine, 0, len(ent.SubjectMarks)),
	}

	aggregate := 0
	for _, m := range ent.SubjectMarks {
		line := dto.SubjectReportLine{
			SubjectID: m.SubjectMarkSubjectID,
			Total:     m.SubjectMarkTotal,
		}
		if s, ok := subjectByID[m.SubjectMarkSubjectID]; ok {
			line.SubjectName = s.SubjectName
			line.SubjectCode = s.SubjectCode
		}
		if band, ok := scoring.GradeFor(m.SubjectMarkTotal, scoring.LetterBands); ok {
			line.Grade = band.Grade
			line.Remark = band.Remark
		}
		if len(weights) > 0 {
			line.Breakdown = scoring.Breakdown(weights, m.ComponentMap())
		}
		aggregate += m.SubjectMarkTotal
		report.Subjects = append(report.Subjects, line)
	}

	report.AggregateTotal = aggregate
	if n := len(report.Subjects); n > 0 {
		report.AverageTotal = math.Round(float64(aggregate)/float64(n)*100) / 100
	}
	return helper.JsonOK(c, "", report)
}
