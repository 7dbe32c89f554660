// file: internals/features/school/imports/controller/import_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukuu_backend/internals/features/school/imports/dto"
	"sukuu_backend/internals/features/school/imports/excel"
	importModel "sukuu_backend/internals/features/school/imports/model"
	"sukuu_backend/internals/features/school/imports/normalize"
	"sukuu_backend/internals/features/school/imports/service"
	helper "sukuu_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type ImportController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewImportController(db *gorm.DB, v *validator.Validate) *ImportController {
	if v == nil {
		v = validator.New()
	}
	return &ImportController{DB: db, Validator: v}
}

/* ============================================
   POST /imports/students  (multipart)
   form fields: file, class_id?, department_id?, default_gender?
============================================ */

func (ctl *ImportController) ImportStudents(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "A spreadsheet file is required")
	}

	opts := service.RosterImportOptions{FileName: fileHeader.Filename}
	if id, err := optionalUUID(c.FormValue("class_id")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id is not a valid UUID")
	} else {
		opts.ClassID = id
	}
	if id, err := optionalUUID(c.FormValue("department_id")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "department_id is not a valid UUID")
	} else {
		opts.DepartmentID = id
	}

	importer := &service.RosterImporter{
		Store:                    service.NewGormStore(ctl.DB),
		Progress:                 logProgress("students"),
		DefaultGenderWhenMissing: parseDefaultGender(c.FormValue("default_gender")),
	}

	report, err := ctl.run(c, fileHeader, func(f multipart.File) (*dto.ImportReport, error) {
		return importer.Import(c.UserContext(), f, opts)
	})
	if err != nil {
		return err
	}
	return respondWithReport(c, report)
}

/* ============================================
   POST /imports/results  (multipart)
   form fields: file, class_id, term, academic_year, ca_type_id?
============================================ */

func (ctl *ImportController) ImportResults(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "A spreadsheet file is required")
	}

	classID, err := uuid.Parse(strings.TrimSpace(c.FormValue("class_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id is required and must be a valid UUID")
	}
	term := strings.TrimSpace(c.FormValue("term"))
	academicYear := strings.TrimSpace(c.FormValue("academic_year"))
	if term == "" || academicYear == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "term and academic_year are required")
	}

	opts := service.ResultsImportOptions{
		FileName:     fileHeader.Filename,
		ClassID:      classID,
		Term:         term,
		AcademicYear: academicYear,
	}
	if id, err := optionalUUID(c.FormValue("ca_type_id")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ca_type_id is not a valid UUID")
	} else {
		opts.CATypeID = id
	}

	importer := &service.ResultsImporter{
		Store:    service.NewGormStore(ctl.DB),
		Progress: logProgress("results"),
	}

	report, err := ctl.run(c, fileHeader, func(f multipart.File) (*dto.ImportReport, error) {
		return importer.Import(c.UserContext(), f, opts)
	})
	if err != nil {
		return err
	}
	return respondWithReport(c, report)
}

/* ============================================
   GET /imports/logs
============================================ */

func (ctl *ImportController) ListLogs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&importModel.ImportLogModel{})
	if kind := strings.TrimSpace(c.Query("kind")); kind != "" {
		q = q.Where("import_log_kind = ?", kind)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count import logs")
	}

	var logs []importModel.ImportLogModel
	if err := q.Order("import_log_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list import logs")
	}

	return helper.JsonList(c, "", logs, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   helpers
============================================ */

func (ctl *ImportController) run(c *fiber.Ctx, fileHeader *multipart.FileHeader, fn func(multipart.File) (*dto.ImportReport, error)) (*dto.ImportReport, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Unable to open uploaded file")
	}
	defer func() { _ = f.Close() }()

	report, err := fn(f)
	if err != nil {
		var perr *excel.ParseError
		if errors.As(err, &perr) {
			// file-level rejection: zero rows processed
			return nil, helper.JsonError(c, fiber.StatusUnprocessableEntity, perr.Error())
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return report, nil
}

// respondWithReport keeps the three terminal tones apart: fully successful,
// partially successful, fully failed.
func respondWithReport(c *fiber.Ctx, report *dto.ImportReport) error {
	switch {
	case report.Success:
		return helper.JsonOK(c, fmt.Sprintf("Imported %d of %d rows", report.SuccessCount, report.TotalProcessed), report)
	case report.SuccessCount > 0 || report.DuplicateCount > 0:
		return helper.JsonOK(c, fmt.Sprintf("Imported %d of %d rows; %d errors", report.SuccessCount, report.TotalProcessed, report.FailedCount), report)
	default:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("No rows imported; %d errors", report.FailedCount),
			"data":    report,
		})
	}
}

func optionalUUID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseDefaultGender(raw string) *string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case normalize.GenderMale:
		g := normalize.GenderMale
		return &g
	case normalize.GenderFemale:
		g := normalize.GenderFemale
		return &g
	default:
		return nil
	}
}

func logProgress(kind string) dto.ProgressFunc {
	return func(ev dto.ProgressEvent) {
		log.Printf("[INFO] import %s: phase=%s %d/%d %s", kind, ev.Phase, ev.Current, ev.Total, ev.Message)
	}
}
