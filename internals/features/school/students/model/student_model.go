// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	// PK & natural key
	StudentID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentCode string    `gorm:"type:varchar(40);not null;uniqueIndex;column:student_code"        json:"student_code"`

	// Identity
	StudentFullName    string     `gorm:"type:varchar(160);not null;column:student_full_name" json:"student_full_name"`
	StudentGender      *string    `gorm:"type:varchar(10);column:student_gender"              json:"student_gender,omitempty"`
	StudentDateOfBirth *time.Time `gorm:"type:date;column:student_date_of_birth"              json:"student_date_of_birth,omitempty"`

	// Contact
	StudentPhone         *string `gorm:"type:varchar(20);column:student_phone"          json:"student_phone,omitempty"`
	StudentGuardianName  *string `gorm:"type:varchar(160);column:student_guardian_name" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"type:varchar(20);column:student_guardian_phone" json:"student_guardian_phone,omitempty"`

	// Placement
	StudentClassID      *uuid.UUID `gorm:"type:uuid;column:student_class_id;index"      json:"student_class_id,omitempty"`
	StudentDepartmentID *uuid.UUID `gorm:"type:uuid;column:student_department_id;index" json:"student_department_id,omitempty"`
	StudentHasLeft      bool       `gorm:"not null;default:false;column:student_has_left" json:"student_has_left"`

	// Audit
	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index"                                   json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
