// file: internals/features/school/classes/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	DepartmentID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:department_id" json:"department_id"`
	DepartmentName string    `gorm:"type:varchar(80);not null;uniqueIndex;column:department_name"        json:"department_name"`

	DepartmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:department_created_at" json:"department_created_at"`
	DepartmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:department_updated_at" json:"department_updated_at"`
	DepartmentDeletedAt gorm.DeletedAt `gorm:"column:department_deleted_at;index"                                   json:"department_deleted_at,omitempty"`
}

func (DepartmentModel) TableName() string { return "departments" }
