// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`
	ClassName         string     `gorm:"type:varchar(80);not null;column:class_name"                    json:"class_name"`
	ClassDepartmentID *uuid.UUID `gorm:"type:uuid;column:class_department_id;index"                     json:"class_department_id,omitempty"`
	ClassIsActive     bool       `gorm:"not null;default:true;column:class_is_active"                   json:"class_is_active"`

	ClassCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index"                                   json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
