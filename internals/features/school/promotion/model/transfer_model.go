// file: internals/features/school/promotion/model/transfer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TransferKindPromotion  = "promotion"
	TransferKindGraduation = "graduation"
)

// TransferModel records one student's movement at year-end: either a
// promotion into the next class or a graduation out of the school.
type TransferModel struct {
	TransferID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:transfer_id" json:"transfer_id"`
	TransferStudentID uuid.UUID  `gorm:"type:uuid;not null;column:transfer_student_id;index"               json:"transfer_student_id"`
	TransferKind      string     `gorm:"type:varchar(20);not null;column:transfer_kind"                    json:"transfer_kind"`
	TransferFromClass *uuid.UUID `gorm:"type:uuid;column:transfer_from_class_id"                           json:"transfer_from_class_id,omitempty"`
	TransferToClass   *uuid.UUID `gorm:"type:uuid;column:transfer_to_class_id"                             json:"transfer_to_class_id,omitempty"`

	TransferTerm         string `gorm:"type:varchar(20);column:transfer_term"          json:"transfer_term"`
	TransferAcademicYear string `gorm:"type:varchar(9);column:transfer_academic_year"  json:"transfer_academic_year"`

	TransferCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:transfer_created_at" json:"transfer_created_at"`
}

func (TransferModel) TableName() string { return "transfers" }
