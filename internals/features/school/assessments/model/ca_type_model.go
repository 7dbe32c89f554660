// file: internals/features/school/assessments/model/ca_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CATypeModel is a named assessment weighting scheme, e.g.
// {"ca":30,"exam":70} or {"ca1":10,"ca2":10,"ca3":10,"ca4":10,"exam":60}.
// Weights are percentages per component key.
type CATypeModel struct {
	CATypeID      uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ca_type_id" json:"ca_type_id"`
	CATypeName    string            `gorm:"type:varchar(80);not null;uniqueIndex;column:ca_type_name"        json:"ca_type_name"`
	CATypeWeights datatypes.JSONMap `gorm:"type:jsonb;not null;column:ca_type_weights"                       json:"ca_type_weights"`

	CATypeIsActive  bool           `gorm:"not null;default:true;column:ca_type_is_active"                    json:"ca_type_is_active"`
	CATypeCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:ca_type_created_at" json:"ca_type_created_at"`
	CATypeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:ca_type_updated_at" json:"ca_type_updated_at"`
	CATypeDeletedAt gorm.DeletedAt `gorm:"column:ca_type_deleted_at;index"                                   json:"ca_type_deleted_at,omitempty"`
}

func (CATypeModel) TableName() string { return "ca_types" }

// WeightMap converts the stored JSON weights into a float map, dropping
// non-numeric entries.
func (m *CATypeModel) WeightMap() map[string]float64 {
	out := make(map[string]float64, len(m.CATypeWeights))
	for k, v := range m.CATypeWeights {
		switch n := v.(type) {
		case float64:
			out[k] = n
		case int:
			out[k] = float64(n)
		}
	}
	return out
}
