// file: internals/features/school/imports/model/import_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	ImportKindStudents = "students"
	ImportKindResults  = "results"
)

// ImportLogModel persists one import run's report so operators can re-check
// outcomes after the response is gone. Logs are pruned by the cleanup
// scheduler after the retention window.
type ImportLogModel struct {
	ImportLogID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:import_log_id" json:"import_log_id"`
	ImportLogKind     string    `gorm:"type:varchar(20);not null;column:import_log_kind;index"              json:"import_log_kind"`
	ImportLogFileName string    `gorm:"type:varchar(255);column:import_log_file_name"                       json:"import_log_file_name"`

	ImportLogTotalProcessed int `gorm:"not null;default:0;column:import_log_total_processed" json:"import_log_total_processed"`
	ImportLogSuccessCount   int `gorm:"not null;default:0;column:import_log_success_count"   json:"import_log_success_count"`
	ImportLogFailedCount    int `gorm:"not null;default:0;column:import_log_failed_count"    json:"import_log_failed_count"`
	ImportLogSkippedCount   int `gorm:"not null;default:0;column:import_log_skipped_count"   json:"import_log_skipped_count"`
	ImportLogDuplicateCount int `gorm:"not null;default:0;column:import_log_duplicate_count" json:"import_log_duplicate_count"`

	ImportLogCreatedIDs pq.StringArray `gorm:"type:text[];column:import_log_created_ids" json:"import_log_created_ids"`
	ImportLogErrors     datatypes.JSON `gorm:"type:jsonb;column:import_log_errors"       json:"import_log_errors,omitempty"`

	ImportLogCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:import_log_created_at;index" json:"import_log_created_at"`
}

func (ImportLogModel) TableName() string { return "import_logs" }
