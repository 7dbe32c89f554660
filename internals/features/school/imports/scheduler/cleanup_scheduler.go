// file: internals/features/school/imports/scheduler/cleanup_scheduler.go
package scheduler

import (
	"log"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"sukuu_backend/internals/configs"
	"sukuu_backend/internals/features/school/imports/model"
)

// StartImportLogCleanupScheduler purges import logs past the retention
// window every night at 02:00. Retention is IMPORT_LOG_RETENTION_DAYS
// (default 90).
func StartImportLogCleanupScheduler(db *gorm.DB) *cron.Cron {
	retentionDays := 90
	if raw := configs.GetEnv("IMPORT_LOG_RETENTION_DAYS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			retentionDays = n
		}
	}

	c := cron.New()
	_, err := c.AddFunc("0 2 * * *", func() {
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		res := db.Unscoped().
			Where("import_log_created_at < ?", cutoff).
			Delete(&model.ImportLogModel{})
		if res.Error != nil {
			log.Printf("[ERROR] import log cleanup failed: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("[INFO] import log cleanup removed %d rows older than %s",
				res.RowsAffected, cutoff.Format("2006-01-02"))
		}
	})
	if err != nil {
		log.Printf("[ERROR] failed to register import log cleanup job: %v", err)
		return c
	}

	c.Start()
	log.Printf("[INFO] import log cleanup scheduled (retention %d days)", retentionDays)
	return c
}
