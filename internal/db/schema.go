package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

// JobApplicationsViewSQL creates the applications view. Readers order it
// by job_id, date_applied.
const JobApplicationsViewSQL = `
CREATE OR REPLACE VIEW job_applications_view AS
SELECT
    ja.job_id,
    j.required_caregiving_type,
    j.other_requirements,
    ja.date_applied,
    u.given_name AS applicant_given_name,
    u.surname AS applicant_surname,
    u.email AS applicant_email,
    c.caregiving_type,
    c.hourly_rate
FROM job_application ja
JOIN job j ON ja.job_id = j.job_id
JOIN caregiver c ON ja.caregiver_user_id = c.caregiver_user_id
JOIN "user" u ON c.caregiver_user_id = u.user_id`

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&models.User{},
		&models.Caregiver{},
		&models.Member{},
		&models.Address{},
		&models.Job{},
		&models.JobApplication{},
		&models.Appointment{},
		&models.AuditLog{},
	}
}

// Migrate is safe to run on every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := tx.Exec(JobApplicationsViewSQL).Error; err != nil {
		return fmt.Errorf("create job_applications_view: %w", err)
	}
	return nil
}
