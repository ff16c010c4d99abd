package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/caregivers-platform/internal/domain/job"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

const applicationKeyWhere = "caregiver_user_id = ? AND job_id = ?"

var jobApplicationColumns = []string{
	"date_applied",
}

type JobApplicationGormRepository struct {
	db *gorm.DB
}

func NewJobApplicationGormRepository(db *gorm.DB) *JobApplicationGormRepository {
	return &JobApplicationGormRepository{db: db}
}

func (r *JobApplicationGormRepository) List(ctx context.Context) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	if err := r.db.WithContext(ctx).
		Preload("Caregiver.User").
		Preload("Job.Member.User").
		Order("job_id").
		Order("caregiver_user_id").
		Find(&apps).Error; err != nil {
		return nil, httperr.Classify(err)
	}
	return apps, nil
}

func (r *JobApplicationGormRepository) Create(ctx context.Context, a *models.JobApplication) error {
	return httperr.Classify(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error,
	)
}

func (r *JobApplicationGormRepository) Find(
	ctx context.Context,
	key domain.ApplicationKey,
) (*models.JobApplication, bool, error) {

	return findOne[models.JobApplication](
		r.db.WithContext(ctx).
			Preload("Caregiver.User").
			Preload("Job.Member.User").
			Where(applicationKeyWhere, key.CaregiverUserID, key.JobID),
	)
}

func (r *JobApplicationGormRepository) Update(
	ctx context.Context,
	key domain.ApplicationKey,
	a *models.JobApplication,
) (*models.JobApplication, error) {

	a.CaregiverUserID = key.CaregiverUserID
	a.JobID = key.JobID
	if err := replace(ctx, r.db, "job_application", jobApplicationColumns, a,
		applicationKeyWhere, key.CaregiverUserID, key.JobID); err != nil {
		return nil, err
	}

	out, ok, err := r.Find(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("job_application")
	}
	return out, nil
}

func (r *JobApplicationGormRepository) Delete(ctx context.Context, key domain.ApplicationKey) error {
	return remove[models.JobApplication](ctx, r.db, applicationKeyWhere, key.CaregiverUserID, key.JobID)
}

var _ domain.ApplicationRepository = (*JobApplicationGormRepository)(nil)
