package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/caregivers-platform/internal/domain/job"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

var jobColumns = []string{
	"member_user_id",
	"required_caregiving_type",
	"other_requirements",
	"date_posted",
}

type JobGormRepository struct {
	db *gorm.DB
}

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db}
}

func (r *JobGormRepository) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Preload("Member.User").
		Order("job_id").
		Find(&jobs).Error; err != nil {
		return nil, httperr.Classify(err)
	}
	return jobs, nil
}

func (r *JobGormRepository) Create(ctx context.Context, j *models.Job) error {
	return httperr.Classify(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(j).Error,
	)
}

func (r *JobGormRepository) Find(ctx context.Context, id uint) (*models.Job, bool, error) {
	return findOne[models.Job](
		r.db.WithContext(ctx).
			Preload("Member.User").
			Where("job_id = ?", id),
	)
}

func (r *JobGormRepository) Update(
	ctx context.Context,
	id uint,
	j *models.Job,
) (*models.Job, error) {

	j.JobID = id
	if err := replace(ctx, r.db, "job", jobColumns, j, "job_id = ?", id); err != nil {
		return nil, err
	}

	out, ok, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("job")
	}
	return out, nil
}

func (r *JobGormRepository) Delete(ctx context.Context, id uint) error {
	return remove[models.Job](ctx, r.db, "job_id = ?", id)
}

func (r *JobGormRepository) IDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Order("job_id").
		Pluck("job_id", &ids).Error; err != nil {
		return nil, httperr.Classify(err)
	}
	return ids, nil
}

var _ domain.Repository = (*JobGormRepository)(nil)
