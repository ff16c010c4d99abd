package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/caregivers-platform/internal/domain/caregiver"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

var caregiverColumns = []string{
	"photo",
	"gender",
	"caregiving_type",
	"hourly_rate",
}

type CaregiverGormRepository struct {
	db *gorm.DB
}

func NewCaregiverGormRepository(db *gorm.DB) *CaregiverGormRepository {
	return &CaregiverGormRepository{db: db}
}

func (r *CaregiverGormRepository) List(ctx context.Context) ([]models.Caregiver, error) {
	var caregivers []models.Caregiver
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("caregiver_user_id").
		Find(&caregivers).Error; err != nil {
		return nil, httperr.Classify(err)
	}
	return caregivers, nil
}

// --------------------------------------------------
// Create (user + caregiver)
// --------------------------------------------------

func (r *CaregiverGormRepository) Create(
	ctx context.Context,
	u *models.User,
	cg *models.Caregiver,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}

		cg.CaregiverUserID = u.UserID
		return tx.Omit(clause.Associations).Create(cg).Error
	})
	if err != nil {
		return httperr.Classify(err)
	}

	cg.User = *u
	return nil
}

func (r *CaregiverGormRepository) Find(ctx context.Context, id uint) (*models.Caregiver, bool, error) {
	return findOne[models.Caregiver](
		r.db.WithContext(ctx).
			Preload("User").
			Where("caregiver_user_id = ?", id),
	)
}

func (r *CaregiverGormRepository) Update(
	ctx context.Context,
	id uint,
	cg *models.Caregiver,
) (*models.Caregiver, error) {

	cg.CaregiverUserID = id
	if err := replace(ctx, r.db, "caregiver", caregiverColumns, cg, "caregiver_user_id = ?", id); err != nil {
		return nil, err
	}

	out, ok, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("caregiver")
	}
	return out, nil
}

func (r *CaregiverGormRepository) Delete(ctx context.Context, id uint) error {
	return remove[models.Caregiver](ctx, r.db, "caregiver_user_id = ?", id)
}

func (r *CaregiverGormRepository) IDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Caregiver{}).
		Order("caregiver_user_id").
		Pluck("caregiver_user_id", &ids).Error; err != nil {
		return nil, httperr.Classify(err)
	}
	return ids, nil
}

// --------------------------------------------------
// Photo
// --------------------------------------------------

func (r *CaregiverGormRepository) SetPhoto(ctx context.Context, id uint, url string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Caregiver{}).
		Where("caregiver_user_id = ?", id).
		Update("photo", url)
	if res.Error != nil {
		return httperr.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("caregiver")
	}
	return nil
}

var _ domain.Repository = (*CaregiverGormRepository)(nil)
