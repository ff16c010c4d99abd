package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/caregivers-platform/internal/domain/user"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

var userColumns = []string{
	"email",
	"given_name",
	"surname",
	"city",
	"phone_number",
	"profile_description",
	"password",
}

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("user_id").
		Find(&users).Error; err != nil {
		return nil, httperr.Classify(err)
	}
	return users, nil
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	return httperr.Classify(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserGormRepository) Find(ctx context.Context, id uint) (*models.User, bool, error) {
	return findOne[models.User](r.db.WithContext(ctx).Where("user_id = ?", id))
}

func (r *UserGormRepository) Update(
	ctx context.Context,
	id uint,
	u *models.User,
) (*models.User, error) {

	u.UserID = id
	if err := replace(ctx, r.db, "user", userColumns, u, "user_id = ?", id); err != nil {
		return nil, err
	}
	return r.mustFind(ctx, id)
}

func (r *UserGormRepository) Delete(ctx context.Context, id uint) error {
	return remove[models.User](ctx, r.db, "user_id = ?", id)
}

func (r *UserGormRepository) mustFind(ctx context.Context, id uint) (*models.User, error) {
	u, ok, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("user")
	}
	return u, nil
}

var _ domain.Repository = (*UserGormRepository)(nil)
