package user

import (
	"context"

	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, u *models.User) error
	Find(ctx context.Context, id uint) (*models.User, bool, error)
	Update(ctx context.Context, id uint, u *models.User) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}
