package appointment

import (
	"context"

	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Appointment, error)
	Create(ctx context.Context, ap *models.Appointment) error
	Find(ctx context.Context, id uint) (*models.Appointment, bool, error)
	Update(ctx context.Context, id uint, ap *models.Appointment) (*models.Appointment, error)
	Delete(ctx context.Context, id uint) error
}
