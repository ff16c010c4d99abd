package caregiver

import (
	"context"

	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Caregiver, error)

	// Create inserts the user and the caregiver row in one transaction.
	Create(ctx context.Context, u *models.User, cg *models.Caregiver) error

	Find(ctx context.Context, id uint) (*models.Caregiver, bool, error)

	// Update replaces the caregiver columns only; the user row is untouched.
	Update(ctx context.Context, id uint, cg *models.Caregiver) (*models.Caregiver, error)

	Delete(ctx context.Context, id uint) error

	// IDs lists caregiver ids for form option lists.
	IDs(ctx context.Context) ([]uint, error)

	SetPhoto(ctx context.Context, id uint, url string) error
}
