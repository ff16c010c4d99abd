package member

import (
	"context"

	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Member, error)

	// Create inserts the user and the member row in one transaction.
	Create(ctx context.Context, u *models.User, m *models.Member) error

	Find(ctx context.Context, id uint) (*models.Member, bool, error)
	Update(ctx context.Context, id uint, m *models.Member) (*models.Member, error)
	Delete(ctx context.Context, id uint) error
	IDs(ctx context.Context) ([]uint, error)
}

// AddressRepository is keyed by member id.
type AddressRepository interface {
	List(ctx context.Context) ([]models.Address, error)
	Create(ctx context.Context, a *models.Address) error
	Find(ctx context.Context, memberID uint) (*models.Address, bool, error)
	Update(ctx context.Context, memberID uint, a *models.Address) (*models.Address, error)
	Delete(ctx context.Context, memberID uint) error
}
