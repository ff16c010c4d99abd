package job

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, j *models.Job) error
	Find(ctx context.Context, id uint) (*models.Job, bool, error)
	Update(ctx context.Context, id uint, j *models.Job) (*models.Job, error)
	Delete(ctx context.Context, id uint) error
	IDs(ctx context.Context) ([]uint, error)
}

// ApplicationKey is the composite key of a job application.
type ApplicationKey struct {
	CaregiverUserID uint
	JobID           uint
}

func (k ApplicationKey) String() string {
	return fmt.Sprintf("%d/%d", k.CaregiverUserID, k.JobID)
}

type ApplicationRepository interface {
	List(ctx context.Context) ([]models.JobApplication, error)
	Create(ctx context.Context, a *models.JobApplication) error
	Find(ctx context.Context, key ApplicationKey) (*models.JobApplication, bool, error)

	// Update rewrites date_applied; the key itself is immutable.
	Update(ctx context.Context, key ApplicationKey, a *models.JobApplication) (*models.JobApplication, error)

	Delete(ctx context.Context, key ApplicationKey) error
}
