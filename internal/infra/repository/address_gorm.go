package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/caregivers-platform/internal/domain/member"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

var addressColumns = []string{
	"house_number",
	"street",
	"town",
}

type AddressGormRepository struct {
	db *gorm.DB
}

func NewAddressGormRepository(db *gorm.DB) *AddressGormRepository {
	return &AddressGormRepository{db: db}
}

func (r *AddressGormRepository) List(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.WithContext(ctx).
		Preload("Member.User").
		Order("member_user_id").
		Find(&addresses).Error; err != nil {
		return nil, httperr.Classify(err)
	}
	return addresses, nil
}

func (r *AddressGormRepository) Create(ctx context.Context, a *models.Address) error {
	return httperr.Classify(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error,
	)
}

func (r *AddressGormRepository) Find(ctx context.Context, memberID uint) (*models.Address, bool, error) {
	return findOne[models.Address](
		r.db.WithContext(ctx).
			Preload("Member.User").
			Where("member_user_id = ?", memberID),
	)
}

func (r *AddressGormRepository) Update(
	ctx context.Context,
	memberID uint,
	a *models.Address,
) (*models.Address, error) {

	a.MemberUserID = memberID
	if err := replace(ctx, r.db, "address", addressColumns, a, "member_user_id = ?", memberID); err != nil {
		return nil, err
	}

	out, ok, err := r.Find(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("address")
	}
	return out, nil
}

func (r *AddressGormRepository) Delete(ctx context.Context, memberID uint) error {
	return remove[models.Address](ctx, r.db, "member_user_id = ?", memberID)
}

var _ domain.AddressRepository = (*AddressGormRepository)(nil)
