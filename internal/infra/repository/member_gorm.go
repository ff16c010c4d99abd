package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/caregivers-platform/internal/domain/member"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

var memberColumns = []string{
	"house_rules",
	"dependent_description",
}

type MemberGormRepository struct {
	db *gorm.DB
}

func NewMemberGormRepository(db *gorm.DB) *MemberGormRepository {
	return &MemberGormRepository{db: db}
}

func (r *MemberGormRepository) List(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("member_user_id").
		Find(&members).Error; err != nil {
		return nil, httperr.Classify(err)
	}
	return members, nil
}

func (r *MemberGormRepository) Create(
	ctx context.Context,
	u *models.User,
	m *models.Member,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}

		m.MemberUserID = u.UserID
		return tx.Omit(clause.Associations).Create(m).Error
	})
	if err != nil {
		return httperr.Classify(err)
	}

	m.User = *u
	return nil
}

func (r *MemberGormRepository) Find(ctx context.Context, id uint) (*models.Member, bool, error) {
	return findOne[models.Member](
		r.db.WithContext(ctx).
			Preload("User").
			Where("member_user_id = ?", id),
	)
}

func (r *MemberGormRepository) Update(
	ctx context.Context,
	id uint,
	m *models.Member,
) (*models.Member, error) {

	m.MemberUserID = id
	if err := replace(ctx, r.db, "member", memberColumns, m, "member_user_id = ?", id); err != nil {
		return nil, err
	}

	out, ok, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("member")
	}
	return out, nil
}

func (r *MemberGormRepository) Delete(ctx context.Context, id uint) error {
	return remove[models.Member](ctx, r.db, "member_user_id = ?", id)
}

func (r *MemberGormRepository) IDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Order("member_user_id").
		Pluck("member_user_id", &ids).Error; err != nil {
		return nil, httperr.Classify(err)
	}
	return ids, nil
}

var _ domain.Repository = (*MemberGormRepository)(nil)
