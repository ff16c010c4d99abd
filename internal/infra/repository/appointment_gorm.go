package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/caregivers-platform/internal/domain/appointment"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

var appointmentColumns = []string{
	"caregiver_user_id",
	"member_user_id",
	"appointment_date",
	"appointment_time",
	"work_hours",
	"status",
}

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var list []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Caregiver.User").
		Preload("Member.User").
		Order("appointment_id").
		Find(&list).Error; err != nil {
		return nil, httperr.Classify(err)
	}
	return list, nil
}

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	return httperr.Classify(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error,
	)
}

func (r *AppointmentGormRepository) Find(ctx context.Context, id uint) (*models.Appointment, bool, error) {
	return findOne[models.Appointment](
		r.db.WithContext(ctx).
			Preload("Caregiver.User").
			Preload("Member.User").
			Where("appointment_id = ?", id),
	)
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	id uint,
	ap *models.Appointment,
) (*models.Appointment, error) {

	ap.AppointmentID = id
	if err := replace(ctx, r.db, "appointment", appointmentColumns, ap, "appointment_id = ?", id); err != nil {
		return nil, err
	}

	out, ok, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("appointment")
	}
	return out, nil
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id uint) error {
	return remove[models.Appointment](ctx, r.db, "appointment_id = ?", id)
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)
