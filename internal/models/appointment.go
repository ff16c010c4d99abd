package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	AppointmentID uint `gorm:"column:appointment_id;primaryKey" json:"appointment_id"`

	CaregiverUserID uint      `gorm:"not null" json:"caregiver_user_id"`
	Caregiver       Caregiver `gorm:"foreignKey:CaregiverUserID;references:CaregiverUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"caregiver"`

	MemberUserID uint   `gorm:"not null" json:"member_user_id"`
	Member       Member `gorm:"foreignKey:MemberUserID;references:MemberUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"member"`

	AppointmentDate time.Time `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"type:time;not null" json:"appointment_time"`
	WorkHours       float64   `gorm:"type:numeric(4,2);not null;check:chk_appointment_work_hours,work_hours >= 0" json:"work_hours"`
	Status          string    `gorm:"size:20;not null;check:chk_appointment_status,status IN ('pending','confirmed','declined')" json:"status"`
}

func (Appointment) TableName() string { return "appointment" }

// AfterFind drops the zero fractional seconds the driver appends to time
// values, so "09:00:00.000000" reads back as "09:00:00".
func (a *Appointment) AfterFind(*gorm.DB) error {
	a.AppointmentTime = strings.TrimSuffix(a.AppointmentTime, ".000000")
	return nil
}
