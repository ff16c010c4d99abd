package models

import "time"

// JobApplication links a caregiver to a job; the pair is the primary key,
// so a caregiver can apply to a given job once.
type JobApplication struct {
	CaregiverUserID uint      `gorm:"column:caregiver_user_id;primaryKey;autoIncrement:false" json:"caregiver_user_id"`
	Caregiver       Caregiver `gorm:"foreignKey:CaregiverUserID;references:CaregiverUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"caregiver"`

	JobID uint `gorm:"column:job_id;primaryKey;autoIncrement:false" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID;references:JobID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"job"`

	DateApplied time.Time `gorm:"type:date;not null" json:"date_applied"`
}

func (JobApplication) TableName() string { return "job_application" }
