package models

type Caregiver struct {
	CaregiverUserID uint `gorm:"column:caregiver_user_id;primaryKey;autoIncrement:false" json:"caregiver_user_id"`
	User            User `gorm:"foreignKey:CaregiverUserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Photo          string  `gorm:"size:255" json:"photo"`
	Gender         string  `gorm:"size:20;not null" json:"gender"`
	CaregivingType string  `gorm:"size:50;not null" json:"caregiving_type"`
	HourlyRate     float64 `gorm:"type:numeric(10,2);not null;check:chk_caregiver_hourly_rate,hourly_rate >= 0" json:"hourly_rate"`
}

func (Caregiver) TableName() string { return "caregiver" }
