package models

import "time"

type Job struct {
	JobID uint `gorm:"column:job_id;primaryKey" json:"job_id"`

	MemberUserID uint   `gorm:"not null" json:"member_user_id"`
	Member       Member `gorm:"foreignKey:MemberUserID;references:MemberUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"member"`

	RequiredCaregivingType string    `gorm:"size:50;not null" json:"required_caregiving_type"`
	OtherRequirements      string    `gorm:"type:text" json:"other_requirements"`
	DatePosted             time.Time `gorm:"type:date;not null" json:"date_posted"`
}

func (Job) TableName() string { return "job" }
