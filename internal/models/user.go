package models

// User is the identity row shared by caregivers and members.
type User struct {
	UserID             uint   `gorm:"column:user_id;primaryKey" json:"user_id"`
	Email              string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	GivenName          string `gorm:"size:100;not null" json:"given_name"`
	Surname            string `gorm:"size:100;not null" json:"surname"`
	City               string `gorm:"size:100;not null" json:"city"`
	PhoneNumber        string `gorm:"size:20;not null" json:"phone_number"`
	ProfileDescription string `gorm:"type:text" json:"profile_description"`
	Password           string `gorm:"size:255;not null" json:"-"`
}

func (User) TableName() string { return "user" }
