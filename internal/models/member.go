package models

type Member struct {
	MemberUserID uint `gorm:"column:member_user_id;primaryKey;autoIncrement:false" json:"member_user_id"`
	User         User `gorm:"foreignKey:MemberUserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	HouseRules           string `gorm:"type:text" json:"house_rules"`
	DependentDescription string `gorm:"type:text" json:"dependent_description"`
}

func (Member) TableName() string { return "member" }
