package models

// Address is keyed by its member: one address per member.
type Address struct {
	MemberUserID uint   `gorm:"column:member_user_id;primaryKey;autoIncrement:false" json:"member_user_id"`
	Member       Member `gorm:"foreignKey:MemberUserID;references:MemberUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"member"`

	HouseNumber string `gorm:"size:20;not null" json:"house_number"`
	Street      string `gorm:"size:255;not null" json:"street"`
	Town        string `gorm:"size:100;not null" json:"town"`
}

func (Address) TableName() string { return "address" }
