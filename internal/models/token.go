package models

type Token struct {
	BaseModel

	UserID uint   `gorm:"not null;index" json:"user_id"`
	Token  string `gorm:"size:100;uniqueIndex;not null" json:"-"`
	// Inactive tokens are password-reset keys; they never authenticate.
	IsActive bool `gorm:"not null;default:false" json:"is_active"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
