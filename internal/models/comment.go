package models

type Comment struct {
	BaseModel

	BookID      uint   `gorm:"not null;index" json:"book_id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	CommentText string `gorm:"size:2000;not null" json:"comment_text"`
	Rating      *int   `json:"rating"`
	IsApproved  bool   `gorm:"not null;default:false" json:"is_approved"`

	// Relationships
	Book    Book     `gorm:"foreignKey:BookID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User    User     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Reports []Report `gorm:"foreignKey:CommentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
