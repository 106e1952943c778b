package models

import "time"

type Report struct {
	BaseModel

	CommentID  uint       `gorm:"not null;uniqueIndex:idx_comment_reporter" json:"comment_id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_comment_reporter" json:"user_id"`
	ReasonText string     `gorm:"size:1000;not null" json:"reason_text"`
	ResolvedAt *time.Time `json:"resolved_at"`

	// Relationships
	Comment Comment `gorm:"foreignKey:CommentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
