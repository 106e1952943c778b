package models

import "time"

// BaseModel is a gorm.Model without DeletedAt: catalog rows are removed for
// real (report resolution and moderator deletes are permanent), so soft
// deletes would only hide rows from the uniqueness checks.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
