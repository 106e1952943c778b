package models

import "time"

type Author struct {
	BaseModel

	FirstName string     `gorm:"size:100;not null" json:"first_name"`
	LastName  string     `gorm:"size:100;not null;index" json:"last_name"`
	Biography string     `gorm:"size:2000" json:"biography"`
	BirthDate *time.Time `json:"birth_date"`

	// Relationships
	Books []Book `gorm:"many2many:book_authors" json:"-"`
}
