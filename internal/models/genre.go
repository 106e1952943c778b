package models

type Genre struct {
	BaseModel

	Name        string `gorm:"size:100;not null;index" json:"name"`
	Description string `gorm:"size:1000" json:"description"`

	// Relationships
	Books []Book `gorm:"many2many:book_genres" json:"-"`
}
