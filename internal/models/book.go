package models

type Book struct {
	BaseModel

	Title           string `gorm:"size:100;not null;index" json:"title"`
	PublicationYear *int   `json:"publication_year"`
	PageCount       *int   `json:"page_count"`
	Description     string `gorm:"size:2000" json:"description"`
	ImageURL        string `gorm:"size:200" json:"image_url"`
	PublisherID     *uint  `json:"publisher_id"`

	// Relationships
	Publisher *Publisher `gorm:"foreignKey:PublisherID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
	Authors   []Author   `gorm:"many2many:book_authors" json:"-"`
	Genres    []Genre    `gorm:"many2many:book_genres" json:"-"`
	Comments  []Comment  `gorm:"foreignKey:BookID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
