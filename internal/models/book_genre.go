package models

// BookGenre is the book/genre link row, keyed the same way as BookAuthor.
type BookGenre struct {
	BookID  uint `gorm:"primaryKey" json:"book_id"`
	GenreID uint `gorm:"primaryKey" json:"genre_id"`
}

func (BookGenre) TableName() string { return "book_genres" }
