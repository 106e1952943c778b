package models

// BookAuthor is the book/author link row. The composite primary key doubles
// as the uniqueness constraint backing the duplicate-link check, which is
// otherwise read-then-write and racy under concurrent identical requests.
type BookAuthor struct {
	BookID   uint `gorm:"primaryKey" json:"book_id"`
	AuthorID uint `gorm:"primaryKey" json:"author_id"`
}

func (BookAuthor) TableName() string { return "book_authors" }
