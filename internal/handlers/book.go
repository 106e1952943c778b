package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/librarium-dev/librarium/internal/models"
	"github.com/librarium-dev/librarium/internal/utils"
	"gorm.io/gorm"
)

type BookHandler struct {
	db *gorm.DB
}

func NewBookHandler(db *gorm.DB) *BookHandler {
	return &BookHandler{db: db}
}

type CreateBookRequest struct {
	Title           string `json:"title" binding:"required,max=100"`
	PublicationYear *int   `json:"publication_year"`
	PageCount       *int   `json:"page_count"`
	Description     string `json:"description" binding:"max=2000"`
	ImageURL        string `json:"image_url" binding:"max=200"`
	PublisherID     *uint  `json:"publisher_id"`
}

// UpdateBookRequest is a patch: nil fields leave the stored value alone.
// That makes an explicit "publisher_id": null indistinguishable from an
// absent field, so the publisher reference can be replaced but not cleared
// here; it is cleared when its publisher is deleted.
type UpdateBookRequest struct {
	Title           *string `json:"title" binding:"omitempty,max=100"`
	PublicationYear *int    `json:"publication_year"`
	PageCount       *int    `json:"page_count"`
	Description     *string `json:"description" binding:"omitempty,max=2000"`
	ImageURL        *string `json:"image_url" binding:"omitempty,max=200"`
	PublisherID     *uint   `json:"publisher_id"`
}

type CreateCommentRequest struct {
	CommentText string `json:"comment_text" binding:"required,max=2000"`
	Rating      *int   `json:"rating" binding:"omitempty,gte=1,lte=5"`
}

// BookResponse enriches a book row with its publisher, authors and visible
// comments for the listing endpoint.
type BookResponse struct {
	models.Book
	Publisher *models.Publisher `json:"publisher"`
	Authors   []models.Author   `json:"authors"`
	Comments  []models.Comment  `json:"comments"`
}

func (h *BookHandler) checkPublisher(ctx *gin.Context, publisherID uint) bool {
	var publisher models.Publisher

	err := h.db.First(&publisher, publisherID).Error

	if err == nil {
		return true
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Publisher not found"})
	} else {
		log.Printf("Failed to fetch publisher: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}

	return false
}

func (h *BookHandler) Create(ctx *gin.Context) {
	var body CreateBookRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if body.PublisherID != nil && !h.checkPublisher(ctx, *body.PublisherID) {
		return
	}

	book := models.Book{
		Title:           body.Title,
		PublicationYear: body.PublicationYear,
		PageCount:       body.PageCount,
		Description:     body.Description,
		ImageURL:        body.ImageURL,
		PublisherID:     body.PublisherID,
	}

	if err := h.db.Create(&book).Error; err != nil {
		log.Printf("Failed to create book: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, book)
}

func (h *BookHandler) Update(ctx *gin.Context) {
	bookID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var body UpdateBookRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if body.PublisherID != nil && !h.checkPublisher(ctx, *body.PublisherID) {
		return
	}

	var book models.Book

	if err := h.db.First(&book, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		} else {
			log.Printf("Failed to fetch book: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if body.Title != nil {
		book.Title = *body.Title
	}
	if body.PublicationYear != nil {
		book.PublicationYear = body.PublicationYear
	}
	if body.PageCount != nil {
		book.PageCount = body.PageCount
	}
	if body.Description != nil {
		book.Description = *body.Description
	}
	if body.ImageURL != nil {
		book.ImageURL = *body.ImageURL
	}
	if body.PublisherID != nil {
		book.PublisherID = body.PublisherID
	}

	if err := h.db.Save(&book).Error; err != nil {
		log.Printf("Failed to update book: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, book)
}

func (h *BookHandler) Delete(ctx *gin.Context) {
	bookID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var book models.Book

	if err := h.db.First(&book, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		} else {
			log.Printf("Failed to fetch book: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Link rows, comments and their reports go with the book. Done here
	// rather than left to FK cascades so the behavior is the same on every
	// store the service runs against.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", book.ID).Delete(&models.BookAuthor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", book.ID).Delete(&models.BookGenre{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id IN (?)",
			tx.Model(&models.Comment{}).Select("id").Where("book_id = ?", book.ID),
		).Delete(&models.Report{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", book.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&book).Error
	})

	if err != nil {
		log.Printf("Failed to delete book: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *BookHandler) List(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	query, ok := bindListQuery(ctx)

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset"})
		return
	}

	var books []models.Book

	if err := h.db.Preload("Publisher").Preload("Authors").
		Offset(query.Offset).Limit(pageSize).Find(&books).Error; err != nil {
		log.Printf("Failed to list books: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]BookResponse, 0, len(books))

	for _, book := range books {
		// Moderators see pending comments as well.
		commentQuery := h.db.Where("book_id = ?", book.ID)
		if currentUser.Role != models.RoleModerator {
			commentQuery = commentQuery.Where("is_approved = ?", true)
		}

		var comments []models.Comment

		if err := commentQuery.Find(&comments).Error; err != nil {
			log.Printf("Failed to list comments for book %d: %v", book.ID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		authors := book.Authors
		if authors == nil {
			authors = []models.Author{}
		}

		response = append(response, BookResponse{
			Book:      book,
			Publisher: book.Publisher,
			Authors:   authors,
			Comments:  comments,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *BookHandler) AddAuthor(ctx *gin.Context) {
	bookID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	authorID, err := utils.GetParamID(ctx, "author_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author ID"})
		return
	}

	var book models.Book

	if err := h.db.First(&book, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		} else {
			log.Printf("Failed to fetch book: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var author models.Author

	if err := h.db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		} else {
			log.Printf("Failed to fetch author: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var existing models.BookAuthor

	err = h.db.Where("book_id = ? AND author_id = ?", bookID, authorID).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Relationship already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check book author link: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	link := models.BookAuthor{BookID: bookID, AuthorID: authorID}

	if err := h.db.Create(&link).Error; err != nil {
		log.Printf("Failed to link author to book: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *BookHandler) AddGenre(ctx *gin.Context) {
	bookID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	genreID, err := utils.GetParamID(ctx, "genre_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID"})
		return
	}

	var book models.Book

	if err := h.db.First(&book, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		} else {
			log.Printf("Failed to fetch book: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var genre models.Genre

	if err := h.db.First(&genre, genreID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
		} else {
			log.Printf("Failed to fetch genre: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var existing models.BookGenre

	err = h.db.Where("book_id = ? AND genre_id = ?", bookID, genreID).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Relationship already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check book genre link: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	link := models.BookGenre{BookID: bookID, GenreID: genreID}

	if err := h.db.Create(&link).Error; err != nil {
		log.Printf("Failed to link genre to book: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// AddComment posts a comment on a book. Editor and moderator comments skip
// the approval queue.
func (h *BookHandler) AddComment(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var body CreateCommentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var book models.Book

	if err := h.db.First(&book, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		} else {
			log.Printf("Failed to fetch book: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	comment := models.Comment{
		BookID:      book.ID,
		UserID:      currentUser.ID,
		CommentText: body.CommentText,
		Rating:      body.Rating,
		IsApproved:  currentUser.Role == models.RoleEditor || currentUser.Role == models.RoleModerator,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		log.Printf("Failed to create comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, comment)
}
