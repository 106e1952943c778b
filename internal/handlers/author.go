package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/librarium-dev/librarium/internal/models"
	"github.com/librarium-dev/librarium/internal/utils"
	"gorm.io/gorm"
)

type AuthorHandler struct {
	db *gorm.DB
}

func NewAuthorHandler(db *gorm.DB) *AuthorHandler {
	return &AuthorHandler{db: db}
}

type CreateAuthorRequest struct {
	FirstName string     `json:"first_name" binding:"required,max=100"`
	LastName  string     `json:"last_name" binding:"required,max=100"`
	Biography string     `json:"biography" binding:"max=2000"`
	BirthDate *time.Time `json:"birth_date"`
}

// UpdateAuthorRequest is a patch: nil fields leave the stored value alone.
type UpdateAuthorRequest struct {
	FirstName *string    `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string    `json:"last_name" binding:"omitempty,max=100"`
	Biography *string    `json:"biography" binding:"omitempty,max=2000"`
	BirthDate *time.Time `json:"birth_date"`
}

func (h *AuthorHandler) Create(ctx *gin.Context) {
	var body CreateAuthorRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	author := models.Author{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Biography: body.Biography,
		BirthDate: body.BirthDate,
	}

	if err := h.db.Create(&author).Error; err != nil {
		log.Printf("Failed to create author: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, author)
}

func (h *AuthorHandler) Update(ctx *gin.Context) {
	authorID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author ID"})
		return
	}

	var body UpdateAuthorRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
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

	if body.FirstName != nil {
		author.FirstName = *body.FirstName
	}
	if body.LastName != nil {
		author.LastName = *body.LastName
	}
	if body.Biography != nil {
		author.Biography = *body.Biography
	}
	if body.BirthDate != nil {
		author.BirthDate = body.BirthDate
	}

	if err := h.db.Save(&author).Error; err != nil {
		log.Printf("Failed to update author: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, author)
}

func (h *AuthorHandler) Delete(ctx *gin.Context) {
	authorID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author ID"})
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

	if err := h.db.Delete(&author).Error; err != nil {
		log.Printf("Failed to delete author: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthorHandler) List(ctx *gin.Context) {
	query, ok := bindListQuery(ctx)

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset"})
		return
	}

	var authors []models.Author

	if err := h.db.Offset(query.Offset).Limit(pageSize).Find(&authors).Error; err != nil {
		log.Printf("Failed to list authors: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, authors)
}
