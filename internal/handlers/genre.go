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

type GenreHandler struct {
	db *gorm.DB
}

func NewGenreHandler(db *gorm.DB) *GenreHandler {
	return &GenreHandler{db: db}
}

type CreateGenreRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

type UpdateGenreRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

func (h *GenreHandler) Create(ctx *gin.Context) {
	var body CreateGenreRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	genre := models.Genre{
		Name:        body.Name,
		Description: body.Description,
	}

	if err := h.db.Create(&genre).Error; err != nil {
		log.Printf("Failed to create genre: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, genre)
}

func (h *GenreHandler) Update(ctx *gin.Context) {
	genreID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID"})
		return
	}

	var body UpdateGenreRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
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

	if body.Name != nil {
		genre.Name = *body.Name
	}
	if body.Description != nil {
		genre.Description = *body.Description
	}

	if err := h.db.Save(&genre).Error; err != nil {
		log.Printf("Failed to update genre: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, genre)
}

func (h *GenreHandler) Delete(ctx *gin.Context) {
	genreID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID"})
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

	if err := h.db.Delete(&genre).Error; err != nil {
		log.Printf("Failed to delete genre: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *GenreHandler) List(ctx *gin.Context) {
	query, ok := bindListQuery(ctx)

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset"})
		return
	}

	var genres []models.Genre

	if err := h.db.Offset(query.Offset).Limit(pageSize).Find(&genres).Error; err != nil {
		log.Printf("Failed to list genres: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, genres)
}
