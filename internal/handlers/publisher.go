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

type PublisherHandler struct {
	db *gorm.DB
}

func NewPublisherHandler(db *gorm.DB) *PublisherHandler {
	return &PublisherHandler{db: db}
}

type CreatePublisherRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"max=150"`
	Phone   string `json:"phone" binding:"max=20"`
}

type UpdatePublisherRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Address *string `json:"address" binding:"omitempty,max=150"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
}

func (h *PublisherHandler) Create(ctx *gin.Context) {
	var body CreatePublisherRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	publisher := models.Publisher{
		Name:    body.Name,
		Address: body.Address,
		Phone:   body.Phone,
	}

	if err := h.db.Create(&publisher).Error; err != nil {
		log.Printf("Failed to create publisher: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, publisher)
}

func (h *PublisherHandler) Update(ctx *gin.Context) {
	publisherID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publisher ID"})
		return
	}

	var body UpdatePublisherRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var publisher models.Publisher

	if err := h.db.First(&publisher, publisherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Publisher not found"})
		} else {
			log.Printf("Failed to fetch publisher: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if body.Name != nil {
		publisher.Name = *body.Name
	}
	if body.Address != nil {
		publisher.Address = *body.Address
	}
	if body.Phone != nil {
		publisher.Phone = *body.Phone
	}

	if err := h.db.Save(&publisher).Error; err != nil {
		log.Printf("Failed to update publisher: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, publisher)
}

// Delete removes the publisher; its books stay behind with publisher_id
// cleared rather than being cascaded away.
func (h *PublisherHandler) Delete(ctx *gin.Context) {
	publisherID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publisher ID"})
		return
	}

	var publisher models.Publisher

	if err := h.db.First(&publisher, publisherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Publisher not found"})
		} else {
			log.Printf("Failed to fetch publisher: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Book{}).Where("publisher_id = ?", publisher.ID).
			Update("publisher_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&publisher).Error
	})

	if err != nil {
		log.Printf("Failed to delete publisher: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *PublisherHandler) List(ctx *gin.Context) {
	query, ok := bindListQuery(ctx)

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset"})
		return
	}

	var publishers []models.Publisher

	if err := h.db.Offset(query.Offset).Limit(pageSize).Find(&publishers).Error; err != nil {
		log.Printf("Failed to list publishers: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, publishers)
}
