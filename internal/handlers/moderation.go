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

type ModerationHandler struct {
	db *gorm.DB
}

func NewModerationHandler(db *gorm.DB) *ModerationHandler {
	return &ModerationHandler{db: db}
}

type CreateReportRequest struct {
	ReasonText string `json:"reason_text" binding:"required,max=1000"`
}

func (h *ModerationHandler) ReportComment(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	commentID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	var body CreateReportRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var comment models.Comment

	if err := h.db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		} else {
			log.Printf("Failed to fetch comment: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var existing models.Report

	err = h.db.Where("comment_id = ? AND user_id = ?", comment.ID, currentUser.ID).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "You already reported this comment"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check existing report: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	report := models.Report{
		CommentID:  comment.ID,
		UserID:     currentUser.ID,
		ReasonText: body.ReasonText,
	}

	if err := h.db.Create(&report).Error; err != nil {
		log.Printf("Failed to create report: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, report)
}

func (h *ModerationHandler) ListReports(ctx *gin.Context) {
	var reports []models.Report

	if err := h.db.Where("resolved_at IS NULL").Find(&reports).Error; err != nil {
		log.Printf("Failed to list reports: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, reports)
}

// ResolveReport approves a report, which removes the offending comment and
// every report filed against it, the resolved one included. Resolution is
// destructive: closing the ticket and deleting the content are one act.
func (h *ModerationHandler) ResolveReport(ctx *gin.Context) {
	reportID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var report models.Report

	if err := h.db.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			log.Printf("Failed to fetch report: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var comment models.Comment

	if err := h.db.First(&comment, report.CommentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		} else {
			log.Printf("Failed to fetch comment: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	now := time.Now()

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&report).Update("resolved_at", &now).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id = ?", comment.ID).Delete(&models.Report{}).Error; err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})

	if err != nil {
		log.Printf("Failed to resolve report: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// ApproveComment is idempotent; approving an approved comment is a no-op.
func (h *ModerationHandler) ApproveComment(ctx *gin.Context) {
	commentID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	var comment models.Comment

	if err := h.db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		} else {
			log.Printf("Failed to fetch comment: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := h.db.Model(&comment).Update("is_approved", true).Error; err != nil {
		log.Printf("Failed to approve comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// BlockUser deactivates an account. Moderators cannot be blocked, not even
// by other moderators. Existing tokens stay in the directory but stop
// authenticating because is_active is re-checked on every request.
func (h *ModerationHandler) BlockUser(ctx *gin.Context) {
	userID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var user models.User

	if err := h.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to fetch user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if user.Role == models.RoleModerator {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Cannot block moderator"})
		return
	}

	if err := h.db.Model(&user).Update("is_active", false).Error; err != nil {
		log.Printf("Failed to block user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
