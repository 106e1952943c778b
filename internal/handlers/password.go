package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/librarium-dev/librarium/internal/auth"
	"github.com/librarium-dev/librarium/internal/mailer"
	"github.com/librarium-dev/librarium/internal/models"
	"gorm.io/gorm"
)

type PasswordHandler struct {
	db     *gorm.DB
	mailer mailer.Mailer
}

func NewPasswordHandler(db *gorm.DB, m mailer.Mailer) *PasswordHandler {
	return &PasswordHandler{db: db, mailer: m}
}

type ResetPasswordRequest struct {
	Email string `form:"email" json:"email" binding:"required,email"`
}

type UpdatePasswordRequest struct {
	Token string `form:"token" json:"token" binding:"required"`
}

// ResetPassword mails a short reset key. The response is the same whether or
// not the account exists, so the endpoint cannot be used to probe for emails.
func (h *PasswordHandler) ResetPassword(ctx *gin.Context) {
	var body ResetPasswordRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var user models.User

	err := h.db.Where("email = ?", email).First(&user).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Database error when fetching user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "If the account exists, a reset key has been sent"})
		return
	}

	resetKey, err := auth.IssueToken(h.db, user.ID, false)

	if err != nil {
		log.Printf("Failed to issue reset key: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.mailer.Send(user.Email, "Password reset", "Your password reset key: "+resetKey.Token); err != nil {
		// Best effort: the caller still gets the non-committal success.
		log.Printf("Failed to send reset email to user %d: %v", user.ID, err)
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "If the account exists, a reset key has been sent"})
}

// UpdatePassword consumes a reset key, replaces the password with a freshly
// generated one and mails it to the account.
func (h *PasswordHandler) UpdatePassword(ctx *gin.Context) {
	var body UpdatePasswordRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	resetKey, err := auth.FindResetKey(h.db, body.Token)

	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}
		log.Printf("Database error when fetching reset key: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newPassword, err := auth.GenerateToken(auth.NewPasswordLength)

	if err != nil {
		log.Printf("Failed to generate password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", resetKey.UserID).
			Update("password_hash", auth.HashPassword(newPassword)).Error; err != nil {
			return err
		}
		return auth.RevokeToken(tx, resetKey)
	})

	if err != nil {
		log.Printf("Failed to update password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.mailer.Send(resetKey.User.Email, "Password changed", "Your new password: "+newPassword); err != nil {
		log.Printf("Failed to send password email to user %d: %v", resetKey.UserID, err)
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
