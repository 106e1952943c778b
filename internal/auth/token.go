package auth

import (
	"errors"

	"github.com/librarium-dev/librarium/internal/models"
	"gorm.io/gorm"
)

// ErrUnauthenticated is returned when a presented token does not resolve to
// a usable credential.
var ErrUnauthenticated = errors.New("could not validate credentials")

// IssueToken persists a fresh random token for the user. Login tokens are
// issued active; password-reset keys are issued inactive so they can never
// be used as bearer credentials.
func IssueToken(db *gorm.DB, userID uint, active bool) (*models.Token, error) {
	length := BearerTokenLength
	if !active {
		length = ResetKeyLength
	}

	value, err := GenerateToken(length)
	if err != nil {
		return nil, err
	}

	token := models.Token{
		UserID:   userID,
		Token:    value,
		IsActive: active,
	}

	if err := db.Create(&token).Error; err != nil {
		return nil, err
	}

	return &token, nil
}

// ResolveToken maps a bearer token string to its user. Unknown and inactive
// tokens both fail with ErrUnauthenticated.
func ResolveToken(db *gorm.DB, tokenString string) (*models.User, error) {
	var token models.Token

	err := db.Preload("User").Where("token = ?", tokenString).First(&token).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	if !token.IsActive {
		return nil, ErrUnauthenticated
	}

	return &token.User, nil
}

// FindResetKey looks up an inactive token by its string, for the
// password-reset flow.
func FindResetKey(db *gorm.DB, key string) (*models.Token, error) {
	var token models.Token

	err := db.Preload("User").Where("token = ? AND is_active = ?", key, false).First(&token).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return &token, nil
}

// RevokeToken deletes the token row; a consumed reset key must never work
// twice.
func RevokeToken(db *gorm.DB, token *models.Token) error {
	return db.Delete(token).Error
}
