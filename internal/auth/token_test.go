package auth

import (
	"testing"

	"github.com/librarium-dev/librarium/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Token{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := models.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: HashPassword("secret123"),
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestIssueAndResolveToken(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)

	token, err := IssueToken(db, user.ID, true)
	require.NoError(t, err)
	assert.Len(t, token.Token, BearerTokenLength)
	assert.True(t, token.IsActive)

	resolved, err := ResolveToken(db, token.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, user.Email, resolved.Email)
}

func TestResolveTokenUnknown(t *testing.T) {
	db := setupTestDB(t)

	_, err := ResolveToken(db, "no-such-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResetKeysDoNotAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)

	resetKey, err := IssueToken(db, user.ID, false)
	require.NoError(t, err)
	assert.Len(t, resetKey.Token, ResetKeyLength)
	assert.False(t, resetKey.IsActive)

	_, err = ResolveToken(db, resetKey.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	found, err := FindResetKey(db, resetKey.Token)
	require.NoError(t, err)
	assert.Equal(t, resetKey.ID, found.ID)
	assert.Equal(t, user.Email, found.User.Email)
}

func TestRevokeToken(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)

	resetKey, err := IssueToken(db, user.ID, false)
	require.NoError(t, err)

	require.NoError(t, RevokeToken(db, resetKey))

	_, err = FindResetKey(db, resetKey.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
