package router

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/librarium-dev/librarium/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorRoleGating(t *testing.T) {
	r, gdb, _ := newTestRouter(t)

	userToken := bearerToken(t, gdb, seedUser(t, gdb, "user@example.com", models.RoleUser))
	editorToken := bearerToken(t, gdb, seedUser(t, gdb, "editor@example.com", models.RoleEditor))
	modToken := bearerToken(t, gdb, seedUser(t, gdb, "mod@example.com", models.RoleModerator))

	body := gin.H{"first_name": "Ursula", "last_name": "Le Guin"}

	w := doJSON(t, r, http.MethodPost, "/authors", userToken, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/authors", editorToken, body)
	require.Equal(t, http.StatusOK, w.Code)

	var author models.Author
	decodeJSON(t, w, &author)

	// Delete is moderator-only, editors are not enough.
	w = doJSON(t, r, http.MethodDelete, "/authors/"+itoa(author.ID), editorToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/authors/"+itoa(author.ID), modToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, gdb.Model(&models.Author{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAuthorPartialUpdate(t *testing.T) {
	r, gdb, _ := newTestRouter(t)
	editorToken := bearerToken(t, gdb, seedUser(t, gdb, "editor@example.com", models.RoleEditor))

	w := doJSON(t, r, http.MethodPost, "/authors", editorToken, gin.H{
		"first_name": "Ursula",
		"last_name":  "Le Guin",
		"biography":  "American author",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var author models.Author
	decodeJSON(t, w, &author)

	// Only the supplied field changes.
	w = doJSON(t, r, http.MethodPut, "/authors/"+itoa(author.ID), editorToken, gin.H{
		"biography": "American author of speculative fiction",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Author
	require.NoError(t, gdb.First(&updated, author.ID).Error)
	assert.Equal(t, "Ursula", updated.FirstName)
	assert.Equal(t, "Le Guin", updated.LastName)
	assert.Equal(t, "American author of speculative fiction", updated.Biography)
}

func TestUpdateMissingAuthor(t *testing.T) {
	r, gdb, _ := newTestRouter(t)
	editorToken := bearerToken(t, gdb, seedUser(t, gdb, "editor@example.com", models.RoleEditor))

	w := doJSON(t, r, http.MethodPut, "/authors/999", editorToken, gin.H{"biography": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookRequiresExistingPublisher(t *testing.T) {
	r, gdb, _ := newTestRouter(t)
	editorToken := bearerToken(t, gdb, seedUser(t, gdb, "editor@example.com", models.RoleEditor))

	w := doJSON(t, r, http.MethodPost, "/books", editorToken, gin.H{
		"title":        "Orphaned",
		"publisher_id": 12345,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Without a publisher reference the book is fine.
	w = doJSON(t, r, http.MethodPost, "/books", editorToken, gin.H{"title": "Standalone"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeletePublisherNullifiesBooks(t *testing.T) {
	r, gdb, _ := newTestRouter(t)
	editorToken := bearerToken(t, gdb, seedUser(t, gdb, "editor@example.com", models.RoleEditor))
	modToken := bearerToken(t, gdb, seedUser(t, gdb, "mod@example.com", models.RoleModerator))

	w := doJSON(t, r, http.MethodPost, "/publishers", editorToken, gin.H{"name": "Gollancz"})
	require.Equal(t, http.StatusOK, w.Code)
	var publisher models.Publisher
	decodeJSON(t, w, &publisher)

	w = doJSON(t, r, http.MethodPost, "/books", editorToken, gin.H{
		"title":        "The Left Hand of Darkness",
		"publisher_id": publisher.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var book models.Book
	decodeJSON(t, w, &book)

	w = doJSON(t, r, http.MethodDelete, "/publishers/"+itoa(publisher.ID), modToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var survivor models.Book
	require.NoError(t, gdb.First(&survivor, book.ID).Error)
	assert.Nil(t, survivor.PublisherID)
}

func TestLinkAuthorConflictAndMissing(t *testing.T) {
	r, gdb, _ := newTestRouter(t)
	editorToken := bearerToken(t, gdb, seedUser(t, gdb, "editor@example.com", models.RoleEditor))

	w := doJSON(t, r, http.MethodPost, "/books", editorToken, gin.H{"title": "Lavinia"})
	require.Equal(t, http.StatusOK, w.Code)
	var book models.Book
	decodeJSON(t, w, &book)

	w = doJSON(t, r, http.MethodPost, "/authors", editorToken, gin.H{
		"first_name": "Ursula", "last_name": "Le Guin",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var author models.Author
	decodeJSON(t, w, &author)

	link := "/books/" + itoa(book.ID) + "/authors/" + itoa(author.ID)

	w = doJSON(t, r, http.MethodPost, link, editorToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Linking the same pair twice is a conflict, not a silent no-op.
	w = doJSON(t, r, http.MethodPost, link, editorToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/books/"+itoa(book.ID)+"/authors/999", editorToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/books/999/authors/"+itoa(author.ID), editorToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLinkGenre(t *testing.T) {
	r, gdb, _ := newTestRouter(t)
	editorToken := bearerToken(t, gdb, seedUser(t, gdb, "editor@example.com", models.RoleEditor))

	w := doJSON(t, r, http.MethodPost, "/books", editorToken, gin.H{"title": "Lavinia"})
	require.Equal(t, http.StatusOK, w.Code)
	var book models.Book
	decodeJSON(t, w, &book)

	w = doJSON(t, r, http.MethodPost, "/genres", editorToken, gin.H{"name": "Fantasy"})
	require.Equal(t, http.StatusOK, w.Code)
	var genre models.Genre
	decodeJSON(t, w, &genre)

	link := "/books/" + itoa(book.ID) + "/genres/" + itoa(genre.ID)

	w = doJSON(t, r, http.MethodPost, link, editorToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, link, editorToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookPagination(t *testing.T) {
	r, gdb, _ := newTestRouter(t)
	userToken := bearerToken(t, gdb, seedUser(t, gdb, "user@example.com", models.RoleUser))

	for i := 0; i < 12; i++ {
		require.NoError(t, gdb.Create(&models.Book{Title: "Book " + itoa(uint(i))}).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/books?offset=0", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page []models.Book
	decodeJSON(t, w, &page)
	assert.Len(t, page, 10)

	w = doJSON(t, r, http.MethodGet, "/books?offset=10", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &page)
	assert.Len(t, page, 2)

	w = doJSON(t, r, http.MethodGet, "/books?offset=-1", userToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenreListRequiresAuth(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/genres/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
