package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/librarium-dev/librarium/internal/handlers"
	"github.com/librarium-dev/librarium/internal/mailer"
	"github.com/librarium-dev/librarium/internal/middleware"
	"github.com/librarium-dev/librarium/internal/models"
	"gorm.io/gorm"
)

// NewRouter wires every route with its exact allowed-role set, so the whole
// authorization table reads in one place.
func NewRouter(db *gorm.DB, m mailer.Mailer, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authn := middleware.AuthMiddleware(db)
	editors := middleware.RequireRole(models.RoleEditor, models.RoleModerator)
	moderators := middleware.RequireRole(models.RoleModerator)

	authHandler := handlers.NewAuthHandler(db)
	passwordHandler := handlers.NewPasswordHandler(db, m)
	authorHandler := handlers.NewAuthorHandler(db)
	publisherHandler := handlers.NewPublisherHandler(db)
	genreHandler := handlers.NewGenreHandler(db)
	bookHandler := handlers.NewBookHandler(db)
	moderationHandler := handlers.NewModerationHandler(db)

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.HealthCheck)

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/user", authn, authHandler.Me)
	r.POST("/reset_password", passwordHandler.ResetPassword)
	r.POST("/update_password", passwordHandler.UpdatePassword)

	r.GET("/authors/", authn, authorHandler.List)
	r.POST("/authors", authn, editors, authorHandler.Create)
	r.PUT("/authors/:id", authn, editors, authorHandler.Update)
	r.DELETE("/authors/:id", authn, moderators, authorHandler.Delete)

	r.GET("/genres/", authn, genreHandler.List)
	r.POST("/genres", authn, editors, genreHandler.Create)
	r.PUT("/genres/:id", authn, editors, genreHandler.Update)
	r.DELETE("/genres/:id", authn, moderators, genreHandler.Delete)

	r.GET("/publishers/", authn, publisherHandler.List)
	r.POST("/publishers", authn, editors, publisherHandler.Create)
	r.PUT("/publishers/:id", authn, editors, publisherHandler.Update)
	r.DELETE("/publishers/:id", authn, moderators, publisherHandler.Delete)

	r.GET("/books", authn, bookHandler.List)
	r.POST("/books", authn, editors, bookHandler.Create)
	r.PUT("/books/:id", authn, editors, bookHandler.Update)
	r.DELETE("/books/:id", authn, moderators, bookHandler.Delete)
	r.POST("/books/:id/authors/:author_id", authn, editors, bookHandler.AddAuthor)
	r.POST("/books/:id/genres/:genre_id", authn, editors, bookHandler.AddGenre)
	r.POST("/books/:id/comments", authn, bookHandler.AddComment)

	r.POST("/comments/:id/reports", authn, moderationHandler.ReportComment)
	r.POST("/comments/:id/approve", authn, moderators, moderationHandler.ApproveComment)
	r.GET("/reports/", authn, moderators, moderationHandler.ListReports)
	r.POST("/reports/:id/approve", authn, moderators, moderationHandler.ResolveReport)
	r.POST("/users/:id/block", authn, moderators, moderationHandler.BlockUser)

	return r
}
