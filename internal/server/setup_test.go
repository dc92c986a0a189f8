package server

import (
	"testing"
	"time"

	"blogicum/internal/cache"
	"blogicum/internal/config"
	"blogicum/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "Sup3r$ecretPass!"

// setupTestServer builds a server over an in-memory SQLite database with no
// cache, plus a Fiber app with the real routes mounted.
func setupTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	cache.SetClient(nil)

	cfg := &config.Config{
		JWTSecret: "test-secret-key-0123456789-0123456789",
		Port:      "0",
		Env:       "test",
	}
	srv := NewServerWithDeps(cfg, db, nil)

	app := fiber.New()
	srv.SetupRoutes(app)

	return srv, app, db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, slug string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{
		Title:       "Category " + slug,
		Description: "about " + slug,
		Slug:        slug,
		IsPublished: published,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

type postOpts struct {
	categoryID  *uint
	isPublished bool
	pubDate     time.Time
}

func createTestPost(t *testing.T, db *gorm.DB, author *models.User, title string, opts postOpts) *models.Post {
	t.Helper()
	if opts.pubDate.IsZero() {
		opts.pubDate = time.Now().Add(-time.Hour)
	}
	post := &models.Post{
		Title:       title,
		Text:        "text of " + title,
		PubDate:     opts.pubDate,
		AuthorID:    author.ID,
		CategoryID:  opts.categoryID,
		IsPublished: opts.isPublished,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func authHeader(t *testing.T, srv *Server, userID uint) string {
	t.Helper()
	token, err := srv.generateToken(userID)
	require.NoError(t, err)
	return "Bearer " + token
}
