package seed

import (
	"testing"

	"blogicum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
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
	return db
}

func TestSeed(t *testing.T) {
	db := setupSeedDB(t)

	err := Seed(db, Options{NumUsers: 5, NumPosts: 20, NumComments: 30})
	require.NoError(t, err)

	var users, posts, comments, categories, locations int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)
	db.Model(&models.Category{}).Count(&categories)
	db.Model(&models.Location{}).Count(&locations)

	assert.Equal(t, int64(5), users)
	assert.Equal(t, int64(20), posts)
	assert.Equal(t, int64(30), comments)
	assert.Equal(t, int64(len(categoryTitles)), categories)
	assert.Equal(t, int64(len(locationNames)), locations)

	// Every post has an author and a category reference
	var orphaned int64
	db.Model(&models.Post{}).Where("category_id IS NULL").Count(&orphaned)
	assert.Zero(t, orphaned)
}

func TestFactory_CreateUserOverrides(t *testing.T) {
	db := setupSeedDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser(func(u *models.User) {
		u.Username = "fixed-name"
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-name", user.Username)
	assert.NotZero(t, user.ID)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Travel Notes", "travel-notes"},
		{"Food & Drink!", "food--drink"},
		{"  Already-Slugged  ", "already-slugged"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in))
	}
}
