// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"blogicum/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password every seeded user gets.
const DefaultPassword = "Password-123456"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	user := &models.User{
		Username:  fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		Password:  string(hashed),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}

	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCategory persists a category with a slug derived from its title.
func (f *Factory) CreateCategory(title string, published bool) (*models.Category, error) {
	category := &models.Category{
		Title:       title,
		Description: gofakeit.Sentence(12),
		Slug:        slugify(title),
		IsPublished: published,
	}
	if err := f.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// CreateLocation persists a location.
func (f *Factory) CreateLocation(name string, published bool) (*models.Location, error) {
	location := &models.Location{Name: name, IsPublished: published}
	if err := f.db.Create(location).Error; err != nil {
		return nil, err
	}
	return location, nil
}

// BuildPost constructs a post without persisting it, for batched creation.
// Publication dates are spread over the past maxDays, with a small share of
// drafts and scheduled posts mixed in so listings have something to hide.
func (f *Factory) BuildPost(author *models.User, category *models.Category, location *models.Location, maxDays int) *models.Post {
	if maxDays <= 0 {
		maxDays = 90
	}
	pubDate := time.Now().
		Add(-time.Duration(f.rand.Intn(maxDays*24)) * time.Hour).
		Add(-time.Duration(f.rand.Intn(60)) * time.Minute)

	post := &models.Post{
		Title:       gofakeit.Sentence(5),
		Text:        gofakeit.Paragraph(2, 4, 8, "\n\n"),
		PubDate:     pubDate,
		AuthorID:    author.ID,
		IsPublished: true,
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
	}
	if category != nil {
		post.CategoryID = &category.ID
	}
	if location != nil {
		post.LocationID = &location.ID
	}

	switch f.rand.Intn(10) {
	case 0:
		post.IsPublished = false
	case 1:
		post.PubDate = time.Now().Add(time.Duration(1+f.rand.Intn(30*24)) * time.Hour)
	}
	return post
}

// CreatePostsBatch persists multiple posts in a single DB call.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateComment persists a comment dated after the post it belongs to.
func (f *Factory) CreateComment(author *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Text:     gofakeit.Sentence(8 + f.rand.Intn(12)),
		AuthorID: author.ID,
		PostID:   post.ID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func slugify(title string) string {
	slug := strings.ToLower(title)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if len(slug) > 64 {
		slug = slug[:64]
	}
	return slug
}
