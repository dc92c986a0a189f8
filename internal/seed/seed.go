package seed

import (
	"fmt"
	"log"

	"blogicum/internal/models"

	"gorm.io/gorm"
)

// Options controls how much data the seeder generates.
type Options struct {
	NumUsers    int
	NumPosts    int
	NumComments int
	ShouldClean bool
}

var categoryTitles = []struct {
	title     string
	published bool
}{
	{"Travel Notes", true},
	{"City Life", true},
	{"Food and Drink", true},
	{"Photography", true},
	{"Staff Drafts", false},
}

var locationNames = []struct {
	name      string
	published bool
}{
	{"Reykjavik", true},
	{"Lisbon", true},
	{"Kyoto", true},
	{"Tbilisi", true},
	{"Atlantis", false},
}

// Seed populates the database with demo data: a handful of categories and
// locations, then users, posts spread over the timeline, and comments.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	categories := make([]*models.Category, 0, len(categoryTitles))
	for _, ct := range categoryTitles {
		category, err := f.CreateCategory(ct.title, ct.published)
		if err != nil {
			return fmt.Errorf("failed to create category %q: %w", ct.title, err)
		}
		categories = append(categories, category)
	}
	log.Printf("%d categories created", len(categories))

	locations := make([]*models.Location, 0, len(locationNames))
	for _, ln := range locationNames {
		location, err := f.CreateLocation(ln.name, ln.published)
		if err != nil {
			return fmt.Errorf("failed to create location %q: %w", ln.name, err)
		}
		locations = append(locations, location)
	}
	log.Printf("%d locations created", len(locations))

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d users created", len(users))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.rand.Intn(len(users))]
		category := categories[f.rand.Intn(len(categories))]
		var location *models.Location
		if f.rand.Intn(3) > 0 {
			location = locations[f.rand.Intn(len(locations))]
		}
		posts = append(posts, f.BuildPost(author, category, location, 90))
	}
	if err := f.CreatePostsBatch(posts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	for i := 0; i < opts.NumComments; i++ {
		author := users[f.rand.Intn(len(users))]
		post := posts[f.rand.Intn(len(posts))]
		if _, err := f.CreateComment(author, post); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
	}
	log.Printf("%d comments created", opts.NumComments)

	log.Println("database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("clearing existing data...")
	sql := `TRUNCATE TABLE comments, posts, categories, locations, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
