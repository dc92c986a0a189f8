// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"time"

	"blogicum/internal/cache"
	"blogicum/internal/models"

	"gorm.io/gorm"
)

// PostFilter narrows a post listing to a scope and visibility level.
// IncludeHidden is set only when a profile owner browses their own posts;
// everyone else gets the public visibility clause.
type PostFilter struct {
	CategoryID    *uint
	AuthorID      *uint
	IncludeHidden bool
	// Now anchors the pub_date comparison; zero means time.Now().
	Now time.Time
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, f PostFilter, limit, offset int) ([]*models.Post, error)
	Count(ctx context.Context, f PostFilter) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidateFeed(ctx)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.applyCommentCount(r.db.WithContext(ctx)).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, f PostFilter, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyFilter(r.applyCommentCount(r.db.WithContext(ctx)), f).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC, posts.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Count(ctx context.Context, f PostFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.Post{}), f).
		Count(&count).Error
	return count, err
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, post.ID)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id)
	cache.InvalidateFeed(ctx)
	return nil
}

// applyCommentCount adds a subquery to fetch the comment count in a single query.
func (r *postRepository) applyCommentCount(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count")
}

// applyFilter appends the scope and visibility WHERE clauses. The public
// visibility clause is the SQL twin of policy.IsVisibleAt: published,
// publicly dated, filed under an existing published category.
func (r *postRepository) applyFilter(db *gorm.DB, f PostFilter) *gorm.DB {
	if f.CategoryID != nil {
		db = db.Where("posts.category_id = ?", *f.CategoryID)
	}
	if f.AuthorID != nil {
		db = db.Where("posts.author_id = ?", *f.AuthorID)
	}
	if f.IncludeHidden {
		return db
	}

	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}
	return db.
		Where("posts.is_published = ?", true).
		Where("posts.pub_date <= ?", now).
		Where("posts.category_id IS NOT NULL").
		Where("EXISTS (SELECT 1 FROM categories WHERE categories.id = posts.category_id AND categories.is_published = ?)", true)
}
