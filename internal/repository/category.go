package repository

import (
	"context"

	"blogicum/internal/cache"
	"blogicum/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines interface for category operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	ListPublished(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := cache.Aside(ctx, cache.CategoryKey(slug), &category, cache.CategoryTTL, func() error {
		return r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListPublished(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("title ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return err
	}
	cache.InvalidateCategory(ctx, category.Slug)
	cache.InvalidateFeed(ctx)
	return nil
}

// Delete removes the category; the SET NULL constraint nulls the reference
// on dependent posts rather than deleting them.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&category).Error; err != nil {
		return err
	}
	cache.InvalidateCategory(ctx, category.Slug)
	cache.InvalidateFeed(ctx)
	return nil
}
