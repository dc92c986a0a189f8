package repository

import (
	"context"

	"blogicum/internal/models"
)

// PageSize is the fixed number of posts per listing page.
const PageSize = 10

// PaginatePosts runs the listing pipeline: count the scope, derive the page
// count, clamp the requested page into range, and fetch that window.
//
// Pages are 1-indexed. A page below 1 clamps to the first page and a page
// past the end clamps to the last. An empty scope still has one page, so
// out-of-range requests always land somewhere rather than erroring.
func PaginatePosts(ctx context.Context, repo PostRepository, f PostFilter, page int) (*models.PostPage, error) {
	total, err := repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	posts, err := repo.List(ctx, f, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return &models.PostPage{
		Items:      posts,
		Page:       page,
		TotalPages: totalPages,
		TotalCount: total,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}
