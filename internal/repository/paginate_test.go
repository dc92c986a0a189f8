package repository

import (
	"context"
	"testing"

	"blogicum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPostRepo lets each test script the repository behavior per method.
type stubPostRepo struct {
	PostRepository
	countFn func(ctx context.Context, f PostFilter) (int64, error)
	listFn  func(ctx context.Context, f PostFilter, limit, offset int) ([]*models.Post, error)
}

func (s *stubPostRepo) Count(ctx context.Context, f PostFilter) (int64, error) {
	return s.countFn(ctx, f)
}

func (s *stubPostRepo) List(ctx context.Context, f PostFilter, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, f, limit, offset)
}

func makePosts(n int) []*models.Post {
	posts := make([]*models.Post, n)
	for i := range posts {
		posts[i] = &models.Post{ID: uint(i + 1)}
	}
	return posts
}

func TestPaginatePosts(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page           int
		wantPage       int
		wantTotalPages int
		wantOffset     int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{name: "first page of many", total: 25, page: 1, wantPage: 1, wantTotalPages: 3, wantOffset: 0, wantHasNext: true},
		{name: "middle page", total: 25, page: 2, wantPage: 2, wantTotalPages: 3, wantOffset: 10, wantHasNext: true, wantHasPrev: true},
		{name: "last partial page", total: 25, page: 3, wantPage: 3, wantTotalPages: 3, wantOffset: 20, wantHasPrev: true},
		{name: "overshoot clamps to last", total: 25, page: 99, wantPage: 3, wantTotalPages: 3, wantOffset: 20, wantHasPrev: true},
		{name: "zero clamps to first", total: 25, page: 0, wantPage: 1, wantTotalPages: 3, wantOffset: 0, wantHasNext: true},
		{name: "negative clamps to first", total: 25, page: -7, wantPage: 1, wantTotalPages: 3, wantOffset: 0, wantHasNext: true},
		{name: "exact multiple has no extra page", total: 20, page: 2, wantPage: 2, wantTotalPages: 2, wantOffset: 10, wantHasPrev: true},
		{name: "empty scope still has one page", total: 0, page: 5, wantPage: 1, wantTotalPages: 1, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit, gotOffset int
			repo := &stubPostRepo{
				countFn: func(ctx context.Context, f PostFilter) (int64, error) {
					return tt.total, nil
				},
				listFn: func(ctx context.Context, f PostFilter, limit, offset int) ([]*models.Post, error) {
					gotLimit, gotOffset = limit, offset
					remaining := int(tt.total) - offset
					if remaining < 0 {
						remaining = 0
					}
					if remaining > limit {
						remaining = limit
					}
					return makePosts(remaining), nil
				},
			}

			page, err := PaginatePosts(context.Background(), repo, PostFilter{}, tt.page)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantTotalPages, page.TotalPages)
			assert.Equal(t, tt.total, page.TotalCount)
			assert.Equal(t, PageSize, gotLimit)
			assert.Equal(t, tt.wantOffset, gotOffset)
			assert.Equal(t, tt.wantHasNext, page.HasNext)
			assert.Equal(t, tt.wantHasPrev, page.HasPrev)
		})
	}
}

func TestPaginatePosts_EmptyScopeReturnsEmptyItems(t *testing.T) {
	repo := &stubPostRepo{
		countFn: func(ctx context.Context, f PostFilter) (int64, error) { return 0, nil },
		listFn: func(ctx context.Context, f PostFilter, limit, offset int) ([]*models.Post, error) {
			return nil, nil
		},
	}

	page, err := PaginatePosts(context.Background(), repo, PostFilter{}, 1)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}
