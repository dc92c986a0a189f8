package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix     = "post:%d"
	FeedKeyPrefix     = "feed:page:%d"
	CategoryKeyPrefix = "category:%s"
	ProfileKeyPrefix  = "profile:%s"
)

const (
	PostTTL     = 30 * time.Minute
	FeedTTL     = 2 * time.Minute
	CategoryTTL = 10 * time.Minute
	ProfileTTL  = 5 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func FeedKey(page int) string {
	return fmt.Sprintf(FeedKeyPrefix, page)
}

func CategoryKey(slug string) string {
	return fmt.Sprintf(CategoryKeyPrefix, slug)
}

func ProfileKey(username string) string {
	return fmt.Sprintf(ProfileKeyPrefix, username)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

// InvalidateFeed drops every cached feed page. Publication state changes
// can move posts across page boundaries, so partial invalidation is not safe.
func InvalidateFeed(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "feed:page:*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

func InvalidateCategory(ctx context.Context, slug string) {
	Invalidate(ctx, CategoryKey(slug))
}

func InvalidateProfile(ctx context.Context, username string) {
	Invalidate(ctx, ProfileKey(username))
}
