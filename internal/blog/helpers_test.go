package blog

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/blogicum/blogicum/internal/cache"
	"github.com/blogicum/blogicum/internal/db"
	"github.com/redis/go-redis/v9"
)

var baseTime = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// mockRepository is a manual stub implementation of Repository
type mockRepository struct {
	publishedPostsFunc          func(ctx context.Context, now time.Time, categoryID *int, limit int) ([]db.Post, error)
	publishedPostByIDFunc       func(ctx context.Context, now time.Time, postID int) (*db.Post, error)
	publishedCategoryBySlugFunc func(ctx context.Context, slug string) (*db.Category, error)
	nextScheduledPubDateFunc    func(ctx context.Context, now time.Time) (*time.Time, error)

	publishedPostsCalls int
}

func (m *mockRepository) PublishedPosts(ctx context.Context, now time.Time, categoryID *int, limit int) ([]db.Post, error) {
	m.publishedPostsCalls++
	if m.publishedPostsFunc != nil {
		return m.publishedPostsFunc(ctx, now, categoryID, limit)
	}
	return nil, nil
}

func (m *mockRepository) PublishedPostByID(ctx context.Context, now time.Time, postID int) (*db.Post, error) {
	if m.publishedPostByIDFunc != nil {
		return m.publishedPostByIDFunc(ctx, now, postID)
	}
	return nil, nil
}

func (m *mockRepository) PublishedCategoryBySlug(ctx context.Context, slug string) (*db.Category, error) {
	if m.publishedCategoryBySlugFunc != nil {
		return m.publishedCategoryBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockRepository) NextScheduledPubDate(ctx context.Context, now time.Time) (*time.Time, error) {
	if m.nextScheduledPubDateFunc != nil {
		return m.nextScheduledPubDateFunc(ctx, now)
	}
	return nil, nil
}

func newTestCache(t *testing.T) (*cache.Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.New(client), mr
}

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

func publishedCategory(id int, slug string) *db.Category {
	return &db.Category{
		ID:               id,
		Title:            slug,
		Description:      "about " + slug,
		Slug:             slug,
		PublicationState: db.PublicationState{IsPublished: true},
	}
}

// dbPost returns a post visible at baseTime, published daysAgo days before it.
func dbPost(id, daysAgo int, category *db.Category) db.Post {
	return db.Post{
		ID:               id,
		Title:            "post",
		Text:             "text",
		PubDate:          baseTime.Add(-time.Duration(daysAgo) * 24 * time.Hour),
		AuthorID:         1,
		CategoryID:       &category.ID,
		PublicationState: db.PublicationState{IsPublished: true},
		Author:           &db.Author{ID: 1, Username: "leo"},
		Category:         category,
	}
}
