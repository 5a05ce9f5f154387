package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blogicum/blogicum/internal/db"
)

// ErrNotFound is returned for anything an anonymous reader may not see.
var ErrNotFound = errors.New("not found")

// Repository is the storage needed by the public reads.
type Repository interface {
	PublishedPosts(ctx context.Context, now time.Time, categoryID *int, limit int) ([]db.Post, error)
	PublishedPostByID(ctx context.Context, now time.Time, postID int) (*db.Post, error)
	PublishedCategoryBySlug(ctx context.Context, slug string) (*db.Category, error)
	NextScheduledPubDate(ctx context.Context, now time.Time) (*time.Time, error)
}

// Cache stores public results between requests.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Flush(ctx context.Context) error
}

const (
	indexCacheKey          = "index"
	categoryCacheKeyPrefix = "category:"
)

type categoryPage struct {
	Category Category `json:"category"`
	Posts    []Post   `json:"posts"`
}

type Manager struct {
	db    Repository
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
	now   func() time.Time
}

func NewManager(repo Repository, logger *slog.Logger) *Manager {
	return &Manager{
		db:  repo,
		log: logger,
		now: time.Now,
	}
}

// WithCache enables caching of the index and category feeds for at most ttl.
func (m *Manager) WithCache(c Cache, ttl time.Duration) *Manager {
	m.cache = c
	m.ttl = ttl
	return m
}

// Index returns the latest PostsOnIndexPage visible posts, newest first.
func (m *Manager) Index(ctx context.Context) ([]Post, error) {
	now := m.now()

	var cached []Post
	if m.cacheGet(ctx, indexCacheKey, &cached) {
		return FilterPublished(cached, now), nil
	}

	list, err := m.db.PublishedPosts(ctx, now, nil, PostsOnIndexPage)
	if err != nil {
		return nil, fmt.Errorf("db get index posts: %w", err)
	}

	posts := NewPosts(list)
	m.cacheSet(ctx, indexCacheKey, posts, now)

	return posts, nil
}

// PostByID returns the visible post with postID or ErrNotFound.
func (m *Manager) PostByID(ctx context.Context, postID int) (*Post, error) {
	dbPost, err := m.db.PublishedPostByID(ctx, m.now(), postID)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	post := NewPost(*dbPost)
	return &post, nil
}

// CategoryPosts returns the published category with slug and its visible posts, newest first.
// An unknown or unpublished category is ErrNotFound; an empty feed is not.
func (m *Manager) CategoryPosts(ctx context.Context, slug string) (*Category, []Post, error) {
	now := m.now()
	key := categoryCacheKeyPrefix + slug

	var cached categoryPage
	if m.cacheGet(ctx, key, &cached) {
		return &cached.Category, FilterPublished(cached.Posts, now), nil
	}

	dbCategory, err := m.db.PublishedCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, nil, fmt.Errorf("db get category by slug: %w", err)
	} else if dbCategory == nil {
		return nil, nil, ErrNotFound
	}

	list, err := m.db.PublishedPosts(ctx, now, &dbCategory.ID, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("db get category posts: %w", err)
	}

	page := categoryPage{
		Category: NewCategory(*dbCategory),
		Posts:    NewPosts(list),
	}
	m.cacheSet(ctx, key, page, now)

	return &page.Category, page.Posts, nil
}

func (m *Manager) cacheGet(ctx context.Context, key string, dst any) bool {
	if m.cache == nil {
		return false
	}

	ok, err := m.cache.Get(ctx, key, dst)
	if err != nil {
		m.log.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		return false
	}

	return ok
}

// cacheSet stores v until the configured ttl or the next scheduled publication, whichever is sooner.
func (m *Manager) cacheSet(ctx context.Context, key string, v any, now time.Time) {
	if m.cache == nil {
		return
	}

	ttl, err := m.cacheTTL(ctx, now)
	if err != nil {
		m.log.WarnContext(ctx, "cache ttl failed", "key", key, "error", err)
		return
	}

	if err := m.cache.Set(ctx, key, v, ttl); err != nil {
		m.log.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
}

func (m *Manager) cacheTTL(ctx context.Context, now time.Time) (time.Duration, error) {
	next, err := m.db.NextScheduledPubDate(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("db get next scheduled pub date: %w", err)
	}

	ttl := m.ttl
	if next != nil {
		if untilNext := next.Sub(now); untilNext < ttl {
			ttl = untilNext
		}
	}

	return ttl, nil
}
