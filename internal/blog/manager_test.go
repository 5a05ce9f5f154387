package blog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blogicum/blogicum/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(repo Repository) *Manager {
	m := NewManager(repo, noOpLogger())
	m.now = func() time.Time { return baseTime }
	return m
}

func TestManager_Index(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		travel := publishedCategory(1, "travel")
		repo := &mockRepository{
			publishedPostsFunc: func(ctx context.Context, now time.Time, categoryID *int, limit int) ([]db.Post, error) {
				assert.Equal(t, baseTime, now)
				assert.Nil(t, categoryID)
				assert.Equal(t, PostsOnIndexPage, limit)
				return []db.Post{dbPost(2, 1, travel), dbPost(1, 2, travel)}, nil
			},
		}

		posts, err := newTestManager(repo).Index(context.Background())
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, 2, posts[0].ID)
		assert.Equal(t, "travel", posts[0].Category.Slug)
		assert.Equal(t, "leo", posts[0].AuthorName())
	})

	t.Run("EmptyIsNotAnError", func(t *testing.T) {
		posts, err := newTestManager(&mockRepository{}).Index(context.Background())
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := &mockRepository{
			publishedPostsFunc: func(ctx context.Context, now time.Time, categoryID *int, limit int) ([]db.Post, error) {
				return nil, errors.New("database error")
			},
		}

		posts, err := newTestManager(repo).Index(context.Background())
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Nil(t, posts)
	})
}

func TestManager_PostByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := &mockRepository{
			publishedPostByIDFunc: func(ctx context.Context, now time.Time, postID int) (*db.Post, error) {
				assert.Equal(t, baseTime, now)
				p := dbPost(postID, 1, publishedCategory(1, "travel"))
				return &p, nil
			},
		}

		post, err := newTestManager(repo).PostByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 7, post.ID)
	})

	t.Run("InvisibleIsNotFound", func(t *testing.T) {
		post, err := newTestManager(&mockRepository{}).PostByID(context.Background(), 7)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, post)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := &mockRepository{
			publishedPostByIDFunc: func(ctx context.Context, now time.Time, postID int) (*db.Post, error) {
				return nil, errors.New("database error")
			},
		}

		_, err := newTestManager(repo).PostByID(context.Background(), 7)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestManager_CategoryPosts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		travel := publishedCategory(3, "travel")
		repo := &mockRepository{
			publishedCategoryBySlugFunc: func(ctx context.Context, slug string) (*db.Category, error) {
				assert.Equal(t, "travel", slug)
				return travel, nil
			},
			publishedPostsFunc: func(ctx context.Context, now time.Time, categoryID *int, limit int) ([]db.Post, error) {
				require.NotNil(t, categoryID)
				assert.Equal(t, 3, *categoryID)
				assert.Zero(t, limit)
				return []db.Post{dbPost(1, 1, travel)}, nil
			},
		}

		category, posts, err := newTestManager(repo).CategoryPosts(context.Background(), "travel")
		require.NoError(t, err)
		assert.Equal(t, 3, category.ID)
		assert.Len(t, posts, 1)
	})

	t.Run("EmptyFeed", func(t *testing.T) {
		repo := &mockRepository{
			publishedCategoryBySlugFunc: func(ctx context.Context, slug string) (*db.Category, error) {
				return publishedCategory(3, slug), nil
			},
		}

		category, posts, err := newTestManager(repo).CategoryPosts(context.Background(), "travel")
		require.NoError(t, err)
		assert.NotNil(t, category)
		assert.Empty(t, posts)
	})

	t.Run("UnknownOrUnpublishedIsNotFound", func(t *testing.T) {
		repo := &mockRepository{}

		category, posts, err := newTestManager(repo).CategoryPosts(context.Background(), "drafts")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, category)
		assert.Nil(t, posts)
		assert.Zero(t, repo.publishedPostsCalls)
	})
}

func TestManager_Cache(t *testing.T) {
	travel := publishedCategory(1, "travel")

	t.Run("IndexServedFromCache", func(t *testing.T) {
		repo := &mockRepository{
			publishedPostsFunc: func(ctx context.Context, now time.Time, categoryID *int, limit int) ([]db.Post, error) {
				return []db.Post{dbPost(1, 1, travel)}, nil
			},
		}
		c, _ := newTestCache(t)
		m := newTestManager(repo).WithCache(c, time.Minute)

		first, err := m.Index(context.Background())
		require.NoError(t, err)
		second, err := m.Index(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, repo.publishedPostsCalls)
		require.Len(t, second, 1)
		assert.Equal(t, first[0].ID, second[0].ID)
		assert.True(t, first[0].PubDate.Equal(second[0].PubDate))
	})

	t.Run("TTLCappedByNextScheduledPost", func(t *testing.T) {
		next := baseTime.Add(10 * time.Second)
		repo := &mockRepository{
			nextScheduledPubDateFunc: func(ctx context.Context, now time.Time) (*time.Time, error) {
				return &next, nil
			},
		}
		c, mr := newTestCache(t)
		m := newTestManager(repo).WithCache(c, time.Hour)

		_, err := m.Index(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 10*time.Second, mr.TTL("blogicum:"+indexCacheKey))
	})

	t.Run("DeferredPostAppearsWhenDue", func(t *testing.T) {
		scheduled := dbPost(2, 0, travel)
		scheduled.PubDate = baseTime.Add(10 * time.Second)

		repo := &mockRepository{
			publishedPostsFunc: func(ctx context.Context, now time.Time, categoryID *int, limit int) ([]db.Post, error) {
				posts := []db.Post{dbPost(1, 1, travel)}
				if !scheduled.PubDate.After(now) {
					posts = append([]db.Post{scheduled}, posts...)
				}
				return posts, nil
			},
			nextScheduledPubDateFunc: func(ctx context.Context, now time.Time) (*time.Time, error) {
				if scheduled.PubDate.After(now) {
					return &scheduled.PubDate, nil
				}
				return nil, nil
			},
		}
		c, mr := newTestCache(t)
		m := newTestManager(repo).WithCache(c, time.Hour)
		ctx := context.Background()

		before, err := m.Index(ctx)
		require.NoError(t, err)
		require.Len(t, before, 1)

		m.now = func() time.Time { return scheduled.PubDate }
		mr.FastForward(10 * time.Second)

		after, err := m.Index(ctx)
		require.NoError(t, err)
		require.Len(t, after, 2)
		assert.Equal(t, 2, after[0].ID)
	})

	t.Run("CategoryFeedCached", func(t *testing.T) {
		repo := &mockRepository{
			publishedCategoryBySlugFunc: func(ctx context.Context, slug string) (*db.Category, error) {
				return travel, nil
			},
			publishedPostsFunc: func(ctx context.Context, now time.Time, categoryID *int, limit int) ([]db.Post, error) {
				return []db.Post{dbPost(1, 1, travel)}, nil
			},
		}
		c, _ := newTestCache(t)
		m := newTestManager(repo).WithCache(c, time.Minute)

		for i := 0; i < 3; i++ {
			category, posts, err := m.CategoryPosts(context.Background(), "travel")
			require.NoError(t, err)
			assert.Equal(t, "travel", category.Slug)
			assert.Len(t, posts, 1)
		}
		assert.Equal(t, 1, repo.publishedPostsCalls)
	})

	t.Run("CacheFailureFallsThrough", func(t *testing.T) {
		repo := &mockRepository{
			publishedPostsFunc: func(ctx context.Context, now time.Time, categoryID *int, limit int) ([]db.Post, error) {
				return []db.Post{dbPost(1, 1, travel)}, nil
			},
		}
		c, mr := newTestCache(t)
		mr.Close()
		m := newTestManager(repo).WithCache(c, time.Minute)

		posts, err := m.Index(context.Background())
		require.NoError(t, err)
		assert.Len(t, posts, 1)
	})

	t.Run("ScheduleLookupFailureSkipsCaching", func(t *testing.T) {
		repo := &mockRepository{
			publishedPostsFunc: func(ctx context.Context, now time.Time, categoryID *int, limit int) ([]db.Post, error) {
				return []db.Post{dbPost(1, 1, travel)}, nil
			},
			nextScheduledPubDateFunc: func(ctx context.Context, now time.Time) (*time.Time, error) {
				return nil, errors.New("database error")
			},
		}
		c, mr := newTestCache(t)
		m := newTestManager(repo).WithCache(c, time.Minute)

		posts, err := m.Index(context.Background())
		require.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.False(t, mr.Exists("blogicum:"+indexCacheKey))
	})
}
