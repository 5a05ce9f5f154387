package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

var (
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate value")
	// ErrMissingReference is returned when a write points to a row that does not exist.
	ErrMissingReference = errors.New("referenced row does not exist")
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// PublishedPosts returns posts visible at now, newest first, with category, location and
// author loaded. categoryID narrows the result to one category, limit <= 0 means no limit.
func (r *Repository) PublishedPosts(ctx context.Context, now time.Time, categoryID *int, limit int) ([]Post, error) {
	var posts []Post
	query := OrderByPubDate(WithRelated(FilterPublished(r.db.ModelContext(ctx, &posts), now)))

	if categoryID != nil {
		query = query.Where(`"post"."category_id" = ?`, *categoryID)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query published posts: %w", err)
	}

	return posts, nil
}

// PublishedPostByID returns the post with postID if it is visible at now, nil otherwise.
func (r *Repository) PublishedPostByID(ctx context.Context, now time.Time, postID int) (*Post, error) {
	post := &Post{}
	err := FilterPublished(WithRelated(r.db.ModelContext(ctx, post)), now).
		Where(`"post"."id" = ?`, postID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get published post by id: %w", err)
	}

	return post, nil
}

// PublishedCategoryBySlug returns the published category with slug, nil if there is none.
func (r *Repository) PublishedCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"category"."slug" = ?`, slug).
		Where(`"category"."is_published" = TRUE`).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

// NextScheduledPubDate returns the earliest pub_date after now among posts that are
// otherwise visible, nil when nothing is scheduled.
func (r *Repository) NextScheduledPubDate(ctx context.Context, now time.Time) (*time.Time, error) {
	var next pg.NullTime
	_, err := r.db.QueryOneContext(ctx, pg.Scan(&next), `
		SELECT MIN("post"."pub_date")
		FROM "posts" AS "post"
		JOIN "categories" AS "category" ON "category"."id" = "post"."category_id"
		WHERE "post"."is_published" = TRUE
			AND "category"."is_published" = TRUE
			AND "post"."pub_date" > ?`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get next scheduled pub date: %w", err)
	}

	if next.IsZero() {
		return nil, nil
	}

	return &next.Time, nil
}

// Constraint names created by the migrations.
const (
	ConstraintCategorySlug   = "categories_slug_key"
	ConstraintAuthorUsername = "authors_username_key"
	ConstraintPostAuthor     = "posts_author_id_fkey"
	ConstraintPostLocation   = "posts_location_id_fkey"
	ConstraintPostCategory   = "posts_category_id_fkey"
)

// ConstraintError reports the violated constraint. It unwraps to ErrDuplicate or ErrMissingReference.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return e.Constraint + ": " + e.Err.Error()
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// mapWriteError translates constraint violations into package sentinels.
func mapWriteError(err error) error {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') {
		case "23505":
			return &ConstraintError{Constraint: pgErr.Field('n'), Err: ErrDuplicate}
		case "23503":
			return &ConstraintError{Constraint: pgErr.Field('n'), Err: ErrMissingReference}
		}
	}

	return err
}
