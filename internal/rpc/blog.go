package rpc

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/blogicum/blogicum/internal/blog"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

var (
	ErrNotFound = zenrpc.NewStringError(http.StatusNotFound, "not found")
	ErrInternal = zenrpc.NewStringError(http.StatusInternalServerError, "internal error")
)

// Reader is the part of blog.Manager exposed over RPC.
type Reader interface {
	Index(ctx context.Context) ([]blog.Post, error)
	PostByID(ctx context.Context, postID int) (*blog.Post, error)
	CategoryPosts(ctx context.Context, slug string) (*blog.Category, []blog.Post, error)
}

// newError maps blog errors to RPC errors. Unexpected errors are logged and hidden.
func newError(ctx context.Context, log *slog.Logger, err error) error {
	var verr *blog.ValidationError
	switch {
	case errors.Is(err, blog.ErrNotFound):
		return ErrNotFound
	case errors.As(err, &verr):
		return zenrpc.NewStringError(http.StatusBadRequest, verr.Error())
	}

	log.ErrorContext(ctx, "rpc call failed", "error", err)
	return ErrInternal
}

// BlogService provides the public read methods.
type BlogService struct {
	zenrpc.Service
	blog Reader
	log  *slog.Logger
}

func NewBlogService(reader Reader, log *slog.Logger) *BlogService {
	return &BlogService{blog: reader, log: log}
}

// Index returns the latest visible posts, newest first.
//
//zenrpc:return list of posts
//zenrpc:500 internal server error
func (s *BlogService) Index(ctx context.Context) ([]Post, error) {
	posts, err := s.blog.Index(ctx)
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	return NewPosts(posts), nil
}

// Post returns a visible post by id.
//
//zenrpc:id post numeric ID
//zenrpc:return post with full text
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) Post(ctx context.Context, id int) (*Post, error) {
	post, err := s.blog.PostByID(ctx, id)
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	p := NewPost(*post)
	return &p, nil
}

// Category returns a published category and its visible posts.
//
//zenrpc:slug category slug
//zenrpc:return category with posts
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *BlogService) Category(ctx context.Context, slug string) (*CategoryPosts, error) {
	category, posts, err := s.blog.CategoryPosts(ctx, slug)
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	return &CategoryPosts{
		Category: NewCategory(*category),
		Posts:    NewPosts(posts),
	}, nil
}
