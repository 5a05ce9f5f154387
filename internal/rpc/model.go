package rpc

import (
	"time"

	"github.com/blogicum/blogicum/internal/blog"
)

type Author struct {
	AuthorID int    `json:"authorId"`
	Username string `json:"username"`
}

type Category struct {
	CategoryID  int    `json:"categoryId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

type Location struct {
	LocationID int    `json:"locationId"`
	Name       string `json:"name"`
}

type Post struct {
	PostID       int       `json:"postId"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	PubDate      time.Time `json:"pubDate"`
	Author       *Author   `json:"author,omitempty"`
	LocationName string    `json:"locationName"`
	Location     *Location `json:"location,omitempty"`
	Category     *Category `json:"category,omitempty"`
}

type CategoryPosts struct {
	Category Category `json:"category"`
	Posts    []Post   `json:"posts"`
}

// PublicationState is returned by the admin services only.
type PublicationState struct {
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AdminCategory struct {
	Category
	PublicationState
}

type AdminLocation struct {
	Location
	PublicationState
}

type AdminPost struct {
	PostID     int       `json:"postId"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	PubDate    time.Time `json:"pubDate"`
	AuthorID   int       `json:"authorId"`
	LocationID *int      `json:"locationId"`
	CategoryID *int      `json:"categoryId"`
	PublicationState
}

type SearchFilter struct {
	//search substring of the searchable fields
	Search string `json:"search,omitempty"`
	//isPublished optional publication state
	IsPublished *bool `json:"isPublished,omitempty"`
}

func (f *SearchFilter) orEmpty() SearchFilter {
	if f == nil {
		return SearchFilter{}
	}
	return *f
}

func (f SearchFilter) ToCategoryFilter() blog.CategoryFilter {
	return blog.CategoryFilter{
		Search:      f.Search,
		IsPublished: f.IsPublished,
	}
}

func (f SearchFilter) ToLocationFilter() blog.LocationFilter {
	return blog.LocationFilter{
		Search:      f.Search,
		IsPublished: f.IsPublished,
	}
}

type PostFilter struct {
	//search substring of title or text
	Search string `json:"search,omitempty"`
	//isPublished optional publication state
	IsPublished *bool `json:"isPublished,omitempty"`
	//categoryId optional category filter
	CategoryID *int `json:"categoryId,omitempty"`
	//locationId optional location filter
	LocationID *int `json:"locationId,omitempty"`
	//pubDateFrom optional inclusive lower bound of pubDate
	PubDateFrom *time.Time `json:"pubDateFrom,omitempty"`
	//pubDateTo optional exclusive upper bound of pubDate
	PubDateTo *time.Time `json:"pubDateTo,omitempty"`
}

func (f *PostFilter) ToModel() blog.PostFilter {
	if f == nil {
		return blog.PostFilter{}
	}

	return blog.PostFilter{
		Search:      f.Search,
		IsPublished: f.IsPublished,
		CategoryID:  f.CategoryID,
		LocationID:  f.LocationID,
		PubDateFrom: f.PubDateFrom,
		PubDateTo:   f.PubDateTo,
	}
}

type CategoryInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	//slug generated from title when empty
	Slug        string `json:"slug,omitempty"`
	IsPublished *bool  `json:"isPublished,omitempty"`
}

func (in CategoryInput) ToModel() blog.CategoryInput {
	return blog.CategoryInput{
		Title:       in.Title,
		Description: in.Description,
		Slug:        in.Slug,
		IsPublished: in.IsPublished,
	}
}

type LocationInput struct {
	Name        string `json:"name"`
	IsPublished *bool  `json:"isPublished,omitempty"`
}

func (in LocationInput) ToModel() blog.LocationInput {
	return blog.LocationInput{
		Name:        in.Name,
		IsPublished: in.IsPublished,
	}
}

type PostInput struct {
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	PubDate     time.Time `json:"pubDate"`
	AuthorID    int       `json:"authorId"`
	LocationID  *int      `json:"locationId,omitempty"`
	CategoryID  *int      `json:"categoryId,omitempty"`
	IsPublished *bool     `json:"isPublished,omitempty"`
}

func (in PostInput) ToModel() blog.PostInput {
	return blog.PostInput{
		Title:       in.Title,
		Text:        in.Text,
		PubDate:     in.PubDate,
		AuthorID:    in.AuthorID,
		LocationID:  in.LocationID,
		CategoryID:  in.CategoryID,
		IsPublished: in.IsPublished,
	}
}

type AuthorInput struct {
	Username string `json:"username"`
}
