package blog

import (
	"time"
)

const (
	// PostsOnIndexPage is the size of the index feed.
	PostsOnIndexPage = 5

	// DefaultLocationName is shown for posts without a location.
	DefaultLocationName = "Planet Earth"
)

// PublicationState is shared by every content entity.
type PublicationState struct {
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Author struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type Category struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	PublicationState
}

type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	PublicationState
}

type Post struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	PubDate    time.Time `json:"pubDate"`
	AuthorID   int       `json:"authorId"`
	LocationID *int      `json:"locationId,omitempty"`
	CategoryID *int      `json:"categoryId,omitempty"`
	PublicationState

	Author   *Author   `json:"author,omitempty"`
	Location *Location `json:"location,omitempty"`
	Category *Category `json:"category,omitempty"`
}

// LocationName returns the name of the post location or DefaultLocationName.
func (p Post) LocationName() string {
	if p.Location == nil {
		return DefaultLocationName
	}

	return p.Location.Name
}

// AuthorName returns the author username, empty if the author is not loaded.
func (p Post) AuthorName() string {
	if p.Author == nil {
		return ""
	}

	return p.Author.Username
}

// CategoryFilter narrows the admin category list.
type CategoryFilter struct {
	Search      string
	IsPublished *bool
}

// LocationFilter narrows the admin location list.
type LocationFilter struct {
	Search      string
	IsPublished *bool
}

// PostFilter narrows the admin post list. PubDateFrom is inclusive, PubDateTo exclusive.
type PostFilter struct {
	Search      string
	IsPublished *bool
	CategoryID  *int
	LocationID  *int
	PubDateFrom *time.Time
	PubDateTo   *time.Time
}

// CategoryInput is the editable part of a category. Nil IsPublished means true on create
// and unchanged on update, empty Slug is generated from Title on create.
type CategoryInput struct {
	Title       string
	Description string
	Slug        string
	IsPublished *bool
}

type LocationInput struct {
	Name        string
	IsPublished *bool
}

type PostInput struct {
	Title       string
	Text        string
	PubDate     time.Time
	AuthorID    int
	LocationID  *int
	CategoryID  *int
	IsPublished *bool
}

type AuthorInput struct {
	Username string
}
