package rest

import "time"

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

// AdminPost is a post with its publication state, returned by the admin list.
type AdminPost struct {
	Post
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AdminPostsRequest is bound from the query string. Dates are RFC 3339,
// pub_date_from is inclusive and pub_date_to exclusive.
type AdminPostsRequest struct {
	Search      string     `query:"search"`
	IsPublished *bool      `query:"is_published"`
	CategoryID  *int       `query:"category_id"`
	LocationID  *int       `query:"location_id"`
	PubDateFrom *time.Time `query:"pub_date_from"`
	PubDateTo   *time.Time `query:"pub_date_to"`
}
