package db

import (
	"time"
)

var Tables = struct {
	Author, Category, Location, Post struct {
		Name, Alias string
	}
}{
	Author:   struct{ Name, Alias string }{Name: "authors", Alias: "author"},
	Category: struct{ Name, Alias string }{Name: "categories", Alias: "category"},
	Location: struct{ Name, Alias string }{Name: "locations", Alias: "location"},
	Post:     struct{ Name, Alias string }{Name: "posts", Alias: "post"},
}

// Rel holds relation names of Post accepted by orm.Query.Relation.
var Rel = struct {
	Author, Category, Location string
}{
	Author:   "Author",
	Category: "Category",
	Location: "Location",
}

// PublicationState is embedded by every content table.
type PublicationState struct {
	IsPublished bool      `pg:"is_published,use_zero"`
	CreatedAt   time.Time `pg:"created_at,default:now()"`
}

type Author struct {
	tableName struct{} `pg:"authors,alias:author,discard_unknown_columns"`

	ID       int    `pg:"id,pk"`
	Username string `pg:"username,use_zero"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:category,discard_unknown_columns"`

	ID          int    `pg:"id,pk"`
	Title       string `pg:"title,use_zero"`
	Description string `pg:"description,use_zero"`
	Slug        string `pg:"slug,use_zero"`
	PublicationState
}

type Location struct {
	tableName struct{} `pg:"locations,alias:location,discard_unknown_columns"`

	ID   int    `pg:"id,pk"`
	Name string `pg:"name,use_zero"`
	PublicationState
}

type Post struct {
	tableName struct{} `pg:"posts,alias:post,discard_unknown_columns"`

	ID         int       `pg:"id,pk"`
	Title      string    `pg:"title,use_zero"`
	Text       string    `pg:"text,use_zero"`
	PubDate    time.Time `pg:"pub_date,use_zero"`
	AuthorID   int       `pg:"author_id,use_zero"`
	LocationID *int      `pg:"location_id"`
	CategoryID *int      `pg:"category_id"`
	PublicationState

	Author   *Author   `pg:"fk:author_id,rel:has-one"`
	Location *Location `pg:"fk:location_id,rel:has-one"`
	Category *Category `pg:"fk:category_id,rel:has-one"`
}
