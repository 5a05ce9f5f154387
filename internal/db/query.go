package db

import (
	"strings"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// FilterPublished narrows a posts query to the posts an anonymous reader may see at now:
// the post is published, it has a published category and its pub_date has passed.
// A post without a category never matches: the category join yields NULL.
func FilterPublished(q *orm.Query, now time.Time) *orm.Query {
	return q.
		Relation(Rel.Category).
		Where(`"post"."is_published" = TRUE`).
		Where(`"category"."is_published" = TRUE`).
		Where(`"post"."pub_date" <= ?`, now)
}

// WithRelated joins category, location and author into the same statement,
// so a page of posts costs one round-trip regardless of its size.
// go-pg keeps one join per relation, so the order of composition with FilterPublished
// does not matter.
func WithRelated(q *orm.Query) *orm.Query {
	return q.
		Relation(Rel.Category).
		Relation(Rel.Location).
		Relation(Rel.Author)
}

// OrderByPubDate applies the default posts ordering.
func OrderByPubDate(q *orm.Query) *orm.Query {
	return q.OrderExpr(`"post"."pub_date" DESC, "post"."id" DESC`)
}

// likeEscaper escapes LIKE wildcards so the term is matched literally. Backslash is the default ESCAPE.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// search applies a case-insensitive substring match over the given columns.
func search(q *orm.Query, term string, columns ...string) *orm.Query {
	if term == "" || len(columns) == 0 {
		return q
	}

	pattern := "%" + likeEscaper.Replace(term) + "%"
	return q.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
		for _, col := range columns {
			q = q.WhereOr("? ILIKE ?", pg.Ident(col), pattern)
		}
		return q, nil
	})
}
