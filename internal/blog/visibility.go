package blog

import "time"

// VisibleAt reports whether an anonymous reader may see the post at now.
// It mirrors db.FilterPublished: the post and its category are published and pub_date has passed.
func (p Post) VisibleAt(now time.Time) bool {
	if !p.IsPublished {
		return false
	}

	if p.Category == nil || !p.Category.IsPublished {
		return false
	}

	return !p.PubDate.After(now)
}

// FilterPublished keeps the posts visible at now, preserving order.
func FilterPublished(posts []Post, now time.Time) []Post {
	result := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.VisibleAt(now) {
			result = append(result, p)
		}
	}

	return result
}
