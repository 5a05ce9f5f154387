package blog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func visiblePost(id int) Post {
	return Post{
		ID:               id,
		PubDate:          baseTime.Add(-time.Hour),
		PublicationState: PublicationState{IsPublished: true},
		Category: &Category{
			ID:               1,
			PublicationState: PublicationState{IsPublished: true},
		},
	}
}

func TestPost_VisibleAt(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Post)
		want   bool
	}{
		{"Visible", func(p *Post) {}, true},
		{"PubDateEqualsNow", func(p *Post) { p.PubDate = baseTime }, true},
		{"Unpublished", func(p *Post) { p.IsPublished = false }, false},
		{"CategoryUnpublished", func(p *Post) { p.Category.IsPublished = false }, false},
		{"NoCategory", func(p *Post) { p.Category = nil }, false},
		{"Future", func(p *Post) { p.PubDate = baseTime.Add(time.Second) }, false},
		{"UnpublishedLocationDoesNotMatter", func(p *Post) { p.Location = &Location{ID: 1} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := visiblePost(1)
			tt.modify(&p)
			assert.Equal(t, tt.want, p.VisibleAt(baseTime))
		})
	}
}

func TestFilterPublished(t *testing.T) {
	hidden := visiblePost(2)
	hidden.IsPublished = false

	future := visiblePost(4)
	future.PubDate = baseTime.Add(time.Hour)

	posts := []Post{visiblePost(1), hidden, visiblePost(3), future, visiblePost(5)}

	result := FilterPublished(posts, baseTime)
	ids := make([]int, len(result))
	for i, p := range result {
		ids[i] = p.ID
	}

	assert.Equal(t, []int{1, 3, 5}, ids)
	assert.Len(t, posts, 5)
	assert.Empty(t, FilterPublished(nil, baseTime))
}

func TestPost_LocationName(t *testing.T) {
	p := visiblePost(1)
	assert.Equal(t, DefaultLocationName, p.LocationName())

	p.Location = &Location{Name: "Island", PublicationState: PublicationState{IsPublished: true}}
	assert.Equal(t, "Island", p.LocationName())

	// The name is shown even when the location itself is unpublished.
	p.Location.IsPublished = false
	assert.Equal(t, "Island", p.LocationName())
}
