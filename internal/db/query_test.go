package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeEscaper(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{term: "goat", want: "goat"},
		{term: "50%", want: `50\%`},
		{term: "snake_case", want: `snake\_case`},
		{term: `back\slash`, want: `back\\slash`},
		{term: `%_\`, want: `\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, likeEscaper.Replace(tt.term))
		})
	}
}
