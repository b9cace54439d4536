package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination_PagesIsCeil(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		pages int64
	}{
		{total: 0, limit: 8, pages: 0},
		{total: 8, limit: 8, pages: 1},
		{total: 9, limit: 8, pages: 2},
		{total: 16, limit: 8, pages: 2},
		{total: 17, limit: 8, pages: 3},
		{total: 1, limit: 20, pages: 1},
	}
	for _, tc := range cases {
		p := NewPagination(1, tc.limit, tc.total)
		assert.Equal(t, tc.pages, p.Pages, "total=%d limit=%d", tc.total, tc.limit)
	}
}

func TestRoundRating_OneDecimal(t *testing.T) {
	assert.Equal(t, 7.5, RoundRating(7.46))
	assert.Equal(t, 7.4, RoundRating(7.44))
	assert.Equal(t, 0.0, RoundRating(0))
	assert.Equal(t, 10.0, RoundRating(9.99))
}
