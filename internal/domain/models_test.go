package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageMetaHasMore(t *testing.T) {
	tests := []struct {
		name string
		meta PageMeta
		want bool
	}{
		{"first of three pages", PageMeta{CurrentPage: 1, TotalHits: 36, PerPage: 12}, true},
		{"second of three pages", PageMeta{CurrentPage: 2, TotalHits: 36, PerPage: 12}, true},
		{"exact multiple is the last page", PageMeta{CurrentPage: 3, TotalHits: 36, PerPage: 12}, false},
		{"one hit past a multiple", PageMeta{CurrentPage: 3, TotalHits: 37, PerPage: 12}, true},
		{"one hit short of a multiple", PageMeta{CurrentPage: 3, TotalHits: 35, PerPage: 12}, false},
		{"partial single page", PageMeta{CurrentPage: 1, TotalHits: 5, PerPage: 12}, false},
		{"no hits", PageMeta{CurrentPage: 1, TotalHits: 0, PerPage: 12}, false},
		{"zero per page", PageMeta{CurrentPage: 1, TotalHits: 10, PerPage: 0}, false},
		{"zero page", PageMeta{CurrentPage: 0, TotalHits: 10, PerPage: 12}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.meta.HasMore())
		})
	}
}

func TestPageMetaHasMoreMatchesCeilDivision(t *testing.T) {
	for perPage := 1; perPage <= 20; perPage++ {
		for total := 0; total <= 100; total++ {
			pages := (total + perPage - 1) / perPage
			for page := 1; page <= pages+1; page++ {
				meta := PageMeta{CurrentPage: page, TotalHits: total, PerPage: perPage}
				assert.Equal(t, page < pages, meta.HasMore(), "page=%d total=%d perPage=%d", page, total, perPage)
			}
		}
	}
}

func TestSearchStateStatus(t *testing.T) {
	item := ImageResult{ID: 1}

	assert.Equal(t, StatusIdle, SearchState{}.Status())
	assert.Equal(t, StatusLoading, SearchState{IsLoading: true, Error: "old"}.Status())
	assert.Equal(t, StatusErrored, SearchState{Error: "boom", Items: []ImageResult{item}}.Status())
	assert.Equal(t, StatusEmpty, SearchState{IsEmpty: true}.Status())
	assert.Equal(t, StatusLoaded, SearchState{Items: []ImageResult{item}}.Status())
	assert.Equal(t, "errored", StatusErrored.String())
}

func TestSearchStateCloneDoesNotShareItems(t *testing.T) {
	s := SearchState{Query: "cats", Items: []ImageResult{{ID: 1}, {ID: 2}}}
	c := s.Clone()
	c.Items[0].ID = 99

	assert.Equal(t, 1, s.Items[0].ID)
	assert.Equal(t, "cats", c.Query)
	assert.Nil(t, SearchState{}.Clone().Items)
}
