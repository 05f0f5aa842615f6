package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dto "bookify_backend/internals/features/library/books/dto"
)

func TestBooksListQuery_FilterKind(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		want   dto.FilterKind
	}{
		{"empty_is_none", "", dto.FilterNone},
		{"whitespace_is_none", "   ", dto.FilterNone},
		{"sentinel_is_available_only", "quantity>0", dto.FilterAvailableOnly},
		{"anything_else_is_category", "sci-fi", dto.FilterByCategory},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := dto.BooksListQuery{Filter: tc.filter}
			assert.Equal(t, tc.want, q.FilterKind())
		})
	}
}

func TestBookUpdateRequest_ToUpdates_OnlySentFields(t *testing.T) {
	name := "Dune"
	rating := 4.9
	r := dto.BookUpdateRequest{BookName: &name, BookRating: &rating}

	updates := r.ToUpdates()
	assert.Len(t, updates, 2)
	assert.Equal(t, "Dune", updates["book_name"])
	assert.Equal(t, 4.9, updates["book_rating"])
	assert.NotContains(t, updates, "book_quantity")
}

func TestBookCreateRequest_Normalize(t *testing.T) {
	cat := "  "
	r := dto.BookCreateRequest{BookName: "  Dune  ", BookCategory: &cat}
	r.Normalize()
	assert.Equal(t, "Dune", r.BookName)
	assert.Nil(t, r.BookCategory, "blank category collapses to nil")
}
