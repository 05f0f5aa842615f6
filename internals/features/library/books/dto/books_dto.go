// file: internals/features/library/books/dto/books_dto.go
package dto

import (
	"strings"

	"gorm.io/gorm"

	model "bookify_backend/internals/features/library/books/model"
)

/* =========================================================
   QUERY (LIST)
   ========================================================= */

// FilterAvailableSentinel is the query value the frontend sends to request
// only books with copies left.
const FilterAvailableSentinel = "quantity>0"

type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterAvailableOnly
	FilterByCategory
)

type BooksListQuery struct {
	Search string `query:"search"` // substring match on name, case-insensitive
	Filter string `query:"filter"` // "quantity>0" | category value | empty
	Sort   string `query:"sort"`   // asc|desc on rating; empty = store order
}

func (q BooksListQuery) FilterKind() FilterKind {
	f := strings.TrimSpace(q.Filter)
	switch {
	case f == "":
		return FilterNone
	case f == FilterAvailableSentinel:
		return FilterAvailableOnly
	default:
		return FilterByCategory
	}
}

// Scope is the single predicate builder shared by the paginated listing and
// the count endpoint, so the reported count always matches the result set.
func (q BooksListQuery) Scope(db *gorm.DB) *gorm.DB {
	if s := strings.TrimSpace(q.Search); s != "" {
		db = db.Where("LOWER(book_name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	switch q.FilterKind() {
	case FilterAvailableOnly:
		db = db.Where("book_quantity > 0")
	case FilterByCategory:
		db = db.Where("book_category = ?", strings.TrimSpace(q.Filter))
	}
	return db
}

// Order applies the rating sort when requested.
func (q BooksListQuery) Order(db *gorm.DB) *gorm.DB {
	switch strings.ToLower(strings.TrimSpace(q.Sort)) {
	case "asc":
		return db.Order("book_rating ASC")
	case "desc":
		return db.Order("book_rating DESC")
	default:
		return db
	}
}

/* =========================================================
   REQUEST
   ========================================================= */

type BookCreateRequest struct {
	BookName     string  `json:"book_name" validate:"required,min=1"`
	BookQuantity int     `json:"book_quantity" validate:"gte=0"`
	BookRating   float64 `json:"book_rating" validate:"gte=0"`
	BookCategory *string `json:"book_category,omitempty" validate:"omitempty,min=1"`
	BookImage    *string `json:"book_image,omitempty" validate:"omitempty,min=1"`
}

type BookUpdateRequest struct {
	BookName     *string  `json:"book_name,omitempty" validate:"omitempty,min=1"`
	BookQuantity *int     `json:"book_quantity,omitempty" validate:"omitempty,gte=0"`
	BookRating   *float64 `json:"book_rating,omitempty" validate:"omitempty,gte=0"`
	BookCategory *string  `json:"book_category,omitempty" validate:"omitempty,min=1"`
	BookImage    *string  `json:"book_image,omitempty" validate:"omitempty,min=1"`
}

/* =========================================================
   NORMALIZER
   ========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (r *BookCreateRequest) Normalize() {
	r.BookName = strings.TrimSpace(r.BookName)
	r.BookCategory = trimPtr(r.BookCategory)
	r.BookImage = trimPtr(r.BookImage)
}

func (r *BookUpdateRequest) Normalize() {
	r.BookName = trimPtr(r.BookName)
	r.BookCategory = trimPtr(r.BookCategory)
	r.BookImage = trimPtr(r.BookImage)
}

func (r *BookCreateRequest) ToModel() *model.BookModel {
	return &model.BookModel{
		BookName:     r.BookName,
		BookQuantity: r.BookQuantity,
		BookRating:   r.BookRating,
		BookCategory: r.BookCategory,
		BookImage:    r.BookImage,
	}
}

// ToUpdates: merge-patch semantics — hanya field yang dikirim yang diubah.
func (r *BookUpdateRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.BookName != nil {
		updates["book_name"] = *r.BookName
	}
	if r.BookQuantity != nil {
		updates["book_quantity"] = *r.BookQuantity
	}
	if r.BookRating != nil {
		updates["book_rating"] = *r.BookRating
	}
	if r.BookCategory != nil {
		updates["book_category"] = *r.BookCategory
	}
	if r.BookImage != nil {
		updates["book_image"] = *r.BookImage
	}
	return updates
}
