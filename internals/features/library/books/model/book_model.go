// file: internals/features/library/books/model/book_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookModel struct {
	BookID uuid.UUID `gorm:"type:uuid;primaryKey;column:book_id" json:"book_id"`

	BookName     string  `gorm:"type:text;not null;column:book_name" json:"book_name"`
	BookQuantity int     `gorm:"not null;default:0;column:book_quantity" json:"book_quantity"`
	BookRating   float64 `gorm:"not null;default:0;column:book_rating" json:"book_rating"`
	BookCategory *string `gorm:"type:text;column:book_category" json:"book_category,omitempty"`
	BookImage    *string `gorm:"type:text;column:book_image" json:"book_image,omitempty"`

	// identity claim of the authenticated creator
	BookCreatedBy *string `gorm:"type:text;column:book_created_by" json:"book_created_by,omitempty"`

	BookCreatedAt time.Time `gorm:"not null;autoCreateTime;column:book_created_at" json:"book_created_at"`
	BookUpdatedAt time.Time `gorm:"not null;autoUpdateTime;column:book_updated_at" json:"book_updated_at"`
}

func (BookModel) TableName() string { return "books" }

func (m *BookModel) BeforeCreate(tx *gorm.DB) error {
	if m.BookID == uuid.Nil {
		m.BookID = uuid.New()
	}
	return nil
}
