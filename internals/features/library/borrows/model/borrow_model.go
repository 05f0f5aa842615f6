// file: internals/features/library/borrows/model/borrow_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BorrowModel struct {
	BorrowID uuid.UUID `gorm:"type:uuid;primaryKey;column:borrow_id" json:"borrow_id"`

	// duplicate borrow guard: satu record aktif per (email, book)
	BorrowEmail  string    `gorm:"type:text;not null;column:borrow_email;uniqueIndex:uq_borrows_email_book" json:"email"`
	BorrowBookID uuid.UUID `gorm:"type:uuid;not null;column:borrow_book_id;uniqueIndex:uq_borrows_email_book" json:"bookId"`

	// arbitrary client-supplied fields (due date, title snapshot, ...)
	BorrowExtra datatypes.JSONMap `gorm:"column:borrow_extra" json:"extra,omitempty"`

	BorrowCreatedAt time.Time `gorm:"not null;autoCreateTime;column:borrow_created_at" json:"borrow_created_at"`
}

func (BorrowModel) TableName() string { return "borrows" }

func (m *BorrowModel) BeforeCreate(tx *gorm.DB) error {
	if m.BorrowID == uuid.Nil {
		m.BorrowID = uuid.New()
	}
	return nil
}
