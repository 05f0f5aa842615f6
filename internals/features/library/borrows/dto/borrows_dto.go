// file: internals/features/library/borrows/dto/borrows_dto.go
package dto

import (
	"strings"

	"github.com/bytedance/sonic"
)

type BorrowCreateRequest struct {
	Email  string `json:"email" validate:"required,email"`
	BookID string `json:"bookId" validate:"required"`

	// fields the client sends beyond email/bookId (due date, title snapshot, ...)
	Extra map[string]interface{} `json:"-"`
}

func (r *BorrowCreateRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.BookID = strings.TrimSpace(r.BookID)
}

// ParseExtra keeps every additional top-level body field in Extra.
func (r *BorrowCreateRequest) ParseExtra(body []byte) {
	raw := map[string]interface{}{}
	if err := sonic.Unmarshal(body, &raw); err != nil {
		return
	}
	delete(raw, "email")
	delete(raw, "bookId")
	if len(raw) > 0 {
		r.Extra = raw
	}
}

type ReturnRequest struct {
	BookID   string `json:"bookId" validate:"required"`
	BorrowID string `json:"borrowId" validate:"required"`
}
