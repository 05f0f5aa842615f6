// file: internals/features/library/borrows/controller/borrows_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	bookModel "bookify_backend/internals/features/library/books/model"
	dto "bookify_backend/internals/features/library/borrows/dto"
	borrowModel "bookify_backend/internals/features/library/borrows/model"
	helper "bookify_backend/internals/helpers"
)

const MsgAlreadyBorrowed = "You have already borrowed this book."

var (
	errBookUnavailable = errors.New("book is not available")
	errAlreadyBorrowed = errors.New("already borrowed")
)

type BorrowsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

// POST /borrow
//
// Duplikasi dijaga dua lapis: pre-check (pesan ramah) + unique index
// (borrow_email, borrow_book_id) yang menutup race check-then-act.
// Decrement stok dan insert record berjalan dalam satu transaksi.
func (h *BorrowsController) Borrow(c *fiber.Ctx) error {
	var p dto.BorrowCreateRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	p.Normalize()
	p.ParseExtra(c.Body())

	if err := h.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	bookID, err := uuid.Parse(p.BookID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid book id")
	}

	db := h.DB.WithContext(c.UserContext())

	// pre-check duplikasi
	var existing borrowModel.BorrowModel
	err = db.Where("borrow_email = ? AND borrow_book_id = ?", p.Email, bookID).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, MsgAlreadyBorrowed)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[BORROW] duplicate check error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	record := &borrowModel.BorrowModel{
		BorrowEmail:  p.Email,
		BorrowBookID: bookID,
		BorrowExtra:  datatypes.JSONMap(p.Extra),
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		// decrement atomik, dijaga quantity > 0 supaya tidak pernah negatif
		res := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ? AND book_quantity > 0", bookID).
			UpdateColumn("book_quantity", gorm.Expr("book_quantity - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errBookUnavailable
		}

		if err := tx.Create(record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// kalah race dengan borrow paralel untuk pasangan yang sama
				return errAlreadyBorrowed
			}
			return err
		}
		return nil
	})

	switch {
	case txErr == nil:
		return helper.JsonCreated(c, "Borrow recorded", fiber.Map{
			"inserted_id":  record.BorrowID,
			"acknowledged": true,
		})
	case errors.Is(txErr, errAlreadyBorrowed):
		return helper.JsonError(c, fiber.StatusBadRequest, MsgAlreadyBorrowed)
	case errors.Is(txErr, errBookUnavailable):
		return helper.JsonError(c, fiber.StatusBadRequest, "Book is not available.")
	default:
		log.Printf("[BORROW] tx error: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// GET /borrowed-books?email=
func (h *BorrowsController) ListByEmail(c *fiber.Ctx) error {
	// normalisasi sama dengan write path supaya lookup key konsisten
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))

	var records []borrowModel.BorrowModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("borrow_email = ?", email).
		Find(&records).Error; err != nil {
		log.Printf("[BORROWED] query error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonOK(c, "ok", records)
}

// POST /return
//
// Hapus record lalu kembalikan stok — increment hanya saat ada record yang
// benar-benar terhapus. borrowId yang tidak dikenal sukses dengan
// deleted_count 0 (perilaku klien lama).
func (h *BorrowsController) Return(c *fiber.Ctx) error {
	var p dto.ReturnRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	borrowID, err := uuid.Parse(p.BorrowID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid borrow id")
	}
	// bookId ikut tervalidasi demi kompatibilitas kontrak lama, tapi stok
	// dikembalikan ke buku milik record-nya sendiri, bukan input klien
	if _, err := uuid.Parse(p.BookID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid book id")
	}

	var deleted int64
	txErr := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var rec borrowModel.BorrowModel
		if err := tx.First(&rec, "borrow_id = ?", borrowID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		res := tx.Where("borrow_id = ?", borrowID).Delete(&borrowModel.BorrowModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		if deleted == 0 {
			return nil
		}
		return tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", rec.BorrowBookID).
			UpdateColumn("book_quantity", gorm.Expr("book_quantity + 1")).Error
	})
	if txErr != nil {
		log.Printf("[RETURN] tx error: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonDeleted(c, "Return recorded", fiber.Map{
		"deleted_count": deleted,
		"acknowledged":  true,
	})
}
