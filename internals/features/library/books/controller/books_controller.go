// file: internals/features/library/books/controller/books_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookify_backend/internals/configs"
	dto "bookify_backend/internals/features/library/books/dto"
	bookModel "bookify_backend/internals/features/library/books/model"
	helper "bookify_backend/internals/helpers"
	authMw "bookify_backend/internals/middlewares/auth"
)

type BooksController struct {
	DB        *gorm.DB
	Validator *validator.Validate

	// configs.UpdateModeStrict atau configs.UpdateModeUpsert
	UpdateMode string
}

func strPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// POST /book (auth)
func (h *BooksController) Create(c *fiber.Ctx) error {
	var p dto.BookCreateRequest
	if err := c.BodyParser(&p); err != nil {
		log.Printf("[BOOKS][CREATE] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	p.Normalize()

	if err := h.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	ent := p.ToModel()
	ent.BookCreatedBy = strPtrIfNotEmpty(authMw.CallerIdentity(c))

	if err := h.DB.WithContext(c.UserContext()).Create(ent).Error; err != nil {
		log.Printf("[BOOKS][CREATE] insert error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonCreated(c, "Book created", fiber.Map{
		"inserted_id":  ent.BookID,
		"acknowledged": true,
	})
}

// PUT /books/:id (auth) — merge-patch dari field yang dikirim saja.
func (h *BooksController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid book id")
	}

	var p dto.BookUpdateRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	p.Normalize()

	if err := h.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	updates := p.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	mode := h.UpdateMode
	if mode == "" {
		mode = configs.UpdateModeStrict
	}

	db := h.DB.WithContext(c.UserContext())
	res := db.Model(&bookModel.BookModel{}).Where("book_id = ?", id).Updates(updates)
	if res.Error != nil {
		log.Printf("[BOOKS][UPDATE] update error: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if res.RowsAffected == 0 {
		if mode == configs.UpdateModeStrict {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		// upsert mode: buat dokumen baru dari field yang dikirim (perilaku lama)
		ent := &bookModel.BookModel{BookID: id}
		applyUpdatesToModel(ent, updates)
		ent.BookCreatedBy = strPtrIfNotEmpty(authMw.CallerIdentity(c))
		if err := db.Create(ent).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// lost race dengan update paralel, perlakukan sebagai updated
				return helper.JsonOK(c, "Book updated", fiber.Map{"matched_count": 1, "modified_count": 0, "upserted": false})
			}
			log.Printf("[BOOKS][UPDATE] upsert insert error: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return helper.JsonCreated(c, "Book created", fiber.Map{"matched_count": 0, "modified_count": 0, "upserted": true, "upserted_id": ent.BookID})
	}

	return helper.JsonOK(c, "Book updated", fiber.Map{
		"matched_count":  res.RowsAffected,
		"modified_count": res.RowsAffected,
		"upserted":       false,
	})
}

func applyUpdatesToModel(m *bookModel.BookModel, updates map[string]interface{}) {
	if v, ok := updates["book_name"].(string); ok {
		m.BookName = v
	}
	if v, ok := updates["book_quantity"].(int); ok {
		m.BookQuantity = v
	}
	if v, ok := updates["book_rating"].(float64); ok {
		m.BookRating = v
	}
	if v, ok := updates["book_category"].(string); ok {
		m.BookCategory = &v
	}
	if v, ok := updates["book_image"].(string); ok {
		m.BookImage = &v
	}
}
