package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"bookify_backend/internals/configs"
	bookController "bookify_backend/internals/features/library/books/controller"
	bookModel "bookify_backend/internals/features/library/books/model"
	"bookify_backend/internals/middlewares/auth"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T, updateMode string) (*fiber.App, *gorm.DB) {
	t.Helper()

	configs.JWTSecret = testSecret

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&bookModel.BookModel{}))

	app := fiber.New()
	ctl := &bookController.BooksController{
		DB:         db,
		Validator:  validator.New(),
		UpdateMode: updateMode,
	}

	app.Get("/books", ctl.List)
	app.Get("/books/:id", ctl.GetByID)
	app.Get("/all-books", ctl.ListPaginated)
	app.Get("/books-count", ctl.Count)

	authGuard := auth.AuthMiddleware()
	app.Post("/book", authGuard, ctl.Create)
	app.Put("/books/:id", authGuard, ctl.Update)

	return app, db
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func seed(t *testing.T, db *gorm.DB, name string, quantity int, rating float64, category string) *bookModel.BookModel {
	t.Helper()
	b := &bookModel.BookModel{
		BookName:     name,
		BookQuantity: quantity,
		BookRating:   rating,
		BookCategory: &category,
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, cookie string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.TokenCookie, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	out := map[string]interface{}{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	seed(t, db, "Go in Action", 3, 4.5, "programming")
	seed(t, db, "The Go Programming Language", 0, 4.8, "programming")
	seed(t, db, "Dune", 5, 4.2, "sci-fi")
	seed(t, db, "Neuromancer", 0, 3.9, "sci-fi")
	seed(t, db, "Golang Cookbook", 1, 3.5, "programming")
}

func TestList_ReturnsAllBooks(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeStrict)
	seedCatalog(t, db)

	resp, body := doJSON(t, app, http.MethodGet, "/books", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"], 5)
}

func TestGetByID_NotFound(t *testing.T) {
	app, _ := newTestApp(t, configs.UpdateModeStrict)

	resp, body := doJSON(t, app, http.MethodGet, "/books/"+uuid.NewString(), nil, "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}

func TestGetByID_Found(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeStrict)
	b := seed(t, db, "Dune", 5, 4.2, "sci-fi")

	resp, body := doJSON(t, app, http.MethodGet, "/books/"+b.BookID.String(), nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dune", body["data"].(map[string]interface{})["book_name"])
}

func listAll(t *testing.T, app *fiber.App, search, filter string) []interface{} {
	t.Helper()
	q := url.Values{}
	q.Set("page", "1")
	q.Set("size", "100")
	if search != "" {
		q.Set("search", search)
	}
	if filter != "" {
		q.Set("filter", filter)
	}
	resp, body := doJSON(t, app, http.MethodGet, "/all-books?"+q.Encode(), nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, _ := body["data"].([]interface{})
	return data
}

func countBooks(t *testing.T, app *fiber.App, search, filter string) int {
	t.Helper()
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if filter != "" {
		q.Set("filter", filter)
	}
	resp, body := doJSON(t, app, http.MethodGet, "/books-count?"+q.Encode(), nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return int(body["count"].(float64))
}

func TestListPaginated_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeStrict)
	seedCatalog(t, db)

	names := func(data []interface{}) []string {
		out := make([]string, 0, len(data))
		for _, item := range data {
			out = append(out, item.(map[string]interface{})["book_name"].(string))
		}
		return out
	}

	assert.ElementsMatch(t,
		[]string{"Go in Action", "The Go Programming Language", "Golang Cookbook"},
		names(listAll(t, app, "go", "")))
	assert.ElementsMatch(t, []string{"Dune"}, names(listAll(t, app, "DUNE", "")))
}

func TestListPaginated_AvailableOnlyFilter(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeStrict)
	seedCatalog(t, db)

	data := listAll(t, app, "", "quantity>0")
	require.Len(t, data, 3)
	for _, item := range data {
		qty := item.(map[string]interface{})["book_quantity"].(float64)
		assert.Greater(t, qty, float64(0))
	}
}

func TestListPaginated_CategoryFilter(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeStrict)
	seedCatalog(t, db)

	assert.Len(t, listAll(t, app, "", "sci-fi"), 2)
	assert.Len(t, listAll(t, app, "", "programming"), 3)
	assert.Empty(t, listAll(t, app, "", "cooking"))
}

func TestListPaginated_SortByRating(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeStrict)
	seedCatalog(t, db)

	resp, body := doJSON(t, app, http.MethodGet, "/all-books?page=1&size=100&sort=desc", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].([]interface{})
	prev := float64(5)
	for _, item := range data {
		rating := item.(map[string]interface{})["book_rating"].(float64)
		assert.LessOrEqual(t, rating, prev)
		prev = rating
	}
}

func TestListPaginated_OffsetWindows(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeStrict)
	seedCatalog(t, db)

	seen := map[string]bool{}
	for page := 1; page <= 3; page++ {
		resp, body := doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/all-books?page=%d&size=2&sort=desc", page), nil, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		for _, item := range body["data"].([]interface{}) {
			seen[item.(map[string]interface{})["book_name"].(string)] = true
		}
		pg := body["pagination"].(map[string]interface{})
		assert.Equal(t, float64(page), pg["page"])
		assert.Equal(t, float64(5), pg["total"])
	}
	assert.Len(t, seen, 5)
}

func TestCount_MatchesListForSamePredicate(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeStrict)
	seedCatalog(t, db)

	cases := []struct{ search, filter string }{
		{"", ""},
		{"go", ""},
		{"", "quantity>0"},
		{"", "sci-fi"},
		{"go", "quantity>0"},
		{"zzz", ""},
	}
	for _, tc := range cases {
		assert.Equal(t,
			len(listAll(t, app, tc.search, tc.filter)),
			countBooks(t, app, tc.search, tc.filter),
			fmt.Sprintf("search=%q filter=%q", tc.search, tc.filter))
	}
}

func TestCreate_RequiresAuth(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeStrict)

	resp, body := doJSON(t, app, http.MethodPost, "/book", map[string]interface{}{
		"book_name": "Unauthorized Book", "book_quantity": 1,
	}, "")
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "unauthorized access", body["message"])

	// no store write happened
	var count int64
	require.NoError(t, db.Model(&bookModel.BookModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreate_StampsCreator(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeStrict)
	token := signToken(t, jwt.MapClaims{"id": "user-42", "email": "u@x.com"})

	resp, body := doJSON(t, app, http.MethodPost, "/book", map[string]interface{}{
		"book_name":     "Dune",
		"book_quantity": 4,
		"book_rating":   4.2,
		"book_category": "sci-fi",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	id := body["data"].(map[string]interface{})["inserted_id"].(string)
	var b bookModel.BookModel
	require.NoError(t, db.First(&b, "book_id = ?", id).Error)
	require.NotNil(t, b.BookCreatedBy)
	assert.Equal(t, "user-42", *b.BookCreatedBy)
	assert.Equal(t, 4, b.BookQuantity)
}

func TestCreate_RejectsNegativeQuantity(t *testing.T) {
	app, _ := newTestApp(t, configs.UpdateModeStrict)
	token := signToken(t, jwt.MapClaims{"id": "user-42"})

	resp, _ := doJSON(t, app, http.MethodPost, "/book", map[string]interface{}{
		"book_name": "Bad", "book_quantity": -1,
	}, token)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdate_MergePatch(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeStrict)
	b := seed(t, db, "Dune", 5, 4.2, "sci-fi")
	token := signToken(t, jwt.MapClaims{"id": "user-42"})

	resp, _ := doJSON(t, app, http.MethodPut, "/books/"+b.BookID.String(), map[string]interface{}{
		"book_rating": 4.9,
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got bookModel.BookModel
	require.NoError(t, db.First(&got, "book_id = ?", b.BookID).Error)
	assert.Equal(t, 4.9, got.BookRating)
	// untouched fields stay
	assert.Equal(t, "Dune", got.BookName)
	assert.Equal(t, 5, got.BookQuantity)
}

func TestUpdate_StrictModeMissingIDIs404(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeStrict)
	token := signToken(t, jwt.MapClaims{"id": "user-42"})

	resp, _ := doJSON(t, app, http.MethodPut, "/books/"+uuid.NewString(), map[string]interface{}{
		"book_name": "Ghost",
	}, token)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&bookModel.BookModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdate_UpsertModeCreatesOnMiss(t *testing.T) {
	app, db := newTestApp(t, configs.UpdateModeUpsert)
	token := signToken(t, jwt.MapClaims{"id": "user-42"})

	id := uuid.New()
	resp, body := doJSON(t, app, http.MethodPut, "/books/"+id.String(), map[string]interface{}{
		"book_name": "Created by PUT", "book_quantity": 2,
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["data"].(map[string]interface{})["upserted"])

	var got bookModel.BookModel
	require.NoError(t, db.First(&got, "book_id = ?", id).Error)
	assert.Equal(t, "Created by PUT", got.BookName)
}
