// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"bookify_backend/internals/configs"
	helper "bookify_backend/internals/helpers"
	authMw "bookify_backend/internals/middlewares/auth"
)

// tokenTTL: token berumur panjang, tanpa refresh (kontrak klien lama).
const tokenTTL = 365 * 24 * time.Hour

type AuthController struct{}

// POST /jwt — sign identity claims dari body, set cookie httpOnly "token".
func (h *AuthController) IssueToken(c *fiber.Ctx) error {
	claims := jwt.MapClaims{}
	if err := c.BodyParser(&claims); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	secret := configs.JWTSecret
	if secret == "" {
		log.Println("[ERROR] JWT_SECRET is empty")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	now := time.Now().UTC()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(tokenTTL).Unix()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Printf("[ERROR] token sign: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     authMw.TokenCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: cookieSameSite(),
		Path:     "/",
		Expires:  now.Add(tokenTTL),
	})

	return c.JSON(fiber.Map{"success": true})
}

// GET /logout — hapus cookie token.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authMw.TokenCookie,
		Value:    "",
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: cookieSameSite(),
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})
	return c.JSON(fiber.Map{"success": true})
}

func cookieSameSite() string {
	if configs.IsProduction() {
		return "None"
	}
	return "Strict"
}
