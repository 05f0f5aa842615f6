// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"bookify_backend/internals/configs"
)

const (
	// TokenCookie is the httpOnly cookie carrying the signed identity token.
	TokenCookie = "token"

	// LocClaims is the Locals key holding the verified claims.
	LocClaims = "user_claims"
)

// AuthMiddleware verifikasi JWT dari cookie "token" dan simpan claims ke Locals.
// Gagal verifikasi → 401 {"message":"unauthorized access"}.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(TokenCookie)
		if tokenString == "" {
			return unauthorized(c)
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		// exp divalidasi sendiri di bawah dengan toleransi clock skew
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		}); err != nil {
			log.Println("[ERROR] token parse:", err)
			return unauthorized(c)
		}

		if err := validateExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] exp validation:", err)
			return unauthorized(c)
		}

		c.Locals(LocClaims, claims)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "unauthorized access",
	})
}
