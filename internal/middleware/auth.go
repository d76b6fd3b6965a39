package middleware

import (
	"errors"

	"github.com/bloodit-app/bloodit-backend/internal/config"
	"github.com/bloodit-app/bloodit-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected guards a route with bearer token validation. It does not
// verify that the token subject still exists; handlers own that lookup.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			message := "Unauthorized: invalid or expired token"
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				message = "Unauthorized: missing or malformed token"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: message,
			})
		},
	})
}
