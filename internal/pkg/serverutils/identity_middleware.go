package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// IdentityMiddleware extracts a user_id claim when a bearer token is present
// and stashes it in locals. There is no auth model: requests without a token
// (or with a bad one) pass through and identify themselves in the body or
// query string instead.
func IdentityMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Next()
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return ctx.Next()
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if userId, ok := claims["user_id"].(string); ok {
			ctx.Locals("user_id", userId)
		}
	}
	return ctx.Next()
}

// UserIdFrom prefers the token identity over the caller-supplied one.
func UserIdFrom(ctx *fiber.Ctx, fallback string) string {
	if v, ok := ctx.Locals("user_id").(string); ok && v != "" {
		return v
	}
	return fallback
}
