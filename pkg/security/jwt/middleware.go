package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Keys under which NewAuthMiddleware stores token data in fiber locals.
const (
	LocalSubject = "subject"
	LocalIsAdmin = "isAdmin"
)

// bearerToken accepts both "Bearer <token>" and a bare "<token>".
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	return header
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": msg})
}

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success it stores the subject and admin flag in c.Locals.
// An empty secret disables the guarded routes: every request is rejected.
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	if strings.TrimSpace(secret) == "" {
		return func(c *fiber.Ctx) error {
			return unauthorized(c, "token authentication is not configured")
		}
	}
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "missing Authorization header")
		}
		tokenStr := bearerToken(authHeader)
		if tokenStr == "" {
			return unauthorized(c, "empty token")
		}
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			return secretBytes, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
		if err != nil || !token.Valid {
			return unauthorized(c, "invalid or expired token")
		}
		if expectedIssuer != "" && claims.Issuer != expectedIssuer {
			return unauthorized(c, "invalid token issuer")
		}
		c.Locals(LocalSubject, claims.Subject)
		c.Locals(LocalIsAdmin, claims.IsAdmin)
		return c.Next()
	}
}

// RequireAdmin rejects requests whose token lacks the admin flag. Mount it after NewAuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAdmin, _ := c.Locals(LocalIsAdmin).(bool); !isAdmin {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "admin token required"})
		}
		return c.Next()
	}
}
