package jwt

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Locals keys set by the middlewares.
const (
	LocalUserID  = "userId"
	LocalIsAdmin = "isAdmin"
)

var (
	errMissingHeader = errors.New("missing Authorization header")
	errEmptyToken    = errors.New("empty token")
	errInvalidToken  = errors.New("invalid or expired token")
	errBadIssuer     = errors.New("invalid token issuer")
)

// NewAuthMiddleware rejects requests without a valid Bearer JWT (HS256).
// On success the subject is stored in c.Locals("userId").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		claims, err := parseHeader(c.Get(fiber.HeaderAuthorization), secretBytes, expectedIssuer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}
		setLocals(c, claims)
		return c.Next()
	}
}

// NewOptionalAuthMiddleware attaches the user when a valid token is sent and
// lets anonymous requests through. A present but invalid token is rejected.
func NewOptionalAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}
		claims, err := parseHeader(header, secretBytes, expectedIssuer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}
		setLocals(c, claims)
		return c.Next()
	}
}

func setLocals(c *fiber.Ctx, claims *Claims) {
	c.Locals(LocalUserID, claims.Subject)
	if claims.IsAdmin {
		c.Locals(LocalIsAdmin, true)
	}
}

// parseHeader accepts both "Bearer <token>" and a bare "<token>".
func parseHeader(header string, secret []byte, expectedIssuer string) (*Claims, error) {
	if header == "" {
		return nil, errMissingHeader
	}
	tokenStr := strings.TrimSpace(header)
	if scheme, rest, ok := strings.Cut(tokenStr, " "); ok && strings.EqualFold(scheme, "Bearer") {
		tokenStr = strings.TrimSpace(rest)
	}
	if tokenStr == "" {
		return nil, errEmptyToken
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errInvalidToken
	}
	if expectedIssuer != "" && claims.Issuer != expectedIssuer {
		return nil, errBadIssuer
	}
	return claims, nil
}
