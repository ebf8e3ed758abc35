package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/swiish/swiish/internal/webserver/model"
)

// SessionCookieName holds the signed session token. The middleware copies it
// into the Authorization header before validation.
const SessionCookieName = "swiish_session"

// GenerateToken signs the session claims of a user.
func GenerateToken(user *model.User, expiration time.Time, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     jwt.NewNumericDate(expiration),
	}
	if user.OrganisationID != nil {
		claims["organisation_id"] = *user.OrganisationID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// GrantSession mints a session token for the user and sets it as a cookie.
func GrantSession(c *fiber.Ctx, user *model.User, timeout time.Duration, secret []byte) error {
	expiration := time.Now().UTC().Add(timeout)
	signed, err := GenerateToken(user, expiration, secret)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expiration,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return nil
}

// ClearSession expires the session cookie.
func ClearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
