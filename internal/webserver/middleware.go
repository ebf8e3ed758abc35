package webserver

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"

	"github.com/swiish/swiish/internal/webserver/controller/auth"
	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
	"github.com/swiish/swiish/internal/webserver/model"
)

// RequireAuthentication validates the session cookie and resolves the
// principal once, storing it for the handlers downstream.
func RequireAuthentication(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:" + auth.SessionCookieName,
		SuccessHandler: func(c *fiber.Ctx) error {
			principal, ok := jwtclaimsreader.Principal(c)
			if !ok {
				return unauthorized(c)
			}
			c.Locals("Principal", principal)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
	})
}

// RequireOwner returns HTTP forbidden if the authenticated principal is not
// an owner.
func RequireOwner(c *fiber.Ctx) error {
	principal, ok := c.Locals("Principal").(model.Principal)
	if !ok {
		return unauthorized(c)
	}
	if !principal.IsOwner() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden: insufficient permissions",
		})
	}
	return c.Next()
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}

// RequestLogger records every request in the in-memory log ring.
func RequestLogger(logs logRing) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		logs.Add("%s %s %d", c.Method(), c.Path(), c.Response().StatusCode())
		return err
	}
}
