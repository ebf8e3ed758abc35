package setting

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
)

// Get returns the settings bag of the caller's organisation.
func (s *Controller) Get(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok || !principal.HasOrganisation() {
		return fiber.ErrUnauthorized
	}

	settings, err := s.settings.Load(principal.OrganisationID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(settings)
}
