package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
)

// Me describes the current session. Legacy admin sessions have no stored
// user behind them and report only their role.
func (a *Controller) Me(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	if !principal.HasUser() {
		return c.JSON(fiber.Map{
			"role":   principal.Role,
			"legacy": true,
		})
	}

	user, err := a.users.FindByID(principal.UserID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrUnauthorized
	}

	response := fiber.Map{
		"id":            user.ID,
		"email":         user.Email,
		"role":          user.Role,
		"emailVerified": user.EmailVerified,
	}
	if user.OrganisationID != nil {
		response["organisationId"] = *user.OrganisationID
	}
	return c.JSON(response)
}
