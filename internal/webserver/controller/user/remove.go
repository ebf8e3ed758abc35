package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
	"github.com/swiish/swiish/internal/webserver/model"
)

// Remove detaches a member from the organisation. Their account and cards
// are kept.
func (u *Controller) Remove(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok || !principal.HasOrganisation() {
		return fiber.ErrUnauthorized
	}

	switch err := u.users.Remove(principal, c.Params("userId")); {
	case err == nil:
		return c.JSON(fiber.Map{"success": true})
	case errors.Is(err, model.ErrSelfModification):
		return fiber.NewError(fiber.StatusBadRequest, "You cannot remove yourself from the organisation")
	case errors.Is(err, model.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	case errors.Is(err, model.ErrLastOwner):
		return fiber.NewError(fiber.StatusConflict, "An organisation must have at least one owner")
	default:
		return fiber.ErrInternalServerError
	}
}
