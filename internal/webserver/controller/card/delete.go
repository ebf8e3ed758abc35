package card

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
	"github.com/swiish/swiish/internal/webserver/model"
)

// Delete removes one of the caller's cards.
func (h *Controller) Delete(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok || !principal.HasUser() {
		return fiber.ErrUnauthorized
	}

	err := h.cards.Delete(c.Params("slug"), principal.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Card not found")
		}
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"success": true})
}
