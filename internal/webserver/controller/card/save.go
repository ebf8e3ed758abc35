package card

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
	"github.com/swiish/swiish/internal/webserver/model"
)

var validSlug = regexp.MustCompile(`^[a-z0-9-]{1,100}$`)

// Save creates or updates a card. Owners may target another member of their
// organisation through the userId field; everyone else saves their own
// cards. The organisation policy rewrites the payload before storage, and a
// card keeps the short code it was first issued.
func (h *Controller) Save(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok || !principal.HasUser() || !principal.HasOrganisation() {
		return fiber.ErrUnauthorized
	}

	var request struct {
		Slug   string         `json:"slug"`
		UserID string         `json:"userId"`
		Data   model.CardData `json:"data"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if !validSlug.MatchString(request.Slug) {
		return fiber.NewError(fiber.StatusBadRequest, "Slug must contain only lowercase letters, digits and hyphens")
	}

	targetID := principal.UserID
	if request.UserID != "" && request.UserID != principal.UserID {
		if !principal.IsOwner() {
			return fiber.NewError(fiber.StatusForbidden, "Only owners can edit other members' cards")
		}
		target, err := h.users.FindByID(request.UserID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		if target == nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		if target.OrganisationID == nil || *target.OrganisationID != principal.OrganisationID {
			return fiber.NewError(fiber.StatusForbidden, "User belongs to another organisation")
		}
		targetID = target.ID
	}

	settings, err := h.settings.Load(principal.OrganisationID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	existing, err := h.cards.FindBySlugAndUser(request.Slug, targetID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	var existingData *model.CardData
	if existing != nil {
		if data, err := existing.Payload(); err == nil {
			existingData = &data
		}
	}

	data := settings.Apply(request.Data, existingData)
	if data.Theme.Style == "" {
		data.Theme.Style = "modern"
	}

	card := model.Card{Slug: request.Slug, UserID: targetID}
	if err := card.Encode(data); err != nil {
		return fiber.ErrInternalServerError
	}
	if err := h.cards.Save(&card, h.codes.Issue); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"slug":      card.Slug,
		"shortCode": card.ShortCode,
	})
}
