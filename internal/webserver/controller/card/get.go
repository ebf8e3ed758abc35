package card

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/model"
)

var validShortCode = regexp.MustCompile(`^[a-zA-Z0-9]{7}$`)

type publicCard struct {
	model.CardData
	ShortCode string `json:"_shortCode"`
	OrgSlug   string `json:"_orgSlug,omitempty"`
}

// GetByShortCode resolves a card from its 7 character code.
func (h *Controller) GetByShortCode(c *fiber.Ctx) error {
	code := c.Params("shortCode")
	if !validShortCode.MatchString(code) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid short code")
	}

	card, err := h.cards.FindByShortCode(code)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if card == nil {
		return fiber.NewError(fiber.StatusNotFound, "Card not found")
	}
	return h.respond(c, card)
}

// GetByOrgAndSlug resolves a card from the organisation slug and the card
// slug.
func (h *Controller) GetByOrgAndSlug(c *fiber.Ctx) error {
	org, err := h.organisations.FindBySlug(c.Params("orgSlug"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if org == nil {
		return fiber.NewError(fiber.StatusNotFound, "Card not found")
	}

	card, err := h.cards.FindBySlugInOrganisation(c.Params("cardSlug"), org.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if card == nil {
		return fiber.NewError(fiber.StatusNotFound, "Card not found")
	}
	return h.respond(c, card)
}

// GetBySlug resolves a card from its slug alone. Ambiguous across
// organisations, so clients are steered to the newer routes.
func (h *Controller) GetBySlug(c *fiber.Ctx) error {
	card, err := h.cards.FindFirstBySlug(c.Params("slug"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if card == nil {
		return fiber.NewError(fiber.StatusNotFound, "Card not found")
	}
	c.Set("X-Deprecated", "Use /api/cards/short/:shortCode or /api/cards/:orgSlug/:cardSlug")
	return h.respond(c, card)
}

func (h *Controller) respond(c *fiber.Ctx, card *model.Card) error {
	data, err := card.Payload()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	response := publicCard{CardData: data, ShortCode: card.ShortCode}
	if user, err := h.users.FindByID(card.UserID); err == nil && user != nil && user.OrganisationID != nil {
		if org, err := h.organisations.FindByID(*user.OrganisationID); err == nil && org != nil {
			response.OrgSlug, _ = h.organisations.EnsureSlug(org)
		}
	}

	if data.Privacy.BlockRobots {
		c.Set("X-Robots-Tag", "noindex, nofollow")
	}
	return c.JSON(response)
}
