package card

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
	"github.com/swiish/swiish/internal/webserver/model"
)

type dashboardEntry struct {
	Slug      string `json:"slug"`
	ShortCode string `json:"shortCode"`
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
	OrgSlug   string `json:"orgSlug,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// List returns the caller's dashboard. Owners see every card in their
// organisation; members see their own.
func (h *Controller) List(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok || !principal.HasUser() {
		return fiber.ErrUnauthorized
	}

	orgSlug := ""
	if principal.HasOrganisation() {
		if org, err := h.organisations.FindByID(principal.OrganisationID); err == nil && org != nil {
			orgSlug, _ = h.organisations.EnsureSlug(org)
		}
	}

	var cards []model.Card
	var err error
	if principal.IsOwner() && principal.HasOrganisation() {
		cards, err = h.cards.ListByOrganisation(principal.OrganisationID)
	} else {
		cards, err = h.cards.ListByUser(principal.UserID)
	}
	if err != nil {
		return fiber.ErrInternalServerError
	}

	emails := map[string]string{}
	if principal.HasOrganisation() {
		if users, err := h.users.ListByOrganisation(principal.OrganisationID); err == nil {
			for _, user := range users {
				emails[user.ID] = user.Email
			}
		}
	}

	entries := make([]dashboardEntry, 0, len(cards))
	for _, card := range cards {
		entry := dashboardEntry{
			Slug:      card.Slug,
			ShortCode: card.ShortCode,
			UserID:    card.UserID,
			UserEmail: emails[card.UserID],
			OrgSlug:   orgSlug,
		}
		if data, err := card.Payload(); err == nil {
			entry.FirstName = data.Personal.FirstName
			entry.LastName = data.Personal.LastName
		}
		entries = append(entries, entry)
	}
	return c.JSON(fiber.Map{"cards": entries})
}
