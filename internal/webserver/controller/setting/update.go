package setting

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
	"github.com/swiish/swiish/internal/webserver/model"
)

// Update stores the settings present in the request. Pointer fields make
// the update partial: absent keys keep their stored value.
func (s *Controller) Update(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok || !principal.HasOrganisation() {
		return fiber.ErrUnauthorized
	}

	var request struct {
		DefaultOrganisation       *string            `json:"default_organisation"`
		ThemeColors               []model.ThemeColor `json:"theme_colors"`
		ThemeVariant              *string            `json:"theme_variant"`
		AllowThemeCustomisation   *bool              `json:"allow_theme_customisation"`
		AllowImageCustomisation   *bool              `json:"allow_image_customisation"`
		AllowLinksCustomisation   *bool              `json:"allow_links_customisation"`
		AllowPrivacyCustomisation *bool              `json:"allow_privacy_customisation"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	orgID := principal.OrganisationID
	if request.DefaultOrganisation != nil {
		if err := s.settings.Upsert(orgID, model.SettingDefaultOrganisation, *request.DefaultOrganisation); err != nil {
			return fiber.ErrInternalServerError
		}
	}
	if request.ThemeVariant != nil {
		if err := s.settings.Upsert(orgID, model.SettingThemeVariant, *request.ThemeVariant); err != nil {
			return fiber.ErrInternalServerError
		}
	}
	if request.ThemeColors != nil {
		if err := s.settings.UpsertColors(orgID, request.ThemeColors); err != nil {
			return fiber.ErrInternalServerError
		}
	}
	for key, value := range map[string]*bool{
		model.SettingAllowThemeCustomisation:   request.AllowThemeCustomisation,
		model.SettingAllowImageCustomisation:   request.AllowImageCustomisation,
		model.SettingAllowLinksCustomisation:   request.AllowLinksCustomisation,
		model.SettingAllowPrivacyCustomisation: request.AllowPrivacyCustomisation,
	} {
		if value == nil {
			continue
		}
		if err := s.settings.UpsertBool(orgID, key, *value); err != nil {
			return fiber.ErrInternalServerError
		}
	}

	settings, err := s.settings.Load(orgID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"success": true, "settings": settings})
}
