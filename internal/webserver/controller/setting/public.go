package setting

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/model"
)

// Public returns the theme palette and variant card viewers need to render an
// organisation's cards. Policy toggles and the default company name stay
// private. Unknown slugs fall back to the defaults rather than leaking which
// organisations exist.
func (s *Controller) Public(c *fiber.Ctx) error {
	slug := c.Query("orgSlug")
	if slug == "" {
		slug = "default"
	}

	settings := model.DefaultSettings()
	org, err := s.organisations.FindBySlug(slug)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if org != nil {
		settings, err = s.settings.Load(org.ID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
	}

	return c.JSON(fiber.Map{
		"theme_colors":  settings.ThemeColors,
		"theme_variant": settings.ThemeVariant,
	})
}
