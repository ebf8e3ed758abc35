package model

// Apply rewrites an incoming card payload according to the organisation
// policy. The existing payload, when present, supplies the values locked
// fields are reverted to.
func (s Settings) Apply(incoming CardData, existing *CardData) CardData {
	out := incoming
	out.Personal.Company = s.DefaultOrganisation

	if !s.AllowThemeCustomisation && !s.paletteHas(out.Theme.Color) {
		out.Theme.Color = s.fallbackColor()
	}

	if !s.AllowImageCustomisation {
		out.Images = CardImages{}
	}

	if !s.AllowLinksCustomisation {
		out.Links = []CardLink{}
	}

	if !s.AllowPrivacyCustomisation {
		if existing != nil {
			out.Privacy = existing.Privacy
		} else {
			out.Privacy = DefaultPrivacy()
		}
	}
	return out
}

// fallbackColor picks the colour locked or out-of-palette requests end up
// with: the first palette entry, else indigo.
func (s Settings) fallbackColor() string {
	if len(s.ThemeColors) > 0 {
		return s.ThemeColors[0].Name
	}
	return "indigo"
}

func (s Settings) paletteHas(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range s.ThemeColors {
		if c.Name == name {
			return true
		}
	}
	return false
}
