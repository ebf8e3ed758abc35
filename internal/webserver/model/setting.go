package model

import "time"

// Setting keys persisted per organisation.
const (
	SettingDefaultOrganisation       = "default_organisation"
	SettingThemeColors               = "theme_colors"
	SettingThemeVariant              = "theme_variant"
	SettingAllowThemeCustomisation   = "allow_theme_customisation"
	SettingAllowImageCustomisation   = "allow_image_customisation"
	SettingAllowLinksCustomisation   = "allow_links_customisation"
	SettingAllowPrivacyCustomisation = "allow_privacy_customisation"
)

// OrganisationSetting is a single key/value row. Values are strings;
// booleans are stored as "true"/"false" and the palette as JSON.
type OrganisationSetting struct {
	ID             uint   `gorm:"primarykey"`
	OrganisationID string `gorm:"uniqueIndex:idx_org_setting"`
	Key            string `gorm:"uniqueIndex:idx_org_setting"`
	Value          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ThemeColor is one palette entry offered to card holders.
type ThemeColor struct {
	Name          string `json:"name"`
	ColorType     string `json:"colorType"`
	BaseColor     string `json:"baseColor"`
	HexBase       string `json:"hexBase,omitempty"`
	HexSecondary  string `json:"hexSecondary,omitempty"`
	GradientStyle string `json:"gradientStyle,omitempty"`
	ButtonStyle   string `json:"buttonStyle,omitempty"`
	LinkStyle     string `json:"linkStyle,omitempty"`
	TextStyle     string `json:"textStyle,omitempty"`
}

// Settings is the decoded policy bag of an organisation.
type Settings struct {
	DefaultOrganisation       string       `json:"default_organisation"`
	ThemeColors               []ThemeColor `json:"theme_colors"`
	ThemeVariant              string       `json:"theme_variant"`
	AllowThemeCustomisation   bool         `json:"allow_theme_customisation"`
	AllowImageCustomisation   bool         `json:"allow_image_customisation"`
	AllowLinksCustomisation   bool         `json:"allow_links_customisation"`
	AllowPrivacyCustomisation bool         `json:"allow_privacy_customisation"`
}

// DefaultThemeColors is the palette organisations start with.
func DefaultThemeColors() []ThemeColor {
	return []ThemeColor{
		{Name: "indigo", ColorType: "solid", BaseColor: "indigo", HexBase: "#6366f1"},
		{Name: "blue", ColorType: "solid", BaseColor: "blue", HexBase: "#3b82f6"},
		{Name: "rose", ColorType: "solid", BaseColor: "rose", HexBase: "#f43f5e"},
		{Name: "emerald", ColorType: "solid", BaseColor: "emerald", HexBase: "#10b981"},
		{Name: "slate", ColorType: "solid", BaseColor: "slate", HexBase: "#64748b"},
	}
}

// DefaultSettings is the bag used before an organisation stores anything.
func DefaultSettings() Settings {
	return Settings{
		DefaultOrganisation:       "My Organisation",
		ThemeColors:               DefaultThemeColors(),
		ThemeVariant:              "swiish",
		AllowThemeCustomisation:   true,
		AllowImageCustomisation:   true,
		AllowLinksCustomisation:   true,
		AllowPrivacyCustomisation: true,
	}
}
