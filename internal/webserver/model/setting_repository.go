package model

import (
	"encoding/json"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	DB *gorm.DB
}

// Load returns the settings bag of an organisation, overlaying stored rows
// on the defaults so missing keys keep their default value.
func (s SettingRepository) Load(organisationID string) (Settings, error) {
	settings := DefaultSettings()
	var rows []OrganisationSetting
	if err := s.DB.Where("organisation_id = ?", organisationID).Find(&rows).Error; err != nil {
		return settings, err
	}
	for _, row := range rows {
		switch row.Key {
		case SettingDefaultOrganisation:
			settings.DefaultOrganisation = row.Value
		case SettingThemeVariant:
			settings.ThemeVariant = row.Value
		case SettingThemeColors:
			var colors []ThemeColor
			if err := json.Unmarshal([]byte(row.Value), &colors); err == nil {
				settings.ThemeColors = colors
			}
		case SettingAllowThemeCustomisation:
			settings.AllowThemeCustomisation = row.Value == "true"
		case SettingAllowImageCustomisation:
			settings.AllowImageCustomisation = row.Value == "true"
		case SettingAllowLinksCustomisation:
			settings.AllowLinksCustomisation = row.Value == "true"
		case SettingAllowPrivacyCustomisation:
			settings.AllowPrivacyCustomisation = row.Value == "true"
		}
	}
	return settings, nil
}

// Upsert writes one key, replacing any stored value.
func (s SettingRepository) Upsert(organisationID, key, value string) error {
	row := OrganisationSetting{
		OrganisationID: organisationID,
		Key:            key,
		Value:          value,
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organisation_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

// UpsertBool stores a boolean as "true" or "false".
func (s SettingRepository) UpsertBool(organisationID, key string, value bool) error {
	return s.Upsert(organisationID, key, strconv.FormatBool(value))
}

// UpsertColors stores the palette as JSON.
func (s SettingRepository) UpsertColors(organisationID string, colors []ThemeColor) error {
	raw, err := json.Marshal(colors)
	if err != nil {
		return err
	}
	return s.Upsert(organisationID, SettingThemeColors, string(raw))
}

// Seed writes the initial settings of a freshly created organisation.
func (s SettingRepository) Seed(organisationID, name string) error {
	defaults := DefaultSettings()
	defaults.DefaultOrganisation = name
	return s.DB.Transaction(func(tx *gorm.DB) error {
		repo := SettingRepository{DB: tx}
		if err := repo.Upsert(organisationID, SettingDefaultOrganisation, defaults.DefaultOrganisation); err != nil {
			return err
		}
		if err := repo.Upsert(organisationID, SettingThemeVariant, defaults.ThemeVariant); err != nil {
			return err
		}
		if err := repo.UpsertColors(organisationID, defaults.ThemeColors); err != nil {
			return err
		}
		for key, value := range map[string]bool{
			SettingAllowThemeCustomisation:   defaults.AllowThemeCustomisation,
			SettingAllowImageCustomisation:   defaults.AllowImageCustomisation,
			SettingAllowLinksCustomisation:   defaults.AllowLinksCustomisation,
			SettingAllowPrivacyCustomisation: defaults.AllowPrivacyCustomisation,
		} {
			if err := repo.UpsertBool(organisationID, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}
