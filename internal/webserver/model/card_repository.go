package model

import (
	"errors"

	"gorm.io/gorm"

	"github.com/swiish/swiish/internal/shortcode"
)

type CardRepository struct {
	DB *gorm.DB
}

func (c CardRepository) FindBySlugAndUser(slug, userID string) (*Card, error) {
	var card Card
	err := c.DB.Where("slug = ? AND user_id = ?", slug, userID).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (c CardRepository) FindByShortCode(code string) (*Card, error) {
	var card Card
	err := c.DB.Where("short_code = ?", code).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

// FindFirstBySlug returns the oldest card with the given slug regardless of
// owner. Kept for the deprecated slug-only public route.
func (c CardRepository) FindFirstBySlug(slug string) (*Card, error) {
	var card Card
	err := c.DB.Where("slug = ?", slug).Order("created_at asc").First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

// FindBySlugInOrganisation scopes a slug lookup to the members of one
// organisation.
func (c CardRepository) FindBySlugInOrganisation(slug, organisationID string) (*Card, error) {
	var card Card
	err := c.DB.
		Joins("JOIN users ON users.id = cards.user_id").
		Where("cards.slug = ? AND users.organisation_id = ?", slug, organisationID).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (c CardRepository) ShortCodeExists(code string) (bool, error) {
	var count int64
	err := c.DB.Model(&Card{}).Where("short_code = ?", code).Count(&count).Error
	return count > 0, err
}

// Save upserts the card identified by slug and user. A new card gets a short
// code from mint; an existing card keeps the one it was first issued. The
// unique indexes backstop the pre-insert existence check: a duplicated key on
// insert means either the short code lost its uniqueness race, retried with a
// fresh code, or a concurrent first save of the same slug won, in which case
// the save becomes an update that keeps the winner's code.
func (c CardRepository) Save(card *Card, mint func() (string, error)) error {
	existing, err := c.FindBySlugAndUser(card.Slug, card.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		card.ID = existing.ID
		card.ShortCode = existing.ShortCode
		card.CreatedAt = existing.CreatedAt
		return c.DB.Save(card).Error
	}
	for attempt := 0; attempt < 10; attempt++ {
		code, err := mint()
		if err != nil {
			return err
		}
		card.ShortCode = code
		err = c.DB.Create(card).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		winner, err := c.FindBySlugAndUser(card.Slug, card.UserID)
		if err != nil {
			return err
		}
		if winner != nil {
			card.ID = winner.ID
			card.ShortCode = winner.ShortCode
			card.CreatedAt = winner.CreatedAt
			return c.DB.Save(card).Error
		}
		card.ID = 0
	}
	return shortcode.ErrExhausted
}

func (c CardRepository) Delete(slug, userID string) error {
	result := c.DB.Where("slug = ? AND user_id = ?", slug, userID).Delete(&Card{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (c CardRepository) ListByUser(userID string) ([]Card, error) {
	var cards []Card
	err := c.DB.Where("user_id = ?", userID).Order("updated_at desc").Find(&cards).Error
	return cards, err
}

// ListByOrganisation returns the cards of every member of an organisation.
func (c CardRepository) ListByOrganisation(organisationID string) ([]Card, error) {
	var cards []Card
	err := c.DB.
		Joins("JOIN users ON users.id = cards.user_id").
		Where("users.organisation_id = ?", organisationID).
		Order("cards.updated_at desc").
		Find(&cards).Error
	return cards, err
}
