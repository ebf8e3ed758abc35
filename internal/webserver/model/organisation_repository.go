package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganisationRepository struct {
	DB *gorm.DB
}

func (o OrganisationRepository) Create(name, slug string) (*Organisation, error) {
	org := Organisation{
		ID:   uuid.NewString(),
		Name: name,
		Slug: slug,
	}
	if err := o.DB.Create(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (o OrganisationRepository) FindByID(id string) (*Organisation, error) {
	var org Organisation
	if err := o.DB.Where("id = ?", id).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

func (o OrganisationRepository) FindBySlug(slug string) (*Organisation, error) {
	var org Organisation
	if err := o.DB.Where("slug = ?", slug).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

// UniqueSlug derives a slug from name that no other organisation uses,
// appending a numeric suffix when taken.
func (o OrganisationRepository) UniqueSlug(name string) (string, error) {
	base := Slugify(name)
	slug := base
	for i := 2; ; i++ {
		existing, err := o.FindBySlug(slug)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// EnsureSlug backfills the slug of an organisation created before slugs
// existed and returns the current value.
func (o OrganisationRepository) EnsureSlug(org *Organisation) (string, error) {
	if org.Slug != "" {
		return org.Slug, nil
	}
	slug, err := o.UniqueSlug(org.Name)
	if err != nil {
		return "", err
	}
	if err := o.DB.Model(org).Update("slug", slug).Error; err != nil {
		return "", err
	}
	org.Slug = slug
	return slug, nil
}
