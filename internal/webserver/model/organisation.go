package model

import (
	"time"

	"github.com/gosimple/slug"
)

const TierIndividual = "individual"

// Organisation is a tenant. Slug is the URL-safe identifier used on public
// card routes.
type Organisation struct {
	ID               string `gorm:"primarykey"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Name             string
	Slug             string `gorm:"uniqueIndex"`
	SubscriptionTier string `gorm:"default:individual"`
}

// Slugify turns a display name into a URL-safe slug, transliterating
// accented characters. An empty result falls back to "org".
func Slugify(name string) string {
	s := slug.Make(name)
	if s == "" {
		return "org"
	}
	return s
}
