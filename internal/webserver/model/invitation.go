package model

import "time"

// Invitation lets a prospective member join an organisation with a chosen
// role. Single use, expires after InvitationTTL.
type Invitation struct {
	ID             string `gorm:"primarykey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	OrganisationID string `gorm:"index"`
	Email          string `gorm:"index"`
	Token          string `gorm:"uniqueIndex"`
	Role           string
	InvitedBy      string
	ExpiresAt      time.Time
	AcceptedAt     *time.Time
}

func (i Invitation) State(now time.Time) TokenState {
	return tokenState(i.AcceptedAt, i.ExpiresAt, now)
}
