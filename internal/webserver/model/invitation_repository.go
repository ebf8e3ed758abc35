package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationRepository struct {
	DB *gorm.DB
}

func (r InvitationRepository) Create(organisationID, email, role, invitedBy string) (*Invitation, error) {
	token, err := NewToken()
	if err != nil {
		return nil, err
	}
	invitation := Invitation{
		ID:             uuid.NewString(),
		OrganisationID: organisationID,
		Email:          strings.ToLower(email),
		Token:          token,
		Role:           role,
		InvitedBy:      invitedBy,
		ExpiresAt:      time.Now().UTC().Add(InvitationTTL),
	}
	if err := r.DB.Create(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r InvitationRepository) FindByToken(token string) (*Invitation, error) {
	var invitation Invitation
	err := r.DB.Where("token = ?", token).First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invitation, nil
}

// HasActive reports whether email already holds an unexpired, unaccepted
// invitation to the organisation.
func (r InvitationRepository) HasActive(organisationID, email string, now time.Time) (bool, error) {
	var count int64
	err := r.DB.Model(&Invitation{}).
		Where("organisation_id = ? AND email = ? AND accepted_at IS NULL AND expires_at > ?",
			organisationID, strings.ToLower(email), now).
		Count(&count).Error
	return count > 0, err
}

// Accept consumes the invitation and creates the member it invited. The
// lookup, the duplicate email check and both writes run in one transaction.
func (r InvitationRepository) Accept(token, passwordHash string, now time.Time) (*User, error) {
	var user *User
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var invitation Invitation
		if err := tx.Where("token = ?", token).First(&invitation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTokenInvalid
			}
			return err
		}
		if err := invitation.State(now).Err(); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&User{}).Where("email = ?", invitation.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEmail
		}
		user = &User{
			ID:             uuid.NewString(),
			Email:          invitation.Email,
			PasswordHash:   passwordHash,
			OrganisationID: &invitation.OrganisationID,
			Role:           invitation.Role,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Model(&invitation).Update("accepted_at", now).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
