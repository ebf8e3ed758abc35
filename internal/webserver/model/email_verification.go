package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailVerification is a single-use token proving a user controls their
// address. Expires after EmailVerificationTTL.
type EmailVerification struct {
	ID         string `gorm:"primarykey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	UserID     string `gorm:"index"`
	Token      string `gorm:"uniqueIndex"`
	ExpiresAt  time.Time
	VerifiedAt *time.Time
}

func (v EmailVerification) State(now time.Time) TokenState {
	return tokenState(v.VerifiedAt, v.ExpiresAt, now)
}

type EmailVerificationRepository struct {
	DB *gorm.DB
}

// Create issues a verification token unless the user already holds an
// active one.
func (r EmailVerificationRepository) Create(userID string, now time.Time) (*EmailVerification, error) {
	var verification *EmailVerification
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&EmailVerification{}).
			Where("user_id = ? AND verified_at IS NULL AND expires_at > ?", userID, now).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrActiveTokenExists
		}
		token, err := NewToken()
		if err != nil {
			return err
		}
		verification = &EmailVerification{
			ID:        uuid.NewString(),
			UserID:    userID,
			Token:     token,
			ExpiresAt: now.Add(EmailVerificationTTL),
		}
		return tx.Create(verification).Error
	})
	if err != nil {
		return nil, err
	}
	return verification, nil
}

// Consume validates the token and flags the user verified in the same
// transaction.
func (r EmailVerificationRepository) Consume(token string, now time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var verification EmailVerification
		if err := tx.Where("token = ?", token).First(&verification).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTokenInvalid
			}
			return err
		}
		if err := verification.State(now).Err(); err != nil {
			return err
		}
		if err := tx.Model(&User{}).Where("id = ?", verification.UserID).Update("email_verified", true).Error; err != nil {
			return err
		}
		return tx.Model(&verification).Update("verified_at", now).Error
	})
}
