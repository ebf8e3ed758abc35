package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordReset is a single-use token letting a user replace a forgotten
// password. Expires after PasswordResetTTL.
type PasswordReset struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string `gorm:"index"`
	Token     string `gorm:"uniqueIndex"`
	ExpiresAt time.Time
	UsedAt    *time.Time
}

func (p PasswordReset) State(now time.Time) TokenState {
	return tokenState(p.UsedAt, p.ExpiresAt, now)
}

type PasswordResetRepository struct {
	DB *gorm.DB
}

// Create issues a fresh reset token, discarding any unused tokens the user
// still holds so only the newest one works.
func (r PasswordResetRepository) Create(userID string, now time.Time) (*PasswordReset, error) {
	token, err := NewToken()
	if err != nil {
		return nil, err
	}
	reset := PasswordReset{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: now.Add(PasswordResetTTL),
	}
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND used_at IS NULL", userID).Delete(&PasswordReset{}).Error; err != nil {
			return err
		}
		return tx.Create(&reset).Error
	})
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

// Consume validates the token and replaces the user's password hash in the
// same transaction that marks the token used.
func (r PasswordResetRepository) Consume(token, newHash string, now time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var reset PasswordReset
		if err := tx.Where("token = ?", token).First(&reset).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTokenInvalid
			}
			return err
		}
		if err := reset.State(now).Err(); err != nil {
			return err
		}
		if err := tx.Model(&User{}).Where("id = ?", reset.UserID).Update("password_hash", newHash).Error; err != nil {
			return err
		}
		return tx.Model(&reset).Update("used_at", now).Error
	})
}
