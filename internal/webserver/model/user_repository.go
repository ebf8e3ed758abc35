package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (u UserRepository) FindByEmail(email string) (*User, error) {
	var user User
	err := u.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u UserRepository) FindByID(id string) (*User, error) {
	var user User
	err := u.DB.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u UserRepository) Total() (int64, error) {
	var count int64
	err := u.DB.Model(&User{}).Count(&count).Error
	return count, err
}

// CountOwners satisfies OwnerCounter.
func (u UserRepository) CountOwners(organisationID string) (int64, error) {
	var count int64
	err := u.DB.Model(&User{}).
		Where("organisation_id = ? AND role = ?", organisationID, RoleOwner).
		Count(&count).Error
	return count, err
}

func (u UserRepository) ListByOrganisation(organisationID string) ([]User, error) {
	var users []User
	err := u.DB.Where("organisation_id = ?", organisationID).Order("created_at asc").Find(&users).Error
	return users, err
}

// Create stores a new user, reporting an already-taken email as
// ErrDuplicateEmail.
func (u UserRepository) Create(user *User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = strings.ToLower(user.Email)
	existing, err := u.FindByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateEmail
	}
	err = u.DB.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The unique index caught a concurrent insert the pre-check missed.
		return ErrDuplicateEmail
	}
	return err
}

// ChangeRole applies a role change after running the membership rules. The
// owner count and the write share one transaction.
func (u UserRepository) ChangeRole(actor Principal, targetID, newRole string) error {
	return u.DB.Transaction(func(tx *gorm.DB) error {
		repo := UserRepository{DB: tx}
		target, err := repo.FindByID(targetID)
		if err != nil {
			return err
		}
		guard := RoleGuard{Owners: repo.CountOwners}
		if err := guard.CanChangeRole(actor, targetID, target, newRole); err != nil {
			return err
		}
		return tx.Model(&User{}).Where("id = ?", targetID).Update("role", newRole).Error
	})
}

// Remove detaches a member from the organisation. The account and its cards
// survive; only the membership link is cleared.
func (u UserRepository) Remove(actor Principal, targetID string) error {
	return u.DB.Transaction(func(tx *gorm.DB) error {
		repo := UserRepository{DB: tx}
		target, err := repo.FindByID(targetID)
		if err != nil {
			return err
		}
		guard := RoleGuard{Owners: repo.CountOwners}
		if err := guard.CanRemove(actor, targetID, target); err != nil {
			return err
		}
		return tx.Model(&User{}).Where("id = ?", targetID).Update("organisation_id", nil).Error
	})
}

func (u UserRepository) UpdatePassword(userID, hash string) error {
	return u.DB.Model(&User{}).Where("id = ?", userID).Update("password_hash", hash).Error
}
