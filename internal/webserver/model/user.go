package model

import (
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// User is an account holder. Removal from an organisation clears
// OrganisationID but never deletes the row, so the account survives with its
// cards and credentials intact.
type User struct {
	ID             string `gorm:"primarykey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Email          string  `gorm:"uniqueIndex; not null"`
	PasswordHash   string  `gorm:"not null"`
	OrganisationID *string `gorm:"index"`
	Role           string  `gorm:"not null; default:member"`
	EmailVerified  bool    `gorm:"not null; default:false"`
}

// Validate checks the fields under the user's control.
func (u User) Validate(minPasswordLength int) map[string]string {
	errs := map[string]string{}

	if _, err := mail.ParseAddress(u.Email); err != nil {
		errs["email"] = "Incorrect email address"
	}

	if len(u.Email) > 100 {
		errs["email"] = "Email cannot be longer than 100 characters"
	}

	if !ValidRole(u.Role) {
		errs["role"] = "Role must be either \"owner\" or \"member\""
	}

	return errs
}

func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleMember
}

// HashPassword hashes a plain text password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plain text password matches the stored
// hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
