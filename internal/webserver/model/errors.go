package model

import "errors"

// Expected business conditions returned by repositories. Controllers map
// them to HTTP statuses; any other error is an infrastructure fault and
// surfaces as a generic internal error.
var (
	ErrNotFound          = errors.New("not found")
	ErrSelfModification  = errors.New("cannot modify own membership")
	ErrLastOwner         = errors.New("cannot remove last owner from organisation")
	ErrDuplicateEmail    = errors.New("a user with this email already exists")
	ErrActiveTokenExists = errors.New("an active token already exists")
	ErrTokenInvalid      = errors.New("token is invalid")
	ErrTokenExpired      = errors.New("token has expired")
	ErrTokenConsumed     = errors.New("token has already been used")
)
