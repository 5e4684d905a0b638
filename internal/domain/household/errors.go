package household

import "errors"

var (
	ErrHouseholdNotFound = errors.New("household not found")
	ErrNameRequired      = errors.New("household name must not be empty")
	ErrNameTaken         = errors.New("household name already taken")
)
