package user

import (
	"strings"
	"time"
)

// User authenticates with email instead of a username. HouseholdID is nil
// until the user creates or is assigned a household.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"size:100;not null;uniqueIndex"`
	Name         string    `gorm:"size:100"`
	PasswordHash string    `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	IsStaff      bool      `gorm:"not null"`
	IsSuperuser  bool      `gorm:"not null"`
	HouseholdID  *uint     `gorm:"index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// NormalizeEmail lower-cases the domain part and leaves the local part as
// given.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", ErrEmailInvalid
	}

	return email[:at+1] + strings.ToLower(email[at+1:]), nil
}
